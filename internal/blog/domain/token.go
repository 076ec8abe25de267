package domain

import "time"

// Token is a signed bearer token with its lifetime.
type Token struct {
	Value     string
	ExpiresIn time.Duration
}

// TokenPair is what a successful login returns.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string // always "Bearer"
	ExpiresIn    time.Duration
}
