package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/blog/pkg/jwtx"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrAuthFailure       = errors.New("invalid credentials")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrNoPostsFound      = errors.New("no posts found")
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidToken is the cause behind TokenFailure{Reason: TokenInvalid}.
	ErrInvalidToken = errors.New("invalid token")
)

// validationError wraps ErrValidation with a message safe to show the caller.
func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// TokenFailureReason says why a bearer token was rejected.
type TokenFailureReason string

const (
	TokenExpired   TokenFailureReason = "expired"
	TokenWrongKind TokenFailureReason = "wrong_kind"
	TokenInvalid   TokenFailureReason = "invalid"
)

// TokenFailure is returned by token validation. It matches jwtx.ErrExpired,
// jwtx.ErrWrongKind or ErrInvalidToken with errors.Is depending on Reason,
// and also unwraps to the underlying cause.
type TokenFailure struct {
	Reason TokenFailureReason
	Err    error
}

func (e *TokenFailure) Error() string {
	if e.Err == nil {
		return "token " + string(e.Reason)
	}
	return fmt.Sprintf("token %s: %v", e.Reason, e.Err)
}

func (e *TokenFailure) Unwrap() []error {
	var sentinel error
	switch e.Reason {
	case TokenExpired:
		sentinel = jwtx.ErrExpired
	case TokenWrongKind:
		sentinel = jwtx.ErrWrongKind
	default:
		sentinel = ErrInvalidToken
	}

	if e.Err == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Err}
}

func tokenFailure(reason TokenFailureReason, err error) error {
	return &TokenFailure{Reason: reason, Err: err}
}
