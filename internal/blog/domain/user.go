package domain

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string // argon2id PHC string, or a legacy bcrypt hash
	CreatedAt    time.Time
}

// Account is the result of registration. Author is nil unless the user
// registered as an author.
type Account struct {
	User   User
	Author *Author
}
