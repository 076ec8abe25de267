package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/store"
	"github.com/aussiebroadwan/blog/pkg/cryptox"
	"github.com/aussiebroadwan/blog/pkg/slogx"
)

// RegisterParams are the inputs to UserService.Register.
type RegisterParams struct {
	Username string
	Password string
	IsAuthor bool
}

type UserService struct {
	Store store.Store
}

// Register creates a user with a hashed password. With IsAuthor set the
// author profile (named after the user) is created in the same transaction,
// so a user is promoted at most once.
func (s *UserService) Register(ctx context.Context, p RegisterParams) (domain.Account, error) {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(p.Username) == "" || p.Password == "" {
		return domain.Account{}, validationError("username and password are required")
	}

	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.Account{}, err
	}

	var account domain.Account
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().GetUserByUsername(ctx, p.Username)
		switch {
		case err == nil:
			return ErrDuplicateUsername
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		userID, err := tx.Users().CreateUser(ctx, p.Username, hash)
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateUsername
			}
			return err
		}

		account.User, err = tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		if !p.IsAuthor {
			return nil
		}

		authorID, err := promote(ctx, tx, userID, p.Username)
		if err != nil {
			return err
		}
		account.Author = &domain.Author{ID: authorID, UserID: userID, DisplayName: p.Username}
		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	l.Info("user registered", "user_id", account.User.ID, "is_author", account.Author != nil)
	return account, nil
}

// dummyHash is compared against when the username does not exist so unknown
// users take as long to reject as wrong passwords.
var dummyHash = sync.OnceValue(func() string {
	hash, _ := cryptox.HashPassword("blog-dummy-password")
	return hash
})

// Verify checks a username and password. Unknown users and wrong passwords
// both return ErrAuthFailure. Legacy bcrypt hashes are upgraded to argon2id
// after a successful check.
func (s *UserService) Verify(ctx context.Context, username, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, dummyHash())
			return domain.User{}, ErrAuthFailure
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Error("stored password hash is unusable", "user_id", user.ID, "err", err)
		}
		return domain.User{}, ErrAuthFailure
	}

	if cryptox.NeedsRehash(user.PasswordHash) {
		s.rehash(ctx, &user, password)
	}

	return user, nil
}

func (s *UserService) rehash(ctx context.Context, user *domain.User, password string) {
	l := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Warn("password rehash failed", "user_id", user.ID, "err", err)
		return
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		l.Warn("password rehash failed", "user_id", user.ID, "err", err)
		return
	}

	user.PasswordHash = hash
	l.Info("password hash upgraded", "user_id", user.ID)
}

// GetUsername returns the username of userID.
func (s *UserService) GetUsername(ctx context.Context, userID int64) (string, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return user.Username, nil
}
