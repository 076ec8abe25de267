package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Repositories hang off the Store so a Tx hands out the same
// repositories bound to the transaction.
type Store interface {
	Users() Users
	Authors() Authors
	Posts() Posts

	ApplyMigrations(ctx context.Context) error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id int64) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts the user and returns its new id. A taken username
	// returns ErrAlreadyExists.
	CreateUser(ctx context.Context, username, passwordHash string) (int64, error)

	UpdatePasswordHash(ctx context.Context, userID int64, newHash string) error
	CountUsers(ctx context.Context) (int, error)
}

type Authors interface {
	// CreateAuthor inserts an author row and returns its id. It does not check
	// whether the user already has one.
	CreateAuthor(ctx context.Context, userID int64, displayName string) (int64, error)

	// GetAuthorByUserID returns the first author row of a user.
	GetAuthorByUserID(ctx context.Context, userID int64) (domain.Author, error)

	// UpdateAuthor overwrites display name, bio and profile picture.
	UpdateAuthor(ctx context.Context, a domain.Author) error
}

type Posts interface {
	// CreatePost inserts a post, stamping created_at, and returns it.
	CreatePost(ctx context.Context, authorID int64, in domain.PostInput) (domain.Post, error)

	GetPost(ctx context.Context, id int64) (domain.Post, error)

	// ListPosts returns up to limit posts ordered by id, skipping offset.
	// A nil authorID lists every author.
	ListPosts(ctx context.Context, authorID *int64, limit, offset int) ([]domain.Post, error)
	CountPosts(ctx context.Context, authorID *int64) (int, error)

	// UpdatePost replaces title, picture and description. ErrNotFound when no
	// row matched.
	UpdatePost(ctx context.Context, id int64, in domain.PostInput) (domain.Post, error)

	// DeletePost removes a post. ErrNotFound when no row matched.
	DeletePost(ctx context.Context, id int64) error
}
