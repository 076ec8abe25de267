package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
)

const userColumns = `user_id, username, password, created_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u         domain.User
		createdAt dbTime
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &createdAt); err != nil {
		return domain.User{}, err
	}
	u.CreatedAt = createdAt.Time
	return u, nil
}

func (q *Queries) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return scanUser(q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = ?`, id))
}

func (q *Queries) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return scanUser(q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
}

func (q *Queries) CreateUser(ctx context.Context, username, passwordHash string, createdAt time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO users (username, password, created_at) VALUES (?, ?, ?)`,
		username, passwordHash, formatTime(createdAt))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (q *Queries) UpdateUserPasswordHash(ctx context.Context, id int64, hash string) (int64, error) {
	res, err := q.db.ExecContext(ctx, `UPDATE users SET password = ? WHERE user_id = ?`, hash, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (q *Queries) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

type usersRepo struct {
	q *Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	u, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := r.q.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	id, err := r.q.CreateUser(ctx, username, passwordHash, time.Now())
	if err != nil {
		return 0, mapConstraint(err)
	}
	return id, nil
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID int64, newHash string) error {
	n, err := r.q.UpdateUserPasswordHash(ctx, userID, newHash)
	return requireAffected(n, err)
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	return r.q.CountUsers(ctx)
}
