package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/store"
)

func (q *Queries) CreateAuthor(ctx context.Context, userID int64, name string) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO authors (user_id, author_name) VALUES (?, ?)`, userID, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (q *Queries) GetAuthorByUserID(ctx context.Context, userID int64) (domain.Author, error) {
	var (
		a          domain.Author
		bio        sql.NullString
		profilePic sql.NullString
	)
	err := q.db.QueryRowContext(ctx, `
		SELECT author_id, user_id, author_name, bio, profile_pic
		FROM authors
		WHERE user_id = ?
		ORDER BY author_id
		LIMIT 1`, userID,
	).Scan(&a.ID, &a.UserID, &a.DisplayName, &bio, &profilePic)
	if err != nil {
		return domain.Author{}, err
	}
	a.Bio = mapNullStringPtr(bio)
	a.ProfilePic = mapNullStringPtr(profilePic)
	return a, nil
}

func (q *Queries) UpdateAuthor(ctx context.Context, a domain.Author) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		UPDATE authors
		SET author_name = ?, bio = ?, profile_pic = ?
		WHERE author_id = ?`,
		a.DisplayName, mapOptionalString(a.Bio), mapOptionalString(a.ProfilePic), a.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type authorsRepo struct {
	q *Queries
}

func (r *authorsRepo) CreateAuthor(ctx context.Context, userID int64, displayName string) (int64, error) {
	return r.q.CreateAuthor(ctx, userID, displayName)
}

func (r *authorsRepo) GetAuthorByUserID(ctx context.Context, userID int64) (domain.Author, error) {
	a, err := r.q.GetAuthorByUserID(ctx, userID)
	if err != nil {
		return domain.Author{}, mapNotFound(err)
	}
	return a, nil
}

func (r *authorsRepo) UpdateAuthor(ctx context.Context, a domain.Author) error {
	n, err := r.q.UpdateAuthor(ctx, a)
	return requireAffected(n, err)
}

// requireAffected reports store.ErrNotFound for writes that matched no row.
func requireAffected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
