package postgres

import (
	"context"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
)

type authorsRepo struct {
	db DBTX
}

func (r *authorsRepo) CreateAuthor(ctx context.Context, userID int64, displayName string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO authors (user_id, author_name) VALUES ($1, $2) RETURNING author_id`,
		userID, displayName,
	).Scan(&id)
	return id, err
}

func (r *authorsRepo) GetAuthorByUserID(ctx context.Context, userID int64) (domain.Author, error) {
	var a domain.Author
	err := r.db.QueryRowContext(ctx, `
		SELECT author_id, user_id, author_name, bio, profile_pic
		FROM authors
		WHERE user_id = $1
		ORDER BY author_id
		LIMIT 1`, userID,
	).Scan(&a.ID, &a.UserID, &a.DisplayName, &a.Bio, &a.ProfilePic)
	if err != nil {
		return domain.Author{}, mapNotFound(err)
	}
	return a, nil
}

func (r *authorsRepo) UpdateAuthor(ctx context.Context, a domain.Author) error {
	return requireAffected(r.db.ExecContext(ctx, `
		UPDATE authors
		SET author_name = $1, bio = $2, profile_pic = $3
		WHERE author_id = $4`,
		a.DisplayName, a.Bio, a.ProfilePic, a.ID))
}
