package postgres

import (
	"context"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
)

const postColumns = `blog_id, title, picture, description, author_id, created_at`

type postsRepo struct {
	db DBTX
}

func scanPost(row interface{ Scan(...any) error }) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(&p.ID, &p.Title, &p.Picture, &p.Description, &p.AuthorID, &p.CreatedAt)
	return p, err
}

func (r *postsRepo) CreatePost(ctx context.Context, authorID int64, in domain.PostInput) (domain.Post, error) {
	return scanPost(r.db.QueryRowContext(ctx, `
		INSERT INTO blogs (title, picture, description, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+postColumns,
		in.Title, in.Picture, in.Description, authorID))
}

func (r *postsRepo) GetPost(ctx context.Context, id int64) (domain.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM blogs WHERE blog_id = $1`, id))
	return p, mapNotFound(err)
}

func (r *postsRepo) ListPosts(ctx context.Context, authorID *int64, limit, offset int) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+postColumns+`
		FROM blogs
		WHERE ($1::BIGINT IS NULL OR author_id = $1)
		ORDER BY blog_id
		LIMIT $2 OFFSET $3`, authorID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *postsRepo) CountPosts(ctx context.Context, authorID *int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM blogs WHERE ($1::BIGINT IS NULL OR author_id = $1)`, authorID,
	).Scan(&n)
	return n, err
}

func (r *postsRepo) UpdatePost(ctx context.Context, id int64, in domain.PostInput) (domain.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, `
		UPDATE blogs
		SET title = $1, picture = $2, description = $3
		WHERE blog_id = $4
		RETURNING `+postColumns,
		in.Title, in.Picture, in.Description, id))
	return p, mapNotFound(err)
}

func (r *postsRepo) DeletePost(ctx context.Context, id int64) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM blogs WHERE blog_id = $1`, id))
}
