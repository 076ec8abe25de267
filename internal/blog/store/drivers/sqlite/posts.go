package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
)

const postColumns = `blog_id, title, picture, description, author_id, created_at`

func scanPost(row interface{ Scan(...any) error }) (domain.Post, error) {
	var (
		p         domain.Post
		picture   sql.NullString
		createdAt dbTime
	)
	if err := row.Scan(&p.ID, &p.Title, &picture, &p.Description, &p.AuthorID, &createdAt); err != nil {
		return domain.Post{}, err
	}
	p.Picture = mapNullStringPtr(picture)
	p.CreatedAt = createdAt.Time
	return p, nil
}

// authorFilter is bound twice so a nil author matches every row.
func authorFilter(authorID *int64) []any {
	if authorID == nil {
		return []any{nil, nil}
	}
	return []any{*authorID, *authorID}
}

func (q *Queries) CreatePost(ctx context.Context, authorID int64, in domain.PostInput, createdAt time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO blogs (title, picture, description, author_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		in.Title, mapOptionalString(in.Picture), in.Description, authorID, formatTime(createdAt))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (q *Queries) GetPost(ctx context.Context, id int64) (domain.Post, error) {
	return scanPost(q.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM blogs WHERE blog_id = ?`, id))
}

func (q *Queries) ListPosts(ctx context.Context, authorID *int64, limit, offset int) ([]domain.Post, error) {
	args := append(authorFilter(authorID), limit, offset)
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+postColumns+`
		FROM blogs
		WHERE (? IS NULL OR author_id = ?)
		ORDER BY blog_id
		LIMIT ? OFFSET ?`, args...)
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

func (q *Queries) CountPosts(ctx context.Context, authorID *int64) (int, error) {
	var n int
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM blogs WHERE (? IS NULL OR author_id = ?)`,
		authorFilter(authorID)...,
	).Scan(&n)
	return n, err
}

func (q *Queries) UpdatePost(ctx context.Context, id int64, in domain.PostInput) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		UPDATE blogs
		SET title = ?, picture = ?, description = ?
		WHERE blog_id = ?`,
		in.Title, mapOptionalString(in.Picture), in.Description, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (q *Queries) DeletePost(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM blogs WHERE blog_id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type postsRepo struct {
	q *Queries
}

func (r *postsRepo) CreatePost(ctx context.Context, authorID int64, in domain.PostInput) (domain.Post, error) {
	id, err := r.q.CreatePost(ctx, authorID, in, time.Now())
	if err != nil {
		return domain.Post{}, err
	}
	return r.GetPost(ctx, id)
}

func (r *postsRepo) GetPost(ctx context.Context, id int64) (domain.Post, error) {
	p, err := r.q.GetPost(ctx, id)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return p, nil
}

func (r *postsRepo) ListPosts(ctx context.Context, authorID *int64, limit, offset int) ([]domain.Post, error) {
	return r.q.ListPosts(ctx, authorID, limit, offset)
}

func (r *postsRepo) CountPosts(ctx context.Context, authorID *int64) (int, error) {
	return r.q.CountPosts(ctx, authorID)
}

func (r *postsRepo) UpdatePost(ctx context.Context, id int64, in domain.PostInput) (domain.Post, error) {
	n, err := r.q.UpdatePost(ctx, id, in)
	if err := requireAffected(n, err); err != nil {
		return domain.Post{}, err
	}
	return r.GetPost(ctx, id)
}

func (r *postsRepo) DeletePost(ctx context.Context, id int64) error {
	n, err := r.q.DeletePost(ctx, id)
	return requireAffected(n, err)
}
