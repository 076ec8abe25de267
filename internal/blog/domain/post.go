package domain

import "time"

// PostPageSize is the fixed number of posts per listing page.
const PostPageSize = 5

type Post struct {
	ID          int64
	Title       string
	Picture     *string
	Description string
	AuthorID    int64
	CreatedAt   time.Time
}

// PostInput is the caller supplied content of a post.
type PostInput struct {
	Title       string
	Picture     *string
	Description string
}

// PostPage is one page of a post listing.
type PostPage struct {
	Total    int
	Page     int
	PageSize int
	Items    []Post
}
