package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/store"
	"github.com/aussiebroadwan/blog/pkg/slogx"
)

// ListParams filters a post listing. A nil AuthorID lists every author.
type ListParams struct {
	AuthorID *int64
	Page     int
}

// PostService enforces that only authors create posts and only the owning
// author changes or removes them. Reads are public.
type PostService struct {
	Store store.Store
}

func (s *PostService) CreatePost(ctx context.Context, callerUserID int64, in domain.PostInput) (domain.Post, error) {
	var post domain.Post
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		author, err := findAuthor(ctx, tx, callerUserID)
		if err != nil {
			return err
		}
		if author == nil {
			return ErrForbidden
		}

		if err := validatePost(in); err != nil {
			return err
		}

		post, err = tx.Posts().CreatePost(ctx, author.ID, in)
		return err
	})
	if err != nil {
		return domain.Post{}, err
	}

	slogx.FromContext(ctx).Info("post created", "post_id", post.ID, "author_id", post.AuthorID)
	return post, nil
}

// UpdatePost replaces the title, picture and description of a post owned by
// the caller.
func (s *PostService) UpdatePost(ctx context.Context, callerUserID, postID int64, in domain.PostInput) (domain.Post, error) {
	var post domain.Post
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := ownedPost(ctx, tx, callerUserID, postID); err != nil {
			return err
		}

		if err := validatePost(in); err != nil {
			return err
		}

		var err error
		post, err = tx.Posts().UpdatePost(ctx, postID, in)
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	})
	if err != nil {
		return domain.Post{}, err
	}

	slogx.FromContext(ctx).Info("post updated", "post_id", post.ID)
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, callerUserID, postID int64) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := ownedPost(ctx, tx, callerUserID, postID); err != nil {
			return err
		}

		err := tx.Posts().DeletePost(ctx, postID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("post deleted", "post_id", postID)
	return nil
}

// CheckOwner reports ErrNotFound or ErrForbidden when the caller could not
// modify postID.
func (s *PostService) CheckOwner(ctx context.Context, callerUserID, postID int64) error {
	_, err := ownedPost(ctx, s.Store, callerUserID, postID)
	return err
}

// ownedPost loads postID and checks the caller's author profile owns it.
// A missing post wins over a missing profile.
func ownedPost(ctx context.Context, st store.Store, callerUserID, postID int64) (domain.Post, error) {
	post, err := st.Posts().GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Post{}, ErrNotFound
		}
		return domain.Post{}, err
	}

	author, err := findAuthor(ctx, st, callerUserID)
	if err != nil {
		return domain.Post{}, err
	}
	if author == nil || author.ID != post.AuthorID {
		return domain.Post{}, ErrForbidden
	}
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, postID int64) (domain.Post, error) {
	post, err := s.Store.Posts().GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Post{}, ErrNotFound
		}
		return domain.Post{}, err
	}
	return post, nil
}

// ListPosts returns one page of posts ordered by id. The total and the page
// are read in one transaction. A page past the end is ErrNoPostsFound.
func (s *PostService) ListPosts(ctx context.Context, p ListParams) (domain.PostPage, error) {
	page := max(p.Page, 1)
	if page-1 > (math.MaxInt-1)/domain.PostPageSize {
		return domain.PostPage{}, ErrNoPostsFound
	}
	offset := (page - 1) * domain.PostPageSize

	var (
		total int
		items []domain.Post
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		total, err = tx.Posts().CountPosts(ctx, p.AuthorID)
		if err != nil {
			return err
		}
		if offset >= total {
			return ErrNoPostsFound
		}

		items, err = tx.Posts().ListPosts(ctx, p.AuthorID, domain.PostPageSize, offset)
		return err
	})
	if err != nil {
		return domain.PostPage{}, err
	}
	if len(items) == 0 {
		return domain.PostPage{}, ErrNoPostsFound
	}

	return domain.PostPage{
		Total:    total,
		Page:     page,
		PageSize: domain.PostPageSize,
		Items:    items,
	}, nil
}

func validatePost(in domain.PostInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return validationError("title and description are required")
	}
	return nil
}
