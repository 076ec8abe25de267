package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/store"
	"github.com/aussiebroadwan/blog/pkg/slogx"
)

type AuthorService struct {
	Store store.Store
}

// Promote creates an author profile for userID. It does not check for an
// existing profile; calling it twice leaves the user with two rows.
func (s *AuthorService) Promote(ctx context.Context, userID int64, displayName string) (int64, error) {
	var authorID int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		authorID, err = promote(ctx, tx, userID, displayName)
		return err
	})
	if err != nil {
		return 0, err
	}
	return authorID, nil
}

// promote inserts the author row inside an open transaction. Registration
// uses it directly so the user and author rows commit together.
func promote(ctx context.Context, tx store.Tx, userID int64, displayName string) (int64, error) {
	if strings.TrimSpace(displayName) == "" {
		return 0, validationError("author name is required")
	}

	authorID, err := tx.Authors().CreateAuthor(ctx, userID, displayName)
	if err != nil {
		return 0, err
	}

	slogx.FromContext(ctx).Info("user promoted to author", "user_id", userID, "author_id", authorID)
	return authorID, nil
}

// FindByUser returns the author profile of userID, or nil when the user is
// not an author.
func (s *AuthorService) FindByUser(ctx context.Context, userID int64) (*domain.Author, error) {
	return findAuthor(ctx, s.Store, userID)
}

func findAuthor(ctx context.Context, st store.Store, userID int64) (*domain.Author, error) {
	author, err := st.Authors().GetAuthorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &author, nil
}

// UpdateProfile applies upd to the caller's author profile. Nil fields are
// left alone. An empty Bio or ProfilePic clears it; an empty DisplayName is
// rejected.
func (s *AuthorService) UpdateProfile(ctx context.Context, userID int64, upd domain.ProfileUpdate) (domain.Author, error) {
	var updated domain.Author
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		author, err := findAuthor(ctx, tx, userID)
		if err != nil {
			return err
		}
		if author == nil {
			return ErrNotFound
		}

		if upd.DisplayName != nil {
			if strings.TrimSpace(*upd.DisplayName) == "" {
				return validationError("author name cannot be empty")
			}
			author.DisplayName = *upd.DisplayName
		}
		if upd.Bio != nil {
			author.Bio = clearable(*upd.Bio)
		}
		if upd.ProfilePic != nil {
			author.ProfilePic = clearable(*upd.ProfilePic)
		}

		if err := tx.Authors().UpdateAuthor(ctx, *author); err != nil {
			return err
		}
		updated = *author
		return nil
	})
	if err != nil {
		return domain.Author{}, err
	}

	slogx.FromContext(ctx).Info("author profile updated", "user_id", userID, "author_id", updated.ID)
	return updated, nil
}

// clearable maps an empty string to NULL.
func clearable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
