package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/service"
	"github.com/stretchr/testify/require"
)

func TestPromote(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	userID, _ := s.register(t, "dave", false)

	author, err := s.authors.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Nil(t, author)

	authorID, err := s.authors.Promote(ctx, userID, "Dave")
	require.NoError(t, err)

	author, err = s.authors.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, author)
	require.Equal(t, authorID, author.ID)
	require.Equal(t, "Dave", author.DisplayName)

	_, err = s.authors.Promote(ctx, userID, "")
	require.ErrorIs(t, err, service.ErrValidation)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	userID, authorID := s.register(t, "erin", true)

	t.Run("partial update", func(t *testing.T) {
		a, err := s.authors.UpdateProfile(ctx, userID, domain.ProfileUpdate{
			Bio:        strPtr("writes about go"),
			ProfilePic: strPtr("erin.png"),
		})
		require.NoError(t, err)
		require.Equal(t, authorID, a.ID)
		require.Equal(t, "erin", a.DisplayName)
		require.Equal(t, "writes about go", *a.Bio)
		require.Equal(t, "erin.png", *a.ProfilePic)
	})

	t.Run("omitted fields are unchanged", func(t *testing.T) {
		a, err := s.authors.UpdateProfile(ctx, userID, domain.ProfileUpdate{DisplayName: strPtr("Erin")})
		require.NoError(t, err)
		require.Equal(t, "Erin", a.DisplayName)
		require.Equal(t, "writes about go", *a.Bio)

		stored, err := s.authors.FindByUser(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, a, *stored)
	})

	t.Run("empty bio clears it", func(t *testing.T) {
		a, err := s.authors.UpdateProfile(ctx, userID, domain.ProfileUpdate{Bio: strPtr("")})
		require.NoError(t, err)
		require.Nil(t, a.Bio)
		require.NotNil(t, a.ProfilePic)
	})

	t.Run("empty display name is rejected", func(t *testing.T) {
		_, err := s.authors.UpdateProfile(ctx, userID, domain.ProfileUpdate{DisplayName: strPtr(" ")})
		require.ErrorIs(t, err, service.ErrValidation)

		stored, err := s.authors.FindByUser(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, "Erin", stored.DisplayName)
	})

	t.Run("not an author", func(t *testing.T) {
		readerID, _ := s.register(t, "reader", false)
		_, err := s.authors.UpdateProfile(ctx, readerID, domain.ProfileUpdate{Bio: strPtr("hi")})
		require.ErrorIs(t, err, service.ErrNotFound)
	})
}
