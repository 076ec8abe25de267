package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/store"
	"github.com/aussiebroadwan/blog/internal/blog/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "blog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations(context.Background()))
	return st
}

func strPtr(s string) *string { return &s }

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations(context.Background()))
	require.NoError(t, st.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	id, err := st.Users().CreateUser(ctx, "alice", "hash-1")
	require.NoError(t, err)
	require.Positive(t, id)

	t.Run("lookup by id and username", func(t *testing.T) {
		byID, err := st.Users().GetUserByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "alice", byID.Username)
		require.Equal(t, "hash-1", byID.PasswordHash)
		require.WithinDuration(t, time.Now(), byID.CreatedAt, time.Minute)

		byName, err := st.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, id, byName.ID)
	})

	t.Run("usernames are case sensitive", func(t *testing.T) {
		_, err := st.Users().GetUserByUsername(ctx, "Alice")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := st.Users().CreateUser(ctx, "alice", "hash-2")
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		n, err := st.Users().CountUsers(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})

	t.Run("update password hash", func(t *testing.T) {
		require.NoError(t, st.Users().UpdatePasswordHash(ctx, id, "hash-3"))
		u, err := st.Users().GetUserByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "hash-3", u.PasswordHash)

		require.ErrorIs(t, st.Users().UpdatePasswordHash(ctx, id+100, "x"), store.ErrNotFound)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := st.Users().GetUserByID(ctx, id+100)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestAuthors(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	userID, err := st.Users().CreateUser(ctx, "bob", "hash")
	require.NoError(t, err)

	_, err = st.Authors().GetAuthorByUserID(ctx, userID)
	require.ErrorIs(t, err, store.ErrNotFound)

	authorID, err := st.Authors().CreateAuthor(ctx, userID, "bob")
	require.NoError(t, err)

	a, err := st.Authors().GetAuthorByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, authorID, a.ID)
	require.Equal(t, "bob", a.DisplayName)
	require.Nil(t, a.Bio)
	require.Nil(t, a.ProfilePic)

	a.DisplayName = "Bobby"
	a.Bio = strPtr("writes things")
	require.NoError(t, st.Authors().UpdateAuthor(ctx, a))

	a, err = st.Authors().GetAuthorByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "Bobby", a.DisplayName)
	require.Equal(t, "writes things", *a.Bio)
	require.Nil(t, a.ProfilePic)

	t.Run("foreign key to users is enforced", func(t *testing.T) {
		_, err := st.Authors().CreateAuthor(ctx, userID+100, "ghost")
		require.Error(t, err)
	})

	t.Run("second author row is not deduplicated", func(t *testing.T) {
		second, err := st.Authors().CreateAuthor(ctx, userID, "bob again")
		require.NoError(t, err)
		require.NotEqual(t, authorID, second)

		// Lookups stay on the first profile
		a, err := st.Authors().GetAuthorByUserID(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, authorID, a.ID)
	})
}

func TestPosts(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	userID, err := st.Users().CreateUser(ctx, "carol", "hash")
	require.NoError(t, err)
	authorID, err := st.Authors().CreateAuthor(ctx, userID, "carol")
	require.NoError(t, err)

	p, err := st.Posts().CreatePost(ctx, authorID, domain.PostInput{
		Title:       "T",
		Picture:     strPtr("cover.png"),
		Description: "D",
	})
	require.NoError(t, err)
	require.Equal(t, "T", p.Title)
	require.Equal(t, "cover.png", *p.Picture)
	require.Equal(t, authorID, p.AuthorID)
	require.False(t, p.CreatedAt.IsZero())

	t.Run("update replaces every field", func(t *testing.T) {
		updated, err := st.Posts().UpdatePost(ctx, p.ID, domain.PostInput{Title: "T2", Description: "D2"})
		require.NoError(t, err)
		require.Equal(t, "T2", updated.Title)
		require.Nil(t, updated.Picture)
		require.Equal(t, p.CreatedAt.Unix(), updated.CreatedAt.Unix())
	})

	t.Run("foreign key to authors is enforced", func(t *testing.T) {
		_, err := st.Posts().CreatePost(ctx, authorID+100, domain.PostInput{Title: "x", Description: "y"})
		require.Error(t, err)
	})

	t.Run("missing rows", func(t *testing.T) {
		_, err := st.Posts().GetPost(ctx, p.ID+100)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = st.Posts().UpdatePost(ctx, p.ID+100, domain.PostInput{Title: "x", Description: "y"})
		require.ErrorIs(t, err, store.ErrNotFound)

		require.ErrorIs(t, st.Posts().DeletePost(ctx, p.ID+100), store.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, st.Posts().DeletePost(ctx, p.ID))
		_, err := st.Posts().GetPost(ctx, p.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, st.Posts().DeletePost(ctx, p.ID), store.ErrNotFound)
	})
}

func TestListPosts(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	var authors []int64
	for _, name := range []string{"dave", "erin"} {
		userID, err := st.Users().CreateUser(ctx, name, "hash")
		require.NoError(t, err)
		authorID, err := st.Authors().CreateAuthor(ctx, userID, name)
		require.NoError(t, err)
		authors = append(authors, authorID)
	}

	for i := range 7 {
		_, err := st.Posts().CreatePost(ctx, authors[i%2], domain.PostInput{Title: "t", Description: "d"})
		require.NoError(t, err)
	}

	total, err := st.Posts().CountPosts(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, 7, total)

	perAuthor, err := st.Posts().CountPosts(ctx, &authors[0])
	require.NoError(t, err)
	require.Equal(t, 4, perAuthor)

	page, err := st.Posts().ListPosts(ctx, nil, 5, 5)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Less(t, page[0].ID, page[1].ID)

	filtered, err := st.Posts().ListPosts(ctx, &authors[1], 5, 0)
	require.NoError(t, err)
	require.Len(t, filtered, 3)
	for _, p := range filtered {
		require.Equal(t, authors[1], p.AuthorID)
	}

	empty, err := st.Posts().ListPosts(ctx, nil, 5, 10)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := st.WithTx(ctx, func(tx store.Tx) error {
			if _, err := tx.Users().CreateUser(ctx, "frank", "hash"); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = st.Users().GetUserByUsername(ctx, "frank")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("commit on success", func(t *testing.T) {
		err := st.WithTx(ctx, func(tx store.Tx) error {
			id, err := tx.Users().CreateUser(ctx, "grace", "hash")
			if err != nil {
				return err
			}
			_, err = tx.Authors().CreateAuthor(ctx, id, "grace")
			return err
		})
		require.NoError(t, err)

		u, err := st.Users().GetUserByUsername(ctx, "grace")
		require.NoError(t, err)
		_, err = st.Authors().GetAuthorByUserID(ctx, u.ID)
		require.NoError(t, err)
	})

	t.Run("nested transactions are refused", func(t *testing.T) {
		err := st.WithTx(ctx, func(tx store.Tx) error {
			return tx.WithTx(ctx, func(store.Tx) error { return nil })
		})
		require.Error(t, err)
	})
}

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations(ctx))

	_, err = st.Users().CreateUser(ctx, "heidi", "hash")
	require.NoError(t, err)

	n, err := st.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
