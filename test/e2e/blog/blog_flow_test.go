package blog_test

import (
	"fmt"
	"testing"

	"github.com/aussiebroadwan/blog/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

func TestBlogFlowSQLite(t *testing.T) {
	runBlogFlow(t, setupBlogSQLite(t))
}

func TestBlogFlowPostgres(t *testing.T) {
	runBlogFlow(t, setupBlogPostgres(t))
}

// runBlogFlow walks through registration, profiles, post ownership and
// pagination against a running service.
func runBlogFlow(t *testing.T, client *blogsdk.SDKClient) {
	ctx := t.Context()

	author, authorReg := registerAndLogin(t, client, "writer", true)
	rival, _ := registerAndLogin(t, client, "rival", true)
	reader, readerReg := registerAndLogin(t, client, "reader", false)

	require.True(t, authorReg.IsAuthor)
	require.NotNil(t, authorReg.AuthorID)
	require.False(t, readerReg.IsAuthor)
	authorID := *authorReg.AuthorID

	t.Run("duplicate username", func(t *testing.T) {
		_, err := client.Register(ctx, "writer", "other", false)
		require.ErrorIs(t, err, blogsdk.ErrUsernameTaken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := client.Login(ctx, "writer", "wrong")
		require.ErrorIs(t, err, blogsdk.ErrInvalidCredentials)
	})

	t.Run("username", func(t *testing.T) {
		name, err := reader.Username(ctx)
		require.NoError(t, err)
		require.Equal(t, "reader", name)
	})

	t.Run("profile", func(t *testing.T) {
		profile, err := author.UpdateProfile(ctx, blogsdk.UpdateProfileRequest{
			AuthorName: ptr("The Writer"),
			Bio:        ptr("Writes things"),
		})
		require.NoError(t, err)
		require.Equal(t, authorID, profile.AuthorID)
		require.Equal(t, "The Writer", profile.AuthorName)
		require.Equal(t, "Writes things", *profile.Bio)

		_, err = reader.UpdateProfile(ctx, blogsdk.UpdateProfileRequest{Bio: ptr("x")})
		require.ErrorIs(t, err, blogsdk.ErrNotFound)
	})

	t.Run("only authors post", func(t *testing.T) {
		_, err := reader.CreatePost(ctx, blogsdk.PostRequest{Title: "t", Description: "d"})
		require.ErrorIs(t, err, blogsdk.ErrForbidden)

		_, err = client.ListPosts(ctx, blogsdk.ListPostsOptions{})
		require.ErrorIs(t, err, blogsdk.ErrNoPostsFound)
	})

	var ids []int64
	t.Run("create", func(t *testing.T) {
		for i := range 12 {
			post, err := author.CreatePost(ctx, blogsdk.PostRequest{
				Title:       fmt.Sprintf("post %d", i+1),
				Description: "body",
			})
			require.NoError(t, err)
			require.Equal(t, authorID, post.AuthorID)
			ids = append(ids, post.BlogID)
		}
		_, err := rival.CreatePost(ctx, blogsdk.PostRequest{Title: "rival post", Description: "body"})
		require.NoError(t, err)
	})

	t.Run("pagination", func(t *testing.T) {
		for page, want := range map[int]int{1: 5, 2: 5, 3: 2} {
			got, err := client.ListPosts(ctx, blogsdk.ListPostsOptions{AuthorID: authorID, Page: page})
			require.NoError(t, err)
			require.Equal(t, 12, got.Total)
			require.Equal(t, page, got.Page)
			require.Equal(t, 5, got.PerPage)
			require.Len(t, got.Posts, want)
		}

		_, err := client.ListPosts(ctx, blogsdk.ListPostsOptions{AuthorID: authorID, Page: 4})
		require.ErrorIs(t, err, blogsdk.ErrNoPostsFound)

		all, err := client.ListPosts(ctx, blogsdk.ListPostsOptions{})
		require.NoError(t, err)
		require.Equal(t, 13, all.Total)
	})

	t.Run("ownership", func(t *testing.T) {
		target := ids[0]
		update := blogsdk.PostRequest{Title: "edited", Picture: ptr("cover.png"), Description: "new body"}

		_, err := rival.UpdatePost(ctx, target, update)
		require.ErrorIs(t, err, blogsdk.ErrForbidden)
		require.ErrorIs(t, rival.DeletePost(ctx, target), blogsdk.ErrForbidden)
		require.ErrorIs(t, reader.DeletePost(ctx, target), blogsdk.ErrForbidden)

		updated, err := author.UpdatePost(ctx, target, update)
		require.NoError(t, err)
		require.Equal(t, "edited", updated.Title)
		require.Equal(t, "cover.png", *updated.Picture)

		got, err := client.GetPost(ctx, target)
		require.NoError(t, err)
		require.Equal(t, "new body", got.Description)

		require.NoError(t, author.DeletePost(ctx, target))
		_, err = client.GetPost(ctx, target)
		require.ErrorIs(t, err, blogsdk.ErrNotFound)
	})

	t.Run("logout", func(t *testing.T) {
		require.NoError(t, reader.Logout(ctx))
		require.Empty(t, reader.AccessToken())
	})
}

func ptr(s string) *string { return &s }
