/*
Package blogsdk provides a client SDK for the blog service.

# SDKClient vs Session

  - SDKClient: public endpoints (register, login, reading posts, health)
  - Session: authenticated endpoints, with automatic access token refresh

	client := blogsdk.NewSDKClient("http://localhost:8080")

	_, err := client.Register(ctx, "alice", "pw1", true)

	session, err := client.AuthenticateWithPassword(ctx, "alice", "pw1")

	post, err := session.CreatePost(ctx, blogsdk.PostRequest{
		Title:       "Hello",
		Description: "First post",
	})

	page, err := client.ListPosts(ctx, blogsdk.ListPostsOptions{Page: 1})

# Automatic Token Refresh

Access tokens are refreshed 30 seconds before they expire using the refresh
token from login. Refresh tokens are not rotated; once the refresh token itself
expires the caller has to log in again.

# Errors

Non-2xx responses are returned as *APIError. Compare against the predefined
errors with errors.Is:

	if errors.Is(err, blogsdk.ErrForbidden) {
		// not an author, or not the owner of the post
	}

The server writes the same predefined errors with APIError.WriteError, so both
sides share one error vocabulary.
*/
package blogsdk
