package blogsdk

import (
	"time"

	"github.com/aussiebroadwan/blog/pkg/httpx"
	"github.com/aussiebroadwan/blog/pkg/jwtx"
)

// ============================================================================
// Account Types
// ============================================================================

// RegisterRequest is the body of POST /v1/register. IsAuthor is required;
// the server rejects a request that leaves it out.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"correct horse battery staple"`
	IsAuthor *bool  `json:"is_author" example:"true"`
}

// RegisterResponse is returned from POST /v1/register. AuthorID is only set
// when the account was registered as an author.
type RegisterResponse struct {
	Message  string `json:"message" example:"user registered"`
	UserID   int64  `json:"user_id" example:"1"`
	IsAuthor bool   `json:"is_author" example:"true"`
	AuthorID *int64 `json:"author_id,omitempty" example:"1"`
}

// LoginRequest is the body of POST /v1/login.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// TokenResponse is returned from login and refresh. Refresh only returns a
// new access token, so RefreshToken is empty there.
type TokenResponse struct {
	// AccessToken is the JWT used to authenticate API requests
	AccessToken string `json:"access_token"`

	// RefreshToken is the JWT accepted only by POST /v1/refresh
	RefreshToken string `json:"refresh_token,omitempty"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type" example:"Bearer"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in" example:"3600"`
}

// UsernameResponse is returned from GET /v1/users/me/name.
type UsernameResponse struct {
	Username string `json:"username" example:"alice"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message" example:"logged out"`
}

// ============================================================================
// Author Types
// ============================================================================

// UpdateProfileRequest is the body of PUT /v1/authors/me. Omitted (nil)
// fields are left unchanged. An empty bio or profile_pic clears the field.
type UpdateProfileRequest struct {
	AuthorName *string `json:"author_name,omitempty" example:"Alice"`
	Bio        *string `json:"bio,omitempty" example:"Writes about networks"`
	ProfilePic *string `json:"profile_pic,omitempty" example:"https://example.com/alice.png"`
}

// AuthorResponse is an author profile.
type AuthorResponse struct {
	AuthorID   int64   `json:"author_id" example:"1"`
	UserID     int64   `json:"user_id" example:"1"`
	AuthorName string  `json:"author_name" example:"Alice"`
	Bio        *string `json:"bio"`
	ProfilePic *string `json:"profile_pic"`
}

// ============================================================================
// Post Types
// ============================================================================

// PostRequest is the body of POST /v1/posts and PUT /v1/posts/{id}. Updates
// replace every field, so the picture key must be sent (null allowed).
type PostRequest struct {
	Title       string  `json:"title" example:"Hello"`
	Picture     *string `json:"picture" example:"https://example.com/cover.png"`
	Description string  `json:"description" example:"First post"`
}

// PostResponse is a single blog post.
type PostResponse struct {
	BlogID      int64     `json:"blog_id" example:"1"`
	Title       string    `json:"title" example:"Hello"`
	Picture     *string   `json:"picture"`
	Description string    `json:"description" example:"First post"`
	AuthorID    int64     `json:"author_id" example:"1"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostPageResponse is the pagination envelope of GET /v1/posts.
type PostPageResponse struct {
	Total   int            `json:"total" example:"12"`
	Page    int            `json:"page" example:"1"`
	PerPage int            `json:"per_page" example:"5"`
	Posts   []PostResponse `json:"posts"`
}

// ListPostsOptions filters GET /v1/posts. Zero values are omitted.
type ListPostsOptions struct {
	AuthorID int64
	Page     int
}

// ============================================================================
// System Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz (readyz adds Checks).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of each dependency in /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse = httpx.ErrorBody

// JWKSResponse is the JSON Web Key Set from GET /.well-known/jwks.json.
type JWKSResponse jwtx.JWKS
