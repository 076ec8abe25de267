package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/service"
	"github.com/aussiebroadwan/blog/pkg/blogsdk"
	"github.com/aussiebroadwan/blog/pkg/httpx"
	"github.com/aussiebroadwan/blog/pkg/jwtx"
	"github.com/aussiebroadwan/blog/pkg/slogx"
)

// RegisterHandler serves POST /v1/register.
type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register a user
//	@Description	Creates a user account. With is_author set an author profile named after the user is created as well.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		blogsdk.RegisterRequest		true	"Username, password and author flag"
//	@Success		201		{object}	blogsdk.RegisterResponse	"message, user_id, is_author, author_id"
//	@Failure		400		{object}	blogsdk.ErrorResponse		"Missing username, password or is_author"
//	@Failure		409		{object}	blogsdk.ErrorResponse		"Username already exists"
//	@Failure		429		{object}	blogsdk.ErrorResponse		"Rate limit exceeded"
//	@Failure		500		{object}	blogsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req blogsdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		blogsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.IsAuthor == nil {
		blogsdk.ErrInvalidRequest.WithDescription("is_author is required").WriteError(w)
		return
	}

	acc, err := h.UserService.Register(ctx, service.RegisterParams{
		Username: req.Username,
		Password: req.Password,
		IsAuthor: *req.IsAuthor,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			blogsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		case errors.Is(err, service.ErrDuplicateUsername):
			blogsdk.ErrUsernameTaken.WriteError(w)
		default:
			log.Error("register failed", "err", err)
			blogsdk.ErrServerError.WriteError(w)
		}
		return
	}

	response := blogsdk.RegisterResponse{
		Message:  "user registered",
		UserID:   acc.User.ID,
		IsAuthor: acc.Author != nil,
	}
	if acc.Author != nil {
		response.AuthorID = &acc.Author.ID
	}

	httpx.WriteJSON(w, http.StatusCreated, response)
}

// LoginHandler serves POST /v1/login.
type LoginHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Verifies a username and password and issues an access token and a refresh token.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		blogsdk.LoginRequest	true	"Username and password"
//	@Success		200		{object}	blogsdk.TokenResponse	"access_token, refresh_token, token_type, expires_in"
//	@Failure		400		{object}	blogsdk.ErrorResponse	"Missing username or password"
//	@Failure		401		{object}	blogsdk.ErrorResponse	"Invalid credentials"
//	@Failure		429		{object}	blogsdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	blogsdk.ErrorResponse	"Internal server error"
//	@Header			200		{string}	Cache-Control			"no-store"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req blogsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Username == "" || req.Password == "" {
		blogsdk.ErrInvalidRequest.WithDescription("username and password are required").WriteError(w)
		return
	}

	pair, err := h.TokenService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthFailure):
			blogsdk.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("login failed", "err", err)
			blogsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tokenResponse(pair))
}

func tokenResponse(pair domain.TokenPair) blogsdk.TokenResponse {
	return blogsdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    int(pair.ExpiresIn.Seconds()),
	}
}

// RefreshHandler serves POST /v1/refresh behind AuthnMiddleware with the
// refresh kind, so the bearer token has already been checked.
type RefreshHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Refresh the access token
//	@Description	Exchanges a refresh token, sent as the bearer token, for a new access token. The refresh token stays valid until it expires.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	blogsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		401	{object}	blogsdk.ErrorResponse	"Missing, invalid, expired or wrong type of token"
//	@Failure		429	{object}	blogsdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500	{object}	blogsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	raw, _ := httpx.BearerToken(r)
	access, err := h.TokenService.Refresh(raw)
	if err != nil {
		var tf *service.TokenFailure
		switch {
		// The token can expire between the middleware and here.
		case errors.Is(err, jwtx.ErrExpired):
			blogsdk.ErrInvalidToken.WithDescription("token expired").WriteError(w)
		case errors.As(err, &tf):
			blogsdk.ErrInvalidToken.WriteError(w)
		default:
			log.Error("refresh failed", "err", err)
			blogsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, blogsdk.TokenResponse{
		AccessToken: access.Value,
		TokenType:   "Bearer",
		ExpiresIn:   int(access.ExpiresIn.Seconds()),
	})
}

// LogoutHandler serves POST /v1/logout. Tokens are stateless, so logging out
// only acknowledges the request; clients drop their tokens.
type LogoutHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Log out
//	@Description	Acknowledges a logout. Tokens are not revoked server side and stay valid until they expire.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	blogsdk.MessageResponse	"message"
//	@Failure		401	{object}	blogsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slogx.FromContext(r.Context()).Info("user logged out")
	httpx.WriteJSON(w, http.StatusOK, blogsdk.MessageResponse{Message: "logged out"})
}
