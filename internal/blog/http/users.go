package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/blog/internal/blog/service"
	"github.com/aussiebroadwan/blog/pkg/blogsdk"
	"github.com/aussiebroadwan/blog/pkg/httpx"
	"github.com/aussiebroadwan/blog/pkg/slogx"
)

type UsernameHandler struct {
	UserService *service.UserService
}

// ServeHTTP returns the username of the caller.
//
//	@Summary		Get the caller's username
//	@Description	Returns the username of the user the access token was issued to.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	blogsdk.UsernameResponse	"username"
//	@Failure		401	{object}	blogsdk.ErrorResponse		"Invalid or missing access token"
//	@Failure		404	{object}	blogsdk.ErrorResponse		"User not found"
//	@Failure		500	{object}	blogsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/users/me/name [get].
func (h *UsernameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := callerID(r)
	if !ok {
		blogsdk.ErrInvalidToken.WriteError(w)
		return
	}

	name, err := h.UserService.GetUsername(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			blogsdk.ErrNotFound.WithDescription("user not found").WriteError(w)
		default:
			log.Error("failed to load user", "user_id", userID, "err", err)
			blogsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, blogsdk.UsernameResponse{Username: name})
}
