package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/service"
	"github.com/aussiebroadwan/blog/pkg/blogsdk"
	"github.com/aussiebroadwan/blog/pkg/httpx"
	"github.com/aussiebroadwan/blog/pkg/slogx"
)

// ProfileHandler serves PUT /v1/authors/me.
type ProfileHandler struct {
	AuthorService *service.AuthorService
}

// ServeHTTP godoc
//
//	@Summary		Update the caller's author profile
//	@Description	Updates author_name, bio and profile_pic. Omitted fields are left unchanged; an empty bio or profile_pic clears it.
//	@Tags			Authors
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		blogsdk.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	blogsdk.AuthorResponse			"Updated profile"
//	@Failure		400		{object}	blogsdk.ErrorResponse			"Malformed body or empty author_name"
//	@Failure		401		{object}	blogsdk.ErrorResponse			"Invalid or missing access token"
//	@Failure		404		{object}	blogsdk.ErrorResponse			"Caller is not an author"
//	@Failure		500		{object}	blogsdk.ErrorResponse			"Internal server error"
//	@Router			/v1/authors/me [put].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := callerID(r)
	if !ok {
		blogsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req blogsdk.UpdateProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		blogsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	author, err := h.AuthorService.UpdateProfile(ctx, userID, domain.ProfileUpdate{
		DisplayName: req.AuthorName,
		Bio:         req.Bio,
		ProfilePic:  req.ProfilePic,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			blogsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		case errors.Is(err, service.ErrNotFound):
			blogsdk.ErrNotFound.WithDescription("author not found").WriteError(w)
		default:
			log.Error("profile update failed", "err", err)
			blogsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authorResponse(author))
}

func authorResponse(a domain.Author) blogsdk.AuthorResponse {
	return blogsdk.AuthorResponse{
		AuthorID:   a.ID,
		UserID:     a.UserID,
		AuthorName: a.DisplayName,
		Bio:        a.Bio,
		ProfilePic: a.ProfilePic,
	}
}
