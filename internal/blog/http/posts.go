package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/internal/blog/service"
	"github.com/aussiebroadwan/blog/pkg/blogsdk"
	"github.com/aussiebroadwan/blog/pkg/httpx"
	"github.com/aussiebroadwan/blog/pkg/slogx"
)

type PostsHandler struct {
	PostService *service.PostService
}

// updatePostBody is PostRequest with the presence of "picture" recorded,
// since an update replaces every field.
type updatePostBody struct {
	Title       string         `json:"title"`
	Picture     optionalString `json:"picture"`
	Description string         `json:"description"`
}

type optionalString struct {
	Set   bool
	Value *string
}

func (o *optionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// HandleList godoc
//
//	@Summary		List posts
//	@Description	Lists posts ordered by id, 5 per page, optionally filtered by author. With id set the single post is returned instead.
//	@Tags			Posts
//	@Produce		json
//	@Param			author	query		int							false	"Author id filter"
//	@Param			page	query		int							false	"Page number, 1 based"	default(1)
//	@Param			id		query		int							false	"Return this post only"
//	@Success		200		{object}	blogsdk.PostPageResponse	"total, page, per_page, posts"
//	@Failure		400		{object}	blogsdk.ErrorResponse		"Malformed query parameter"
//	@Failure		404		{object}	blogsdk.ErrorResponse		"No posts found"
//	@Failure		500		{object}	blogsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/posts [get].
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	q := r.URL.Query()

	if q.Has("id") {
		id, err := strconv.ParseInt(q.Get("id"), 10, 64)
		if err != nil {
			blogsdk.ErrInvalidRequest.WithDescription("id must be an integer").WriteError(w)
			return
		}
		h.writePost(w, r, id)
		return
	}

	params := service.ListParams{Page: 1}
	if v := q.Get("author"); v != "" {
		authorID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			blogsdk.ErrInvalidRequest.WithDescription("author must be an integer").WriteError(w)
			return
		}
		if authorID != 0 {
			params.AuthorID = &authorID
		}
	}
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			blogsdk.ErrInvalidRequest.WithDescription("page must be an integer").WriteError(w)
			return
		}
		params.Page = page
	}

	page, err := h.PostService.ListPosts(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoPostsFound):
			blogsdk.ErrNoPostsFound.WriteError(w)
		default:
			log.Error("list posts failed", "err", err)
			blogsdk.ErrServerError.WriteError(w)
		}
		return
	}

	response := blogsdk.PostPageResponse{
		Total:   page.Total,
		Page:    page.Page,
		PerPage: page.PageSize,
		Posts:   make([]blogsdk.PostResponse, 0, len(page.Items)),
	}
	for _, p := range page.Items {
		response.Posts = append(response.Posts, postResponse(p))
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleGet godoc
//
//	@Summary		Get a post
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		int						true	"Post id"
//	@Success		200	{object}	blogsdk.PostResponse	"The post"
//	@Failure		400	{object}	blogsdk.ErrorResponse	"Malformed id"
//	@Failure		404	{object}	blogsdk.ErrorResponse	"Post not found"
//	@Failure		500	{object}	blogsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/posts/{id} [get].
func (h *PostsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathPostID(w, r)
	if !ok {
		return
	}
	h.writePost(w, r, id)
}

func (h *PostsHandler) writePost(w http.ResponseWriter, r *http.Request, id int64) {
	ctx := r.Context()

	post, err := h.PostService.GetPost(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			blogsdk.ErrNotFound.WithDescription("post not found").WriteError(w)
		default:
			slogx.FromContext(ctx).Error("get post failed", "post_id", id, "err", err)
			blogsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, postResponse(post))
}

// HandleCreate godoc
//
//	@Summary		Create a post
//	@Description	Creates a post owned by the caller's author profile.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		blogsdk.PostRequest		true	"Title, optional picture and description"
//	@Success		201		{object}	blogsdk.PostResponse	"Created post"
//	@Failure		400		{object}	blogsdk.ErrorResponse	"Missing title or description"
//	@Failure		401		{object}	blogsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403		{object}	blogsdk.ErrorResponse	"Caller is not an author"
//	@Failure		500		{object}	blogsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/posts [post].
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := callerID(r)
	if !ok {
		blogsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req blogsdk.PostRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		blogsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	post, err := h.PostService.CreatePost(ctx, userID, domain.PostInput{
		Title:       req.Title,
		Picture:     req.Picture,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			blogsdk.ErrForbidden.WithDescription("caller is not an author").WriteError(w)
		case errors.Is(err, service.ErrValidation):
			blogsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		default:
			log.Error("create post failed", "err", err)
			blogsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, postResponse(post))
}

// HandleUpdate godoc
//
//	@Summary		Update a post
//	@Description	Replaces title, picture and description of a post owned by the caller. The picture key must be present (null clears it).
//	@Tags			Posts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Post id"
//	@Param			body	body		blogsdk.PostRequest		true	"Title, picture and description"
//	@Success		200		{object}	blogsdk.PostResponse	"Updated post"
//	@Failure		400		{object}	blogsdk.ErrorResponse	"Missing fields"
//	@Failure		401		{object}	blogsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403		{object}	blogsdk.ErrorResponse	"Caller does not own the post"
//	@Failure		404		{object}	blogsdk.ErrorResponse	"Post not found"
//	@Failure		500		{object}	blogsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/posts/{id} [put].
func (h *PostsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := callerID(r)
	if !ok {
		blogsdk.ErrInvalidToken.WriteError(w)
		return
	}
	postID, ok := pathPostID(w, r)
	if !ok {
		return
	}

	var req updatePostBody
	decodeErr := httpx.DecodeJSON(r, &req)

	var (
		post domain.Post
		err  error
	)
	if decodeErr != nil || !req.Picture.Set {
		// Report a missing or foreign post before the bad body.
		err = h.PostService.CheckOwner(ctx, userID, postID)
		if err == nil {
			blogsdk.ErrInvalidRequest.WithDescription("title, picture and description are required").WriteError(w)
			return
		}
	} else {
		post, err = h.PostService.UpdatePost(ctx, userID, postID, domain.PostInput{
			Title:       req.Title,
			Picture:     req.Picture.Value,
			Description: req.Description,
		})
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			blogsdk.ErrNotFound.WithDescription("post not found").WriteError(w)
		case errors.Is(err, service.ErrForbidden):
			blogsdk.ErrForbidden.WithDescription("caller does not own this post").WriteError(w)
		case errors.Is(err, service.ErrValidation):
			blogsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		default:
			log.Error("update post failed", "post_id", postID, "err", err)
			blogsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, postResponse(post))
}

// HandleDelete godoc
//
//	@Summary		Delete a post
//	@Tags			Posts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Post id"
//	@Success		200	{object}	blogsdk.MessageResponse	"message"
//	@Failure		401	{object}	blogsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403	{object}	blogsdk.ErrorResponse	"Caller does not own the post"
//	@Failure		404	{object}	blogsdk.ErrorResponse	"Post not found"
//	@Failure		500	{object}	blogsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/posts/{id} [delete].
func (h *PostsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := callerID(r)
	if !ok {
		blogsdk.ErrInvalidToken.WriteError(w)
		return
	}
	postID, ok := pathPostID(w, r)
	if !ok {
		return
	}

	if err := h.PostService.DeletePost(ctx, userID, postID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			blogsdk.ErrNotFound.WithDescription("post not found").WriteError(w)
		case errors.Is(err, service.ErrForbidden):
			blogsdk.ErrForbidden.WithDescription("caller does not own this post").WriteError(w)
		default:
			log.Error("delete post failed", "post_id", postID, "err", err)
			blogsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, blogsdk.MessageResponse{Message: "post deleted"})
}

// pathPostID parses {id}, writing a 400 when it is not an integer.
func pathPostID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		blogsdk.ErrInvalidRequest.WithDescription("post id must be an integer").WriteError(w)
		return 0, false
	}
	return id, true
}

func postResponse(p domain.Post) blogsdk.PostResponse {
	return blogsdk.PostResponse{
		BlogID:      p.ID,
		Title:       p.Title,
		Picture:     p.Picture,
		Description: p.Description,
		AuthorID:    p.AuthorID,
		CreatedAt:   p.CreatedAt,
	}
}
