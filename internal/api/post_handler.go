// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// Default listing window when the client supplies none.
const (
	defaultPage  = 1
	defaultLimit = 10
)

// PostHandler handles post-related HTTP requests.
//
// Every handler follows the same order: identity check, input validation,
// ownership check, store interaction, response shaping. The first failing
// step responds and returns, so no store mutation is ever attempted for a
// request that would be rejected.
type PostHandler struct {
	posts  store.PostStore
	logger *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts store.PostStore, logger *slog.Logger) *PostHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PostHandler")
	}

	return &PostHandler{
		posts:  posts,
		logger: logger.With(slog.String("component", "post_handler")),
	}
}

// CreatePost handles POST /api/posts requests.
// Requires an authenticated identity; the created post's author is fixed to
// that identity and the slug is derived from the title.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	authorID, err := uuid.Parse(identity.UserID)
	if err != nil {
		// Tokens mint user IDs from the primary key, so this means a token
		// from a different issuer slipped through verification.
		log.Warn("identity carries unparseable user id", slog.String("user_id", identity.UserID))
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing required fields")
		return
	}

	categoryID, err := uuid.Parse(req.Category)
	if err != nil {
		// The category reference is opaque to clients; one the store cannot
		// represent is an internal fault, not a validation failure.
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"invalid category reference", err)
		return
	}

	post, err := domain.NewPost(authorID, categoryID, req.Title, req.Content)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := h.posts.Create(r.Context(), post); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
		return
	}

	log.Debug("post created",
		slog.String("post_id", post.ID.String()),
		slog.String("author_id", identity.UserID))
	shared.RespondWithJSON(w, r, http.StatusCreated, postToResponse(post))
}

// ListPosts handles GET /api/posts requests.
// Listing is public; supports an exact-match category filter and pagination
// with page/limit query parameters (defaults page=1, limit=10), newest-first.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := positiveIntOrDefault(query.Get("page"), defaultPage)
	limit := positiveIntOrDefault(query.Get("limit"), defaultLimit)

	filter := store.PostFilter{
		CategoryID: query.Get("category"),
		Offset:     (page - 1) * limit,
		Limit:      limit,
	}

	posts, err := h.posts.List(r.Context(), filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, ErrorMessage(err), err)
		return
	}

	total, err := h.posts.Count(r.Context(), filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, ErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListPostsResponse{
		Posts:       postsToResponse(posts),
		TotalPages:  (total + limit - 1) / limit,
		CurrentPage: page,
		Total:       total,
	})
}

// GetPost handles GET /api/posts/{id} requests.
// Public; a malformed identifier reads as not found, indistinguishable from
// an absent record.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// UpdatePost handles PUT /api/posts/{id} requests.
// Requires an authenticated identity matching the post's author. Applies a
// partial update: only title and/or content, and only when provided.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	id := chi.URLParam(r, "id")
	post, err := h.posts.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
		return
	}

	if post.AuthorID.String() != identity.UserID {
		log.Debug("update rejected: requester is not the author",
			slog.String("post_id", id),
			slog.String("requester_id", identity.UserID))
		shared.RespondWithError(w, r, http.StatusForbidden, "Not authorized to update this post")
		return
	}

	var req UpdatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// An explicit empty string reads as "not provided"; an update can never
	// erase the title or content.
	if req.Title != nil && *req.Title == "" {
		req.Title = nil
	}
	if req.Content != nil && *req.Content == "" {
		req.Content = nil
	}

	// The ownership check above is advisory: if the author deletes the post
	// concurrently, Update reports not found and we return 404 rather than
	// resurrecting a stale record.
	updated, err := h.posts.Update(r.Context(), id, store.PostUpdate{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(updated))
}

// DeletePost handles DELETE /api/posts/{id} requests.
// Requires an authenticated identity matching the post's author.
// The delete is permanent.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	id := chi.URLParam(r, "id")
	post, err := h.posts.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
		return
	}

	if post.AuthorID.String() != identity.UserID {
		log.Debug("delete rejected: requester is not the author",
			slog.String("post_id", id),
			slog.String("requester_id", identity.UserID))
		shared.RespondWithError(w, r, http.StatusForbidden, "Not authorized to delete this post")
		return
	}

	if err := h.posts.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
		return
	}

	log.Debug("post deleted", slog.String("post_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Post deleted successfully"})
}

// positiveIntOrDefault parses a query parameter as a positive integer,
// falling back to def when absent, unparseable, or non-positive.
func positiveIntOrDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
