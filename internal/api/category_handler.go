package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// CategoryHandler handles category-related HTTP requests.
//
// Categories exist so posts have something to reference: creation requires an
// authenticated identity, listing is public.
type CategoryHandler struct {
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories store.CategoryStore, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CategoryHandler")
	}

	return &CategoryHandler{
		categories: categories,
		logger:     logger.With(slog.String("component", "category_handler")),
	}
}

// CreateCategory handles POST /api/categories requests.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if _, ok := shared.IdentityFromContext(r.Context()); !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing required fields")
		return
	}

	category, err := domain.NewCategory(req.Name)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := h.categories.Create(r.Context(), category); err != nil {
		if store.IsDuplicateError(err) {
			shared.RespondWithError(w, r, http.StatusConflict, "Category already exists")
			return
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
		return
	}

	log.Debug("category created", slog.String("category_id", category.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, categoryToResponse(category))
}

// ListCategories handles GET /api/categories requests. Public.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, ErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categoriesToResponse(categories))
}
