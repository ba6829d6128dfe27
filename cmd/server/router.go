package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/blog-api/internal/api"
	apimiddleware "github.com/phrazzld/blog-api/internal/api/middleware"
	"github.com/phrazzld/blog-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Identity resolution runs on every request and never
// rejects; the 401-vs-public decision belongs to each handler.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.Trace)

	identity := apimiddleware.NewIdentityMiddleware(app.tokenService)
	r.Use(identity.Resolve)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.tokenService,
		app.passwordHasher,
		app.passwordVerifier,
		app.logger,
	)
	postHandler := api.NewPostHandler(app.postStore, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryStore, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Post resource endpoints; auth requirements are enforced per
		// handler, not per route group.
		r.Route("/posts", func(r chi.Router) {
			r.Post("/", postHandler.CreatePost)
			r.Get("/", postHandler.ListPosts)
			r.Get("/{id}", postHandler.GetPost)
			r.Put("/{id}", postHandler.UpdatePost)
			r.Delete("/{id}", postHandler.DeletePost)
		})

		// Categories are the labels posts are filed under; anyone may list
		// them, creating one requires authentication.
		r.Route("/categories", func(r chi.Router) {
			r.Post("/", categoryHandler.CreateCategory)
			r.Get("/", categoryHandler.ListCategories)
		})

		// Liveness probe
		r.Get("/test", func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithJSON(w, r, http.StatusOK, api.MessageResponse{
				Message: "API is working!",
			})
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
