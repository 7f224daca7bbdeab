package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/libraria/libraria-go/internal/middleware"
)

// NewRouter builds the route table, which doubles as the access policy:
// the auth endpoints and all GETs on books and categories are public,
// every other route sits behind token verification and answers 401
// before any service code runs.
func NewRouter(auth *AuthHandler, books *BookHandler, categories *CategoryHandler, customers *CustomerHandler, jwtSecret string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	// Unmatched paths default to requiring auth, so probing the URL
	// space without a token reveals nothing beyond 401.
	r.NotFound(middleware.JWTAuth(jwtSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse("resource not found"))
	})).ServeHTTP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/v1/auth/login", auth.HandleLogin)
		r.Post("/api/v1/auth/register", auth.HandleRegister)
	})

	r.Get("/api/v1/books", books.HandleGetAll)
	r.Get("/api/v1/books/{id}", books.HandleGetByID)
	r.Get("/api/v1/categories", categories.HandleGetAll)
	r.Get("/api/v1/categories/{id}", categories.HandleGetByID)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))

		r.Post("/api/v1/books", books.HandleCreate)
		r.Put("/api/v1/books/{id}", books.HandleUpdate)
		r.Delete("/api/v1/books/{id}", books.HandleDelete)

		r.Post("/api/v1/categories", categories.HandleCreate)
		r.Put("/api/v1/categories/{id}", categories.HandleUpdate)
		r.Delete("/api/v1/categories/{id}", categories.HandleDelete)

		r.Post("/api/v1/customers", customers.HandleRegister)
		r.Get("/api/v1/customers/{id}", customers.HandleGetByID)
		r.Put("/api/v1/customers/{id}", customers.HandleUpdate)
		r.Delete("/api/v1/customers/{id}", customers.HandleDelete)
	})

	return r
}
