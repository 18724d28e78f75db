package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register-user", h.registerUser)
		r.Post("/api/user/login", h.loginByKey)
		r.Post("/api/validate-key", h.validateKey)
		r.Post("/api/validate-key/details", h.validateKeyDetails)
		r.Post("/api/admin/register", h.adminRegister)
		r.Post("/api/admin/login", h.adminLogin)
	})

	// dashboard routes behind the admin session token
	router.Group(func(r chi.Router) {
		r.Use(h.adminAuth)
		r.Get("/api/users", h.listUsers)
		r.Delete("/api/users/{id}", h.deleteUser)
		r.Patch("/api/keys/{key}/active", h.setKeyActive)
	})

	return router
}
