package ideas

import "github.com/go-chi/chi/v5"

// Routes returns the page router, mounted under /ideas.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)
	return r
}

// APIRoutes returns the JSON router, mounted under /api.
func APIRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/ideas", h.ServeAPIList)
	r.Get("/ideas/{id}", h.ServeAPIDetail)
	r.Get("/ideas/{id}/related", h.ServeAPIRelated)
	r.Get("/options", h.ServeAPIOptions)
	return r
}
