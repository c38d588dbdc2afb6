// internal/app/features/tiles/routes.go
package tiles

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter with the tile display endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/modal-allowed", h.ServeModalAllowed)
	r.Post("/jsnav", h.HandleJSNavToggle)

	r.Route("/{courseID}", func(r chi.Router) {
		r.Get("/css", h.ServeCourseCSS)
		r.Post("/width", h.HandleWidthReport)
		r.Get("/modules/{cmID}", h.ServeModuleInfo)
		r.Get("/modules/{cmID}/content", h.ServeModuleContent)
		r.Post("/modules/{cmID}/files", h.HandleFileUpload)
	})

	return r
}
