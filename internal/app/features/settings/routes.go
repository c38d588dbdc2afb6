// internal/app/features/settings/routes.go
package settings

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter with the admin settings endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{plugin}", h.List)
	r.Put("/{plugin}/{name}", h.Put)
	r.Delete("/{plugin}/{name}", h.Delete)
	return r
}
