// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/tilehub/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler ends sessions.
type Handler struct {
	Sessions *auth.SessionManager
	Log      *zap.Logger
}

// NewHandler constructs a logout Handler.
func NewHandler(sessions *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Sessions: sessions, Log: logger}
}

// HandleLogout clears the session. Safe to call signed out.
//
// POST /logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok {
		h.Log.Info("user signed out", zap.String("login_id", u.LoginID))
	}
	if err := h.Sessions.SignOut(w, r); err != nil {
		h.Log.Error("logout session save", zap.Error(err))
	}
	w.WriteHeader(http.StatusNoContent)
}
