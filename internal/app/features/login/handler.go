// internal/app/features/login/handler.go
package login

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/tilehub/internal/app/features/errors"
	userstore "github.com/dalemusser/tilehub/internal/app/store/users"
	"github.com/dalemusser/tilehub/internal/app/system/auth"
	"github.com/dalemusser/tilehub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Handler signs users in against the local credential store.
type Handler struct {
	Users    *userstore.Store
	Sessions *auth.SessionManager
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a login Handler.
func NewHandler(users *userstore.Store, sessions *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Sessions: sessions, ErrLog: errLog, Log: logger}
}

type loginResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// HandleLogin verifies credentials and starts a session.
//
// POST /login  (form fields "login_id" and "password")
//
// Bad login id and bad password both answer 401 with the same body; the
// client can't probe which accounts exist.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "bad form")
		return
	}
	loginID := strings.TrimSpace(r.PostFormValue("login_id"))
	password := r.PostFormValue("password")
	if loginID == "" || password == "" {
		uierrors.RenderBadRequest(w, r, "login_id and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByLoginID(ctx, loginID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		uierrors.RenderUnauthorized(w, r)
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "login lookup", err)
		return
	}

	if u.Status == "disabled" {
		h.Log.Info("login refused for disabled account", zap.String("login_id", u.LoginID))
		uierrors.RenderForbidden(w, r, "This account is disabled.")
		return
	}
	if u.PassHash == "" {
		// Accounts provisioned for external auth have no local password.
		uierrors.RenderUnauthorized(w, r)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte(password)) != nil {
		uierrors.RenderUnauthorized(w, r)
		return
	}

	su := &auth.SessionUser{
		ID:      u.ID.Hex(),
		Name:    u.FullName,
		LoginID: u.LoginID,
		Role:    u.Role,
	}
	if err := h.Sessions.SignIn(w, r, su); err != nil {
		h.ErrLog.Internal(w, r, "login session save", err)
		return
	}

	h.Log.Info("user signed in",
		zap.String("login_id", u.LoginID),
		zap.String("role", u.Role))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(loginResponse{ID: su.ID, Name: su.Name, Role: su.Role})
}
