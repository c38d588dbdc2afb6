// internal/app/features/settings/handler.go
package settings

import (
	"context"
	"encoding/json"
	"net/http"

	uierrors "github.com/dalemusser/tilehub/internal/app/features/errors"
	settingsstore "github.com/dalemusser/tilehub/internal/app/store/settings"
	"github.com/dalemusser/tilehub/internal/app/system/gates"
	"github.com/dalemusser/tilehub/internal/app/system/inputval"
	"github.com/dalemusser/tilehub/internal/app/system/timeouts"
	"github.com/dalemusser/tilehub/internal/app/tiles"
	"github.com/dalemusser/tilehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler exposes the admin settings API. All endpoints require the admin
// role; teachers tune per-course display options elsewhere, never here.
type Handler struct {
	Settings *settingsstore.Store
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a settings Handler.
func NewHandler(store *settingsstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Settings: store, ErrLog: errLog, Log: logger}
}

// colourSettings are validated as hex colours before being stored so the
// stylesheet endpoint never emits garbage.
var colourSettings = map[string]struct{}{
	tiles.SettingDefaultTileColour: {},
	tiles.SettingBrandColour:       {},
	tiles.SettingThemeColour:       {},
}

func validScope(plugin string) bool {
	switch plugin {
	case models.PluginScope, models.ThemeScope, models.CoreScope:
		return true
	}
	return false
}

// List returns every stored setting for one scope.
//
// GET /settings/{plugin}
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAdmin(w, r, "Only admins may view settings."); !res.OK {
		return
	}

	plugin := chi.URLParam(r, "plugin")
	if !validScope(plugin) {
		uierrors.RenderBadRequest(w, r, "unknown settings scope")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	all, err := h.Settings.All(ctx, plugin)
	if err != nil {
		h.ErrLog.Internal(w, r, "settings list", err)
		return
	}
	if all == nil {
		all = []models.PluginSetting{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(all)
}

type putSettingRequest struct {
	Value string `json:"value"`
}

// Put stores one setting value.
//
// PUT /settings/{plugin}/{name}  body: {"value": "..."}
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAdmin(w, r, "Only admins may change settings.")
	if !res.OK {
		return
	}

	plugin := chi.URLParam(r, "plugin")
	name := chi.URLParam(r, "name")
	if !validScope(plugin) {
		uierrors.RenderBadRequest(w, r, "unknown settings scope")
		return
	}
	if name == "" {
		uierrors.RenderBadRequest(w, r, "setting name is required")
		return
	}

	var req putSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		uierrors.RenderBadRequest(w, r, "bad JSON body")
		return
	}

	if _, isColour := colourSettings[name]; isColour {
		if !inputval.IsValidHexColour(req.Value) {
			uierrors.RenderBadRequest(w, r, "value must be a hex colour like #1670cc")
			return
		}
		req.Value = inputval.NormalizeHexColour(req.Value)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Settings.Set(ctx, plugin, name, req.Value); err != nil {
		h.ErrLog.Internal(w, r, "settings put", err)
		return
	}

	h.Log.Info("setting updated",
		zap.String("plugin", plugin),
		zap.String("name", name),
		zap.String("by", res.Name))

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a setting so readers fall back to their defaults.
//
// DELETE /settings/{plugin}/{name}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAdmin(w, r, "Only admins may change settings.")
	if !res.OK {
		return
	}

	plugin := chi.URLParam(r, "plugin")
	name := chi.URLParam(r, "name")
	if !validScope(plugin) {
		uierrors.RenderBadRequest(w, r, "unknown settings scope")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Settings.Unset(ctx, plugin, name); err != nil {
		h.ErrLog.Internal(w, r, "settings delete", err)
		return
	}

	h.Log.Info("setting removed",
		zap.String("plugin", plugin),
		zap.String("name", name),
		zap.String("by", res.Name))

	w.WriteHeader(http.StatusNoContent)
}
