// internal/app/features/tiles/jsnav.go
package tiles

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/tilehub/internal/app/features/errors"
	"github.com/dalemusser/tilehub/internal/app/system/gates"
	"github.com/dalemusser/tilehub/internal/app/system/timeouts"
	"github.com/dalemusser/tilehub/internal/app/tiles"
)

// HandleJSNavToggle stores or clears the signed-in user's opt-out from
// animated tile navigation.
//
// POST /tiles/jsnav  (form field "disable": "1" to opt out, "0" to opt in)
func (h *Handler) HandleJSNavToggle(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "bad form")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var err error
	switch r.PostFormValue("disable") {
	case "1":
		err = h.Prefs.SetPref(ctx, res.UserID, tiles.PrefDisableJSNav, "1")
	case "0":
		err = h.Prefs.UnsetPref(ctx, res.UserID, tiles.PrefDisableJSNav)
	default:
		uierrors.RenderBadRequest(w, r, "disable must be 0 or 1")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "jsnav preference", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
