// internal/app/features/tiles/modinfo.go
package tiles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/tilehub/internal/app/features/errors"
	"github.com/dalemusser/tilehub/internal/app/system/authz"
	"github.com/dalemusser/tilehub/internal/app/system/device"
	"github.com/dalemusser/tilehub/internal/app/system/timeouts"
	"github.com/dalemusser/tilehub/internal/app/tiles"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeModuleInfo returns the module projection for one tile.
//
// GET /tiles/{courseID}/modules/{cmID}
//
// Status mapping:
//   - 200 with the projection when the viewer may see the module
//   - 204 when the module exists but is hidden from this viewer
//   - 403 when the viewer has no view capability on the course
//   - 404 when the ids do not resolve
func (h *Handler) ServeModuleInfo(w http.ResponseWriter, r *http.Request) {
	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "courseID"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "bad course id")
		return
	}
	moduleID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "cmID"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "bad module id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	viewer := authz.ViewerCtx(r)
	client := device.Classify(r)

	info, err := h.Svc.GetCourseModInfo(ctx, viewer, client, courseID, moduleID)
	switch {
	case errors.Is(err, tiles.ErrNotFound):
		uierrors.RenderNotFound(w, r, "module not found")
		return
	case tiles.IsAuthorization(err):
		uierrors.RenderForbidden(w, r, "You may not view this module.")
		return
	case err != nil:
		h.ErrLog.Internal(w, r, "module info", err)
		return
	}
	if info == nil {
		// Soft-hidden: the module exists but this viewer doesn't get it.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(info)
}
