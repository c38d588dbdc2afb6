// internal/app/features/tiles/content.go
package tiles

import (
	"context"
	"errors"
	"io"
	"net/http"

	uierrors "github.com/dalemusser/tilehub/internal/app/features/errors"
	"github.com/dalemusser/tilehub/internal/app/system/authz"
	"github.com/dalemusser/tilehub/internal/app/system/device"
	"github.com/dalemusser/tilehub/internal/app/system/timeouts"
	"github.com/dalemusser/tilehub/internal/app/tiles"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeModuleContent renders a module's authored content for display inside
// a tile or modal.
//
// GET /tiles/{courseID}/modules/{cmID}/content
//
// Authorization follows ServeModuleInfo; the body is the formatted HTML
// fragment, not a full page.
func (h *Handler) ServeModuleContent(w http.ResponseWriter, r *http.Request) {
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
		h.ErrLog.Internal(w, r, "module content", err)
		return
	}
	if info == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	mod, err := h.Modules.ModuleByID(ctx, courseID, moduleID)
	if err != nil {
		h.ErrLog.Internal(w, r, "module content load", err)
		return
	}
	if mod == nil {
		uierrors.RenderNotFound(w, r, "module not found")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, h.Svc.FormatModuleContent(mod))
}
