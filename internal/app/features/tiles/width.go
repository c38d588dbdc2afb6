// internal/app/features/tiles/width.go
package tiles

import (
	"net/http"
	"strconv"

	uierrors "github.com/dalemusser/tilehub/internal/app/features/errors"
	"github.com/dalemusser/tilehub/internal/app/system/inputval"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleWidthReport records the page width measured by the tile-fitter
// script so the next stylesheet request can emit a max-width rule.
//
// POST /tiles/{courseID}/width  (form field "width", pixels; 0 clears)
func (h *Handler) HandleWidthReport(w http.ResponseWriter, r *http.Request) {
	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "courseID"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "bad course id")
		return
	}

	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "bad form")
		return
	}
	width, err := strconv.Atoi(r.PostFormValue("width"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "width must be an integer")
		return
	}

	sess := h.Session.ForRequest(w, r)
	switch {
	case width == 0:
		sess.ClearCourseWidth(courseID)
	case inputval.IsValidTileWidth(width):
		sess.SetCourseWidth(courseID, width)
	default:
		uierrors.RenderBadRequest(w, r, "width out of range")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
