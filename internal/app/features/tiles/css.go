// internal/app/features/tiles/css.go
package tiles

import (
	"context"
	"fmt"
	"net/http"

	uierrors "github.com/dalemusser/tilehub/internal/app/features/errors"
	"github.com/dalemusser/tilehub/internal/app/system/authz"
	"github.com/dalemusser/tilehub/internal/app/system/device"
	"github.com/dalemusser/tilehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeCourseCSS renders the per-course tile CSS: the base colour rule plus
// the tile-fitter snippet when the fitter is active.
//
// GET /tiles/{courseID}/css?skipcheck=1
//
// The skipcheck flag persists a width-check opt-out for the rest of the
// session. Unknown courses still yield 200 with an empty body; the course
// page links this stylesheet unconditionally.
func (h *Handler) ServeCourseCSS(w http.ResponseWriter, r *http.Request) {
	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "courseID"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "bad course id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	viewer := authz.ViewerCtx(r)
	client := device.Classify(r)
	sess := h.Session.ForRequest(w, r)
	skipRequested := r.URL.Query().Get("skipcheck") == "1"

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	course, err := h.Svc.Courses.CourseByID(ctx, courseID)
	if err != nil {
		h.Log.Error("course lookup for css", zap.Error(err))
		// Serve what we can; an empty stylesheet is better than a broken page.
		return
	}
	if course == nil {
		return
	}

	colour := h.Svc.TileBaseColour(ctx, course.TileColour)
	fmt.Fprintf(w, "ul.tiles.course-%s .tile { background-color: %s; }\n", course.ID.Hex(), colour)

	if css := h.Svc.TileFitterExtraCSS(ctx, viewer, client, sess, courseID, skipRequested); css != "" {
		fmt.Fprintln(w, css)
	}
}
