// internal/app/tiles/tilefitter.go
package tiles

import (
	"context"
	"fmt"

	"github.com/dalemusser/tilehub/internal/app/system/device"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// TileFitterExtraCSS returns the per-course CSS snippet that stabilizes the
// tile layout across renders.
//
// The protocol has two phases. On a render with no stored width, the tile
// list is hidden (opacity 0) while a client script measures the available
// width and posts it back into the session. Subsequent renders emit a
// max-width cap from the stored value, so the page never re-layouts visibly.
//
// The snippet is empty whenever the fitter cannot or should not run: the
// course is unknown or has the fitter disabled, JS navigation is off, the
// client is a phone, or the user asked to skip the width check. A requested
// skip is persisted into the session so it holds for the rest of the session.
func (s *Service) TileFitterExtraCSS(ctx context.Context, viewer Viewer, client device.Client, sess SessionValues, courseID primitive.ObjectID, skipRequested bool) string {
	course, err := s.Courses.CourseByID(ctx, courseID)
	if err != nil {
		s.Log.Warn("course lookup failed for tile fitter",
			zap.String("course_id", courseID.Hex()),
			zap.Error(err))
		return ""
	}
	if course == nil || !course.UseTileFitter {
		return ""
	}
	if !s.UsingJSNav(ctx, viewer, client) {
		return ""
	}
	if client.Mobile {
		return ""
	}
	if skipRequested {
		sess.SkipWidthCheck()
		return ""
	}
	if sess.WidthCheckSkipped() {
		return ""
	}

	width := sess.CourseWidth(course.ID)
	if width <= 0 {
		// Phase one: hide the tiles until the client reports a width.
		return fmt.Sprintf("ul.tiles.course-%s { opacity: 0; }", course.ID.Hex())
	}
	return fmt.Sprintf("ul.tiles.course-%s { max-width: %dpx; }", course.ID.Hex(), width)
}
