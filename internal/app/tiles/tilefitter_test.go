package tiles_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/dalemusser/tilehub/internal/app/system/device"
	"github.com/dalemusser/tilehub/internal/app/tiles"
	"github.com/dalemusser/tilehub/internal/domain/models"
	"github.com/dalemusser/tilehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func fitterCourse() *models.Course {
	return &models.Course{
		ID:            primitive.NewObjectID(),
		FullName:      "Biology 101",
		UseTileFitter: true,
	}
}

func TestTileFitterExtraCSS_PhaseOneHidesTiles(t *testing.T) {
	fx := testutil.NewServiceFixture()
	course := fitterCourse()
	fx.Courses.Courses[course.ID] = course
	sess := testutil.NewFakeSession()

	got := fx.Svc.TileFitterExtraCSS(context.Background(), tiles.Viewer{}, device.Client{}, sess, course.ID, false)
	want := fmt.Sprintf("ul.tiles.course-%s { opacity: 0; }", course.ID.Hex())
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTileFitterExtraCSS_PhaseTwoCapsWidth(t *testing.T) {
	fx := testutil.NewServiceFixture()
	course := fitterCourse()
	fx.Courses.Courses[course.ID] = course
	sess := testutil.NewFakeSession()
	sess.Widths[course.ID] = 1280

	got := fx.Svc.TileFitterExtraCSS(context.Background(), tiles.Viewer{}, device.Client{}, sess, course.ID, false)
	want := fmt.Sprintf("ul.tiles.course-%s { max-width: 1280px; }", course.ID.Hex())
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTileFitterExtraCSS_SkipRequestedPersists(t *testing.T) {
	fx := testutil.NewServiceFixture()
	course := fitterCourse()
	fx.Courses.Courses[course.ID] = course
	sess := testutil.NewFakeSession()

	if got := fx.Svc.TileFitterExtraCSS(context.Background(), tiles.Viewer{}, device.Client{}, sess, course.ID, true); got != "" {
		t.Errorf("skip request should yield empty css, got %q", got)
	}
	if !sess.Skipped {
		t.Error("skip request should persist in the session")
	}

	// Later renders honor the stored skip without a new request.
	if got := fx.Svc.TileFitterExtraCSS(context.Background(), tiles.Viewer{}, device.Client{}, sess, course.ID, false); got != "" {
		t.Errorf("stored skip should yield empty css, got %q", got)
	}
}

func TestTileFitterExtraCSS_Disabled(t *testing.T) {
	fx := testutil.NewServiceFixture()
	course := fitterCourse()
	fx.Courses.Courses[course.ID] = course

	noFitter := fitterCourse()
	noFitter.UseTileFitter = false
	fx.Courses.Courses[noFitter.ID] = noFitter

	tests := []struct {
		name     string
		courseID primitive.ObjectID
		client   device.Client
	}{
		{"unknown course", primitive.NewObjectID(), device.Client{}},
		{"fitter off", noFitter.ID, device.Client{}},
		{"mobile client", course.ID, device.Client{Mobile: true}},
		{"legacy browser", course.ID, device.Client{LegacyBrowser: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sess := testutil.NewFakeSession()
			if got := fx.Svc.TileFitterExtraCSS(context.Background(), tiles.Viewer{}, tc.client, sess, tc.courseID, false); got != "" {
				t.Errorf("expected empty css, got %q", got)
			}
		})
	}
}

func TestTileFitterExtraCSS_JSNavOff(t *testing.T) {
	fx := testutil.NewServiceFixture()
	course := fitterCourse()
	fx.Courses.Courses[course.ID] = course
	fx.Settings.Set(models.PluginScope, tiles.SettingUseJSNav, "0")

	sess := testutil.NewFakeSession()
	if got := fx.Svc.TileFitterExtraCSS(context.Background(), tiles.Viewer{}, device.Client{}, sess, course.ID, false); got != "" {
		t.Errorf("fitter requires js nav, got %q", got)
	}
}

func TestTileFitterExtraCSS_CourseLookupErrorDegrades(t *testing.T) {
	fx := testutil.NewServiceFixture()
	fx.Courses.Err = context.DeadlineExceeded

	sess := testutil.NewFakeSession()
	if got := fx.Svc.TileFitterExtraCSS(context.Background(), tiles.Viewer{}, device.Client{}, sess, primitive.NewObjectID(), false); got != "" {
		t.Errorf("lookup failure should yield empty css, got %q", got)
	}
}
