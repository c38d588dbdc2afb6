package tiles_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dalemusser/tilehub/internal/domain/models"
	"github.com/dalemusser/tilehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFormatModuleContent(t *testing.T) {
	fx := testutil.NewServiceFixture()
	mod := &models.CourseModule{
		ID:        primitive.NewObjectID(),
		ContextID: primitive.NewObjectID(),
		ModType:   models.ModTypePage,
		Intro:     `<p>Read this first.</p>`,
		Content:   `<img src="@@PLUGINFILE@@/diagram.png">`,
	}

	out := fx.Svc.FormatModuleContent(mod)

	if !strings.Contains(out, "Read this first.") {
		t.Error("intro missing from output")
	}
	wantURL := fmt.Sprintf("/pluginfile/%s/page/diagram.png", mod.ContextID.Hex())
	if !strings.Contains(out, wantURL) {
		t.Errorf("placeholder not rewritten; output %q lacks %q", out, wantURL)
	}
	if !strings.HasPrefix(out, `<div class="no-overflow">`) {
		t.Error("output should be wrapped in an overflow container")
	}
}

func TestFormatModuleContent_Empty(t *testing.T) {
	fx := testutil.NewServiceFixture()
	mod := &models.CourseModule{ID: primitive.NewObjectID(), ContextID: primitive.NewObjectID(), ModType: models.ModTypePage}

	if out := fx.Svc.FormatModuleContent(mod); out != "" {
		t.Errorf("empty module should format to empty string, got %q", out)
	}
}

func TestFormatModuleContent_IntroOnly(t *testing.T) {
	fx := testutil.NewServiceFixture()
	mod := &models.CourseModule{
		ID:        primitive.NewObjectID(),
		ContextID: primitive.NewObjectID(),
		ModType:   models.ModTypeResource,
		Intro:     "<p>Just an intro.</p>",
	}

	out := fx.Svc.FormatModuleContent(mod)
	if !strings.Contains(out, "Just an intro.") {
		t.Errorf("intro missing from output %q", out)
	}
}
