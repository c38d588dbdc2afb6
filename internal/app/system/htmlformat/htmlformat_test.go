package htmlformat

import (
	"fmt"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRewriteFileURLs(t *testing.T) {
	f := New("/pluginfile")
	ctxID := primitive.NewObjectID()

	in := `<img src="@@PLUGINFILE@@/a.png"> and <a href="@@PLUGINFILE@@/b.pdf">b</a>`
	out := f.RewriteFileURLs(in, "resource", ctxID)

	base := fmt.Sprintf("/pluginfile/%s/resource", ctxID.Hex())
	if strings.Contains(out, FilePlaceholder) {
		t.Error("placeholder left in output")
	}
	if !strings.Contains(out, base+"/a.png") || !strings.Contains(out, base+"/b.pdf") {
		t.Errorf("urls not rewritten: %q", out)
	}
}

func TestRewriteFileURLs_NoPlaceholder(t *testing.T) {
	f := New("/pluginfile")
	in := "<p>plain</p>"
	if out := f.RewriteFileURLs(in, "page", primitive.NewObjectID()); out != in {
		t.Errorf("text without placeholders must pass through unchanged, got %q", out)
	}
}

func TestFormat_Sanitizes(t *testing.T) {
	f := New("/pluginfile")

	out := f.Format(`<p onclick="evil()">hi</p><script>evil()</script>`, Options{})
	if strings.Contains(out, "script") || strings.Contains(out, "onclick") {
		t.Errorf("unsafe markup survived: %q", out)
	}
	if !strings.Contains(out, "hi") {
		t.Errorf("legitimate content stripped: %q", out)
	}
}

func TestFormat_NoCleanKeepsMarkup(t *testing.T) {
	f := New("/pluginfile")

	in := `<table class="grid"><tr><td>1</td></tr></table>`
	out := f.Format(in, Options{NoClean: true})
	if out != in {
		t.Errorf("trusted pass should not alter markup: %q", out)
	}
}

func TestFormat_Overflow(t *testing.T) {
	f := New("/pluginfile")

	out := f.Format("<p>wide</p>", Options{NoClean: true, Overflow: true})
	if !strings.HasPrefix(out, `<div class="no-overflow">`) || !strings.HasSuffix(out, "</div>") {
		t.Errorf("overflow wrapper missing: %q", out)
	}
}

func TestFormat_Empty(t *testing.T) {
	f := New("/pluginfile")
	if out := f.Format("", Options{Overflow: true}); out != "" {
		t.Errorf("empty input should stay empty, got %q", out)
	}
}

func TestSanitize_AllowsTablesAndClasses(t *testing.T) {
	f := New("/pluginfile")

	in := `<table><tr><td class="c">x</td></tr></table>`
	out := f.Sanitize(in)
	if !strings.Contains(out, "<table") || !strings.Contains(out, `class="c"`) {
		t.Errorf("tables/classes should survive sanitization: %q", out)
	}
}
