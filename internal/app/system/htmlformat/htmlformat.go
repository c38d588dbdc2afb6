// Package htmlformat runs stored activity HTML through the display
// formatting pass: embedded file-reference placeholders are rewritten to
// served URLs scoped to the owning module context, and the result is
// sanitized unless the caller marks the source as trusted.
package htmlformat

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FilePlaceholder is the token authors' editors embed where a content-area
// file URL belongs. It is replaced at render time so stored content stays
// valid across deployments and URL scheme changes.
const FilePlaceholder = "@@PLUGINFILE@@"

// Formatter holds the sanitization policy and file URL prefix.
// Safe for concurrent use once constructed.
type Formatter struct {
	policy  *bluemonday.Policy
	fileURL string
}

// Options control a single formatting pass.
type Options struct {
	// NoClean skips sanitization. Only for content from trusted authoring
	// sources (course editors), never for end-user submissions.
	NoClean bool
	// Overflow wraps the output in a scrolling container so wide content
	// (tables, code) scrolls inside the tile instead of breaking layout.
	Overflow bool
}

// New constructs a Formatter. fileURL is the serving prefix for content-area
// files, e.g. "/pluginfile".
func New(fileURL string) *Formatter {
	p := bluemonday.UGCPolicy()
	// Authored course content legitimately uses tables and styling classes.
	p.AllowTables()
	p.AllowAttrs("class").Globally()
	return &Formatter{
		policy:  p,
		fileURL: strings.TrimRight(fileURL, "/"),
	}
}

// RewriteFileURLs replaces file placeholders with served URLs scoped to the
// given module context and component (module type).
func (f *Formatter) RewriteFileURLs(text, component string, contextID primitive.ObjectID) string {
	if !strings.Contains(text, FilePlaceholder) {
		return text
	}
	base := fmt.Sprintf("%s/%s/%s", f.fileURL, contextID.Hex(), component)
	return strings.ReplaceAll(text, FilePlaceholder, base)
}

// Format runs one formatting pass over text.
func (f *Formatter) Format(text string, opts Options) string {
	if text == "" {
		return ""
	}
	out := text
	if !opts.NoClean {
		out = f.policy.Sanitize(out)
	}
	if opts.Overflow {
		out = `<div class="no-overflow">` + out + `</div>`
	}
	return out
}

// Sanitize is the default untrusted-content pass.
func (f *Formatter) Sanitize(text string) string {
	return f.Format(text, Options{})
}
