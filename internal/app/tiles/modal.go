// internal/app/tiles/modal.go
package tiles

import (
	"context"
	"strings"

	"github.com/dalemusser/tilehub/internal/app/system/device"
	"github.com/dalemusser/tilehub/internal/domain/models"
)

// Setting names for the modal allow-lists, both comma-separated token lists.
const (
	SettingModalResources = "modalresources" // resource subtypes ("pdf,html")
	SettingModalModules   = "modalmodules"   // module names ("page,url")
)

// Allowed holds the two modal allow-lists: resource subtypes and module
// names that may open in an in-page modal instead of navigating away.
type Allowed struct {
	Resources map[string]struct{}
	Modules   map[string]struct{}
}

// AllowsResource reports whether the resource subtype token is allow-listed.
func (a Allowed) AllowsResource(token string) bool {
	_, ok := a.Resources[token]
	return ok
}

// AllowsModule reports whether the module name token is allow-listed.
func (a Allowed) AllowsModule(name string) bool {
	_, ok := a.Modules[name]
	return ok
}

// AllowedModalModules returns the resource and module allow-lists for modal
// display. Phones, tablets, and legacy browsers always get empty sets: those
// clients cannot host the modal interaction pattern, so every module falls
// back to plain navigation. Absent settings also yield empty sets.
//
// The lists are re-read from settings on every call, on purpose, so live
// configuration changes apply immediately.
func (s *Service) AllowedModalModules(ctx context.Context, client device.Client) Allowed {
	allowed := Allowed{
		Resources: map[string]struct{}{},
		Modules:   map[string]struct{}{},
	}
	if client.Mobile || client.Tablet || client.LegacyBrowser {
		return allowed
	}

	if raw, ok := s.setting(ctx, models.PluginScope, SettingModalResources); ok {
		addTokens(allowed.Resources, raw)
	}
	if raw, ok := s.setting(ctx, models.PluginScope, SettingModalModules); ok {
		addTokens(allowed.Modules, raw)
	}
	return allowed
}

// addTokens splits a comma-separated setting value into the set,
// trimming whitespace and skipping empty entries.
func addTokens(set map[string]struct{}, raw string) {
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		set[tok] = struct{}{}
	}
}
