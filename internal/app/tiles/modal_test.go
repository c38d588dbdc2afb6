package tiles_test

import (
	"context"
	"testing"

	"github.com/dalemusser/tilehub/internal/app/system/device"
	"github.com/dalemusser/tilehub/internal/app/tiles"
	"github.com/dalemusser/tilehub/internal/domain/models"
	"github.com/dalemusser/tilehub/internal/testutil"
)

func TestAllowedModalModules_Desktop(t *testing.T) {
	fx := testutil.NewServiceFixture()
	fx.Settings.Set(models.PluginScope, tiles.SettingModalResources, "pdf, html")
	fx.Settings.Set(models.PluginScope, tiles.SettingModalModules, "page,url,")

	allowed := fx.Svc.AllowedModalModules(context.Background(), device.Client{})

	for _, tok := range []string{"pdf", "html"} {
		if !allowed.AllowsResource(tok) {
			t.Errorf("resource %q not allowed", tok)
		}
	}
	for _, tok := range []string{"page", "url"} {
		if !allowed.AllowsModule(tok) {
			t.Errorf("module %q not allowed", tok)
		}
	}
	if allowed.AllowsResource("zip") {
		t.Error("resource zip should not be allowed")
	}
	if allowed.AllowsModule("") {
		t.Error("empty token should not be allowed")
	}
}

func TestAllowedModalModules_RestrictedClients(t *testing.T) {
	fx := testutil.NewServiceFixture()
	fx.Settings.Set(models.PluginScope, tiles.SettingModalResources, "pdf")
	fx.Settings.Set(models.PluginScope, tiles.SettingModalModules, "page")

	tests := []struct {
		name   string
		client device.Client
	}{
		{"mobile", device.Client{Mobile: true}},
		{"tablet", device.Client{Tablet: true}},
		{"legacy browser", device.Client{LegacyBrowser: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			allowed := fx.Svc.AllowedModalModules(context.Background(), tc.client)
			if len(allowed.Resources) != 0 || len(allowed.Modules) != 0 {
				t.Errorf("expected empty allow-lists, got %v / %v", allowed.Resources, allowed.Modules)
			}
		})
	}
}

func TestAllowedModalModules_UnsetSettings(t *testing.T) {
	fx := testutil.NewServiceFixture()

	allowed := fx.Svc.AllowedModalModules(context.Background(), device.Client{})
	if len(allowed.Resources) != 0 || len(allowed.Modules) != 0 {
		t.Errorf("expected empty allow-lists, got %v / %v", allowed.Resources, allowed.Modules)
	}
}
