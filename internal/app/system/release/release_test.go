package release

import (
	"context"
	"testing"
)

func TestMajorMinor(t *testing.T) {
	tests := []struct {
		release string
		want    float64
	}{
		{"4.3", 4.3},
		{"4.3.2", 4.3},
		{"4.3.2+build.7", 4.3},
		{"10.0", 10.0},
		{"3.11 (stable)", 3.11},

		// Unparseable strings yield the unknown-release value.
		{"", 0.0},
		{"dev", 0.0},
		{"v4.3", 0.0},
		{"4", 0.0},
		{".3", 0.0},
	}
	for _, tc := range tests {
		if got := MajorMinor(tc.release); got != tc.want {
			t.Errorf("MajorMinor(%q) = %v, want %v", tc.release, got, tc.want)
		}
	}
}

func TestServiceMajorMinor(t *testing.T) {
	if got := ServiceMajorMinor(); got == 0.0 {
		t.Error("the service's own release string must parse")
	}
}

type fakeSettings struct {
	val string
	ok  bool
	err error
}

func (f fakeSettings) Setting(ctx context.Context, plugin, name string) (string, bool, error) {
	return f.val, f.ok, f.err
}

func TestHostMajorMinor(t *testing.T) {
	ctx := context.Background()

	if got := HostMajorMinor(ctx, fakeSettings{val: "4.5.1", ok: true}, "core"); got != 4.5 {
		t.Errorf("got %v, want 4.5", got)
	}
	if got := HostMajorMinor(ctx, fakeSettings{ok: false}, "core"); got != 0.0 {
		t.Errorf("missing setting: got %v, want 0.0", got)
	}
	if got := HostMajorMinor(ctx, fakeSettings{val: "4.5", ok: true, err: context.DeadlineExceeded}, "core"); got != 0.0 {
		t.Errorf("read error: got %v, want 0.0", got)
	}
}

func TestSupportsHost(t *testing.T) {
	tests := []struct {
		host float64
		want bool
	}{
		{MinHostRelease, true},
		{MinHostRelease + 0.1, true},
		{MinHostRelease - 0.1, false},
		// Unknown releases pass rather than block startup.
		{0.0, true},
	}
	for _, tc := range tests {
		if got := SupportsHost(tc.host); got != tc.want {
			t.Errorf("SupportsHost(%v) = %v, want %v", tc.host, got, tc.want)
		}
	}
}
