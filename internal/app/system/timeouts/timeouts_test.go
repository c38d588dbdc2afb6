package timeouts

import (
	"testing"
	"time"
)

func TestConfigure(t *testing.T) {
	defer Reset()

	Configure(Config{Short: 9 * time.Second})
	if Short() != 9*time.Second {
		t.Errorf("Short: got %v, want 9s", Short())
	}
	// Zero values keep the defaults.
	if Medium() != DefaultMedium {
		t.Errorf("Medium: got %v, want default %v", Medium(), DefaultMedium)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	defer Reset()

	t.Setenv("TIMEOUT_PING", "750ms")
	t.Setenv("TIMEOUT_LONG", "not-a-duration")

	if n := ConfigureFromEnv(); n != 1 {
		t.Errorf("applied overrides: got %d, want 1", n)
	}
	if Ping() != 750*time.Millisecond {
		t.Errorf("Ping: got %v, want 750ms", Ping())
	}
	if Long() != DefaultLong {
		t.Errorf("Long: invalid value must keep default, got %v", Long())
	}
}

func TestReset(t *testing.T) {
	Configure(Config{Ping: time.Minute})
	Reset()
	if Ping() != DefaultPing {
		t.Errorf("Ping: got %v, want default %v", Ping(), DefaultPing)
	}
}
