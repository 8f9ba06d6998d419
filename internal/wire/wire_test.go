package wire

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/fatih/color"

	"github.com/example/roster/internal/config"
)

func init() {
	color.NoColor = true
}

// resetServices drops the singletons so the next call re-reads configuration.
func resetServices(t *testing.T) {
	t.Helper()
	once = sync.Once{}
	cfg, cfgErr, logger, rosterService = nil, nil, nil, nil
	t.Cleanup(func() {
		once = sync.Once{}
		cfg, cfgErr, logger, rosterService = nil, nil, nil, nil
	})
}

func TestRosterAdapter_BrokenConfigFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown log level", key: "ROSTER_LOG_LEVEL", val: "loud"},
		{name: "unparseable fetch timeout", key: "ROSTER_FETCH_TIMEOUT", val: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetServices(t)
			t.Setenv(tt.key, tt.val)

			var buf bytes.Buffer
			adapter := RosterAdapterWithOutput(&buf)

			if err := adapter.Check(context.Background(), "d33fe4ac81338c97290d2acd810c15e3"); err != nil {
				t.Fatalf("expected valid identifier to pass, got %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte("✓")) {
				t.Errorf("expected success line, got %q", buf.String())
			}
			if cfg.Logging.Level != "info" {
				t.Errorf("expected default log level, got %q", cfg.Logging.Level)
			}
		})
	}
}

func TestDiscordBot_BrokenConfigIsReported(t *testing.T) {
	resetServices(t)
	t.Setenv("DISCORD_BOT_TOKEN", "token")
	t.Setenv("ROSTER_LOG_FORMAT", "xml")

	_, err := DiscordBot()

	if err == nil {
		t.Fatal("expected configuration error, got nil")
	}
}

func TestDiscordBot_MissingToken(t *testing.T) {
	resetServices(t)
	t.Setenv("DISCORD_BOT_TOKEN", "")
	os.Unsetenv("DISCORD_BOT_TOKEN")

	_, err := DiscordBot()

	if !errors.Is(err, config.ErrMissingBotToken) {
		t.Errorf("expected ErrMissingBotToken, got %v", err)
	}
}
