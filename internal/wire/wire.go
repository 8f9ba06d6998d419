// Package wire provides dependency injection for the roster application.
// It creates singleton services with lazy initialization.
package wire

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"

	cliadapter "github.com/example/roster/internal/adapters/cli"
	csvadapter "github.com/example/roster/internal/adapters/csv"
	"github.com/example/roster/internal/adapters/discord"
	"github.com/example/roster/internal/adapters/httpfetch"
	"github.com/example/roster/internal/app"
	"github.com/example/roster/internal/bot"
	"github.com/example/roster/internal/config"
	"github.com/example/roster/internal/logging"
	"github.com/example/roster/internal/ports/primary"
)

var (
	cfg           *config.Config
	cfgErr        error
	logger        *slog.Logger
	rosterService primary.RosterService
	once          sync.Once
)

// initServices loads configuration and builds all services.
// This is called once via sync.Once.
//
// A broken configuration only blocks the bot: the CLI commands fall back to
// default settings so identifier checks keep their exit codes.
func initServices() {
	cfg, cfgErr = loadConfig()
	if cfgErr != nil {
		cfg = config.Default()
	}

	// Logs go to stderr so stdout carries only command output.
	logger = logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	if cfgErr != nil {
		logger.Warn("using default configuration", "error", cfgErr)
	}

	reader := csvadapter.NewReader(',')
	rosterService = app.NewRosterService(reader, logger)
}

func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return config.LoadConfig(cwd)
}

// RosterAdapterWithOutput returns a new RosterAdapter writing to the given output.
func RosterAdapterWithOutput(out io.Writer) *cliadapter.RosterAdapter {
	once.Do(initServices)
	return cliadapter.NewRosterAdapter(rosterService, out)
}

// DiscordBot returns a Discord bot wired to the roster service.
// Fails when no bot token is configured.
func DiscordBot() (*discord.Bot, error) {
	once.Do(initServices)
	if cfgErr != nil {
		return nil, cfgErr
	}

	token, err := cfg.RequireBotToken()
	if err != nil {
		return nil, err
	}

	fetcher := httpfetch.NewFetcher(&http.Client{Timeout: cfg.Bot.FetchTimeout})
	handler := bot.NewHandler(rosterService, fetcher, cfg.Bot.MaxAttachmentBytes, cfg.Bot.FetchTimeout, logger)

	return discord.NewBot(token, handler, logger)
}
