package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blogem/dues-ledger/config"
	"github.com/blogem/dues-ledger/database"
	"github.com/blogem/dues-ledger/intent"
	"github.com/blogem/dues-ledger/logging"
	"github.com/blogem/dues-ledger/repositories"
	"github.com/blogem/dues-ledger/services"
	"github.com/blogem/dues-ledger/userctx"
)

// cliActor is recorded in the audit log for changes made from the command line
const cliActor = "cli"

// app is the state shared by every subcommand once setup has run
type app struct {
	envFile  string
	verbose  bool
	cfg      *config.Config
	logger   *zap.Logger
	db       *sql.DB
	services *services.Services
}

// setup loads config, builds the logger, opens the database and wires the
// service graph
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var files []string
	if a.envFile != "" {
		files = append(files, a.envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg

	a.logger, err = logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return err
	}

	if err := database.InitializeDatabase(cfg.DatabasePath, a.logger); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.db = database.GetDB()

	parser, err := newIntentParser(cfg)
	if err != nil {
		return fmt.Errorf("failed to configure intent parser: %w", err)
	}

	repos := repositories.NewRepositories(a.db, cfg.RosterSheet)
	a.services = services.NewServices(repos, parser, a.logger)
	return nil
}

// close releases the database and flushes the logger
func (a *app) close() {
	if a.db != nil {
		if err := database.CloseDB(); err != nil && a.logger != nil {
			a.logger.Warn("failed to close database", zap.Error(err))
		}
		a.db = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// cliContext tags the command context with the CLI actor
func (a *app) cliContext(cmd *cobra.Command) context.Context {
	return userctx.SetActor(cmd.Context(), cliActor)
}

// newIntentParser returns nil when no API key is configured
func newIntentParser(cfg *config.Config) (services.IntentParser, error) {
	if !cfg.OpenAI.Enabled() {
		return nil, nil
	}

	parser, err := intent.NewOpenAIParser(intent.OpenAIConfig{
		APIKey:     cfg.OpenAI.APIKey,
		Model:      cfg.OpenAI.Model,
		ChatURL:    cfg.OpenAI.ChatURL,
		HTTPClient: &http.Client{Timeout: cfg.OpenAI.Timeout},
	})
	if err != nil {
		return nil, err
	}
	return parser, nil
}
