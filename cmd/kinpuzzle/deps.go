package main

import (
	"fmt"
	"os"

	"github.com/ersonp/kinpuzzle/internal/application/handlers"
	"github.com/ersonp/kinpuzzle/internal/domain/services"
	"github.com/ersonp/kinpuzzle/internal/infrastructure/config"
	"github.com/ersonp/kinpuzzle/internal/infrastructure/logger"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services stay internal.
type Deps struct {
	BasePath         string
	Config           *config.Config
	Logger           *logger.Logger
	GenerateHandler  *handlers.GenerateHandler
	VerifyHandler    *handlers.VerifyHandler
	RelationsHandler *handlers.RelationsHandler
}

// withDeps loads config and builds dependencies, then calls the provided function.
// Log entries carry the command name. The logger is flushed afterwards.
func withDeps(command string, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.Level
	if globalVerbose {
		level = "debug"
	}

	base, err := logger.New(cfg.Log.Mode, level)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer base.Sync()

	log := base.With("command", command)

	deps := &Deps{
		BasePath:         cwd,
		Config:           cfg,
		Logger:           log,
		GenerateHandler:  handlers.NewGenerateHandler(services.NewGeneratorService(), log),
		VerifyHandler:    handlers.NewVerifyHandler(log),
		RelationsHandler: handlers.NewRelationsHandler(log),
	}

	return fn(deps)
}
