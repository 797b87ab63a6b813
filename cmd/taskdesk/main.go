package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskdesk/internal/config"
	"github.com/sandeepkv93/taskdesk/internal/logging"
	"github.com/sandeepkv93/taskdesk/internal/scheduler"
	"github.com/sandeepkv93/taskdesk/internal/service"
	"github.com/sandeepkv93/taskdesk/internal/storage"
	"github.com/sandeepkv93/taskdesk/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskdesk failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := logging.OpenLogFile(cfg.LogPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := logging.New(logFile, cfg.LogLevel)
	if err != nil {
		return err
	}

	store, err := storage.OpenSQLite(cfg.DatabasePath, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := storage.MigrateUp(store.DB()); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	engine := scheduler.NewEngine(cfg.AlertBuffer)
	engine.Start()
	defer engine.Stop()

	svc := service.New(logger, store)
	logger.Info().Str("db", cfg.DatabasePath).Msg("taskdesk starting")

	program := tea.NewProgram(update.NewModel(svc, engine, logger, cfg.RefreshInterval))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
