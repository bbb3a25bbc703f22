// Package app wires configuration, storage, and the tracker facade into a
// runnable application.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rjnetwork212/wealth-nexus-dash/internal/common"
	"github.com/rjnetwork212/wealth-nexus-dash/internal/interfaces"
	"github.com/rjnetwork212/wealth-nexus-dash/internal/storage"
)

// App holds the initialized configuration, storage, and facade.
// It is the shared core used by cmd/nexus-server and by tests.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Repo        interfaces.Repository
	Tracker     *Tracker
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes config, logging, storage, and the tracker facade.
// configPath may be empty, in which case the default resolution logic is
// used: NEXUS_CONFIG, then nexus.toml beside the binary, then
// config/nexus.toml.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	if configPath == "" {
		configPath = os.Getenv("NEXUS_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "nexus.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/nexus.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative storage path to binary directory
	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}
	if config.Logging.FilePath != "" && !filepath.IsAbs(config.Logging.FilePath) {
		config.Logging.FilePath = filepath.Join(binDir, config.Logging.FilePath)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	blobs, err := storage.NewBlobStore(logger, config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := storage.NewRepository(blobs, logger)
	tracker := NewTracker(repo, logger)

	if err := tracker.LoadInitialState(context.Background()); err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to load initial state: %w", err)
	}

	a := &App{
		Config:      config,
		Logger:      logger,
		Repo:        repo,
		Tracker:     tracker,
		StartupTime: startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")
	return a, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.Repo != nil {
		a.Repo.Close()
		a.Repo = nil
	}
}
