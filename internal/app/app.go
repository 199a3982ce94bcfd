package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/dgarcia1724/prestige-finance/internal/config"
	"github.com/dgarcia1724/prestige-finance/internal/constants"
	"github.com/dgarcia1724/prestige-finance/internal/seed"
	"github.com/dgarcia1724/prestige-finance/internal/service"
	"github.com/dgarcia1724/prestige-finance/internal/store"
)

type App struct {
	Service   *service.Service
	Store     *store.Store
	Snapshots store.SnapshotStore
}

// NewApp wires seed data, the snapshot store and the services, and
// returns the App plus a cleanup func. A saved snapshot overrides the
// seed default; a corrupt one is reported and ignored.
func NewApp(cfg *config.Config, assets fs.FS) (*App, func(), error) {
	snapshots, err := openSnapshotStore(cfg, assets)
	if err != nil {
		return nil, nil, err
	}

	state, err := seed.State(assets)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load seed data: %w", err)
	}
	friends, err := seed.Friends(assets)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load seed data: %w", err)
	}

	st := store.New(state, snapshots)

	if snap, err := snapshots.Load(); err == nil {
		st.ReplaceState(snap.State())
	} else if !errors.Is(err, store.ErrNoSnapshot) {
		pterm.Warning.Printfln("Ignoring saved account state: %v", err)
	}

	svc := service.NewService(st, friends, cfg)

	cleanup := func() {
		if err := snapshots.Close(); err != nil {
			fmt.Printf("Error closing snapshot store: %v\n", err)
		}
	}

	return &App{
		Service:   svc,
		Store:     st,
		Snapshots: snapshots,
	}, cleanup, nil
}

func openSnapshotStore(cfg *config.Config, assets fs.FS) (store.SnapshotStore, error) {
	switch cfg.Storage.Backend {
	case "", constants.BackendFile:
		return store.NewFileStore(SnapshotPath(cfg)), nil
	case constants.BackendSQLite:
		return store.NewSQLiteStore(SnapshotPath(cfg), assets)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want file or sqlite)", cfg.Storage.Backend)
	}
}

// SnapshotPath resolves where the snapshot lives for the configured
// backend.
func SnapshotPath(cfg *config.Config) string {
	if cfg.Storage.Path != "" {
		return cfg.Storage.Path
	}

	appDir, _ := GetAppDataDir()
	if cfg.Storage.Backend == constants.BackendSQLite {
		return filepath.Join(appDir, "prestige.db")
	}
	return filepath.Join(appDir, "prestige.json")
}

// GetAppDataDir is where config and local state live by default.
func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".prestige"), nil
	}

	return filepath.Join(configDir, "prestige"), nil
}
