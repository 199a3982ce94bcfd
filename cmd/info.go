package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dgarcia1724/prestige-finance/internal/app"
	"github.com/dgarcia1724/prestige-finance/internal/constants"
	"github.com/dgarcia1724/prestige-finance/internal/service"
	"github.com/dgarcia1724/prestige-finance/internal/ui/views"
)

type infoRunner struct {
	svc *service.Service
}

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "info",
		Aliases: []string{"more"},
		Short:   "Show configuration, local storage and quick access",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{svc: svc}
			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.svc.Config.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	backend := r.svc.Config.Storage.Backend
	if backend == "" {
		backend = constants.BackendFile
	}

	snapshotPath := app.SnapshotPath(r.svc.Config)
	snapshotExists := false
	if _, err := os.Stat(snapshotPath); err == nil {
		snapshotExists = true
	}

	appDataDir, err := app.GetAppDataDir()
	if err != nil {
		appDataDir = "Unknown"
	}

	return views.RenderSystemInfo(views.SystemInfoItem{
		ConfigPath:      configPath,
		StorageBackend:  backend,
		SnapshotPath:    snapshotPath,
		SnapshotExists:  snapshotExists,
		DefaultCurrency: r.svc.Account.Currency(),
		AppDataDir:      appDataDir,
		Accounts:        len(r.svc.Account.All()),
		Friends:         len(r.svc.Friend.All()),
	})
}
