package account

import (
	"github.com/spf13/cobra"

	"github.com/dgarcia1724/prestige-finance/internal/model"
	"github.com/dgarcia1724/prestige-finance/internal/service"
	"github.com/dgarcia1724/prestige-finance/internal/ui/views"
)

type showRunner struct {
	svc *service.Service
}

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one account's profile",
		Long: `Show one account's profile: type, masked number and current balance.

Without an id the currently selected account is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &showRunner{svc: svc}

			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			return runner.Run(id)
		},
	}
}

func (r *showRunner) Run(id string) error {
	var acc model.Account
	var err error

	if id != "" {
		acc, err = r.svc.Account.Get(id)
	} else {
		acc, err = r.svc.Account.Selected()
	}
	if err != nil {
		// A miss is a page, not a failure.
		views.RenderAccountNotFound()
		return nil
	}

	return views.RenderAccountProfile(acc, r.svc.Account.FormattedBalance(acc))
}
