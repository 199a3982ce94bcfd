package account

import (
	"github.com/spf13/cobra"

	"github.com/dgarcia1724/prestige-finance/internal/service"
	"github.com/dgarcia1724/prestige-finance/internal/ui/views"
)

type listRunner struct {
	svc *service.Service
}

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List all accounts with their balances",
		Long: `List all accounts with their balances.

The currently selected account is marked; it is the one history, send
and the other pages operate on.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{svc: svc}
			return runner.Run()
		},
	}
}

func (r *listRunner) Run() error {
	accounts := r.svc.Account.All()
	return views.NewAccountListView().Render(
		accounts,
		r.svc.Account.SelectedID(),
		r.svc.Account.FormattedBalance,
	)
}
