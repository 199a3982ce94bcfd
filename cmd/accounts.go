package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dgarcia1724/prestige-finance/internal/service"
	"github.com/dgarcia1724/prestige-finance/internal/ui/views"
)

// NewAccListCmd is the top-level shortcut for `account list`.
func NewAccListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"als"},
		Short:   "List all accounts (alias for account list)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return views.NewAccountListView().Render(
				svc.Account.All(),
				svc.Account.SelectedID(),
				svc.Account.FormattedBalance,
			)
		},
	}
}
