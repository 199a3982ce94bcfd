package account

import (
	"github.com/spf13/cobra"

	"github.com/dgarcia1724/prestige-finance/internal/service"
)

func NewAccountCmd(svc *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"acc"},
		Short:   "View and manage all your accounts in one place",
		Long:    `View and manage all your accounts in one place.`,
	}

	accountCmd.AddCommand(NewListCmd(svc))
	accountCmd.AddCommand(NewShowCmd(svc))
	accountCmd.AddCommand(NewSelectCmd(svc))
	accountCmd.AddCommand(NewDepositCmd(svc))
	accountCmd.AddCommand(NewWithdrawCmd(svc))

	return accountCmd
}
