package account

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dgarcia1724/prestige-finance/internal/model"
	"github.com/dgarcia1724/prestige-finance/internal/service"
	"github.com/dgarcia1724/prestige-finance/internal/ui/views"
	"github.com/dgarcia1724/prestige-finance/internal/utils"
	"github.com/dgarcia1724/prestige-finance/internal/validation"
)

type withdrawFlags struct {
	ID string
}

type withdrawRunner struct {
	svc   *service.Service
	flags *withdrawFlags
}

func NewWithdrawCmd(svc *service.Service) *cobra.Command {
	flags := &withdrawFlags{}

	cmd := &cobra.Command{
		Use:   "withdraw <amount>",
		Short: "Take funds out of an account",
		Long: `Take funds out of an account (the selected one unless --id is given).

The amount may not exceed the account's available balance.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &withdrawRunner{svc: svc, flags: flags}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().StringVar(&flags.ID, "id", "", "Account id (defaults to the selected account)")

	return cmd
}

func (r *withdrawRunner) Run(amountStr string) error {
	cents, err := validation.ParsePositiveAmount(amountStr)
	if err != nil {
		return err
	}

	acc, err := r.resolveAccount()
	if err != nil {
		views.RenderAccountNotFound()
		return nil
	}

	if cents > service.Available(acc) {
		// Recoverable: report and leave the balance untouched.
		pterm.Error.Println("Insufficient funds")
		return nil
	}

	r.svc.Account.Withdraw(acc.ID, cents)

	acc.Balance -= cents
	pterm.Success.Printfln("Withdrew %s from %s %s (balance %s)",
		utils.FormatCents(cents, r.svc.Account.Currency()),
		acc.Type, acc.MaskedNumber(),
		r.svc.Account.FormattedBalance(acc),
	)
	return nil
}

func (r *withdrawRunner) resolveAccount() (model.Account, error) {
	if r.flags.ID != "" {
		return r.svc.Account.Get(r.flags.ID)
	}
	return r.svc.Account.Selected()
}
