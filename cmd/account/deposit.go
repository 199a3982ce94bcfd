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

type depositFlags struct {
	ID string
}

type depositRunner struct {
	svc   *service.Service
	flags *depositFlags
}

func NewDepositCmd(svc *service.Service) *cobra.Command {
	flags := &depositFlags{}

	cmd := &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Add funds to an account",
		Long: `Add funds to an account (the selected one unless --id is given).

Example:
  prestige account deposit 100
  prestige account deposit 99.50 --id acc_002`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &depositRunner{svc: svc, flags: flags}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().StringVar(&flags.ID, "id", "", "Account id (defaults to the selected account)")

	return cmd
}

func (r *depositRunner) Run(amountStr string) error {
	cents, err := validation.ParsePositiveAmount(amountStr)
	if err != nil {
		return err
	}

	acc, err := r.resolveAccount()
	if err != nil {
		views.RenderAccountNotFound()
		return nil
	}

	r.svc.Account.Deposit(acc.ID, cents)

	acc.Balance += cents
	pterm.Success.Printfln("Deposited %s into %s %s (balance %s)",
		utils.FormatCents(cents, r.svc.Account.Currency()),
		acc.Type, acc.MaskedNumber(),
		r.svc.Account.FormattedBalance(acc),
	)
	return nil
}

func (r *depositRunner) resolveAccount() (model.Account, error) {
	if r.flags.ID != "" {
		return r.svc.Account.Get(r.flags.ID)
	}
	return r.svc.Account.Selected()
}
