package cmd

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dgarcia1724/prestige-finance/internal/model"
	"github.com/dgarcia1724/prestige-finance/internal/service"
	"github.com/dgarcia1724/prestige-finance/internal/store"
	"github.com/dgarcia1724/prestige-finance/internal/ui/views"
	"github.com/dgarcia1724/prestige-finance/internal/utils"
)

type historyFlags struct {
	ID       string
	From     string
	To       string
	Min      string
	Max      string
	Category string
}

type historyRunner struct {
	svc   *service.Service
	flags *historyFlags
}

func NewHistoryCmd(svc *service.Service) *cobra.Command {
	flags := &historyFlags{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"transactions", "tls"},
		Short:   "View transactions for the selected account",
		Long: `View transactions for the selected account.

Filters combine with AND; a filter you leave out imposes no
constraint. Amount filters ignore the debit/credit sign, so --min 100
--max 200 finds transactions around $100-$200 in either direction.`,
		Example: `  # Full history of the selected account
  prestige history

  # March activity
  prestige history --from 2025-03-01 --to 2025-03-31

  # Everything around $100, either direction
  prestige history --min 50 --max 150

  # One category on another account
  prestige history --category Income --id acc_002`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &historyRunner{svc: svc, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVar(&flags.ID, "id", "", "Account id (defaults to the selected account)")
	cmd.Flags().StringVar(&flags.From, "from", "", "Earliest date to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.To, "to", "", "Latest date to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.Min, "min", "", "Minimum amount, sign ignored (e.g. 50 or 49.99)")
	cmd.Flags().StringVar(&flags.Max, "max", "", "Maximum amount, sign ignored")
	cmd.Flags().StringVar(&flags.Category, "category", "", "Exact category match")

	return cmd
}

func (r *historyRunner) Run() error {
	var acc model.Account
	var err error
	if r.flags.ID != "" {
		if acc, err = r.svc.Account.Get(r.flags.ID); err != nil {
			views.RenderAccountNotFound()
			return nil
		}
	} else if acc, err = r.svc.Account.Selected(); errors.Is(err, store.ErrNotFound) {
		pterm.DefaultSection.Println("Transaction History")
		pterm.FgGray.Println("Please select an account to view its transactions")
		return nil
	}

	filter, err := service.ParseFilter(
		r.flags.From, r.flags.To, r.flags.Min, r.flags.Max, r.flags.Category,
	)
	if err != nil {
		return err
	}

	history, err := r.svc.Transaction.History(acc.ID)
	if err != nil {
		return err
	}
	transactions := filter.Apply(history)

	currency := r.svc.Account.Currency()
	items := make([]views.TransactionListItem, 0, len(transactions))
	for _, tx := range transactions {
		sign := "+"
		if tx.Amount < 0 {
			sign = "-"
		}
		items = append(items, views.TransactionListItem{
			Date:        utils.FormatDisplayDate(tx.Date),
			Description: tx.Description,
			Category:    tx.Category,
			Amount:      sign + utils.FormatAbsCents(tx.Amount, currency),
			Debit:       tx.Amount < 0,
		})
	}

	return views.NewTransactionListView().Render(acc, items)
}
