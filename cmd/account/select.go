package account

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dgarcia1724/prestige-finance/internal/errhandler"
	"github.com/dgarcia1724/prestige-finance/internal/service"
	"github.com/dgarcia1724/prestige-finance/internal/ui/prompts"
)

type selectRunner struct {
	svc *service.Service
}

func NewSelectCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "select [id]",
		Short: "Choose the account the other pages operate on",
		Long: `Choose the account the other pages operate on.

Without an id an interactive picker is shown. The id is recorded as
given; an unknown id simply makes lookups come up empty.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &selectRunner{svc: svc}

			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			return runner.Run(id)
		},
	}
}

func (r *selectRunner) Run(id string) error {
	if id == "" {
		chosen, err := prompts.PromptAccountSelection(
			r.svc.Account.All(),
			r.svc.Account.SelectedID(),
			r.svc.Account.FormattedBalance,
		)
		if err != nil {
			errhandler.Handle(err)
			return nil
		}
		id = chosen
	}

	r.svc.Account.Select(id)

	if acc, err := r.svc.Account.Get(id); err == nil {
		pterm.Success.Printfln("Selected %s %s", acc.Type, acc.MaskedNumber())
	} else {
		pterm.Success.Printfln("Selected account %s", id)
	}
	return nil
}
