package cmd

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dgarcia1724/prestige-finance/internal/errhandler"
	"github.com/dgarcia1724/prestige-finance/internal/model"
	"github.com/dgarcia1724/prestige-finance/internal/service"
	"github.com/dgarcia1724/prestige-finance/internal/ui"
	"github.com/dgarcia1724/prestige-finance/internal/ui/prompts"
	"github.com/dgarcia1724/prestige-finance/internal/ui/views"
	"github.com/dgarcia1724/prestige-finance/internal/utils"
)

type sendFlags struct {
	Friend  string
	Account string
}

type sendRunner struct {
	svc   *service.Service
	flags *sendFlags
}

func NewSendCmd(svc *service.Service) *cobra.Command {
	flags := &sendFlags{}

	cmd := &cobra.Command{
		Use:     "send",
		Aliases: []string{"pay"},
		Short:   "Send money to friends and family",
		Example: `  prestige send
  prestige send --friend usr_001
  prestige send --friend usr_001 --account acc_002`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &sendRunner{svc: svc, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Friend, "friend", "f", "", "Recipient friend id (skips the search step)")
	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Account id to send from")

	return cmd
}

func (r *sendRunner) Run() error {
	ui.PageHeader("Send Money", "Send money to friends and family")

	if err := r.ensureAccount(); err != nil {
		if errhandler.IsInterrupt(err) {
			errhandler.Handle(err)
			return nil
		}
		return err
	}

	flow := service.NewSendFlow(r.svc.Account)
	defer flow.Close()

	if r.flags.Friend != "" {
		friend, err := r.svc.Friend.Get(r.flags.Friend)
		if err != nil {
			return err
		}
		flow.Recipient = &friend
	}

	for {
		switch flow.State() {
		case service.StateComposing:
			if err := r.compose(flow); err != nil {
				errhandler.Handle(err)
				return nil
			}
			if err := flow.Review(); err != nil {
				pterm.Error.Println(capitalize(flow.Err()))
			}

		case service.StateReviewing:
			account, err := r.svc.Account.Selected()
			if err != nil {
				return err
			}
			amount := utils.FormatAbsCents(flow.Amount(), r.svc.Account.Currency())
			if err := views.RenderSendReview(account, *flow.Recipient, amount, flow.Description); err != nil {
				return err
			}

			confirmed, err := prompts.PromptConfirm("Confirm & Send?", true)
			if err != nil {
				errhandler.Handle(err)
				return nil
			}
			if !confirmed {
				flow.Cancel()
				continue
			}
			flow.Confirm()

		case service.StateSuccess:
			amount := utils.FormatAbsCents(flow.Amount(), r.svc.Account.Currency())
			views.RenderSendSuccess(*flow.Recipient, amount)

			again := false
			prompt := &survey.Confirm{Message: "Send Another Payment?"}
			if err := survey.AskOne(prompt, &again, ui.IconOption()); err != nil {
				errhandler.Handle(err)
				return nil
			}
			if !again {
				return nil
			}
			flow.Reset()
			if r.flags.Friend != "" {
				// Flag-picked recipients stick across payments.
				friend, err := r.svc.Friend.Get(r.flags.Friend)
				if err == nil {
					flow.Recipient = &friend
				}
			}
		}
	}
}

// ensureAccount resolves the "from" account: the --account flag wins,
// otherwise the current selection, otherwise an interactive picker.
func (r *sendRunner) ensureAccount() error {
	if r.flags.Account != "" {
		if _, err := r.svc.Account.Get(r.flags.Account); err != nil {
			return err
		}
		r.svc.Account.Select(r.flags.Account)
		return nil
	}

	if _, err := r.svc.Account.Selected(); err == nil {
		return nil
	}

	id, err := prompts.PromptAccountSelection(
		r.svc.Account.All(),
		r.svc.Account.SelectedID(),
		func(a model.Account) string { return r.svc.Account.FormattedBalance(a) },
	)
	if err != nil {
		return err
	}
	r.svc.Account.Select(id)
	return nil
}

// compose fills the send form. A recipient kept from a previous round
// (after Cancel) is not re-asked; amount and description show the
// previous values as defaults.
func (r *sendRunner) compose(flow *service.SendFlow) error {
	for flow.Recipient == nil {
		query, err := prompts.PromptFriendSearch()
		if err != nil {
			return err
		}

		matches := r.svc.Friend.Search(query)
		if len(matches) == 0 {
			pterm.Warning.Println("No friends found")
			continue
		}

		friend, err := prompts.PromptFriendSelection(matches)
		if err != nil {
			return err
		}
		flow.Recipient = &friend
	}

	amount, err := prompts.PromptAmount("Amount", "How much to send", flow.AmountInput)
	if err != nil {
		return err
	}
	flow.AmountInput = amount

	desc, err := prompts.PromptDescription(flow.Description)
	if err != nil {
		return err
	}
	flow.Description = desc

	return nil
}
