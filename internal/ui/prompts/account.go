package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/dgarcia1724/prestige-finance/internal/model"
)

// PromptAccountSelection renders the "From Account" picker: every
// account with its masked number and available balance, the currently
// selected one preselected. Returns the chosen account id.
func PromptAccountSelection(
	accounts []model.Account,
	selectedID string,
	balance func(model.Account) string,
) (string, error) {
	if len(accounts) == 0 {
		return "", fmt.Errorf("no accounts available")
	}

	var opts []huh.Option[string]
	for _, acc := range accounts {
		label := fmt.Sprintf("%s  %s  %s available",
			acc.Type, acc.MaskedNumber(), balance(acc))
		opts = append(opts, huh.NewOption(label, acc.ID))
	}

	choice := selectedID
	if choice == "" {
		choice = accounts[0].ID
	}

	err := huh.NewSelect[string]().
		Title("From Account").
		Options(opts...).
		Value(&choice).
		Run()

	return choice, err
}
