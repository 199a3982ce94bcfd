package views

import (
	"github.com/pterm/pterm"

	"github.com/dgarcia1724/prestige-finance/internal/model"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

// Render prints the accounts page: one row per account with its masked
// number and balance, the selected account marked. Negative balances
// (amounts owed) are shown red.
func (v *AccountListView) Render(
	accounts []model.Account,
	selectedID string,
	balance func(model.Account) string,
) error {
	tableData := pterm.TableData{{"", "Account", "Number", "Balance"}}

	for _, acc := range accounts {
		marker := ""
		if acc.ID == selectedID {
			marker = pterm.Cyan("●")
		}

		balanceStr := balance(acc)
		if acc.Balance < 0 {
			balanceStr = pterm.Red(balanceStr)
		} else {
			balanceStr = pterm.Green(balanceStr)
		}

		tableData = append(tableData, []string{
			marker, acc.Type, acc.MaskedNumber(), balanceStr,
		})
	}

	pterm.DefaultSection.Println("Your Accounts")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
	return nil
}
