package views

import (
	"github.com/pterm/pterm"

	"github.com/dgarcia1724/prestige-finance/internal/model"
)

// RenderAccountProfile prints the profile page for one account.
func RenderAccountProfile(acc model.Account, formattedBalance string) error {
	pterm.DefaultSection.Println("Account Profile")

	balanceStr := formattedBalance
	if acc.Balance < 0 {
		balanceStr = pterm.Red(formattedBalance)
	}

	tableData := pterm.TableData{
		{"Type", acc.Type},
		{"Account Number", acc.MaskedNumber()},
		{"Current Balance", balanceStr},
		{"Status", pterm.Green("Active")},
		{"Transactions", pterm.Sprintf("%d on record", len(acc.Transactions))},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

// RenderAccountNotFound is the recoverable fallback when a lookup
// misses; it is a page, not an error.
func RenderAccountNotFound() {
	pterm.DefaultSection.Println("Account Not Found")
	pterm.FgGray.Println("The requested account could not be found.")
}
