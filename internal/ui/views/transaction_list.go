package views

import (
	"github.com/pterm/pterm"

	"github.com/dgarcia1724/prestige-finance/internal/model"
)

// TransactionListItem is one display row; amounts arrive preformatted
// and signed ("+$1,000.00" / "-$78.99").
type TransactionListItem struct {
	Date        string
	Description string
	Category    string
	Amount      string
	Debit       bool
}

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

// Render prints the transaction-history page for one account.
func (v *TransactionListView) Render(acc model.Account, items []TransactionListItem) error {
	pterm.DefaultSection.Println("Transaction History")
	pterm.FgGray.Printfln("%s  %s", acc.Type, acc.MaskedNumber())

	if len(items) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{{"Date", "Description", "Category", "Amount"}}
	for _, item := range items {
		amount := pterm.Green(item.Amount)
		if item.Debit {
			amount = pterm.Red(item.Amount)
		}
		tableData = append(tableData, []string{
			item.Date, item.Description, item.Category, amount,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d transactions\n", len(items))
	return nil
}
