package views

import (
	"github.com/pterm/pterm"

	"github.com/dgarcia1724/prestige-finance/internal/model"
)

// RenderSendReview prints the review step shown before a payment is
// committed.
func RenderSendReview(from model.Account, to model.Friend, amount, description string) error {
	pterm.DefaultSection.Println("Review Transaction")

	if description == "" {
		description = "-"
	}

	tableData := pterm.TableData{
		{"From", pterm.Sprintf("%s %s", from.Type, from.MaskedNumber())},
		{"To", to.Name},
		{"Amount", amount},
		{"Description", description},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

// RenderSendSuccess prints the success page after the withdraw has
// been applied.
func RenderSendSuccess(to model.Friend, amount string) {
	pterm.Success.Println("Money Sent Successfully!")
	pterm.Printfln("Sent %s to %s", pterm.Bold.Sprint(amount), to.Name)
}
