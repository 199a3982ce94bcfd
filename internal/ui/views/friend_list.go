package views

import (
	"github.com/pterm/pterm"

	"github.com/dgarcia1724/prestige-finance/internal/model"
)

type FriendListView struct{}

func NewFriendListView() *FriendListView {
	return &FriendListView{}
}

// Render prints the friends page.
func (v *FriendListView) Render(friends []model.Friend) error {
	pterm.DefaultSection.Println("Friends")
	pterm.FgGray.Println("Send money to your friends and family")

	if len(friends) == 0 {
		pterm.Warning.Println("No friends found")
		return nil
	}

	tableData := pterm.TableData{{"Name", "ID", "Profile"}}
	for _, f := range friends {
		tableData = append(tableData, []string{f.Name, f.UserID, f.ProfileImage})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d friends\n", len(friends))
	pterm.FgGray.Println("Tip: prestige send --friend <id> starts a payment to them")
	return nil
}
