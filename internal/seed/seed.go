// Package seed loads the compiled-in default dataset used when no
// snapshot exists.
package seed

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/dgarcia1724/prestige-finance/internal/model"
	"github.com/dgarcia1724/prestige-finance/internal/utils"
)

// The embedded JSON carries amounts as decimal numbers; they are
// converted to cents on load.
type seedTransaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

type seedAccount struct {
	ID            string            `json:"id"`
	Type          string            `json:"type"`
	Balance       float64           `json:"balance"`
	AccountNumber string            `json:"accountNumber"`
	Transactions  []seedTransaction `json:"transactions"`
}

// State parses the embedded account dataset. The first account starts
// out selected, matching a fresh session.
func State(assets fs.FS) (model.AccountState, error) {
	data, err := fs.ReadFile(assets, "seed/accounts.json")
	if err != nil {
		return model.AccountState{}, fmt.Errorf("failed to read seed accounts: %w", err)
	}

	var raw []seedAccount
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.AccountState{}, fmt.Errorf("failed to parse seed accounts: %w", err)
	}

	state := model.AccountState{Accounts: make([]model.Account, 0, len(raw))}
	for _, sa := range raw {
		acc := model.Account{
			ID:            sa.ID,
			Type:          sa.Type,
			AccountNumber: sa.AccountNumber,
			Balance:       utils.CentsFromFloat(sa.Balance),
		}
		for _, st := range sa.Transactions {
			acc.Transactions = append(acc.Transactions, model.Transaction{
				ID:          st.ID,
				Date:        st.Date,
				Amount:      utils.CentsFromFloat(st.Amount),
				Description: st.Description,
				Category:    st.Category,
			})
		}
		state.Accounts = append(state.Accounts, acc)
	}

	if len(state.Accounts) > 0 {
		state.SelectedAccountID = state.Accounts[0].ID
	}

	return state, nil
}

// Friends parses the embedded friends list.
func Friends(assets fs.FS) ([]model.Friend, error) {
	data, err := fs.ReadFile(assets, "seed/friends.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read seed friends: %w", err)
	}

	var friends []model.Friend
	if err := json.Unmarshal(data, &friends); err != nil {
		return nil, fmt.Errorf("failed to parse seed friends: %w", err)
	}
	return friends, nil
}
