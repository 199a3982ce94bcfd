package model

import "strings"

// Account is a balance-bearing entity with its own transaction
// history. Balance is signed cents: negative means amount owed, as on
// a credit card.
type Account struct {
	ID            string        `json:"id"`
	Type          string        `json:"type"`
	AccountNumber string        `json:"accountNumber"`
	Balance       int64         `json:"balance"`
	Transactions  []Transaction `json:"transactions"`
}

// MaskedNumber reduces the account number to its last four digits for
// display.
func (a Account) MaskedNumber() string {
	digits := strings.ReplaceAll(a.AccountNumber, " ", "")
	if len(digits) < 4 {
		return a.AccountNumber
	}
	return "•••• " + digits[len(digits)-4:]
}

// Transaction is immutable once recorded. Amount is signed cents:
// negative = debit, positive = credit.
type Transaction struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Friend is read-only reference data for the send-money flow.
type Friend struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage"`
}

// AccountState is the root aggregate owned by the store. The selected
// id may dangle; lookups treat that as not found rather than failing.
type AccountState struct {
	Accounts          []Account `json:"accounts"`
	SelectedAccountID string    `json:"selectedAccountId"`
}
