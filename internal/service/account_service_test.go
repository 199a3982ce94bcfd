package service

import (
	"testing"

	"github.com/dgarcia1724/prestige-finance/internal/config"
	"github.com/dgarcia1724/prestige-finance/internal/model"
	"github.com/dgarcia1724/prestige-finance/internal/store"
)

func newTestAccounts(cfg *config.Config) *AccountService {
	st := store.New(model.AccountState{
		Accounts: []model.Account{
			{ID: "acc_001", Type: "Checking", Balance: 540089},
			{ID: "acc_003", Type: "Credit Card", Balance: -320045},
		},
		SelectedAccountID: "acc_001",
	}, nil)
	return NewAccountService(st, cfg)
}

func TestFormattedBalance(t *testing.T) {
	as := newTestAccounts(nil)

	tests := []struct {
		name    string
		balance int64
		want    string
	}{
		{name: "positive", balance: 540089, want: "$5,400.89"},
		{name: "negative shows magnitude", balance: -320045, want: "$3,200.45"},
		{name: "zero", balance: 0, want: "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := as.FormattedBalance(model.Account{Balance: tt.balance})
			if got != tt.want {
				t.Errorf("FormattedBalance(%d) = %q, want %q", tt.balance, got, tt.want)
			}
		})
	}
}

func TestCurrency(t *testing.T) {
	if got := newTestAccounts(nil).Currency(); got != "USD" {
		t.Errorf("Currency with no config = %q, want USD", got)
	}

	cfg := config.NewDefault()
	cfg.Defaults.Currency = "EUR"
	if got := newTestAccounts(cfg).Currency(); got != "EUR" {
		t.Errorf("Currency = %q, want EUR", got)
	}
}

func TestAvailable(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		want    int64
	}{
		{name: "positive balance", balance: 540089, want: 540089},
		{name: "credit owed spends against magnitude", balance: -320045, want: 320045},
		{name: "zero", balance: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Available(model.Account{Balance: tt.balance}); got != tt.want {
				t.Errorf("Available(%d) = %d, want %d", tt.balance, got, tt.want)
			}
		})
	}
}
