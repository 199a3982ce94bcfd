package service

import (
	"github.com/dgarcia1724/prestige-finance/internal/config"
	"github.com/dgarcia1724/prestige-finance/internal/model"
	"github.com/dgarcia1724/prestige-finance/internal/store"
	"github.com/dgarcia1724/prestige-finance/internal/utils"
)

// AccountService is the narrow mutation and lookup API every page
// consumes; it is handed down explicitly, never reached as a global.
type AccountService struct {
	store *store.Store
	cfg   *config.Config
}

func NewAccountService(st *store.Store, cfg *config.Config) *AccountService {
	return &AccountService{store: st, cfg: cfg}
}

func (as *AccountService) All() []model.Account {
	return as.store.Accounts()
}

func (as *AccountService) Get(id string) (model.Account, error) {
	return as.store.Account(id)
}

func (as *AccountService) Selected() (model.Account, error) {
	return as.store.Selected()
}

func (as *AccountService) SelectedID() string {
	return as.store.SelectedAccountID()
}

func (as *AccountService) Select(id string) {
	as.store.SelectAccount(id)
}

func (as *AccountService) Deposit(id string, amount int64) {
	as.store.Deposit(id, amount)
}

// Withdraw passes straight through; funds sufficiency is a UI-layer
// concern (see SendFlow), not a store invariant.
func (as *AccountService) Withdraw(id string, amount int64) {
	as.store.Withdraw(id, amount)
}

// FormattedBalance renders the balance magnitude in the configured
// currency, e.g. "$3,200.45" for a credit card owing 3200.45.
func (as *AccountService) FormattedBalance(a model.Account) string {
	return utils.FormatAbsCents(a.Balance, as.Currency())
}

func (as *AccountService) Currency() string {
	if as.cfg != nil && as.cfg.Defaults.Currency != "" {
		return as.cfg.Defaults.Currency
	}
	return "USD"
}

// Available is the spendable magnitude used by sufficiency checks: the
// absolute balance, so credit accounts can spend against their limit
// the way the original product did.
func Available(a model.Account) int64 {
	if a.Balance < 0 {
		return -a.Balance
	}
	return a.Balance
}
