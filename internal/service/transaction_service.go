package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/dgarcia1724/prestige-finance/internal/constants"
	"github.com/dgarcia1724/prestige-finance/internal/model"
	"github.com/dgarcia1724/prestige-finance/internal/store"
	"github.com/dgarcia1724/prestige-finance/internal/utils"
)

type TransactionService struct {
	store *store.Store
}

func NewTransactionService(st *store.Store) *TransactionService {
	return &TransactionService{store: st}
}

// History returns one account's transactions in stored order
// (newest entries are prepended by convention).
func (ts *TransactionService) History(accountID string) ([]model.Transaction, error) {
	acc, err := ts.store.Account(accountID)
	if err != nil {
		return nil, err
	}
	return acc.Transactions, nil
}

// Filter is a set of optional predicates ANDed together; a nil or
// empty field imposes no constraint on its dimension.
type Filter struct {
	Start    *time.Time
	End      *time.Time
	Min      *int64 // cents, compared against the absolute amount
	Max      *int64
	Category string
}

// Apply returns the subsequence of txs satisfying every supplied
// predicate, preserving input order.
func (f Filter) Apply(txs []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}

func (f Filter) matches(tx model.Transaction) bool {
	if f.Start != nil || f.End != nil {
		d, err := time.Parse(constants.DateFormat, tx.Date)
		if err != nil {
			return false
		}
		if f.Start != nil && d.Before(*f.Start) {
			return false
		}
		if f.End != nil && d.After(*f.End) {
			return false
		}
	}

	// Sign is ignored so "transactions around $100" matches debits
	// and credits alike.
	abs := tx.Amount
	if abs < 0 {
		abs = -abs
	}
	if f.Min != nil && abs < *f.Min {
		return false
	}
	if f.Max != nil && abs > *f.Max {
		return false
	}

	if f.Category != "" && tx.Category != f.Category {
		return false
	}
	return true
}

// ParseFilter builds a Filter from raw user input; empty strings leave
// the corresponding dimension unconstrained.
func ParseFilter(from, to, min, max, category string) (Filter, error) {
	f := Filter{Category: strings.TrimSpace(category)}

	if from != "" {
		d, err := time.Parse(constants.DateFormat, from)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid start date %q (want YYYY-MM-DD)", from)
		}
		f.Start = &d
	}
	if to != "" {
		d, err := time.Parse(constants.DateFormat, to)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid end date %q (want YYYY-MM-DD)", to)
		}
		f.End = &d
	}
	if min != "" {
		cents, err := utils.ParseToCents(min)
		if err != nil {
			return Filter{}, err
		}
		f.Min = &cents
	}
	if max != "" {
		cents, err := utils.ParseToCents(max)
		if err != nil {
			return Filter{}, err
		}
		f.Max = &cents
	}

	return f, nil
}
