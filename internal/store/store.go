// Package store owns the in-memory account state. Every read and
// write in the application goes through the Store, and after each
// mutation the full state is handed to the Persister (write-through,
// best effort).
package store

import (
	"sync"

	"github.com/pterm/pterm"

	"github.com/dgarcia1724/prestige-finance/internal/model"
)

type Store struct {
	mu        sync.Mutex
	state     model.AccountState
	persister Persister
}

// New builds a store around the given initial state. persister may be
// nil to disable write-through.
func New(state model.AccountState, persister Persister) *Store {
	return &Store{state: state, persister: persister}
}

// SelectAccount records id as the selected account. The id is not
// checked for existence; downstream lookups report not found instead.
func (s *Store) SelectAccount(id string) {
	s.mu.Lock()
	s.state.SelectedAccountID = id
	snap := SnapshotOf(s.state)
	s.mu.Unlock()

	s.persist(snap)
}

// Deposit adds amount (cents) to the account's balance. Unknown ids
// are a silent no-op. No transaction record is appended, so balance
// and history are allowed to diverge.
func (s *Store) Deposit(id string, amount int64) {
	s.applyDelta(id, amount)
}

// Withdraw subtracts amount (cents) from the account's balance. The
// store performs no sufficiency check; that is enforced by callers.
func (s *Store) Withdraw(id string, amount int64) {
	s.applyDelta(id, -amount)
}

// ReplaceState overwrites accounts and selection wholesale. Used at
// startup to apply a persisted snapshot over the seed default.
func (s *Store) ReplaceState(state model.AccountState) {
	s.mu.Lock()
	s.state = state
	snap := SnapshotOf(s.state)
	s.mu.Unlock()

	s.persist(snap)
}

func (s *Store) applyDelta(id string, delta int64) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.state.Accounts[i].Balance += delta
	snap := SnapshotOf(s.state)
	s.mu.Unlock()

	s.persist(snap)
}

// Accounts returns a copy of the account list.
func (s *Store) Accounts() []model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Account, len(s.state.Accounts))
	copy(out, s.state.Accounts)
	return out
}

// Account looks up one account by id.
func (s *Store) Account(id string) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.state.Accounts[i], nil
	}
	return model.Account{}, ErrNotFound
}

// Selected returns the currently selected account. A missing or
// dangling selection reports ErrNotFound.
func (s *Store) Selected() (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(s.state.SelectedAccountID); i >= 0 {
		return s.state.Accounts[i], nil
	}
	return model.Account{}, ErrNotFound
}

func (s *Store) SelectedAccountID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SelectedAccountID
}

func (s *Store) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.state.Accounts {
		if s.state.Accounts[i].ID == id {
			return i
		}
	}
	return -1
}

// persist is fire and forget: a failed write is reported but never
// blocks or fails the mutation that triggered it.
func (s *Store) persist(snap Snapshot) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(snap); err != nil {
		pterm.Warning.Printfln("Failed to persist account state: %v", err)
	}
}
