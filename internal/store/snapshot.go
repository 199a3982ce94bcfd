package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgarcia1724/prestige-finance/internal/constants"
	"github.com/dgarcia1724/prestige-finance/internal/model"
)

// Persister receives the full state after every mutation.
type Persister interface {
	Save(Snapshot) error
}

// SnapshotStore is the persistence collaborator: a key-value store
// holding one serialized snapshot of the account state.
type SnapshotStore interface {
	Persister
	Load() (Snapshot, error)
	Close() error
}

// Meta travels with every snapshot so a schema change can be detected
// instead of silently mis-decoded.
type Meta struct {
	Format    string    `json:"format"`
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// Snapshot is the full serialized account state persisted across
// sessions.
type Snapshot struct {
	Meta              Meta            `json:"_meta"`
	Accounts          []model.Account `json:"accounts"`
	SelectedAccountID string          `json:"selectedAccountId"`
}

// SnapshotOf captures the given state under the current schema
// version.
func SnapshotOf(state model.AccountState) Snapshot {
	return Snapshot{
		Meta: Meta{
			Format:    constants.SnapshotFormat,
			Version:   constants.SnapshotVersion,
			Timestamp: time.Now(),
		},
		Accounts:          state.Accounts,
		SelectedAccountID: state.SelectedAccountID,
	}
}

// State converts the snapshot back into live account state.
func (s Snapshot) State() model.AccountState {
	return model.AccountState{
		Accounts:          s.Accounts,
		SelectedAccountID: s.SelectedAccountID,
	}
}

func decodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("corrupt snapshot: %w", err)
	}
	if snap.Meta.Version != constants.SnapshotVersion {
		return Snapshot{}, fmt.Errorf("unsupported snapshot version %d", snap.Meta.Version)
	}
	return snap, nil
}
