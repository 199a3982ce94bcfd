package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "prestige.db"), os.DirFS("../.."))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreEmpty(t *testing.T) {
	s := newTestSQLiteStore(t)

	if _, err := s.Load(); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("Load on fresh database: err = %v, want ErrNoSnapshot", err)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.Save(SnapshotOf(testState())); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.SelectedAccountID != "acc_001" {
		t.Errorf("SelectedAccountID = %q, want acc_001", loaded.SelectedAccountID)
	}
	if len(loaded.Accounts) != 3 || loaded.Accounts[0].Balance != 540089 {
		t.Errorf("accounts = %+v, want the saved state back", loaded.Accounts)
	}
}

func TestSQLiteStoreUpsert(t *testing.T) {
	s := newTestSQLiteStore(t)

	state := testState()
	if err := s.Save(SnapshotOf(state)); err != nil {
		t.Fatal(err)
	}

	state.Accounts[0].Balance = 999999
	state.SelectedAccountID = "acc_002"
	if err := s.Save(SnapshotOf(state)); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Accounts[0].Balance != 999999 || loaded.SelectedAccountID != "acc_002" {
		t.Errorf("loaded = balance %d selection %q, want the second save",
			loaded.Accounts[0].Balance, loaded.SelectedAccountID)
	}
}
