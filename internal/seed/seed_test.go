package seed

import (
	"os"
	"testing"
)

// The dataset lives at the repository root; os.DirFS stands in for
// the embed.FS main.go provides.
func TestState(t *testing.T) {
	state, err := State(os.DirFS("../.."))
	if err != nil {
		t.Fatalf("State: %v", err)
	}

	if len(state.Accounts) != 6 {
		t.Fatalf("accounts = %d, want 6", len(state.Accounts))
	}
	if state.SelectedAccountID != "acc_001" {
		t.Errorf("SelectedAccountID = %q, want the first account", state.SelectedAccountID)
	}

	first := state.Accounts[0]
	if first.Type != "Checking Account" {
		t.Errorf("type = %q, want Checking Account", first.Type)
	}
	if first.Balance != 540089 {
		t.Errorf("balance = %d cents, want 540089", first.Balance)
	}
	if len(first.Transactions) == 0 {
		t.Fatal("first account has no transactions")
	}
	tx := first.Transactions[0]
	if tx.ID != "txn_001" || tx.Amount != -7899 {
		t.Errorf("first transaction = %s/%d, want txn_001/-7899", tx.ID, tx.Amount)
	}
}

func TestFriends(t *testing.T) {
	friends, err := Friends(os.DirFS("../.."))
	if err != nil {
		t.Fatalf("Friends: %v", err)
	}

	if len(friends) != 5 {
		t.Fatalf("friends = %d, want 5", len(friends))
	}
	if friends[0].UserID != "usr_001" || friends[0].Name != "Sarah Chen" {
		t.Errorf("first friend = %s/%s, want usr_001/Sarah Chen", friends[0].UserID, friends[0].Name)
	}
}
