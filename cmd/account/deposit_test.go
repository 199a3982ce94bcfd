package account

import (
	"testing"

	"github.com/dgarcia1724/prestige-finance/internal/model"
	"github.com/dgarcia1724/prestige-finance/internal/service"
	"github.com/dgarcia1724/prestige-finance/internal/store"
)

func newTestService() *service.Service {
	st := store.New(model.AccountState{
		Accounts: []model.Account{
			{ID: "acc_001", Type: "Checking Account", AccountNumber: "2345 6789 0123 4567", Balance: 540089},
			{ID: "acc_002", Type: "Savings Account", AccountNumber: "3345 6789 0123 4567", Balance: 1250000},
		},
		SelectedAccountID: "acc_001",
	}, nil)
	return service.NewService(st, nil, nil)
}

func TestDepositRunner(t *testing.T) {
	svc := newTestService()
	runner := &depositRunner{svc: svc, flags: &depositFlags{}}

	if err := runner.Run("100"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	acc, err := svc.Account.Get("acc_001")
	if err != nil {
		t.Fatal(err)
	}
	if acc.Balance != 550089 {
		t.Errorf("balance = %d, want 550089", acc.Balance)
	}
}

func TestDepositRunnerTargetsFlagAccount(t *testing.T) {
	svc := newTestService()
	runner := &depositRunner{svc: svc, flags: &depositFlags{ID: "acc_002"}}

	if err := runner.Run("50"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	selected, _ := svc.Account.Get("acc_001")
	if selected.Balance != 540089 {
		t.Errorf("selected balance = %d, want untouched 540089", selected.Balance)
	}
	target, _ := svc.Account.Get("acc_002")
	if target.Balance != 1255000 {
		t.Errorf("target balance = %d, want 1255000", target.Balance)
	}
}

func TestDepositRunnerRejectsBadAmount(t *testing.T) {
	svc := newTestService()
	runner := &depositRunner{svc: svc, flags: &depositFlags{}}

	for _, input := range []string{"0", "-5", "abc"} {
		if err := runner.Run(input); err == nil {
			t.Errorf("Run(%q) = nil, want error", input)
		}
	}

	acc, _ := svc.Account.Get("acc_001")
	if acc.Balance != 540089 {
		t.Errorf("balance = %d, want untouched 540089", acc.Balance)
	}
}

func TestDepositRunnerUnknownAccount(t *testing.T) {
	svc := newTestService()
	runner := &depositRunner{svc: svc, flags: &depositFlags{ID: "acc_404"}}

	// A miss renders the not-found page and exits cleanly.
	if err := runner.Run("100"); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestWithdrawRunner(t *testing.T) {
	svc := newTestService()
	runner := &withdrawRunner{svc: svc, flags: &withdrawFlags{}}

	if err := runner.Run("100"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	acc, _ := svc.Account.Get("acc_001")
	if acc.Balance != 530089 {
		t.Errorf("balance = %d, want 530089", acc.Balance)
	}
}

func TestWithdrawRunnerInsufficientFunds(t *testing.T) {
	svc := newTestService()
	runner := &withdrawRunner{svc: svc, flags: &withdrawFlags{}}

	if err := runner.Run("1000000"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	acc, _ := svc.Account.Get("acc_001")
	if acc.Balance != 540089 {
		t.Errorf("balance = %d, want untouched 540089", acc.Balance)
	}
}
