package service

import (
	"errors"
	"sync"
	"time"

	"github.com/dgarcia1724/prestige-finance/internal/constants"
	"github.com/dgarcia1724/prestige-finance/internal/model"
	"github.com/dgarcia1724/prestige-finance/internal/utils"
)

// SendState tracks the short-lived send-money flow layered on top of
// the account store.
type SendState int

const (
	StateComposing SendState = iota
	StateReviewing
	StateSuccess
)

func (s SendState) String() string {
	switch s {
	case StateComposing:
		return "composing"
	case StateReviewing:
		return "reviewing"
	case StateSuccess:
		return "success"
	}
	return "unknown"
}

var (
	ErrNoRecipient       = errors.New("please select a recipient")
	ErrInvalidAmount     = errors.New("please enter a valid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// SendFlow is the compose → review → confirm state machine. A failed
// validation keeps the flow at Composing, preserves the entered data,
// and raises a transient error that clears itself after a fixed
// display window.
type SendFlow struct {
	accounts *AccountService

	state       SendState
	amountCents int64

	Recipient   *model.Friend
	AmountInput string
	Description string

	window     time.Duration
	onErrClear func()

	mu       sync.Mutex
	errMsg   string
	errTimer *time.Timer
}

func NewSendFlow(accounts *AccountService) *SendFlow {
	return &SendFlow{
		accounts: accounts,
		window:   constants.ErrorDisplayWindow,
	}
}

func (f *SendFlow) State() SendState { return f.state }

// Amount is the validated amount in cents, set by a successful Review.
func (f *SendFlow) Amount() int64 { return f.amountCents }

// Err returns the transient validation message, or "" once it has
// cleared.
func (f *SendFlow) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// OnErrorCleared registers a hook fired when the display window
// elapses, so a live view can repaint.
func (f *SendFlow) OnErrorCleared(fn func()) {
	f.onErrClear = fn
}

// Review validates the composed form and advances to Reviewing:
// a recipient must be chosen, the amount must parse to a positive
// number, and it may not exceed the selected account's available
// balance.
func (f *SendFlow) Review() error {
	if f.state != StateComposing {
		return nil
	}

	if f.Recipient == nil {
		return f.raise(ErrNoRecipient)
	}

	account, err := f.accounts.Selected()
	if err != nil {
		return f.raise(err)
	}

	cents, err := utils.ParseToCents(f.AmountInput)
	if err != nil || cents <= 0 {
		return f.raise(ErrInvalidAmount)
	}
	if cents > Available(account) {
		return f.raise(ErrInsufficientFunds)
	}

	f.amountCents = cents
	f.state = StateReviewing
	return nil
}

// Confirm commits the reviewed payment: exactly one withdraw against
// the selected account, then Success. There is no partial-failure path
// and no re-check of sufficiency at this point.
func (f *SendFlow) Confirm() {
	if f.state != StateReviewing {
		return
	}
	f.accounts.Withdraw(f.accounts.SelectedID(), f.amountCents)
	f.state = StateSuccess
}

// Cancel returns from Reviewing to Composing with all form fields
// intact.
func (f *SendFlow) Cancel() {
	if f.state == StateReviewing {
		f.state = StateComposing
	}
}

// Reset clears the form for another payment ("Send Another Payment").
func (f *SendFlow) Reset() {
	f.Recipient = nil
	f.AmountInput = ""
	f.Description = ""
	f.amountCents = 0
	f.state = StateComposing
	f.clearError()
}

// Close cancels any pending error-clear timer; call when the view
// goes away.
func (f *SendFlow) Close() {
	f.clearError()
}

// raise surfaces err transiently: a new error resets the pending clear
// timer rather than stacking a second one.
func (f *SendFlow) raise(err error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.errMsg = err.Error()
	if f.errTimer != nil {
		f.errTimer.Stop()
	}
	f.errTimer = time.AfterFunc(f.window, func() {
		f.mu.Lock()
		f.errMsg = ""
		f.errTimer = nil
		f.mu.Unlock()
		if f.onErrClear != nil {
			f.onErrClear()
		}
	})
	return err
}

func (f *SendFlow) clearError() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errMsg = ""
	if f.errTimer != nil {
		f.errTimer.Stop()
		f.errTimer = nil
	}
}
