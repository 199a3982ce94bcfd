package store

import "errors"

var (
	// ErrNotFound means the account id does not exist in the current
	// state.
	ErrNotFound = errors.New("account not found")

	// ErrNoSnapshot means the backing store holds no saved state yet;
	// callers fall back to seed data.
	ErrNoSnapshot = errors.New("no snapshot saved")
)
