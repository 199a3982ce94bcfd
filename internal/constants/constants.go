package constants

import "time"

const (
	// Date layout used by transaction records and filter flags.
	DateFormat = "2006-01-02"

	CentsPerUnit = 100
)

const (
	// Key under which the serialized account state lives in the
	// snapshot store.
	SnapshotKey = "accountState"

	SnapshotFormat  = "json_snapshot"
	SnapshotVersion = 1
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrorDisplayWindow is how long a transient validation error stays
// visible before it clears itself.
const ErrorDisplayWindow = 3 * time.Second
