package db

import (
	"errors"
	"fmt"
)

var (
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrItemNotFound      = errors.New("maintenance item not found")
	ErrDuplicateVehicle  = errors.New("vehicle already exists")
	ErrDuplicateItem     = errors.New("maintenance item already exists")
	ErrBlankName         = errors.New("name must not be blank")
	ErrNegativeValue     = errors.New("value must not be negative")
	ErrSnapshotNotFound  = errors.New("snapshot file does not exist")
	ErrSnapshotMalformed = errors.New("snapshot is malformed")
)

// PersistenceError reports a failure to read, write, encode or decode a snapshot.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s snapshot: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s snapshot %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
