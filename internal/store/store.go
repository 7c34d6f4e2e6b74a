// Package store persists serialized snapshots. Backends share one
// blob-oriented interface so the service layer never cares whether the
// document lands in a file, Redis, or SQLite.
package store

import (
	"context"
	"errors"
)

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot stored")

// SnapshotStore saves and loads the serialized snapshot document.
// Save replaces the previous snapshot wholesale.
type SnapshotStore interface {
	Save(ctx context.Context, data []byte) error
	Load(ctx context.Context) ([]byte, error)
}
