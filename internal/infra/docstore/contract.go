package docstore

import (
	"context"
	"encoding/json"
)

// Snapshot is the full content of one collection: key -> document
type Snapshot map[string]json.RawMessage

// SnapshotFunc receives every emission of a subscription
type SnapshotFunc func(Snapshot)

// Unsubscribe releases a subscription. Safe to call more than once.
type Unsubscribe func()

// Store is the realtime document store the service keeps its state in.
// Paths have the form "<collection>/<key>".
type Store interface {
	// Subscribe delivers the current snapshot of collection and then a fresh
	// snapshot after every change, until ctx is done or Unsubscribe is called.
	Subscribe(ctx context.Context, collection string, onSnapshot SnapshotFunc) (Unsubscribe, error)

	// Get reads one document. Returns ErrNotFound when absent.
	Get(ctx context.Context, path string) (json.RawMessage, error)

	// GetCollection reads a whole collection once
	GetCollection(ctx context.Context, collection string) (Snapshot, error)

	// Set overwrites the document at path unconditionally
	Set(ctx context.Context, path string, value interface{}) error

	// Update merges fields into the existing document. Returns ErrNotFound when absent.
	Update(ctx context.Context, path string, fields map[string]interface{}) error

	// Delete removes the document. Deleting a missing document is not an error.
	Delete(ctx context.Context, path string) error

	// Push stores value under a new time-ordered key and returns the key
	Push(ctx context.Context, collection string, value interface{}) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
