package storage

import (
	"context"
	"errors"

	"github.com/tiwariParth/todo/internal/models"
)

// Common errors that can be returned by any storage implementation
var (
	// ErrCorrupt is returned when a non-empty database cannot be decoded.
	ErrCorrupt = errors.New("database is corrupt")
)

// Storage defines the operations the program needs from a task database.
type Storage interface {
	// EnsureExists creates an empty database if none exists yet.
	EnsureExists(ctx context.Context) error

	// Load returns every stored task in insertion order.
	// An empty database yields an empty list.
	Load(ctx context.Context) (models.TaskList, error)

	// Save replaces the stored tasks with list.
	Save(ctx context.Context, list models.TaskList) error

	// ReadRaw returns the stored document without decoding it.
	ReadRaw(ctx context.Context) ([]byte, error)
}
