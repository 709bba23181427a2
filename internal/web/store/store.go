package store

import (
	"context"
	"errors"
	"time"

	"github.com/okitolabs/demopass/internal/web/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	GenerationEvents() GenerationEvents

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type GenerationEvents interface {
	// Insert records a generation audit event (id is provided by app via ULID).
	Insert(ctx context.Context, ev domain.GenerationEvent) error

	// Stats aggregates the audit log.
	Stats(ctx context.Context) (domain.GenerationStats, error)

	// DeleteOlderThan prunes events created before the cutoff and reports
	// how many rows were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
