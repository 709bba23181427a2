package domain

import "time"

// Generation sources.
const (
	SourceAPI = "api"
	SourceCLI = "cli"
)

// GenerationEvent is the audit record written for every generated credential.
// Only metadata is recorded; the credential itself never touches storage.
type GenerationEvent struct {
	ID        string // ULID
	Length    int
	Hashed    bool
	Source    string // "api" or "cli"
	RequestID string // HTTP request id, empty for CLI generations
	CreatedAt time.Time
}

// GenerationStats aggregates the audit log.
type GenerationStats struct {
	Total         int64
	Hashed        int64
	AverageLength float64
	BySource      map[string]int64
}
