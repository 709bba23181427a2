package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/okitolabs/demopass/internal/web/domain"
	"github.com/okitolabs/demopass/internal/web/store/drivers/sqlite"
	"github.com/okitolabs/demopass/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "demopass.db")
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func event(length int, hashed bool, source string, at time.Time) domain.GenerationEvent {
	return domain.GenerationEvent{
		ID:        idx.NewAt(at).String(),
		Length:    length,
		Hashed:    hashed,
		Source:    source,
		CreatedAt: at,
	}
}

func TestGenerationEventsStats(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	repo := st.GenerationEvents()

	now := time.Now().UTC()
	require.NoError(t, repo.Insert(ctx, event(16, true, domain.SourceAPI, now)))
	require.NoError(t, repo.Insert(ctx, event(8, false, domain.SourceAPI, now)))
	require.NoError(t, repo.Insert(ctx, event(12, false, domain.SourceCLI, now)))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), stats.Total)
	require.Equal(t, int64(1), stats.Hashed)
	require.InDelta(t, 12.0, stats.AverageLength, 0.001)
	require.Equal(t, int64(2), stats.BySource[domain.SourceAPI])
	require.Equal(t, int64(1), stats.BySource[domain.SourceCLI])
}

func TestGenerationEventsStatsEmpty(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	stats, err := st.GenerationEvents().Stats(context.Background())
	require.NoError(t, err)
	require.Zero(t, stats.Total)
	require.Zero(t, stats.Hashed)
	require.Zero(t, stats.AverageLength)
	require.Empty(t, stats.BySource)
}

func TestGenerationEventsDeleteOlderThan(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	repo := st.GenerationEvents()

	now := time.Now().UTC()
	require.NoError(t, repo.Insert(ctx, event(16, false, domain.SourceAPI, now.Add(-48*time.Hour))))
	require.NoError(t, repo.Insert(ctx, event(16, false, domain.SourceAPI, now.Add(-24*time.Hour))))
	require.NoError(t, repo.Insert(ctx, event(16, false, domain.SourceAPI, now)))

	deleted, err := repo.DeleteOlderThan(ctx, now.Add(-36*time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.Total)
}

func TestPing(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	require.NoError(t, st.Ping(context.Background()))
}
