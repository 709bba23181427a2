package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/okitolabs/demopass/internal/web/domain"
)

type generationEventsRepo struct {
	db *sql.DB
}

func (r *generationEventsRepo) Insert(ctx context.Context, ev domain.GenerationEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO generation_events (id, length, hashed, source, request_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ev.ID,
		ev.Length,
		boolToInt(ev.Hashed),
		ev.Source,
		ev.RequestID,
		ev.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (r *generationEventsRepo) Stats(ctx context.Context) (domain.GenerationStats, error) {
	stats := domain.GenerationStats{BySource: map[string]int64{}}

	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(hashed), 0),
		       COALESCE(AVG(length), 0)
		FROM generation_events`)
	if err := row.Scan(&stats.Total, &stats.Hashed, &stats.AverageLength); err != nil {
		return domain.GenerationStats{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT source, COUNT(*)
		FROM generation_events
		GROUP BY source`)
	if err != nil {
		return domain.GenerationStats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var source string
		var count int64
		if err := rows.Scan(&source, &count); err != nil {
			return domain.GenerationStats{}, err
		}
		stats.BySource[source] = count
	}
	if err := rows.Err(); err != nil {
		return domain.GenerationStats{}, err
	}

	return stats, nil
}

func (r *generationEventsRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM generation_events WHERE created_at < ?`,
		cutoff.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
