package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nsellier/brigade/internal/service"
)

// WriteUsage inserts a batch of usage records in one transaction. Batches
// may arrive twice when an upstream flush is retried; rows are append-only
// so duplicates are tolerated.
func (s *SQLiteStorage) WriteUsage(ctx context.Context, records []service.UsageRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO usage_log (raw_text, top_occupation, confidence, secondary_occupations,
			readiness_score, readiness_status, missing_fields, location, urgency, duration,
			temporal, used_fallback, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare usage insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, record := range records {
		createdAt := record.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}

		if _, err := stmt.ExecContext(ctx,
			record.RawText,
			record.TopOccupation,
			record.Confidence,
			strings.Join(record.SecondaryOccupations, ","),
			record.ReadinessScore,
			record.ReadinessStatus,
			strings.Join(record.MissingFields, ","),
			record.Location,
			record.Urgency,
			record.Duration,
			record.Temporal,
			record.UsedFallback,
			createdAt,
		); err != nil {
			return fmt.Errorf("failed to insert usage record: %w", err)
		}
	}

	return tx.Commit()
}

// UsageStats aggregates the usage log for the inspection CLI.
func (s *SQLiteStorage) UsageStats(ctx context.Context) (*service.UsageStats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	stats := &service.UsageStats{
		ByOccupation: make(map[string]int),
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(used_fallback), 0)
		FROM usage_log
	`).Scan(&stats.Total, &stats.FallbackCount)
	if err != nil {
		return nil, fmt.Errorf("failed to read usage totals: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT top_occupation, COUNT(*)
		FROM usage_log
		WHERE top_occupation != ''
		GROUP BY top_occupation
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to read usage breakdown: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var occupation string
		var count int
		if err := rows.Scan(&occupation, &count); err != nil {
			return nil, fmt.Errorf("failed to scan usage row: %w", err)
		}
		stats.ByOccupation[occupation] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate usage rows: %w", err)
	}

	return stats, nil
}
