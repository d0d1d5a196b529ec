package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nsellier/brigade/internal/common"
	"github.com/nsellier/brigade/internal/model"
	"github.com/nsellier/brigade/internal/service"
)

const talentColumns = `id, name, occupations, city, active, available_from, rating, hourly_min, hourly_max, created_at`

// QueryTalents returns profiles matching the hard-filter criteria, ordered
// most-recently-created first. That order is the documented tie-break for
// equal match scores downstream.
func (s *SQLiteStorage) QueryTalents(ctx context.Context, filter service.TalentFilter) ([]model.TalentProfile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(filter.OccupationKey, "filter.OccupationKey"); err != nil {
		return nil, err
	}

	var conditions []string
	var args []any

	// Occupations are stored comma-separated; wrap both sides in commas so
	// the membership test never matches on a key prefix.
	conditions = append(conditions, `(',' || occupations || ',') LIKE ?`)
	args = append(args, "%,"+filter.OccupationKey+",%")

	if filter.City != "" {
		conditions = append(conditions, `LOWER(city) = LOWER(?)`)
		args = append(args, filter.City)
	}

	if filter.OnlyActive {
		conditions = append(conditions, `active = 1`)
	}

	if filter.AvailableBy != nil {
		conditions = append(conditions, `(available_from IS NULL OR available_from <= ?)`)
		args = append(args, filter.AvailableBy.UTC())
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM talents
		WHERE %s
		ORDER BY created_at DESC, id`, talentColumns, strings.Join(conditions, " AND "))

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPoolQuery, err)
	}
	defer func() { _ = rows.Close() }()

	return scanTalents(rows)
}

// SaveTalent inserts or updates a profile. A missing ID or creation time is
// filled in before validation.
func (s *SQLiteStorage) SaveTalent(ctx context.Context, talent *model.TalentProfile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if talent == nil {
		return fmt.Errorf("talent is required")
	}

	if talent.ID == "" {
		talent.ID = uuid.NewString()
	}
	if talent.CreatedAt.IsZero() {
		talent.CreatedAt = time.Now().UTC()
	}

	if err := s.validate.Struct(talent); err != nil {
		return fmt.Errorf("invalid talent profile: %w", err)
	}

	var availableFrom any
	if talent.AvailableFrom != nil {
		availableFrom = talent.AvailableFrom.UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO talents (id, name, occupations, city, active, available_from, rating, hourly_min, hourly_max, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			occupations = excluded.occupations,
			city = excluded.city,
			active = excluded.active,
			available_from = excluded.available_from,
			rating = excluded.rating,
			hourly_min = excluded.hourly_min,
			hourly_max = excluded.hourly_max
	`, talent.ID, talent.Name, strings.Join(talent.Occupations, ","), talent.City,
		talent.Active, availableFrom, talent.Rating, talent.HourlyMin, talent.HourlyMax,
		talent.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to save talent: %w", err)
	}

	return nil
}

// GetTalent retrieves one profile by ID.
func (s *SQLiteStorage) GetTalent(ctx context.Context, id string) (*model.TalentProfile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s
		FROM talents
		WHERE id = ?`, talentColumns), id)

	talent, err := scanTalent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get talent: %w", err)
	}

	return talent, nil
}

// ListTalents returns every profile, most-recently-created first.
func (s *SQLiteStorage) ListTalents(ctx context.Context) ([]model.TalentProfile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s
		FROM talents
		ORDER BY created_at DESC, id`, talentColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to list talents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTalents(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTalent(row rowScanner) (*model.TalentProfile, error) {
	var talent model.TalentProfile
	var occupations string
	var availableFrom sql.NullTime
	var rating, hourlyMin, hourlyMax sql.NullFloat64

	err := row.Scan(
		&talent.ID,
		&talent.Name,
		&occupations,
		&talent.City,
		&talent.Active,
		&availableFrom,
		&rating,
		&hourlyMin,
		&hourlyMax,
		&talent.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	talent.Occupations = strings.Split(occupations, ",")
	if availableFrom.Valid {
		t := availableFrom.Time
		talent.AvailableFrom = &t
	}
	if rating.Valid {
		v := rating.Float64
		talent.Rating = &v
	}
	if hourlyMin.Valid {
		v := hourlyMin.Float64
		talent.HourlyMin = &v
	}
	if hourlyMax.Valid {
		v := hourlyMax.Float64
		talent.HourlyMax = &v
	}

	return &talent, nil
}

func scanTalents(rows *sql.Rows) ([]model.TalentProfile, error) {
	var talents []model.TalentProfile
	for rows.Next() {
		talent, err := scanTalent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan talent: %w", err)
		}
		talents = append(talents, *talent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate talents: %w", err)
	}
	return talents, nil
}
