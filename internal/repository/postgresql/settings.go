package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sshraki/Attendance/internal/domain/settings"
	"github.com/sshraki/Attendance/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

const settingsColumns = `
	id, max_break_time, max_late_time, max_overtime,
	min_check_in_time, max_check_in_time, min_check_out_time, max_check_out_time,
	working_hours_per_day, updated_at
`

// Get implements settings.SettingsRepository.
func (r *settingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	var s settings.Settings
	err := q.QueryRow(ctx, `
		SELECT `+settingsColumns+`
		FROM settings
		LIMIT 1
	`).Scan(
		&s.ID, &s.MaxBreakTime, &s.MaxLateTime, &s.MaxOvertime,
		&s.MinCheckInTime, &s.MaxCheckInTime, &s.MinCheckOutTime, &s.MaxCheckOutTime,
		&s.WorkingHoursPerDay, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Settings{}, settings.ErrSettingsNotFound
		}
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return s, nil
}

// Create implements settings.SettingsRepository.
func (r *settingsRepository) Create(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settings (
			max_break_time, max_late_time, max_overtime,
			min_check_in_time, max_check_in_time, min_check_out_time, max_check_out_time,
			working_hours_per_day
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.MaxBreakTime, s.MaxLateTime, s.MaxOvertime,
		s.MinCheckInTime, s.MaxCheckInTime, s.MinCheckOutTime, s.MaxCheckOutTime,
		s.WorkingHoursPerDay,
	).Scan(&s.ID, &s.UpdatedAt)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to create settings: %w", err)
	}

	return s, nil
}

// Update implements settings.SettingsRepository.
func (r *settingsRepository) Update(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE settings
		SET max_break_time = $2, max_late_time = $3, max_overtime = $4,
			min_check_in_time = $5, max_check_in_time = $6,
			min_check_out_time = $7, max_check_out_time = $8,
			working_hours_per_day = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.MaxBreakTime, s.MaxLateTime, s.MaxOvertime,
		s.MinCheckInTime, s.MaxCheckInTime, s.MinCheckOutTime, s.MaxCheckOutTime,
		s.WorkingHoursPerDay,
	).Scan(&s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Settings{}, settings.ErrSettingsNotFound
		}
		return settings.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}

	return s, nil
}
