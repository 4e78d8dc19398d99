package settings

import (
	"context"
	"errors"

	"github.com/sshraki/Attendance/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: settingsRepo}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.Settings, error) {
	stored, err := s.SettingsRepository.Get(ctx)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, settings.ErrSettingsNotFound) {
		return settings.Settings{}, err
	}

	created, err := s.SettingsRepository.Create(ctx, settings.Default())
	if err != nil {
		// Another caller may have created the row first.
		if stored, getErr := s.SettingsRepository.Get(ctx); getErr == nil {
			return stored, nil
		}
		return settings.Settings{}, err
	}

	return created, nil
}

// Update implements settings.SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.Settings, error) {
	if err := req.Validate(); err != nil {
		return settings.Settings{}, err
	}

	current, err := s.Get(ctx)
	if err != nil {
		return settings.Settings{}, err
	}

	current.MaxBreakTime = req.MaxBreakTime
	current.MaxLateTime = req.MaxLateTime
	current.MaxOvertime = req.MaxOvertime
	current.MinCheckInTime = req.MinCheckInTime
	current.MaxCheckInTime = req.MaxCheckInTime
	current.MinCheckOutTime = req.MinCheckOutTime
	current.MaxCheckOutTime = req.MaxCheckOutTime
	current.WorkingHoursPerDay = req.WorkingHoursPerDay

	return s.SettingsRepository.Update(ctx, current)
}
