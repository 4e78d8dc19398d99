package settings

import "context"

// SettingsService exposes the time-policy configuration.
type SettingsService interface {
	// Get returns the active settings, creating the default row when none
	// exists.
	Get(ctx context.Context) (Settings, error)

	// Update replaces the singleton with req and returns the stored result.
	Update(ctx context.Context, req UpdateSettingsRequest) (Settings, error)
}
