package settings

import "context"

// SettingsRepository owns the singleton settings row.
type SettingsRepository interface {
	// Get retrieves the active settings. Returns ErrSettingsNotFound when
	// no row exists yet.
	Get(ctx context.Context) (Settings, error)

	// Create inserts the settings row.
	Create(ctx context.Context, s Settings) (Settings, error)

	// Update replaces every field of the existing row and stamps updated_at.
	Update(ctx context.Context, s Settings) (Settings, error)
}
