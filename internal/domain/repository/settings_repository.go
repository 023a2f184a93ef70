package repository

import (
	"context"

	"github.com/techgrove/repairdesk/internal/domain/entity"
)

// SettingsRepository defines the interface for settings data access
type SettingsRepository interface {
	Get(ctx context.Context, key string) (*entity.Setting, error)
	// Set upserts the value for a key, refreshing its updated_at timestamp.
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) ([]entity.Setting, error)
	// SeedDefaults inserts the given settings only where the key is absent.
	SeedDefaults(ctx context.Context, defaults map[string]string) error
}
