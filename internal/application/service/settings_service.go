package service

import (
	"context"
	"strings"

	"github.com/techgrove/repairdesk/internal/domain/repository"
	"github.com/techgrove/repairdesk/pkg/apperror"
)

// DefaultSettings are seeded at startup for keys not already present
var DefaultSettings = map[string]string{
	"company_name":    "Tech Repairs",
	"company_address": "123 Main St, City, State 12345",
	"company_phone":   "(555) 123-4567",
	"company_email":   "info@techrepairs.com",
	"tax_rate":        "8.5",
	"currency":        "USD",
	"invoice_prefix":  "INV-",
	"ticket_prefix":   "TKT-",
}

// SettingsService handles process-wide key/value configuration. Values are
// read from the store on every call; nothing is cached.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Seed inserts the default settings for keys that do not exist yet
func (s *SettingsService) Seed(ctx context.Context) error {
	return s.settingsRepo.SeedDefaults(ctx, DefaultSettings)
}

// Get returns the value for a key
func (s *SettingsService) Get(ctx context.Context, key string) (string, error) {
	setting, err := s.settingsRepo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if setting == nil {
		return "", apperror.NewNotFoundError("Setting")
	}
	return setting.Value, nil
}

// Set upserts the value for a key
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return apperror.NewBadRequestError("Setting key is required")
	}
	return s.settingsRepo.Set(ctx, key, value)
}

// All returns every setting as a key-to-value map
func (s *SettingsService) All(ctx context.Context) (map[string]string, error) {
	settings, err := s.settingsRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}
	return result, nil
}
