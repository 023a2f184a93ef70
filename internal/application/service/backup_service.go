package service

import (
	"context"
	"log/slog"

	"github.com/techgrove/repairdesk/internal/domain/repository"
	"github.com/techgrove/repairdesk/pkg/apperror"
)

// BackupService exports the full record set as a snapshot document and
// restores from one
type BackupService struct {
	backupRepo repository.BackupRepository
}

// NewBackupService creates a new backup service
func NewBackupService(backupRepo repository.BackupRepository) *BackupService {
	return &BackupService{backupRepo: backupRepo}
}

// Export captures every entity kind plus a timestamp
func (s *BackupService) Export(ctx context.Context) (*repository.BackupData, error) {
	data, err := s.backupRepo.ExportAll(ctx)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}

	slog.Info("backup exported",
		"customers", len(data.Customers),
		"tickets", len(data.Tickets),
		"inventory", len(data.Inventory),
		"invoices", len(data.Invoices))
	return data, nil
}

// Restore wipes all tables and reloads them from the snapshot. Ids are
// regenerated; relationships are preserved through remapped foreign keys.
func (s *BackupService) Restore(ctx context.Context, data *repository.BackupData) error {
	if data == nil {
		return apperror.NewBadRequestError("Backup data is required")
	}

	if err := s.backupRepo.RestoreAll(ctx, data); err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewStorageError(err)
	}

	slog.Info("backup restored",
		"customers", len(data.Customers),
		"tickets", len(data.Tickets),
		"inventory", len(data.Inventory),
		"invoices", len(data.Invoices))
	return nil
}
