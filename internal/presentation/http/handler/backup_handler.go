package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/techgrove/repairdesk/internal/application/service"
	"github.com/techgrove/repairdesk/internal/domain/repository"
	"github.com/techgrove/repairdesk/internal/presentation/http/dto/response"
)

// BackupHandler handles backup and restore HTTP requests
type BackupHandler struct {
	backupService *service.BackupService
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export handles exporting the full record set as a JSON snapshot
func (h *BackupHandler) Export(c *gin.Context) {
	data, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Backup exported successfully", data)
}

// Restore handles replacing all records from a snapshot. The import is
// all-or-nothing; on failure the existing data is untouched.
func (h *BackupHandler) Restore(c *gin.Context) {
	var data repository.BackupData
	if !bindJSON(c, &data) {
		return
	}

	if err := h.backupService.Restore(c.Request.Context(), &data); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Backup restored successfully", nil)
}
