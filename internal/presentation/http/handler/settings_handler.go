package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/techgrove/repairdesk/internal/application/service"
	"github.com/techgrove/repairdesk/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetAll handles getting every setting as a key/value map
func (h *SettingsHandler) GetAll(c *gin.Context) {
	settings, err := h.settingsService.All(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Get handles getting a single setting by key
func (h *SettingsHandler) Get(c *gin.Context) {
	key := c.Param("key")

	value, err := h.settingsService.Get(c.Request.Context(), key)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Setting retrieved successfully", gin.H{"key": key, "value": value})
}

// Set handles creating or overwriting a setting
func (h *SettingsHandler) Set(c *gin.Context) {
	key := c.Param("key")

	var req struct {
		Value string `json:"value"`
	}
	if !bindJSON(c, &req) {
		return
	}

	if err := h.settingsService.Set(c.Request.Context(), key, req.Value); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Setting updated successfully", gin.H{"key": key, "value": req.Value})
}
