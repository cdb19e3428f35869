package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yasinga/yasinga/internal/dto"
	"github.com/yasinga/yasinga/internal/errors"
	"github.com/yasinga/yasinga/internal/services"
)

// SMSSettingsHandler handles SMS settings HTTP requests
type SMSSettingsHandler struct {
	settingsService services.SMSSettingsServiceInterface
}

// NewSMSSettingsHandler creates a new SMS settings handler
func NewSMSSettingsHandler(settingsService services.SMSSettingsServiceInterface) *SMSSettingsHandler {
	return &SMSSettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings returns the user's SMS import settings
// @Summary Get SMS settings
// @Tags SMS Settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.SMSSettings "Current settings"
// @Router /sms-settings [get]
func (h *SMSSettingsHandler) GetSettings(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	settings, err := h.settingsService.GetSettings(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings applies partial updates to the user's SMS settings
// @Summary Update SMS settings
// @Tags SMS Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateSMSSettingsRequest true "Settings to change"
// @Success 200 {object} models.SMSSettings "Updated settings"
// @Router /sms-settings [put]
func (h *SMSSettingsHandler) UpdateSettings(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateSMSSettingsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	settings, err := h.settingsService.UpdateSettings(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, settings)
}
