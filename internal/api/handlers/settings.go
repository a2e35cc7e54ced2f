package handlers

import (
	"net/http"

	"timesheet-backend/internal/auth"
	apperrors "timesheet-backend/internal/errors"
	"timesheet-backend/internal/repository"
	"timesheet-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SettingsHandler handles HTTP requests for weekly-hours settings
type SettingsHandler struct {
	settingsService service.SettingsServiceInterface
	resolver        service.ExpectationResolverInterface
	employeeRepo    repository.EmployeeRepositoryInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(
	settingsService service.SettingsServiceInterface,
	resolver service.ExpectationResolverInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		resolver:        resolver,
		employeeRepo:    employeeRepo,
	}
}

// CreateSettings handles POST /settings
// @Summary Create a settings template
// @Description Create a weekly-hours template; flagging it default atomically clears every other default
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body service.CreateSettingsRequest true "Settings data"
// @Success 201 {object} service.SettingsResponse "Successfully created settings"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /settings [post]
func (h *SettingsHandler) CreateSettings(c *gin.Context) {
	var req service.CreateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settingsService.CreateSettings(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, settings)
}

// GetSettings handles GET /settings/:id
// @Summary Get settings by ID
// @Tags settings
// @Produce json
// @Param id path string true "Settings ID (UUID)"
// @Success 200 {object} service.SettingsResponse "Successfully retrieved settings"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Settings not found"
// @Security BearerAuth
// @Router /settings/{id} [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings id"})
		return
	}

	settings, err := h.settingsService.GetSettings(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// GetEffectiveSettings handles GET /settings/effective
// @Summary Get the effective weekly template for the caller
// @Description Resolves the caller's settings reference, then the default row, then the built-in schedule
// @Tags settings
// @Produce json
// @Success 200 {object} service.SettingsResponse "Effective settings"
// @Failure 401 {object} ErrorResponse "Missing auth user id in token"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /settings/effective [get]
func (h *SettingsHandler) GetEffectiveSettings(c *gin.Context) {
	authUserID, ok := auth.GetAuthUserID(c)
	if !ok || authUserID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth user id in token"})
		return
	}

	employee, err := h.employeeRepo.GetByAuthUserID(authUserID)
	if err != nil {
		respondError(c, apperrors.ErrEmployeeNotFound)
		return
	}

	settings, err := h.resolver.EffectiveSettings(employee.SettingsID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.SettingsResponse{
		ID:        settings.ID,
		Name:      settings.Name,
		IsDefault: settings.IsDefault,
		Hours: service.WeeklyHours{
			Monday:    settings.MondayHours,
			Tuesday:   settings.TuesdayHours,
			Wednesday: settings.WednesdayHours,
			Thursday:  settings.ThursdayHours,
			Friday:    settings.FridayHours,
			Saturday:  settings.SaturdayHours,
			Sunday:    settings.SundayHours,
		},
	})
}

// ListSettings handles GET /settings
// @Summary List settings templates
// @Tags settings
// @Produce json
// @Success 200 {array} service.SettingsResponse "Successfully retrieved settings list"
// @Security BearerAuth
// @Router /settings [get]
func (h *SettingsHandler) ListSettings(c *gin.Context) {
	settings, err := h.settingsService.ListSettings()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /settings/:id
// @Summary Update a settings template
// @Tags settings
// @Accept json
// @Produce json
// @Param id path string true "Settings ID (UUID)"
// @Param settings body service.UpdateSettingsRequest true "Settings data"
// @Success 200 {object} service.SettingsResponse "Successfully updated settings"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Settings not found"
// @Security BearerAuth
// @Router /settings/{id} [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings id"})
		return
	}

	var req service.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settingsService.UpdateSettings(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// DeleteSettings handles DELETE /settings/:id
// @Summary Delete a settings template
// @Description Employees referencing the deleted template fall back to the default row
// @Tags settings
// @Produce json
// @Param id path string true "Settings ID (UUID)"
// @Success 204 "Successfully deleted settings"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Settings not found"
// @Security BearerAuth
// @Router /settings/{id} [delete]
func (h *SettingsHandler) DeleteSettings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings id"})
		return
	}

	if err := h.settingsService.DeleteSettings(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
