package service

import (
	"errors"
	"fmt"

	"timesheet-backend/internal/database/models"
	apperrors "timesheet-backend/internal/errors"
	"timesheet-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsService handles business logic for weekly-hours settings
type SettingsService struct {
	repo      repository.SettingsRepositoryInterface
	validator *validator.Validate
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repository.SettingsRepositoryInterface, validator *validator.Validate) *SettingsService {
	return &SettingsService{repo: repo, validator: validator}
}

// WeeklyHours carries one expected-hours value per weekday
type WeeklyHours struct {
	Monday    float64 `json:"monday" validate:"min=0,max=24"`
	Tuesday   float64 `json:"tuesday" validate:"min=0,max=24"`
	Wednesday float64 `json:"wednesday" validate:"min=0,max=24"`
	Thursday  float64 `json:"thursday" validate:"min=0,max=24"`
	Friday    float64 `json:"friday" validate:"min=0,max=24"`
	Saturday  float64 `json:"saturday" validate:"min=0,max=24"`
	Sunday    float64 `json:"sunday" validate:"min=0,max=24"`
}

// CreateSettingsRequest represents the data needed to create a settings template
type CreateSettingsRequest struct {
	Name      string      `json:"name" validate:"required,max=100"`
	IsDefault bool        `json:"is_default"`
	Hours     WeeklyHours `json:"hours"`
}

// UpdateSettingsRequest represents the data needed to update a settings template
type UpdateSettingsRequest struct {
	Name      *string      `json:"name" validate:"omitempty,max=100"`
	IsDefault *bool        `json:"is_default"`
	Hours     *WeeklyHours `json:"hours"`
}

// SettingsResponse represents a settings template for API responses
type SettingsResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	IsDefault bool        `json:"is_default"`
	Hours     WeeklyHours `json:"hours"`
}

// CreateSettings creates a new settings template. Flagging it as default
// atomically clears the flag from every other row.
func (s *SettingsService) CreateSettings(req *CreateSettingsRequest) (*SettingsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	settings := &models.Settings{
		Name:      req.Name,
		IsDefault: req.IsDefault,
	}
	applyWeeklyHours(settings, req.Hours)

	if err := s.repo.Save(settings); err != nil {
		return nil, fmt.Errorf("failed to create settings: %w", err)
	}

	return toSettingsResponse(settings), nil
}

// UpdateSettings updates an existing settings template
func (s *SettingsService) UpdateSettings(id uuid.UUID, req *UpdateSettingsRequest) (*SettingsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	settings, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSettingsNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		settings.Name = *req.Name
	}
	if req.IsDefault != nil {
		settings.IsDefault = *req.IsDefault
	}
	if req.Hours != nil {
		applyWeeklyHours(settings, *req.Hours)
	}

	if err := s.repo.Save(settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return toSettingsResponse(settings), nil
}

// GetSettings retrieves one settings template
func (s *SettingsService) GetSettings(id uuid.UUID) (*SettingsResponse, error) {
	settings, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSettingsNotFound
		}
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// ListSettings retrieves all settings templates
func (s *SettingsService) ListSettings() ([]SettingsResponse, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	responses := make([]SettingsResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, *toSettingsResponse(&rows[i]))
	}
	return responses, nil
}

// DeleteSettings deletes a settings template; employees referencing it fall
// back to the system default.
func (s *SettingsService) DeleteSettings(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSettingsNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}

func applyWeeklyHours(settings *models.Settings, hours WeeklyHours) {
	settings.MondayHours = hours.Monday
	settings.TuesdayHours = hours.Tuesday
	settings.WednesdayHours = hours.Wednesday
	settings.ThursdayHours = hours.Thursday
	settings.FridayHours = hours.Friday
	settings.SaturdayHours = hours.Saturday
	settings.SundayHours = hours.Sunday
}

func toSettingsResponse(settings *models.Settings) *SettingsResponse {
	return &SettingsResponse{
		ID:        settings.ID,
		Name:      settings.Name,
		IsDefault: settings.IsDefault,
		Hours: WeeklyHours{
			Monday:    settings.MondayHours,
			Tuesday:   settings.TuesdayHours,
			Wednesday: settings.WednesdayHours,
			Thursday:  settings.ThursdayHours,
			Friday:    settings.FridayHours,
			Saturday:  settings.SaturdayHours,
			Sunday:    settings.SundayHours,
		},
	}
}
