package repository

import (
	"timesheet-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsRepository handles database operations for weekly-hours settings
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Save persists a settings row. When the row is flagged as default, the
// clear-others and the save run in one transaction so there is never a window
// with zero or two default rows.
func (r *SettingsRepository) Save(settings *models.Settings) error {
	if !settings.IsDefault {
		return r.db.Save(settings).Error
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Settings{}).
			Where("is_default = ? AND id <> ?", true, settings.ID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Save(settings).Error
	})
}

// GetByID retrieves a settings row by ID
func (r *SettingsRepository) GetByID(id uuid.UUID) (*models.Settings, error) {
	var settings models.Settings
	err := r.db.First(&settings, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetDefault retrieves the row flagged as the system default
func (r *SettingsRepository) GetDefault() (*models.Settings, error) {
	var settings models.Settings
	err := r.db.First(&settings, "is_default = ?", true).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetAll retrieves all settings rows
func (r *SettingsRepository) GetAll() ([]models.Settings, error) {
	var settings []models.Settings
	if err := r.db.Order("name").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// Delete deletes a settings row. Employees referencing it fall back to the
// default via the SET NULL constraint.
func (r *SettingsRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Settings{}, "id = ?", id).Error
}
