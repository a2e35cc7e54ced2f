package repository

import (
	"time"

	"timesheet-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DayEntryRepository handles database operations for day entries
type DayEntryRepository struct {
	db *gorm.DB
}

// NewDayEntryRepository creates a new day entry repository
func NewDayEntryRepository(db *gorm.DB) *DayEntryRepository {
	return &DayEntryRepository{db: db}
}

// GetByEmployeeAndRange retrieves all entries for an employee in [from, to] inclusive
func (r *DayEntryRepository) GetByEmployeeAndRange(employeeID uuid.UUID, from, to time.Time) ([]models.DayEntry, error) {
	var entries []models.DayEntry
	err := r.db.
		Where("employee_id = ? AND work_date >= ? AND work_date <= ?", employeeID, from, to).
		Order("work_date, created_at").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteForDates removes every entry the employee has on the given dates.
// Replacement is whole-date, never a per-row patch.
func (r *DayEntryRepository) DeleteForDates(employeeID uuid.UUID, dates []time.Time) error {
	if len(dates) == 0 {
		return nil
	}
	return r.db.
		Where("employee_id = ? AND work_date IN ?", employeeID, dates).
		Delete(&models.DayEntry{}).Error
}

// CreateBatch inserts a batch of entries
func (r *DayEntryRepository) CreateBatch(entries []models.DayEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Create(&entries).Error
}
