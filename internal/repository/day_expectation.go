package repository

import (
	"time"

	"timesheet-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DayExpectationRepository handles database operations for expectation snapshots
type DayExpectationRepository struct {
	db *gorm.DB
}

// NewDayExpectationRepository creates a new day expectation repository
func NewDayExpectationRepository(db *gorm.DB) *DayExpectationRepository {
	return &DayExpectationRepository{db: db}
}

// GetByEmployeeAndRange retrieves all snapshots for an employee in [from, to] inclusive
func (r *DayExpectationRepository) GetByEmployeeAndRange(employeeID uuid.UUID, from, to time.Time) ([]models.DayExpectation, error) {
	var expectations []models.DayExpectation
	err := r.db.
		Where("employee_id = ? AND work_date >= ? AND work_date <= ?", employeeID, from, to).
		Order("work_date").
		Find(&expectations).Error
	if err != nil {
		return nil, err
	}
	return expectations, nil
}

// Upsert inserts or refreshes the one snapshot per (employee, date)
func (r *DayExpectationRepository) Upsert(expectation *models.DayExpectation) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "work_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"expected_hours", "updated_at"}),
	}).Create(expectation).Error
}
