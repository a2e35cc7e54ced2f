package repository

import (
	"errors"
	"time"

	"timesheet-backend/internal/calendar"
	"timesheet-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PeriodRepository handles database operations for weekly periods
type PeriodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository creates a new period repository
func NewPeriodRepository(db *gorm.DB) *PeriodRepository {
	return &PeriodRepository{db: db}
}

// GetByEmployeeAndWeekKey retrieves the period for one employee and ISO week
func (r *PeriodRepository) GetByEmployeeAndWeekKey(employeeID uuid.UUID, weekKey string) (*models.Period, error) {
	var period models.Period
	err := r.db.First(&period, "employee_id = ? AND week_key = ?", employeeID, weekKey).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetByEmployeeAndWeekStarts retrieves the periods whose week start falls in the given Mondays
func (r *PeriodRepository) GetByEmployeeAndWeekStarts(employeeID uuid.UUID, weekStarts []time.Time) ([]models.Period, error) {
	if len(weekStarts) == 0 {
		return []models.Period{}, nil
	}
	var periods []models.Period
	err := r.db.
		Where("employee_id = ? AND week_start IN ?", employeeID, weekStarts).
		Find(&periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}

// GetOrCreate returns the one period row for (employee, week of weekStart),
// creating an open zero-total row on miss. An insert that loses a race on the
// (employee_id, week_key) unique index is resolved by re-reading the winner.
func (r *PeriodRepository) GetOrCreate(employeeID uuid.UUID, weekStart time.Time) (*models.Period, bool, error) {
	return r.getOrCreate(employeeID, weekStart, false)
}

// GetOrCreateForUpdate is GetOrCreate with a FOR UPDATE lock on the returned
// row, held until the enclosing transaction commits or rolls back.
func (r *PeriodRepository) GetOrCreateForUpdate(employeeID uuid.UUID, weekStart time.Time) (*models.Period, bool, error) {
	return r.getOrCreate(employeeID, weekStart, true)
}

func (r *PeriodRepository) getOrCreate(employeeID uuid.UUID, weekStart time.Time, forUpdate bool) (*models.Period, bool, error) {
	monday := calendar.MondayOf(weekStart)
	weekKey := calendar.ISOWeekKey(monday)

	read := func() (*models.Period, error) {
		var period models.Period
		q := r.db
		if forUpdate {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&period, "employee_id = ? AND week_key = ?", employeeID, weekKey).Error; err != nil {
			return nil, err
		}
		return &period, nil
	}

	if period, err := read(); err == nil {
		return period, false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	period := &models.Period{
		EmployeeID: employeeID,
		WeekKey:    weekKey,
		WeekStart:  monday,
		Closed:     false,
		TotalHours: 0,
	}
	if err := r.db.Create(period).Error; err != nil {
		// Concurrent insert on the unique index means the row exists now.
		if existing, readErr := read(); readErr == nil {
			return existing, false, nil
		}
		return nil, false, err
	}
	return period, true, nil
}

// UpdateTotalHours stores the recomputed running total on a period
func (r *PeriodRepository) UpdateTotalHours(id uuid.UUID, totalHours float64) error {
	return r.db.Model(&models.Period{}).Where("id = ?", id).Update("total_hours", totalHours).Error
}

// SetClosed flips the closed gate and stamps closed_at. Reports
// gorm.ErrRecordNotFound when no period exists for the week.
func (r *PeriodRepository) SetClosed(employeeID uuid.UUID, weekKey string, closed bool, closedAt *time.Time) error {
	res := r.db.Model(&models.Period{}).
		Where("employee_id = ? AND week_key = ?", employeeID, weekKey).
		Updates(map[string]interface{}{"closed": closed, "closed_at": closedAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
