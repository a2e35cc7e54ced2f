package service

import (
	"errors"
	"time"

	"timesheet-backend/internal/database/models"
	apperrors "timesheet-backend/internal/errors"
	"timesheet-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PeriodService handles the open/closed lifecycle of weekly periods
type PeriodService struct {
	periodRepo repository.PeriodRepositoryInterface
}

// NewPeriodService creates a new period service
func NewPeriodService(periodRepo repository.PeriodRepositoryInterface) *PeriodService {
	return &PeriodService{periodRepo: periodRepo}
}

// PeriodResponse represents a weekly period for API responses
type PeriodResponse struct {
	ID         uuid.UUID  `json:"id"`
	EmployeeID uuid.UUID  `json:"employee_id"`
	WeekKey    string     `json:"week_key"`
	WeekStart  string     `json:"week_start"`
	Closed     bool       `json:"closed"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
	TotalHours float64    `json:"total_hours"`
}

// GetOrCreate returns the one period for the week containing weekStart,
// creating it open with a zero total on first touch.
func (s *PeriodService) GetOrCreate(employeeID uuid.UUID, weekStart time.Time) (*models.Period, error) {
	period, _, err := s.periodRepo.GetOrCreate(employeeID, weekStart)
	if err != nil {
		return nil, err
	}
	return period, nil
}

// SetClosed closes or reopens the period for (employee, weekKey). Closing
// stamps ClosedAt; reopening clears it. Whether the registered hours match
// the expected hours is deliberately not checked here.
func (s *PeriodService) SetClosed(employeeID uuid.UUID, weekKey string, closed bool) error {
	var closedAt *time.Time
	if closed {
		now := time.Now().UTC()
		closedAt = &now
	}
	if err := s.periodRepo.SetClosed(employeeID, weekKey, closed, closedAt); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPeriodNotFound
		}
		return err
	}
	return nil
}
