package models

import (
	"time"

	"github.com/google/uuid"
)

// Period is the weekly ledger header: one row per employee per ISO week.
// Closed gates all entry writes for that week until reopened.
type Period struct {
	BaseModel
	EmployeeID uuid.UUID  `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_periods_employee_week" validate:"required"`
	WeekKey    string     `json:"week_key" gorm:"not null;size:8;uniqueIndex:idx_periods_employee_week" validate:"required"`
	WeekStart  time.Time  `json:"week_start" gorm:"type:date;not null;index" validate:"required"`
	Closed     bool       `json:"closed" gorm:"not null;default:false"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
	TotalHours float64    `json:"total_hours" gorm:"not null;default:0"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Period
func (Period) TableName() string {
	return "periods"
}
