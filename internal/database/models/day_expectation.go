package models

import (
	"time"

	"github.com/google/uuid"
)

// DayExpectation is the expected-hours snapshot frozen when a date's entries
// were last saved. It decouples reporting from later settings changes.
type DayExpectation struct {
	BaseModel
	EmployeeID    uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_day_expectations_employee_date" validate:"required"`
	WorkDate      time.Time `json:"work_date" gorm:"type:date;not null;uniqueIndex:idx_day_expectations_employee_date" validate:"required"`
	ExpectedHours float64   `json:"expected_hours" gorm:"not null;default:0"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DayExpectation
func (DayExpectation) TableName() string {
	return "day_expectations"
}
