package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents a person whose hours are tracked
type Employee struct {
	BaseModel
	AuthUserID string     `json:"auth_user_id" gorm:"uniqueIndex;not null;size:255" validate:"required,max=255"`
	FirstName  string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName   string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email      string     `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	SettingsID *uuid.UUID `json:"settings_id,omitempty" gorm:"type:uuid;index"`
	// Employment bounds are inclusive; entries outside them are rejected.
	StartDate *time.Time `json:"start_date,omitempty" gorm:"type:date"`
	EndDate   *time.Time `json:"end_date,omitempty" gorm:"type:date"`

	// Relationships
	Settings        *Settings        `json:"settings,omitempty" gorm:"foreignKey:SettingsID;constraint:OnDelete:SET NULL"`
	Periods         []Period         `json:"periods,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	DayEntries      []DayEntry       `json:"day_entries,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	DayExpectations []DayExpectation `json:"day_expectations,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// EmploymentCovers reports whether date falls inside the employee's
// employment bounds. Unset bounds are open-ended.
func (e *Employee) EmploymentCovers(date time.Time) bool {
	if e.StartDate != nil && date.Before(*e.StartDate) {
		return false
	}
	if e.EndDate != nil && date.After(*e.EndDate) {
		return false
	}
	return true
}
