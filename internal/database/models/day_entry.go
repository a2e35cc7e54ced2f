package models

import (
	"time"

	"github.com/google/uuid"
)

// DayEntry is one hours-log line item. A single (employee, date) pair may
// carry several entries of mixed types and projects; zero-hour entries are
// never persisted.
type DayEntry struct {
	BaseModel
	EmployeeID uuid.UUID  `json:"employee_id" gorm:"type:uuid;not null;index:idx_day_entries_employee_date" validate:"required"`
	WorkDate   time.Time  `json:"work_date" gorm:"type:date;not null;index:idx_day_entries_employee_date" validate:"required"`
	Type       EntryType  `json:"type" gorm:"type:varchar(20);not null" validate:"required"`
	Hours      float64    `json:"hours" gorm:"not null" validate:"gt=0,max=24"`
	ProjectID  *uuid.UUID `json:"project_id,omitempty" gorm:"type:uuid;index"`
	Note       string     `json:"note" gorm:"size:500" validate:"max=500"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Project  *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for DayEntry
func (DayEntry) TableName() string {
	return "day_entries"
}
