package models

import "time"

// Settings is a named weekly-hours template assignable to employees.
// At most one row may carry IsDefault=true; the repository enforces this
// inside the same transaction that sets a new default.
type Settings struct {
	BaseModel
	Name           string  `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	IsDefault      bool    `json:"is_default" gorm:"not null;default:false;index"`
	MondayHours    float64 `json:"monday_hours" gorm:"not null;default:0" validate:"min=0,max=24"`
	TuesdayHours   float64 `json:"tuesday_hours" gorm:"not null;default:0" validate:"min=0,max=24"`
	WednesdayHours float64 `json:"wednesday_hours" gorm:"not null;default:0" validate:"min=0,max=24"`
	ThursdayHours  float64 `json:"thursday_hours" gorm:"not null;default:0" validate:"min=0,max=24"`
	FridayHours    float64 `json:"friday_hours" gorm:"not null;default:0" validate:"min=0,max=24"`
	SaturdayHours  float64 `json:"saturday_hours" gorm:"not null;default:0" validate:"min=0,max=24"`
	SundayHours    float64 `json:"sunday_hours" gorm:"not null;default:0" validate:"min=0,max=24"`
}

// TableName returns the table name for Settings
func (Settings) TableName() string {
	return "settings"
}

// HoursForWeekday maps a weekday to its expected-hours field.
// The weekday is evaluated in UTC by callers to avoid timezone drift.
func (s *Settings) HoursForWeekday(weekday time.Weekday) float64 {
	switch weekday {
	case time.Monday:
		return s.MondayHours
	case time.Tuesday:
		return s.TuesdayHours
	case time.Wednesday:
		return s.WednesdayHours
	case time.Thursday:
		return s.ThursdayHours
	case time.Friday:
		return s.FridayHours
	case time.Saturday:
		return s.SaturdayHours
	case time.Sunday:
		return s.SundayHours
	}
	return 0
}
