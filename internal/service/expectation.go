package service

import (
	"errors"
	"time"

	"timesheet-backend/internal/database/models"
	"timesheet-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fallbackSchedule is the built-in weekly template used when neither an
// explicit settings reference nor a default-flagged row exists.
var fallbackSchedule = models.Settings{
	Name:           "built-in default",
	MondayHours:    8,
	TuesdayHours:   8,
	WednesdayHours: 8,
	ThursdayHours:  8,
	FridayHours:    8,
	SaturdayHours:  0,
	SundayHours:    0,
}

// ExpectationResolver resolves the expected hours for a given employee
// settings reference and date. It has no side effects; store failures other
// than a missing row propagate to the caller.
type ExpectationResolver struct {
	settingsRepo repository.SettingsRepositoryInterface
}

// NewExpectationResolver creates a new expectation resolver
func NewExpectationResolver(settingsRepo repository.SettingsRepositoryInterface) *ExpectationResolver {
	return &ExpectationResolver{settingsRepo: settingsRepo}
}

// ResolveExpectedHours resolves the expected hours for date: explicit settings
// row first, then the default-flagged row, then the built-in schedule. The
// weekday is evaluated in UTC so local-timezone drift cannot shift the day.
func (r *ExpectationResolver) ResolveExpectedHours(settingsID *uuid.UUID, date time.Time) (float64, error) {
	var settings *models.Settings

	if settingsID != nil {
		row, err := r.settingsRepo.GetByID(*settingsID)
		if err == nil {
			settings = row
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
	}

	if settings == nil {
		row, err := r.settingsRepo.GetDefault()
		if err == nil {
			settings = row
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
	}

	if settings == nil {
		settings = &fallbackSchedule
	}

	return settings.HoursForWeekday(date.UTC().Weekday()), nil
}

// EffectiveSettings returns the full weekly template that currently applies
// to the given settings reference, falling back like ResolveExpectedHours.
func (r *ExpectationResolver) EffectiveSettings(settingsID *uuid.UUID) (*models.Settings, error) {
	if settingsID != nil {
		row, err := r.settingsRepo.GetByID(*settingsID)
		if err == nil {
			return row, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	row, err := r.settingsRepo.GetDefault()
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fallback := fallbackSchedule
	return &fallback, nil
}
