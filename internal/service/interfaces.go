package service

import (
	"context"
	"time"

	"timesheet-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TimesheetServiceInterface defines the interface for the timesheet service
type TimesheetServiceInterface interface {
	ReplaceDayEntries(employeeID uuid.UUID, entriesByDate map[string][]DayEntryInput) error
	GetPeriodView(employeeID uuid.UUID, fromISO, toISO string) (*PeriodViewResponse, error)
	GetWeekSummaries(employeeID uuid.UUID, fromISO, toISO string) ([]WeekSummary, error)
}

// PeriodServiceInterface defines the interface for the period service
type PeriodServiceInterface interface {
	GetOrCreate(employeeID uuid.UUID, weekStart time.Time) (*models.Period, error)
	SetClosed(employeeID uuid.UUID, weekKey string, closed bool) error
}

// EmployeeServiceInterface defines the interface for the employee service
type EmployeeServiceInterface interface {
	CreateEmployee(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetEmployee(id uuid.UUID) (*EmployeeResponse, error)
	GetEmployeeByAuthUserID(authUserID string) (*EmployeeResponse, error)
	ListEmployees(limit, offset int) (*EmployeesListResponse, error)
	UpdateEmployee(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	DeleteEmployee(id uuid.UUID) error
}

// SettingsServiceInterface defines the interface for the settings service
type SettingsServiceInterface interface {
	CreateSettings(req *CreateSettingsRequest) (*SettingsResponse, error)
	UpdateSettings(id uuid.UUID, req *UpdateSettingsRequest) (*SettingsResponse, error)
	GetSettings(id uuid.UUID) (*SettingsResponse, error)
	ListSettings() ([]SettingsResponse, error)
	DeleteSettings(id uuid.UUID) error
}

// SuggestionServiceInterface defines the interface for the suggestion service
type SuggestionServiceInterface interface {
	ComposeSuggestions(ctx context.Context, employeeID uuid.UUID, command, fromISO, toISO string) (*SuggestionResponse, error)
}

// ExpectationResolverInterface resolves expected hours per date from the
// versioned weekly settings
type ExpectationResolverInterface interface {
	ResolveExpectedHours(settingsID *uuid.UUID, date time.Time) (float64, error)
	EffectiveSettings(settingsID *uuid.UUID) (*models.Settings, error)
}

// SuggesterInterface is the untrusted AI collaborator behind the suggestion
// service; tests inject a fake.
type SuggesterInterface interface {
	Suggest(ctx context.Context, command string, week WeekContext) ([]DaySuggestion, error)
}
