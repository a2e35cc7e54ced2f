package repository

import (
	"time"

	"timesheet-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByAuthUserID(authUserID string) (*models.Employee, error)
	GetAll(limit, offset int) ([]models.Employee, int64, error)
	Update(employee *models.Employee) error
	Delete(id uuid.UUID) error
}

// SettingsRepositoryInterface defines the interface for settings repository operations.
// Save is the single write path: when the row carries IsDefault=true it clears
// every other default flag in the same transaction, so the system never holds
// zero or two defaults.
type SettingsRepositoryInterface interface {
	Save(settings *models.Settings) error
	GetByID(id uuid.UUID) (*models.Settings, error)
	GetDefault() (*models.Settings, error)
	GetAll() ([]models.Settings, error)
	Delete(id uuid.UUID) error
}

// PeriodRepositoryInterface defines the interface for period repository operations
type PeriodRepositoryInterface interface {
	GetByEmployeeAndWeekKey(employeeID uuid.UUID, weekKey string) (*models.Period, error)
	GetByEmployeeAndWeekStarts(employeeID uuid.UUID, weekStarts []time.Time) ([]models.Period, error)
	// GetOrCreate returns the one period for (employee, week), inserting an
	// open zero-total row on miss. A concurrent-insert unique violation is
	// resolved by re-reading, never surfaced as an error.
	GetOrCreate(employeeID uuid.UUID, weekStart time.Time) (*models.Period, bool, error)
	// GetOrCreateForUpdate behaves like GetOrCreate but locks the returned row
	// for the remainder of the enclosing transaction.
	GetOrCreateForUpdate(employeeID uuid.UUID, weekStart time.Time) (*models.Period, bool, error)
	UpdateTotalHours(id uuid.UUID, totalHours float64) error
	SetClosed(employeeID uuid.UUID, weekKey string, closed bool, closedAt *time.Time) error
}

// DayEntryRepositoryInterface defines the interface for day entry repository operations
type DayEntryRepositoryInterface interface {
	GetByEmployeeAndRange(employeeID uuid.UUID, from, to time.Time) ([]models.DayEntry, error)
	DeleteForDates(employeeID uuid.UUID, dates []time.Time) error
	CreateBatch(entries []models.DayEntry) error
}

// DayExpectationRepositoryInterface defines the interface for expectation snapshot operations
type DayExpectationRepositoryInterface interface {
	GetByEmployeeAndRange(employeeID uuid.UUID, from, to time.Time) ([]models.DayExpectation, error)
	Upsert(expectation *models.DayExpectation) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetAll(limit, offset int) ([]models.Project, int64, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// TxRepos exposes the repositories bound to one open transaction
type TxRepos interface {
	Periods() PeriodRepositoryInterface
	DayEntries() DayEntryRepositoryInterface
	DayExpectations() DayExpectationRepositoryInterface
}

// TransactionManagerInterface runs a function inside a single database
// transaction with all-or-nothing commit semantics.
type TransactionManagerInterface interface {
	Do(fn func(repos TxRepos) error) error
}
