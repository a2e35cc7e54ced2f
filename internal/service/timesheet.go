package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"timesheet-backend/internal/calendar"
	"timesheet-backend/internal/database/models"
	apperrors "timesheet-backend/internal/errors"
	"timesheet-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxSummaryWeeks bounds week enumeration on malformed or huge ranges
const maxSummaryWeeks = 60

// mixedDayType is the per-date type tag when a date carries entries of more
// than one type
const mixedDayType = "mixed"

// TimesheetService owns the transactional write path for day entries and the
// read-side aggregations over one employee's weeks.
type TimesheetService struct {
	employeeRepo    repository.EmployeeRepositoryInterface
	periodRepo      repository.PeriodRepositoryInterface
	entryRepo       repository.DayEntryRepositoryInterface
	expectationRepo repository.DayExpectationRepositoryInterface
	resolver        ExpectationResolverInterface
	tx              repository.TransactionManagerInterface
}

// NewTimesheetService creates a new timesheet service
func NewTimesheetService(
	employeeRepo repository.EmployeeRepositoryInterface,
	periodRepo repository.PeriodRepositoryInterface,
	entryRepo repository.DayEntryRepositoryInterface,
	expectationRepo repository.DayExpectationRepositoryInterface,
	resolver ExpectationResolverInterface,
	tx repository.TransactionManagerInterface,
) *TimesheetService {
	return &TimesheetService{
		employeeRepo:    employeeRepo,
		periodRepo:      periodRepo,
		entryRepo:       entryRepo,
		expectationRepo: expectationRepo,
		resolver:        resolver,
		tx:              tx,
	}
}

// DayEntryInput is one incoming line item in a replace batch
type DayEntryInput struct {
	Type      models.EntryType `json:"type"`
	Hours     float64          `json:"hours"`
	ProjectID *uuid.UUID       `json:"project_id,omitempty"`
	Note      string           `json:"note,omitempty"`
}

// DayEntryResponse represents one stored entry for API responses
type DayEntryResponse struct {
	ID        uuid.UUID        `json:"id"`
	Date      string           `json:"date"`
	Type      models.EntryType `json:"type"`
	Hours     float64          `json:"hours"`
	ProjectID *uuid.UUID       `json:"project_id,omitempty"`
	Note      string           `json:"note,omitempty"`
}

// DayTotal carries the per-date aggregate for the period view
type DayTotal struct {
	Hours float64 `json:"hours"`
	Type  string  `json:"type"`
}

// PeriodViewResponse is the result of the period view read
type PeriodViewResponse struct {
	Period             PeriodResponse                `json:"period"`
	EntriesByDate      map[string][]DayEntryResponse `json:"entries_by_date"`
	Totals             map[string]DayTotal           `json:"totals"`
	ExpectationsByDate map[string]float64            `json:"expectations_by_date"`
}

// WeekSummary is one calendar-badge row: coverage and closed state per week
type WeekSummary struct {
	Monday          string `json:"monday"`
	DaysWithEntries int    `json:"days_with_entries"`
	Closed          bool   `json:"closed"`
}

// ReplaceDayEntries validates a per-date entry batch and atomically replaces
// the stored entries for every touched date, recomputing the period total and
// the per-day expectation snapshots. The whole batch commits or nothing does;
// a closed period aborts with ErrPeriodClosed and leaves prior state intact.
func (s *TimesheetService) ReplaceDayEntries(employeeID uuid.UUID, entriesByDate map[string][]DayEntryInput) error {
	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("load employee: %w", err)
	}

	dates, total, err := validateEntryBatch(employee, entriesByDate)
	if err != nil {
		return err
	}

	earliest := dates[0]

	return s.tx.Do(func(repos repository.TxRepos) error {
		// Lock the period row for the rest of the transaction so concurrent
		// replaces for the same week serialize instead of losing an update.
		period, _, err := repos.Periods().GetOrCreateForUpdate(employeeID, earliest)
		if err != nil {
			return fmt.Errorf("get or create period: %w", err)
		}

		if err := repos.Periods().UpdateTotalHours(period.ID, total); err != nil {
			return fmt.Errorf("update period total: %w", err)
		}

		// Checked after the total write on purpose: the rollback must undo it.
		if period.Closed {
			return apperrors.ErrPeriodClosed
		}

		if err := repos.DayEntries().DeleteForDates(employeeID, dates); err != nil {
			return fmt.Errorf("delete existing entries: %w", err)
		}

		var rows []models.DayEntry
		for iso, inputs := range entriesByDate {
			date, _ := calendar.ParseISODate(iso)
			for _, input := range inputs {
				if input.Hours == 0 {
					// Zero hours means "remove"; the delete above already did.
					continue
				}
				rows = append(rows, models.DayEntry{
					EmployeeID: employeeID,
					WorkDate:   date,
					Type:       input.Type,
					Hours:      math.Round(input.Hours*100) / 100,
					ProjectID:  input.ProjectID,
					Note:       input.Note,
				})
			}
		}
		if err := repos.DayEntries().CreateBatch(rows); err != nil {
			return fmt.Errorf("insert entries: %w", err)
		}

		for _, date := range dates {
			expected, err := s.resolver.ResolveExpectedHours(employee.SettingsID, date)
			if err != nil {
				return fmt.Errorf("resolve expected hours for %s: %w", calendar.FormatISODate(date), err)
			}
			if err := repos.DayExpectations().Upsert(&models.DayExpectation{
				EmployeeID:    employeeID,
				WorkDate:      date,
				ExpectedHours: expected,
			}); err != nil {
				return fmt.Errorf("upsert expectation for %s: %w", calendar.FormatISODate(date), err)
			}
		}

		return nil
	})
}

// validateEntryBatch runs every pre-transaction check and returns the sorted
// touched dates plus the batch's overall total hours.
func validateEntryBatch(employee *models.Employee, entriesByDate map[string][]DayEntryInput) ([]time.Time, float64, error) {
	if len(entriesByDate) == 0 {
		return nil, 0, apperrors.NewValidationError("entries", "at least one date is required")
	}

	dates := make([]time.Time, 0, len(entriesByDate))
	var total float64

	for iso, inputs := range entriesByDate {
		if !calendar.IsISODate(iso) {
			return nil, 0, apperrors.NewValidationError(iso, "date must be in YYYY-MM-DD format")
		}
		date, err := calendar.ParseISODate(iso)
		if err != nil {
			return nil, 0, apperrors.NewValidationError(iso, "invalid calendar date")
		}
		if !employee.EmploymentCovers(date) {
			return nil, 0, apperrors.NewValidationError(iso, "date is outside the employment period")
		}
		dates = append(dates, date)

		for _, input := range inputs {
			if !input.Type.IsValid() {
				return nil, 0, apperrors.NewValidationError(iso, fmt.Sprintf("unknown entry type %q", input.Type))
			}
			if math.IsNaN(input.Hours) || math.IsInf(input.Hours, 0) {
				return nil, 0, apperrors.NewValidationError(iso, "hours must be a finite number")
			}
			if input.Hours < 0 || input.Hours > 24 {
				return nil, 0, apperrors.NewValidationError(iso, "hours must be between 0 and 24")
			}
			total += input.Hours
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	// A batch must stay inside one Monday-to-Sunday span; a multi-week batch
	// would mis-file entries into the wrong period.
	for _, date := range dates[1:] {
		if !calendar.SameISOWeek(dates[0], date) {
			return nil, 0, apperrors.NewValidationError(
				calendar.FormatISODate(date), "all dates in a batch must fall within one calendar week")
		}
	}

	return dates, total, nil
}

// GetPeriodView returns the period header plus entries, per-date totals and
// expectation snapshots for [from, to]. The period row is lazily created for
// the week containing from.
func (s *TimesheetService) GetPeriodView(employeeID uuid.UUID, fromISO, toISO string) (*PeriodViewResponse, error) {
	from, to, err := parseRange(fromISO, toISO)
	if err != nil {
		return nil, err
	}

	period, _, err := s.periodRepo.GetOrCreate(employeeID, from)
	if err != nil {
		return nil, fmt.Errorf("get or create period: %w", err)
	}

	entries, err := s.entryRepo.GetByEmployeeAndRange(employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	expectations, err := s.expectationRepo.GetByEmployeeAndRange(employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load expectations: %w", err)
	}

	view := &PeriodViewResponse{
		Period:             toPeriodResponse(period),
		EntriesByDate:      make(map[string][]DayEntryResponse),
		Totals:             make(map[string]DayTotal),
		ExpectationsByDate: make(map[string]float64),
	}

	for _, entry := range entries {
		iso := calendar.FormatISODate(entry.WorkDate)
		view.EntriesByDate[iso] = append(view.EntriesByDate[iso], DayEntryResponse{
			ID:        entry.ID,
			Date:      iso,
			Type:      entry.Type,
			Hours:     entry.Hours,
			ProjectID: entry.ProjectID,
			Note:      entry.Note,
		})

		dayTotal, seen := view.Totals[iso]
		if !seen {
			dayTotal = DayTotal{Type: string(entry.Type)}
		} else if dayTotal.Type != string(entry.Type) {
			dayTotal.Type = mixedDayType
		}
		dayTotal.Hours += entry.Hours
		view.Totals[iso] = dayTotal
	}

	// Snapshots are returned verbatim; a missing date means no snapshot yet.
	for _, expectation := range expectations {
		view.ExpectationsByDate[calendar.FormatISODate(expectation.WorkDate)] = expectation.ExpectedHours
	}

	return view, nil
}

// GetWeekSummaries returns one coverage/closed row per calendar week touched
// by [from, to], Monday-aligned and bounded to maxSummaryWeeks.
func (s *TimesheetService) GetWeekSummaries(employeeID uuid.UUID, fromISO, toISO string) ([]WeekSummary, error) {
	from, to, err := parseRange(fromISO, toISO)
	if err != nil {
		return nil, err
	}

	firstMonday := calendar.MondayOf(from)
	lastMonday := calendar.MondayOf(to)

	var mondays []time.Time
	for monday := firstMonday; !monday.After(lastMonday) && len(mondays) < maxSummaryWeeks; monday = monday.AddDate(0, 0, 7) {
		mondays = append(mondays, monday)
	}
	if len(mondays) == 0 {
		return []WeekSummary{}, nil
	}

	spanEnd := mondays[len(mondays)-1].AddDate(0, 0, 6)
	entries, err := s.entryRepo.GetByEmployeeAndRange(employeeID, firstMonday, spanEnd)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	// Per week, sum hours per distinct date; multiple entries on one date
	// must count once toward coverage.
	hoursByWeekAndDate := make(map[string]map[string]float64)
	for _, entry := range entries {
		week := calendar.FormatISODate(calendar.MondayOf(entry.WorkDate))
		if hoursByWeekAndDate[week] == nil {
			hoursByWeekAndDate[week] = make(map[string]float64)
		}
		hoursByWeekAndDate[week][calendar.FormatISODate(entry.WorkDate)] += entry.Hours
	}

	periods, err := s.periodRepo.GetByEmployeeAndWeekStarts(employeeID, mondays)
	if err != nil {
		return nil, fmt.Errorf("load periods: %w", err)
	}
	closedByWeek := make(map[string]bool, len(periods))
	for _, period := range periods {
		closedByWeek[calendar.FormatISODate(period.WeekStart)] = period.Closed
	}

	summaries := make([]WeekSummary, 0, len(mondays))
	for _, monday := range mondays {
		week := calendar.FormatISODate(monday)
		days := 0
		for _, hours := range hoursByWeekAndDate[week] {
			if hours > 0 {
				days++
			}
		}
		summaries = append(summaries, WeekSummary{
			Monday:          week,
			DaysWithEntries: days,
			Closed:          closedByWeek[week],
		})
	}

	return summaries, nil
}

func parseRange(fromISO, toISO string) (time.Time, time.Time, error) {
	from, err := calendar.ParseISODate(fromISO)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("from", "must be a valid YYYY-MM-DD date")
	}
	to, err := calendar.ParseISODate(toISO)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("to", "must be a valid YYYY-MM-DD date")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("to", "must not be before from")
	}
	return from, to, nil
}

func toPeriodResponse(period *models.Period) PeriodResponse {
	return PeriodResponse{
		ID:         period.ID,
		EmployeeID: period.EmployeeID,
		WeekKey:    period.WeekKey,
		WeekStart:  calendar.FormatISODate(period.WeekStart),
		Closed:     period.Closed,
		ClosedAt:   period.ClosedAt,
		TotalHours: period.TotalHours,
	}
}
