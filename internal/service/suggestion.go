package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"timesheet-backend/internal/calendar"
	"timesheet-backend/internal/database/models"
	apperrors "timesheet-backend/internal/errors"
	"timesheet-backend/internal/logger"
	"timesheet-backend/internal/repository"

	"github.com/google/uuid"
)

// ErrSuggesterNotConfigured is returned when no suggestion backend is set up
var ErrSuggesterNotConfigured = errors.New("suggestion service is not configured")

// maxSuggestionDays bounds the allowed-date window handed to the suggester
const maxSuggestionDays = 31

// SuggestedEntry is one proposed line item for a date
type SuggestedEntry struct {
	Type  string  `json:"type"`
	Hours float64 `json:"hours"`
}

// DaySuggestion is the proposed entry list for one date
type DaySuggestion struct {
	Date    string           `json:"date"`
	Entries []SuggestedEntry `json:"entries"`
}

// WeekContext is the state handed to the suggester alongside the command
type WeekContext struct {
	AllowedDates   []string           `json:"allowed_dates"`
	HoursByDate    map[string]float64 `json:"hours_by_date"`
	ExpectedByDate map[string]float64 `json:"expected_by_date"`
}

// SuggestionResponse is the sanitized result of a compose call
type SuggestionResponse struct {
	Days    []DaySuggestion `json:"days"`
	Message string          `json:"message,omitempty"`
}

// SuggestionService turns a natural-language command into proposed day
// entries. Suggester output is untrusted: every suggestion is re-validated
// and clamped here before it reaches the caller.
type SuggestionService struct {
	suggester       SuggesterInterface
	entryRepo       repository.DayEntryRepositoryInterface
	expectationRepo repository.DayExpectationRepositoryInterface
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(
	suggester SuggesterInterface,
	entryRepo repository.DayEntryRepositoryInterface,
	expectationRepo repository.DayExpectationRepositoryInterface,
) *SuggestionService {
	return &SuggestionService{
		suggester:       suggester,
		entryRepo:       entryRepo,
		expectationRepo: expectationRepo,
	}
}

// ComposeSuggestions builds the week context for [from, to], asks the
// suggester, and filters the answer: dates outside the window are dropped,
// unknown types are dropped, hours are clamped into [0, 24]. A result that
// filters down to nothing is "no applicable changes", not an error.
func (s *SuggestionService) ComposeSuggestions(ctx context.Context, employeeID uuid.UUID, command, fromISO, toISO string) (*SuggestionResponse, error) {
	if command == "" {
		return nil, apperrors.NewValidationError("command", "command is required")
	}
	from, to, err := parseRange(fromISO, toISO)
	if err != nil {
		return nil, err
	}

	week := WeekContext{
		HoursByDate:    make(map[string]float64),
		ExpectedByDate: make(map[string]float64),
	}
	allowed := make(map[string]bool)
	for date := from; !date.After(to) && len(week.AllowedDates) < maxSuggestionDays; date = date.AddDate(0, 0, 1) {
		iso := calendar.FormatISODate(date)
		week.AllowedDates = append(week.AllowedDates, iso)
		allowed[iso] = true
	}

	entries, err := s.entryRepo.GetByEmployeeAndRange(employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	for _, entry := range entries {
		week.HoursByDate[calendar.FormatISODate(entry.WorkDate)] += entry.Hours
	}
	expectations, err := s.expectationRepo.GetByEmployeeAndRange(employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load expectations: %w", err)
	}
	for _, expectation := range expectations {
		week.ExpectedByDate[calendar.FormatISODate(expectation.WorkDate)] = expectation.ExpectedHours
	}

	raw, err := s.suggester.Suggest(ctx, command, week)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}

	days := sanitizeSuggestions(raw, allowed)
	response := &SuggestionResponse{Days: days}
	if len(days) == 0 {
		response.Message = "no applicable changes"
	}
	return response, nil
}

// sanitizeSuggestions is the mandatory trust-boundary filter over raw
// suggester output. Malformed output is dropped silently, never surfaced as
// an error.
func sanitizeSuggestions(raw []DaySuggestion, allowed map[string]bool) []DaySuggestion {
	log := logger.New()
	days := make([]DaySuggestion, 0, len(raw))
	for _, day := range raw {
		if !allowed[day.Date] {
			log.WithField("date", day.Date).Debug("dropping suggestion outside the allowed date window")
			continue
		}
		entries := make([]SuggestedEntry, 0, len(day.Entries))
		for _, entry := range day.Entries {
			if !models.EntryType(entry.Type).IsValid() {
				log.WithField("type", entry.Type).Debug("dropping suggestion with unknown entry type")
				continue
			}
			if math.IsNaN(entry.Hours) || math.IsInf(entry.Hours, 0) {
				continue
			}
			entry.Hours = math.Min(math.Max(entry.Hours, 0), 24)
			entries = append(entries, entry)
		}
		if len(entries) == 0 {
			continue
		}
		days = append(days, DaySuggestion{Date: day.Date, Entries: entries})
	}
	return days
}
