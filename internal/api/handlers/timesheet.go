package handlers

import (
	"errors"
	"net/http"
	"regexp"

	"timesheet-backend/internal/auth"
	apperrors "timesheet-backend/internal/errors"
	"timesheet-backend/internal/repository"
	"timesheet-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var weekKeyPattern = regexp.MustCompile(`^\d{4}-W\d{2}$`)

// TimesheetHandler handles HTTP requests for timesheet data and period state
type TimesheetHandler struct {
	timesheetService  service.TimesheetServiceInterface
	periodService     service.PeriodServiceInterface
	suggestionService service.SuggestionServiceInterface
	employeeRepo      repository.EmployeeRepositoryInterface
}

// NewTimesheetHandler creates a new timesheet handler
func NewTimesheetHandler(
	timesheetService service.TimesheetServiceInterface,
	periodService service.PeriodServiceInterface,
	suggestionService service.SuggestionServiceInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
) *TimesheetHandler {
	return &TimesheetHandler{
		timesheetService:  timesheetService,
		periodService:     periodService,
		suggestionService: suggestionService,
		employeeRepo:      employeeRepo,
	}
}

// resolveEmployeeID maps the caller to an employee row. Regular callers always
// act on their own record; admins may target any employee via the employee_id
// query parameter.
func (h *TimesheetHandler) resolveEmployeeID(c *gin.Context) (uuid.UUID, error) {
	if requested := c.Query("employee_id"); requested != "" {
		if !auth.IsAdmin(c) {
			return uuid.Nil, apperrors.ErrNotRecordOwner
		}
		id, err := uuid.Parse(requested)
		if err != nil {
			return uuid.Nil, apperrors.NewValidationError("employee_id", "must be a valid UUID")
		}
		return id, nil
	}

	authUserID, ok := auth.GetAuthUserID(c)
	if !ok || authUserID == "" {
		return uuid.Nil, &apperrors.AuthenticationError{Message: "missing auth user id in token"}
	}
	employee, err := h.employeeRepo.GetByAuthUserID(authUserID)
	if err != nil {
		return uuid.Nil, apperrors.ErrEmployeeNotFound
	}
	return employee.ID, nil
}

// GetTimesheet handles GET /timesheet
// @Summary Get timesheet for a date range
// @Description Returns the period header plus entries, per-date totals and expectation snapshots for [from, to]
// @Tags timesheet
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param employee_id query string false "Target employee (admin only)"
// @Success 200 {object} service.PeriodViewResponse "Timesheet view"
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /timesheet [get]
func (h *TimesheetHandler) GetTimesheet(c *gin.Context) {
	employeeID, err := h.resolveEmployeeID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.timesheetService.GetPeriodView(employeeID, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ReplaceEntriesBody represents the expected request body for PUT /timesheet/entries
type ReplaceEntriesBody struct {
	Entries map[string][]service.DayEntryInput `json:"entries" binding:"required"`
}

// ReplaceEntries handles PUT /timesheet/entries
// @Summary Replace day entries
// @Description Atomically replaces the stored entries for every date in the batch and recomputes the period total. All dates must fall within one calendar week; a closed period rejects the whole batch.
// @Tags timesheet
// @Accept json
// @Produce json
// @Param body body ReplaceEntriesBody true "Entries keyed by date"
// @Param employee_id query string false "Target employee (admin only)"
// @Success 204 "Entries replaced"
// @Failure 400 {object} ErrorResponse "Invalid batch"
// @Failure 409 {object} ErrorResponse "Period is closed"
// @Security BearerAuth
// @Router /timesheet/entries [put]
func (h *TimesheetHandler) ReplaceEntries(c *gin.Context) {
	employeeID, err := h.resolveEmployeeID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var body ReplaceEntriesBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.timesheetService.ReplaceDayEntries(employeeID, body.Entries); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSummaries handles GET /timesheet/summaries
// @Summary Get week summaries
// @Description Returns one coverage/closed row per calendar week touched by [from, to]
// @Tags timesheet
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param employee_id query string false "Target employee (admin only)"
// @Success 200 {array} service.WeekSummary "Week summaries"
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Security BearerAuth
// @Router /timesheet/summaries [get]
func (h *TimesheetHandler) GetSummaries(c *gin.Context) {
	employeeID, err := h.resolveEmployeeID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	summaries, err := h.timesheetService.GetWeekSummaries(employeeID, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// ClosePeriod handles POST /periods/:weekKey/close
// @Summary Close a period
// @Description Marks the period for the given ISO week as closed; further entry writes are rejected until reopened
// @Tags periods
// @Produce json
// @Param weekKey path string true "ISO week key (e.g. 2026-W35)"
// @Param employee_id query string false "Target employee (admin only)"
// @Success 204 "Period closed"
// @Failure 400 {object} ErrorResponse "Invalid week key"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Security BearerAuth
// @Router /periods/{weekKey}/close [post]
func (h *TimesheetHandler) ClosePeriod(c *gin.Context) {
	h.setPeriodClosed(c, true)
}

// ReopenPeriod handles POST /periods/:weekKey/reopen
// @Summary Reopen a period
// @Description Reopens a closed period so entries can be edited again
// @Tags periods
// @Produce json
// @Param weekKey path string true "ISO week key (e.g. 2026-W35)"
// @Param employee_id query string false "Target employee (admin only)"
// @Success 204 "Period reopened"
// @Failure 400 {object} ErrorResponse "Invalid week key"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Security BearerAuth
// @Router /periods/{weekKey}/reopen [post]
func (h *TimesheetHandler) ReopenPeriod(c *gin.Context) {
	h.setPeriodClosed(c, false)
}

func (h *TimesheetHandler) setPeriodClosed(c *gin.Context, closed bool) {
	employeeID, err := h.resolveEmployeeID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	weekKey := c.Param("weekKey")
	if !weekKeyPattern.MatchString(weekKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week key must match YYYY-Www"})
		return
	}

	if err := h.periodService.SetClosed(employeeID, weekKey, closed); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SuggestBody represents the expected request body for POST /timesheet/suggest
type SuggestBody struct {
	Command string `json:"command" binding:"required"`
	From    string `json:"from" binding:"required"`
	To      string `json:"to" binding:"required"`
}

// Suggest handles POST /timesheet/suggest
// @Summary Suggest day entries from a natural-language command
// @Description Asks the configured AI backend for entry suggestions. Suggestions are proposals only, nothing is persisted; dates outside the window are dropped and hours are clamped to [0, 24].
// @Tags timesheet
// @Accept json
// @Produce json
// @Param body body SuggestBody true "Command and date window"
// @Param employee_id query string false "Target employee (admin only)"
// @Success 200 {object} service.SuggestionResponse "Sanitized suggestions"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 503 {object} ErrorResponse "Suggestion backend not configured"
// @Security BearerAuth
// @Router /timesheet/suggest [post]
func (h *TimesheetHandler) Suggest(c *gin.Context) {
	employeeID, err := h.resolveEmployeeID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var body SuggestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.suggestionService.ComposeSuggestions(c.Request.Context(), employeeID, body.Command, body.From, body.To)
	if err != nil {
		if errors.Is(err, service.ErrSuggesterNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "suggestion service is not configured"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
