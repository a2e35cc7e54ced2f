package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"timesheet-backend/internal/api/handlers"
	"timesheet-backend/internal/database/models"
	apperrors "timesheet-backend/internal/errors"
	"timesheet-backend/internal/mocks"
	"timesheet-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TimesheetHandlerTestSuite defines the test suite for TimesheetHandler
type TimesheetHandlerTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockTimesheetService  *mocks.MockTimesheetServiceInterface
	mockPeriodService     *mocks.MockPeriodServiceInterface
	mockSuggestionService *mocks.MockSuggestionServiceInterface
	mockEmployeeRepo      *mocks.MockEmployeeRepositoryInterface
	router                *gin.Engine
	employee              *models.Employee
	isAdmin               bool
}

// SetupTest sets up the test suite
func (suite *TimesheetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTimesheetService = mocks.NewMockTimesheetServiceInterface(suite.ctrl)
	suite.mockPeriodService = mocks.NewMockPeriodServiceInterface(suite.ctrl)
	suite.mockSuggestionService = mocks.NewMockSuggestionServiceInterface(suite.ctrl)
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.isAdmin = false

	suite.employee = &models.Employee{AuthUserID: "i501234", FirstName: "Jane", LastName: "Doe"}
	suite.employee.ID = uuid.New()

	handler := handlers.NewTimesheetHandler(
		suite.mockTimesheetService,
		suite.mockPeriodService,
		suite.mockSuggestionService,
		suite.mockEmployeeRepo,
	)

	suite.router = gin.New()
	// Stand-in for the JWT middleware: inject the claims the handlers read.
	suite.router.Use(func(c *gin.Context) {
		c.Set("auth_user_id", suite.employee.AuthUserID)
		c.Set("is_admin", suite.isAdmin)
		c.Next()
	})
	suite.router.GET("/timesheet", handler.GetTimesheet)
	suite.router.PUT("/timesheet/entries", handler.ReplaceEntries)
	suite.router.GET("/timesheet/summaries", handler.GetSummaries)
	suite.router.POST("/timesheet/suggest", handler.Suggest)
	suite.router.POST("/periods/:weekKey/close", handler.ClosePeriod)
	suite.router.POST("/periods/:weekKey/reopen", handler.ReopenPeriod)
}

// TearDownTest cleans up after each test
func (suite *TimesheetHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TimesheetHandlerTestSuite) expectOwnEmployee() {
	suite.mockEmployeeRepo.EXPECT().
		GetByAuthUserID(suite.employee.AuthUserID).
		Return(suite.employee, nil).
		Times(1)
}

// TestGetTimesheet tests the period view endpoint
func (suite *TimesheetHandlerTestSuite) TestGetTimesheet() {
	suite.expectOwnEmployee()
	suite.mockTimesheetService.EXPECT().
		GetPeriodView(suite.employee.ID, "2024-06-10", "2024-06-16").
		Return(&service.PeriodViewResponse{
			Period: service.PeriodResponse{WeekKey: "2024-W24"},
		}, nil).
		Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/timesheet?from=2024-06-10&to=2024-06-16", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response service.PeriodViewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "2024-W24", response.Period.WeekKey)
}

// TestGetTimesheetInvalidRange tests validation mapping to 400
func (suite *TimesheetHandlerTestSuite) TestGetTimesheetInvalidRange() {
	suite.expectOwnEmployee()
	suite.mockTimesheetService.EXPECT().
		GetPeriodView(suite.employee.ID, "not-a-date", "").
		Return(nil, apperrors.NewValidationError("from", "must be a valid YYYY-MM-DD date")).
		Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/timesheet?from=not-a-date", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestReplaceEntries tests the write endpoint
func (suite *TimesheetHandlerTestSuite) TestReplaceEntries() {
	suite.expectOwnEmployee()
	suite.mockTimesheetService.EXPECT().
		ReplaceDayEntries(suite.employee.ID, gomock.Any()).
		Return(nil).
		Times(1)

	body, _ := json.Marshal(handlers.ReplaceEntriesBody{
		Entries: map[string][]service.DayEntryInput{
			"2024-06-10": {{Type: models.EntryTypeWork, Hours: 8}},
		},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/timesheet/entries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestReplaceEntriesClosedPeriod tests the conflict mapping to 409
func (suite *TimesheetHandlerTestSuite) TestReplaceEntriesClosedPeriod() {
	suite.expectOwnEmployee()
	suite.mockTimesheetService.EXPECT().
		ReplaceDayEntries(suite.employee.ID, gomock.Any()).
		Return(apperrors.ErrPeriodClosed).
		Times(1)

	body, _ := json.Marshal(handlers.ReplaceEntriesBody{
		Entries: map[string][]service.DayEntryInput{
			"2024-06-10": {{Type: models.EntryTypeWork, Hours: 8}},
		},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/timesheet/entries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestReplaceEntriesForOtherEmployeeDenied tests that non-admins cannot target
// another employee
func (suite *TimesheetHandlerTestSuite) TestReplaceEntriesForOtherEmployeeDenied() {
	body, _ := json.Marshal(handlers.ReplaceEntriesBody{
		Entries: map[string][]service.DayEntryInput{
			"2024-06-10": {{Type: models.EntryTypeWork, Hours: 8}},
		},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/timesheet/entries?employee_id="+uuid.New().String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestReplaceEntriesAsAdminForOtherEmployee tests the admin override
func (suite *TimesheetHandlerTestSuite) TestReplaceEntriesAsAdminForOtherEmployee() {
	suite.isAdmin = true
	target := uuid.New()
	suite.mockTimesheetService.EXPECT().
		ReplaceDayEntries(target, gomock.Any()).
		Return(nil).
		Times(1)

	body, _ := json.Marshal(handlers.ReplaceEntriesBody{
		Entries: map[string][]service.DayEntryInput{
			"2024-06-10": {{Type: models.EntryTypeWork, Hours: 8}},
		},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/timesheet/entries?employee_id="+target.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestClosePeriod tests closing via week key
func (suite *TimesheetHandlerTestSuite) TestClosePeriod() {
	suite.expectOwnEmployee()
	suite.mockPeriodService.EXPECT().
		SetClosed(suite.employee.ID, "2024-W24", true).
		Return(nil).
		Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/periods/2024-W24/close", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestClosePeriodInvalidWeekKey tests week key validation
func (suite *TimesheetHandlerTestSuite) TestClosePeriodInvalidWeekKey() {
	suite.expectOwnEmployee()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/periods/2024-06-10/close", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestReopenPeriodNotFound tests the 404 mapping
func (suite *TimesheetHandlerTestSuite) TestReopenPeriodNotFound() {
	suite.expectOwnEmployee()
	suite.mockPeriodService.EXPECT().
		SetClosed(suite.employee.ID, "2024-W24", false).
		Return(apperrors.ErrPeriodNotFound).
		Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/periods/2024-W24/reopen", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestSuggest tests the suggestion endpoint
func (suite *TimesheetHandlerTestSuite) TestSuggest() {
	suite.expectOwnEmployee()
	suite.mockSuggestionService.EXPECT().
		ComposeSuggestions(gomock.Any(), suite.employee.ID, "fill my week", "2024-06-10", "2024-06-16").
		Return(&service.SuggestionResponse{
			Days: []service.DaySuggestion{
				{Date: "2024-06-10", Entries: []service.SuggestedEntry{{Type: "work", Hours: 8}}},
			},
		}, nil).
		Times(1)

	body, _ := json.Marshal(handlers.SuggestBody{
		Command: "fill my week",
		From:    "2024-06-10",
		To:      "2024-06-16",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/timesheet/suggest", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response service.SuggestionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(suite.T(), response.Days, 1)
}

// TestSuggestNotConfigured tests the 503 mapping
func (suite *TimesheetHandlerTestSuite) TestSuggestNotConfigured() {
	suite.expectOwnEmployee()
	suite.mockSuggestionService.EXPECT().
		ComposeSuggestions(gomock.Any(), suite.employee.ID, "fill my week", "2024-06-10", "2024-06-16").
		Return(nil, service.ErrSuggesterNotConfigured).
		Times(1)

	body, _ := json.Marshal(handlers.SuggestBody{
		Command: "fill my week",
		From:    "2024-06-10",
		To:      "2024-06-16",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/timesheet/suggest", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
}

// TestTimesheetHandlerTestSuite runs the test suite
func TestTimesheetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TimesheetHandlerTestSuite))
}
