package service_test

import (
	"context"
	"testing"

	apperrors "timesheet-backend/internal/errors"
	"timesheet-backend/internal/mocks"
	"timesheet-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SuggestionServiceTestSuite defines the test suite for SuggestionService
type SuggestionServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockSuggester       *mocks.MockSuggesterInterface
	mockEntryRepo       *mocks.MockDayEntryRepositoryInterface
	mockExpectationRepo *mocks.MockDayExpectationRepositoryInterface
	suggestionService   *service.SuggestionService
}

// SetupTest sets up the test suite
func (suite *SuggestionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSuggester = mocks.NewMockSuggesterInterface(suite.ctrl)
	suite.mockEntryRepo = mocks.NewMockDayEntryRepositoryInterface(suite.ctrl)
	suite.mockExpectationRepo = mocks.NewMockDayExpectationRepositoryInterface(suite.ctrl)
	suite.suggestionService = service.NewSuggestionService(
		suite.mockSuggester,
		suite.mockEntryRepo,
		suite.mockExpectationRepo,
	)
}

// TearDownTest cleans up after each test
func (suite *SuggestionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SuggestionServiceTestSuite) expectContextLoads() {
	suite.mockEntryRepo.EXPECT().
		GetByEmployeeAndRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)
	suite.mockExpectationRepo.EXPECT().
		GetByEmployeeAndRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)
}

// TestComposeSuggestionsClampsAndFilters tests the trust-boundary filter:
// out-of-window dates dropped, unknown types dropped, hours clamped to [0, 24]
func (suite *SuggestionServiceTestSuite) TestComposeSuggestionsClampsAndFilters() {
	suite.expectContextLoads()
	suite.mockSuggester.EXPECT().
		Suggest(gomock.Any(), "fill my week", gomock.Any()).
		Return([]service.DaySuggestion{
			{Date: "2024-06-10", Entries: []service.SuggestedEntry{
				{Type: "work", Hours: 30},
				{Type: "vacation", Hours: 8},
			}},
			{Date: "2024-06-11", Entries: []service.SuggestedEntry{
				{Type: "sick", Hours: -2},
			}},
			{Date: "2024-07-01", Entries: []service.SuggestedEntry{
				{Type: "work", Hours: 8},
			}},
		}, nil).
		Times(1)

	response, err := suite.suggestionService.ComposeSuggestions(
		context.Background(), uuid.New(), "fill my week", "2024-06-10", "2024-06-16")

	suite.Require().NoError(err)
	suite.Require().Len(response.Days, 2)
	assert.Equal(suite.T(), "2024-06-10", response.Days[0].Date)
	suite.Require().Len(response.Days[0].Entries, 1)
	assert.Equal(suite.T(), 24.0, response.Days[0].Entries[0].Hours)
	assert.Equal(suite.T(), "2024-06-11", response.Days[1].Date)
	assert.Equal(suite.T(), 0.0, response.Days[1].Entries[0].Hours)
	assert.Empty(suite.T(), response.Message)
}

// TestComposeSuggestionsEmptyResult tests that a fully filtered answer is a
// message, not an error
func (suite *SuggestionServiceTestSuite) TestComposeSuggestionsEmptyResult() {
	suite.expectContextLoads()
	suite.mockSuggester.EXPECT().
		Suggest(gomock.Any(), "log my vacation", gomock.Any()).
		Return([]service.DaySuggestion{
			{Date: "2025-01-01", Entries: []service.SuggestedEntry{{Type: "work", Hours: 8}}},
		}, nil).
		Times(1)

	response, err := suite.suggestionService.ComposeSuggestions(
		context.Background(), uuid.New(), "log my vacation", "2024-06-10", "2024-06-16")

	suite.Require().NoError(err)
	assert.Empty(suite.T(), response.Days)
	assert.Equal(suite.T(), "no applicable changes", response.Message)
}

// TestComposeSuggestionsRequiresCommand tests the command guard
func (suite *SuggestionServiceTestSuite) TestComposeSuggestionsRequiresCommand() {
	_, err := suite.suggestionService.ComposeSuggestions(
		context.Background(), uuid.New(), "", "2024-06-10", "2024-06-16")

	var validation *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &validation)
}

// TestComposeSuggestionsBuildsWeekContext tests that existing hours and
// expectations reach the suggester
func (suite *SuggestionServiceTestSuite) TestComposeSuggestionsBuildsWeekContext() {
	suite.mockEntryRepo.EXPECT().
		GetByEmployeeAndRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)
	suite.mockExpectationRepo.EXPECT().
		GetByEmployeeAndRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)
	suite.mockSuggester.EXPECT().
		Suggest(gomock.Any(), "anything", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, week service.WeekContext) ([]service.DaySuggestion, error) {
			assert.Len(suite.T(), week.AllowedDates, 7)
			assert.Equal(suite.T(), "2024-06-10", week.AllowedDates[0])
			assert.Equal(suite.T(), "2024-06-16", week.AllowedDates[6])
			return nil, nil
		}).
		Times(1)

	response, err := suite.suggestionService.ComposeSuggestions(
		context.Background(), uuid.New(), "anything", "2024-06-10", "2024-06-16")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "no applicable changes", response.Message)
}

// TestSuggestionServiceTestSuite runs the test suite
func TestSuggestionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SuggestionServiceTestSuite))
}
