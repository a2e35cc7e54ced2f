//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"timesheet-backend/internal/calendar"
	"timesheet-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PeriodRepositoryTestSuite tests the PeriodRepository
type PeriodRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PeriodRepository
}

// SetupSuite runs before all tests in the suite
func (suite *PeriodRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPeriodRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *PeriodRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PeriodRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PeriodRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetOrCreateCreatesOpenZeroTotalRow tests first-touch creation
func (suite *PeriodRepositoryTestSuite) TestGetOrCreateCreatesOpenZeroTotalRow() {
	employee := suite.baseTestSuite.CreateTestEmployee(nil)
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	period, created, err := suite.repo.GetOrCreate(employee.ID, monday)

	suite.NoError(err)
	suite.True(created)
	suite.Equal("2024-W24", period.WeekKey)
	suite.Equal(monday, period.WeekStart.UTC())
	suite.False(period.Closed)
	suite.Nil(period.ClosedAt)
	suite.Equal(0.0, period.TotalHours)
}

// TestGetOrCreateIsIdempotent tests that a second call returns the same row
func (suite *PeriodRepositoryTestSuite) TestGetOrCreateIsIdempotent() {
	employee := suite.baseTestSuite.CreateTestEmployee(nil)
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	first, created, err := suite.repo.GetOrCreate(employee.ID, monday)
	suite.NoError(err)
	suite.True(created)

	second, created, err := suite.repo.GetOrCreate(employee.ID, monday)
	suite.NoError(err)
	suite.False(created)
	suite.Equal(first.ID, second.ID)

	var count int64
	suite.baseTestSuite.DB.Table("periods").Where("employee_id = ?", employee.ID).Count(&count)
	suite.Equal(int64(1), count)
}

// TestGetOrCreateNormalizesMidWeekDate tests that any weekday lands on the Monday row
func (suite *PeriodRepositoryTestSuite) TestGetOrCreateNormalizesMidWeekDate() {
	employee := suite.baseTestSuite.CreateTestEmployee(nil)
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	thursday := time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)

	fromMonday, _, err := suite.repo.GetOrCreate(employee.ID, monday)
	suite.NoError(err)

	fromThursday, created, err := suite.repo.GetOrCreate(employee.ID, thursday)
	suite.NoError(err)
	suite.False(created)
	suite.Equal(fromMonday.ID, fromThursday.ID)
}

// TestGetOrCreateSeparatesEmployees tests that rows are scoped per employee
func (suite *PeriodRepositoryTestSuite) TestGetOrCreateSeparatesEmployees() {
	first := suite.baseTestSuite.CreateTestEmployee(nil)
	second := suite.baseTestSuite.CreateTestEmployee(nil)
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	periodA, _, err := suite.repo.GetOrCreate(first.ID, monday)
	suite.NoError(err)
	periodB, _, err := suite.repo.GetOrCreate(second.ID, monday)
	suite.NoError(err)

	suite.NotEqual(periodA.ID, periodB.ID)
	suite.Equal(periodA.WeekKey, periodB.WeekKey)
}

// TestUpdateTotalHours tests storing a recomputed total
func (suite *PeriodRepositoryTestSuite) TestUpdateTotalHours() {
	employee := suite.baseTestSuite.CreateTestEmployee(nil)
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	period, _, err := suite.repo.GetOrCreate(employee.ID, monday)
	suite.NoError(err)

	suite.NoError(suite.repo.UpdateTotalHours(period.ID, 37.5))

	reloaded, err := suite.repo.GetByEmployeeAndWeekKey(employee.ID, period.WeekKey)
	suite.NoError(err)
	suite.Equal(37.5, reloaded.TotalHours)
}

// TestSetClosedRoundTrip tests closing and reopening a period
func (suite *PeriodRepositoryTestSuite) TestSetClosedRoundTrip() {
	employee := suite.baseTestSuite.CreateTestEmployee(nil)
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	period, _, err := suite.repo.GetOrCreate(employee.ID, monday)
	suite.NoError(err)

	now := time.Now().UTC()
	suite.NoError(suite.repo.SetClosed(employee.ID, period.WeekKey, true, &now))

	closed, err := suite.repo.GetByEmployeeAndWeekKey(employee.ID, period.WeekKey)
	suite.NoError(err)
	suite.True(closed.Closed)
	suite.NotNil(closed.ClosedAt)

	suite.NoError(suite.repo.SetClosed(employee.ID, period.WeekKey, false, nil))

	reopened, err := suite.repo.GetByEmployeeAndWeekKey(employee.ID, period.WeekKey)
	suite.NoError(err)
	suite.False(reopened.Closed)
	suite.Nil(reopened.ClosedAt)
}

// TestSetClosedNotFound tests closing a week that has no period row
func (suite *PeriodRepositoryTestSuite) TestSetClosedNotFound() {
	employee := suite.baseTestSuite.CreateTestEmployee(nil)
	now := time.Now().UTC()

	err := suite.repo.SetClosed(employee.ID, "2024-W24", true, &now)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByEmployeeAndWeekStarts tests the multi-week lookup used by summaries
func (suite *PeriodRepositoryTestSuite) TestGetByEmployeeAndWeekStarts() {
	employee := suite.baseTestSuite.CreateTestEmployee(nil)
	week1 := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	week2 := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	week3 := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)

	_, _, err := suite.repo.GetOrCreate(employee.ID, week1)
	suite.NoError(err)
	_, _, err = suite.repo.GetOrCreate(employee.ID, week2)
	suite.NoError(err)

	periods, err := suite.repo.GetByEmployeeAndWeekStarts(employee.ID, []time.Time{week1, week2, week3})
	suite.NoError(err)
	suite.Len(periods, 2)

	keys := []string{periods[0].WeekKey, periods[1].WeekKey}
	suite.Contains(keys, calendar.ISOWeekKey(week1))
	suite.Contains(keys, calendar.ISOWeekKey(week2))

	empty, err := suite.repo.GetByEmployeeAndWeekStarts(employee.ID, nil)
	suite.NoError(err)
	suite.Empty(empty)
}

// TestGetByEmployeeAndWeekKeyNotFound tests a miss on the unique pair
func (suite *PeriodRepositoryTestSuite) TestGetByEmployeeAndWeekKeyNotFound() {
	period, err := suite.repo.GetByEmployeeAndWeekKey(uuid.New(), "2024-W24")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(period)
}

// TestPeriodRepositoryTestSuite runs the test suite
func TestPeriodRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodRepositoryTestSuite))
}
