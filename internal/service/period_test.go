package service_test

import (
	"testing"
	"time"

	apperrors "timesheet-backend/internal/errors"
	"timesheet-backend/internal/mocks"
	"timesheet-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PeriodServiceTestSuite defines the test suite for PeriodService
type PeriodServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockPeriodRepo *mocks.MockPeriodRepositoryInterface
	periodService  *service.PeriodService
}

// SetupTest sets up the test suite
func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPeriodRepo = mocks.NewMockPeriodRepositoryInterface(suite.ctrl)
	suite.periodService = service.NewPeriodService(suite.mockPeriodRepo)
}

// TearDownTest cleans up after each test
func (suite *PeriodServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSetClosedStampsClosedAt tests that closing carries a timestamp
func (suite *PeriodServiceTestSuite) TestSetClosedStampsClosedAt() {
	employeeID := uuid.New()

	suite.mockPeriodRepo.EXPECT().
		SetClosed(employeeID, "2024-W24", true, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ string, _ bool, closedAt *time.Time) error {
			suite.Require().NotNil(closedAt)
			assert.WithinDuration(suite.T(), time.Now().UTC(), *closedAt, time.Minute)
			return nil
		}).
		Times(1)

	err := suite.periodService.SetClosed(employeeID, "2024-W24", true)

	assert.NoError(suite.T(), err)
}

// TestSetClosedReopenClearsClosedAt tests that reopening clears the timestamp
func (suite *PeriodServiceTestSuite) TestSetClosedReopenClearsClosedAt() {
	employeeID := uuid.New()

	suite.mockPeriodRepo.EXPECT().
		SetClosed(employeeID, "2024-W24", false, nil).
		Return(nil).
		Times(1)

	err := suite.periodService.SetClosed(employeeID, "2024-W24", false)

	assert.NoError(suite.T(), err)
}

// TestSetClosedNotFound tests the missing-period mapping
func (suite *PeriodServiceTestSuite) TestSetClosedNotFound() {
	employeeID := uuid.New()

	suite.mockPeriodRepo.EXPECT().
		SetClosed(employeeID, "2024-W24", true, gomock.Any()).
		Return(gorm.ErrRecordNotFound).
		Times(1)

	err := suite.periodService.SetClosed(employeeID, "2024-W24", true)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPeriodNotFound)
}

// TestPeriodServiceTestSuite runs the test suite
func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}
