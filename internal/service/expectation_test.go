package service_test

import (
	"errors"
	"testing"
	"time"

	"timesheet-backend/internal/database/models"
	"timesheet-backend/internal/mocks"
	"timesheet-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ExpectationResolverTestSuite defines the test suite for ExpectationResolver
type ExpectationResolverTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockSettingsRepo *mocks.MockSettingsRepositoryInterface
	resolver         *service.ExpectationResolver
}

// SetupTest sets up the test suite
func (suite *ExpectationResolverTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSettingsRepo = mocks.NewMockSettingsRepositoryInterface(suite.ctrl)
	suite.resolver = service.NewExpectationResolver(suite.mockSettingsRepo)
}

// TearDownTest cleans up after each test
func (suite *ExpectationResolverTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func weekday(suite *ExpectationResolverTestSuite, iso string) time.Time {
	date, err := time.Parse("2006-01-02", iso)
	suite.Require().NoError(err)
	return date
}

// TestResolveFromExplicitSettings tests the first rung of the fallback chain
func (suite *ExpectationResolverTestSuite) TestResolveFromExplicitSettings() {
	settingsID := uuid.New()
	settings := &models.Settings{Name: "part-time", MondayHours: 6}
	settings.ID = settingsID

	suite.mockSettingsRepo.EXPECT().GetByID(settingsID).Return(settings, nil).Times(1)

	// 2024-06-10 is a Monday
	hours, err := suite.resolver.ResolveExpectedHours(&settingsID, weekday(suite, "2024-06-10"))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 6.0, hours)
}

// TestResolveFallsBackToDefault tests that a dangling settings reference falls
// through to the default-flagged row
func (suite *ExpectationResolverTestSuite) TestResolveFallsBackToDefault() {
	settingsID := uuid.New()
	defaultSettings := &models.Settings{Name: "standard", IsDefault: true, MondayHours: 7.5}

	suite.mockSettingsRepo.EXPECT().GetByID(settingsID).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockSettingsRepo.EXPECT().GetDefault().Return(defaultSettings, nil).Times(1)

	hours, err := suite.resolver.ResolveExpectedHours(&settingsID, weekday(suite, "2024-06-10"))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7.5, hours)
}

// TestResolveFallsBackToBuiltIn tests the built-in 8x5 schedule
func (suite *ExpectationResolverTestSuite) TestResolveFallsBackToBuiltIn() {
	suite.mockSettingsRepo.EXPECT().GetDefault().Return(nil, gorm.ErrRecordNotFound).Times(1)

	hours, err := suite.resolver.ResolveExpectedHours(nil, weekday(suite, "2024-06-10"))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 8.0, hours)
}

// TestResolveBuiltInWeekend tests that the built-in schedule expects nothing
// on weekends
func (suite *ExpectationResolverTestSuite) TestResolveBuiltInWeekend() {
	suite.mockSettingsRepo.EXPECT().GetDefault().Return(nil, gorm.ErrRecordNotFound).Times(2)

	saturday, err := suite.resolver.ResolveExpectedHours(nil, weekday(suite, "2024-06-15"))
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0.0, saturday)

	sunday, err := suite.resolver.ResolveExpectedHours(nil, weekday(suite, "2024-06-16"))
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0.0, sunday)
}

// TestResolvePropagatesStoreErrors tests that a real store failure is not
// swallowed by the fallback chain
func (suite *ExpectationResolverTestSuite) TestResolvePropagatesStoreErrors() {
	settingsID := uuid.New()
	storeErr := errors.New("connection refused")

	suite.mockSettingsRepo.EXPECT().GetByID(settingsID).Return(nil, storeErr).Times(1)

	_, err := suite.resolver.ResolveExpectedHours(&settingsID, weekday(suite, "2024-06-10"))

	assert.ErrorIs(suite.T(), err, storeErr)
}

// TestEffectiveSettings tests the full-template variant of the fallback chain
func (suite *ExpectationResolverTestSuite) TestEffectiveSettings() {
	suite.mockSettingsRepo.EXPECT().GetDefault().Return(nil, gorm.ErrRecordNotFound).Times(1)

	settings, err := suite.resolver.EffectiveSettings(nil)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 8.0, settings.MondayHours)
	assert.Equal(suite.T(), 0.0, settings.SundayHours)
}

// TestExpectationResolverTestSuite runs the test suite
func TestExpectationResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ExpectationResolverTestSuite))
}
