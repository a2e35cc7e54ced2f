//go:build integration
// +build integration

package repository

import (
	"testing"

	"timesheet-backend/internal/database/models"
	"timesheet-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SettingsRepositoryTestSuite tests the SettingsRepository
type SettingsRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SettingsRepository
}

// SetupSuite runs before all tests in the suite
func (suite *SettingsRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSettingsRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *SettingsRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SettingsRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SettingsRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestSaveAndGetByID tests a basic save and reload
func (suite *SettingsRepositoryTestSuite) TestSaveAndGetByID() {
	settings := &models.Settings{Name: "standard", MondayHours: 8, FridayHours: 6.5}

	suite.NoError(suite.repo.Save(settings))

	reloaded, err := suite.repo.GetByID(settings.ID)
	suite.NoError(err)
	suite.Equal("standard", reloaded.Name)
	suite.Equal(6.5, reloaded.FridayHours)
	suite.False(reloaded.IsDefault)
}

// TestSaveDefaultClearsPreviousDefault tests the at-most-one-default rule
func (suite *SettingsRepositoryTestSuite) TestSaveDefaultClearsPreviousDefault() {
	first := suite.baseTestSuite.CreateTestSettings("standard", true)

	second := &models.Settings{Name: "part-time", IsDefault: true, MondayHours: 4}
	suite.NoError(suite.repo.Save(second))

	current, err := suite.repo.GetDefault()
	suite.NoError(err)
	suite.Equal(second.ID, current.ID)

	previous, err := suite.repo.GetByID(first.ID)
	suite.NoError(err)
	suite.False(previous.IsDefault)

	var count int64
	suite.baseTestSuite.DB.Table("settings").Where("is_default = ?", true).Count(&count)
	suite.Equal(int64(1), count)
}

// TestSaveNonDefaultKeepsExistingDefault tests that saving a plain template
// does not disturb the default flag
func (suite *SettingsRepositoryTestSuite) TestSaveNonDefaultKeepsExistingDefault() {
	existing := suite.baseTestSuite.CreateTestSettings("standard", true)

	other := &models.Settings{Name: "part-time", MondayHours: 4}
	suite.NoError(suite.repo.Save(other))

	current, err := suite.repo.GetDefault()
	suite.NoError(err)
	suite.Equal(existing.ID, current.ID)
}

// TestGetDefaultNotFound tests the no-default case
func (suite *SettingsRepositoryTestSuite) TestGetDefaultNotFound() {
	suite.baseTestSuite.CreateTestSettings("standard", false)

	settings, err := suite.repo.GetDefault()

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(settings)
}

// TestGetAllOrdersByName tests the listing order
func (suite *SettingsRepositoryTestSuite) TestGetAllOrdersByName() {
	suite.baseTestSuite.CreateTestSettings("part-time", false)
	suite.baseTestSuite.CreateTestSettings("full-time", true)

	all, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("full-time", all[0].Name)
	suite.Equal("part-time", all[1].Name)
}

// TestDelete tests removing a template
func (suite *SettingsRepositoryTestSuite) TestDelete() {
	settings := suite.baseTestSuite.CreateTestSettings("standard", false)

	suite.NoError(suite.repo.Delete(settings.ID))

	_, err := suite.repo.GetByID(settings.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestSettingsRepositoryTestSuite runs the test suite
func TestSettingsRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsRepositoryTestSuite))
}
