package testutils

import (
	"fmt"

	"timesheet-backend/internal/database/models"

	"github.com/google/uuid"
)

// CreateTestSettings inserts a weekly-hours template with an 8x5 schedule.
func (s *BaseTestSuite) CreateTestSettings(name string, isDefault bool) *models.Settings {
	settings := &models.Settings{
		Name:           name,
		IsDefault:      isDefault,
		MondayHours:    8,
		TuesdayHours:   8,
		WednesdayHours: 8,
		ThursdayHours:  8,
		FridayHours:    8,
	}
	s.Require().NoError(s.DB.Create(settings).Error)
	return settings
}

// CreateTestEmployee inserts an employee with a unique auth user id.
func (s *BaseTestSuite) CreateTestEmployee(settingsID *uuid.UUID) *models.Employee {
	employee := &models.Employee{
		AuthUserID: fmt.Sprintf("test-%s", uuid.New().String()[:8]),
		FirstName:  "Test",
		LastName:   "Employee",
		Email:      fmt.Sprintf("test-%s@example.com", uuid.New().String()[:8]),
		SettingsID: settingsID,
	}
	s.Require().NoError(s.DB.Create(employee).Error)
	return employee
}

// CreateTestProject inserts an active project.
func (s *BaseTestSuite) CreateTestProject(name string) *models.Project {
	project := &models.Project{Name: name, Active: true}
	s.Require().NoError(s.DB.Create(project).Error)
	return project
}
