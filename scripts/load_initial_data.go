package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"timesheet-backend/internal/calendar"
	"timesheet-backend/internal/config"
	"timesheet-backend/internal/database"
	"timesheet-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type SettingsData struct {
	Name      string  `yaml:"name"`
	IsDefault bool    `yaml:"is_default"`
	Monday    float64 `yaml:"monday"`
	Tuesday   float64 `yaml:"tuesday"`
	Wednesday float64 `yaml:"wednesday"`
	Thursday  float64 `yaml:"thursday"`
	Friday    float64 `yaml:"friday"`
	Saturday  float64 `yaml:"saturday"`
	Sunday    float64 `yaml:"sunday"`
}

type ProjectData struct {
	Name   string `yaml:"name"`
	Active bool   `yaml:"active"`
}

type EmployeeData struct {
	AuthUserID   string `yaml:"auth_user_id"`
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	Email        string `yaml:"email"`
	SettingsName string `yaml:"settings_name,omitempty"`
	StartDate    string `yaml:"start_date,omitempty"`
	EndDate      string `yaml:"end_date,omitempty"`
}

// File structures
type SettingsFile struct {
	Settings []SettingsData `yaml:"settings"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var settingsFile SettingsFile
	if err := readYAML(filepath.Join(dataDir, "settings.yaml"), &settingsFile); err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	var projectsFile ProjectsFile
	if err := readYAML(filepath.Join(dataDir, "projects.yaml"), &projectsFile); err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	var employeesFile EmployeesFile
	if err := readYAML(filepath.Join(dataDir, "employees.yaml"), &employeesFile); err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	// Settings first: employees reference them by name
	settingsMap := make(map[string]*models.Settings)
	settingsCreated := 0
	for _, data := range settingsFile.Settings {
		row, created, err := upsertSettings(db, data)
		if err != nil {
			return fmt.Errorf("failed to create settings %s: %w", data.Name, err)
		}
		settingsMap[data.Name] = row
		if created {
			settingsCreated++
		}
	}
	log.Printf("📋 Settings: %d created, %d total", settingsCreated, len(settingsFile.Settings))

	projectsCreated := 0
	for _, data := range projectsFile.Projects {
		created, err := upsertProject(db, data)
		if err != nil {
			return fmt.Errorf("failed to create project %s: %w", data.Name, err)
		}
		if created {
			projectsCreated++
		}
	}
	log.Printf("📋 Projects: %d created, %d total", projectsCreated, len(projectsFile.Projects))

	employeesCreated := 0
	for _, data := range employeesFile.Employees {
		created, err := upsertEmployee(db, data, settingsMap)
		if err != nil {
			return fmt.Errorf("failed to create employee %s: %w", data.AuthUserID, err)
		}
		if created {
			employeesCreated++
		}
	}
	log.Printf("📋 Employees: %d created, %d total", employeesCreated, len(employeesFile.Employees))

	return nil
}

func readYAML(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing file means nothing to seed for that kind
			return nil
		}
		return err
	}
	return yaml.Unmarshal(raw, out)
}

func upsertSettings(db *gorm.DB, data SettingsData) (*models.Settings, bool, error) {
	var existing models.Settings
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	row := &models.Settings{
		Name:           data.Name,
		IsDefault:      data.IsDefault,
		MondayHours:    data.Monday,
		TuesdayHours:   data.Tuesday,
		WednesdayHours: data.Wednesday,
		ThursdayHours:  data.Thursday,
		FridayHours:    data.Friday,
		SaturdayHours:  data.Saturday,
		SundayHours:    data.Sunday,
	}
	if err := db.Create(row).Error; err != nil {
		return nil, false, err
	}
	return row, true, nil
}

func upsertProject(db *gorm.DB, data ProjectData) (bool, error) {
	var existing models.Project
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return true, db.Create(&models.Project{Name: data.Name, Active: data.Active}).Error
}

func upsertEmployee(db *gorm.DB, data EmployeeData, settingsMap map[string]*models.Settings) (bool, error) {
	var existing models.Employee
	err := db.First(&existing, "auth_user_id = ?", data.AuthUserID).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	row := &models.Employee{
		AuthUserID: data.AuthUserID,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Email:      data.Email,
	}
	if data.SettingsName != "" {
		settings, ok := settingsMap[data.SettingsName]
		if !ok {
			return false, fmt.Errorf("unknown settings_name %q", data.SettingsName)
		}
		row.SettingsID = &settings.ID
	}
	if data.StartDate != "" {
		start, err := calendar.ParseISODate(data.StartDate)
		if err != nil {
			return false, fmt.Errorf("bad start_date: %w", err)
		}
		row.StartDate = &start
	}
	if data.EndDate != "" {
		end, err := calendar.ParseISODate(data.EndDate)
		if err != nil {
			return false, fmt.Errorf("bad end_date: %w", err)
		}
		row.EndDate = &end
	}

	return true, db.Create(row).Error
}
