package repository

import (
	"timesheet-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByAuthUserID retrieves an employee by their external auth-user id
func (r *EmployeeRepository) GetByAuthUserID(authUserID string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "auth_user_id = ?", authUserID).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetAll retrieves all employees with pagination
func (r *EmployeeRepository) GetAll(limit, offset int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	if err := r.db.Model(&models.Employee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Model(&models.Employee{}).Order("last_name, first_name").Limit(limit).Offset(offset).Find(&employees).Error; err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Update updates an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// Delete hard-deletes an employee. Owned periods, entries and expectation
// snapshots go with it via the cascade constraints.
func (r *EmployeeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}
