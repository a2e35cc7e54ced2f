package service

import (
	"errors"
	"fmt"
	"time"

	"timesheet-backend/internal/calendar"
	"timesheet-backend/internal/database/models"
	apperrors "timesheet-backend/internal/errors"
	"timesheet-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo      repository.EmployeeRepositoryInterface
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{repo: repo, validator: validator}
}

// CreateEmployeeRequest represents the data needed to create an employee
type CreateEmployeeRequest struct {
	AuthUserID string     `json:"auth_user_id" validate:"required,max=255"`
	FirstName  string     `json:"first_name" validate:"required,max=100"`
	LastName   string     `json:"last_name" validate:"required,max=100"`
	Email      string     `json:"email" validate:"omitempty,email,max=255"`
	SettingsID *uuid.UUID `json:"settings_id"`
	StartDate  *string    `json:"start_date"`
	EndDate    *string    `json:"end_date"`
}

// UpdateEmployeeRequest represents the data needed to update an employee.
// Settings reference and employment bounds use a present-but-null convention:
// ClearSettings / ClearStartDate / ClearEndDate unset them explicitly.
type UpdateEmployeeRequest struct {
	FirstName      *string    `json:"first_name" validate:"omitempty,max=100"`
	LastName       *string    `json:"last_name" validate:"omitempty,max=100"`
	Email          *string    `json:"email" validate:"omitempty,email,max=255"`
	SettingsID     *uuid.UUID `json:"settings_id"`
	ClearSettings  bool       `json:"clear_settings"`
	StartDate      *string    `json:"start_date"`
	ClearStartDate bool       `json:"clear_start_date"`
	EndDate        *string    `json:"end_date"`
	ClearEndDate   bool       `json:"clear_end_date"`
}

// EmployeeResponse represents an employee for API responses
type EmployeeResponse struct {
	ID         uuid.UUID  `json:"id"`
	AuthUserID string     `json:"auth_user_id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	SettingsID *uuid.UUID `json:"settings_id,omitempty"`
	StartDate  *string    `json:"start_date,omitempty"`
	EndDate    *string    `json:"end_date,omitempty"`
}

// EmployeesListResponse is the schema for GET /employees
type EmployeesListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// CreateEmployee creates a new employee
func (s *EmployeeService) CreateEmployee(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.repo.GetByAuthUserID(req.AuthUserID); err == nil && existing != nil {
		return nil, apperrors.ErrEmployeeExists
	}

	startDate, err := parseOptionalDate(req.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(req.EndDate, "end_date")
	if err != nil {
		return nil, err
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, apperrors.NewValidationError("end_date", "must not be before start_date")
	}

	employee := &models.Employee{
		AuthUserID: req.AuthUserID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		SettingsID: req.SettingsID,
		StartDate:  startDate,
		EndDate:    endDate,
	}

	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return toEmployeeResponse(employee), nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeService) GetEmployee(id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetEmployeeByAuthUserID resolves the employee record behind a caller's token
func (s *EmployeeService) GetEmployeeByAuthUserID(authUserID string) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByAuthUserID(authUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// ListEmployees retrieves all employees with pagination
func (s *EmployeeService) ListEmployees(limit, offset int) (*EmployeesListResponse, error) {
	employees, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, err
	}
	responses := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, *toEmployeeResponse(&employees[i]))
	}
	return &EmployeesListResponse{
		Employees: responses,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

// UpdateEmployee updates an employee
func (s *EmployeeService) UpdateEmployee(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.ClearSettings {
		employee.SettingsID = nil
	} else if req.SettingsID != nil {
		employee.SettingsID = req.SettingsID
	}
	if req.ClearStartDate {
		employee.StartDate = nil
	} else if req.StartDate != nil {
		startDate, err := parseOptionalDate(req.StartDate, "start_date")
		if err != nil {
			return nil, err
		}
		employee.StartDate = startDate
	}
	if req.ClearEndDate {
		employee.EndDate = nil
	} else if req.EndDate != nil {
		endDate, err := parseOptionalDate(req.EndDate, "end_date")
		if err != nil {
			return nil, err
		}
		employee.EndDate = endDate
	}
	if employee.StartDate != nil && employee.EndDate != nil && employee.EndDate.Before(*employee.StartDate) {
		return nil, apperrors.NewValidationError("end_date", "must not be before start_date")
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return toEmployeeResponse(employee), nil
}

// DeleteEmployee hard-deletes an employee and all owned rows
func (s *EmployeeService) DeleteEmployee(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}

func parseOptionalDate(iso *string, field string) (*time.Time, error) {
	if iso == nil || *iso == "" {
		return nil, nil
	}
	date, err := calendar.ParseISODate(*iso)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "must be a valid YYYY-MM-DD date")
	}
	return &date, nil
}

func toEmployeeResponse(employee *models.Employee) *EmployeeResponse {
	response := &EmployeeResponse{
		ID:         employee.ID,
		AuthUserID: employee.AuthUserID,
		FirstName:  employee.FirstName,
		LastName:   employee.LastName,
		Email:      employee.Email,
		SettingsID: employee.SettingsID,
	}
	if employee.StartDate != nil {
		iso := calendar.FormatISODate(*employee.StartDate)
		response.StartDate = &iso
	}
	if employee.EndDate != nil {
		iso := calendar.FormatISODate(*employee.EndDate)
		response.EndDate = &iso
	}
	return response
}
