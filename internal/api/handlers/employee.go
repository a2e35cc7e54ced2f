package handlers

import (
	"net/http"
	"strconv"

	"timesheet-backend/internal/auth"
	"timesheet-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmployeeHandler handles HTTP requests for employees
type EmployeeHandler struct {
	employeeService service.EmployeeServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService service.EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// CreateEmployee handles POST /employees
// @Summary Create a new employee
// @Description Create a new employee row linked to an external auth user id
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} service.EmployeeResponse "Successfully created employee"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Employee already exists"
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.employeeService.CreateEmployee(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// GetEmployee handles GET /employees/:id
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} service.EmployeeResponse "Successfully retrieved employee"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}

	employee, err := h.employeeService.GetEmployee(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// GetCurrentEmployee handles GET /employees/me
// @Summary Get current employee
// @Description Returns the employee row matching the bearer token's auth user id
// @Tags employees
// @Produce json
// @Success 200 {object} service.EmployeeResponse "Successfully retrieved current employee"
// @Failure 401 {object} ErrorResponse "Missing auth user id in token"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/me [get]
func (h *EmployeeHandler) GetCurrentEmployee(c *gin.Context) {
	authUserID, ok := auth.GetAuthUserID(c)
	if !ok || authUserID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth user id in token"})
		return
	}

	employee, err := h.employeeService.GetEmployeeByAuthUserID(authUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// ListEmployees handles GET /employees
// @Summary List employees
// @Description Get all employees with pagination
// @Tags employees
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.EmployeesListResponse "Successfully retrieved employees list"
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	employees, err := h.employeeService.ListEmployees(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// UpdateEmployee handles PUT /employees/:id
// @Summary Update an employee
// @Description Update employee fields; clear_settings / clear_start_date / clear_end_date unset the optional references
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param employee body service.UpdateEmployeeRequest true "Employee data"
// @Success 200 {object} service.EmployeeResponse "Successfully updated employee"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}

	var req service.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.employeeService.UpdateEmployee(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /employees/:id
// @Summary Delete an employee
// @Description Delete an employee and every owned period, entry and snapshot
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 204 "Successfully deleted employee"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}

	if err := h.employeeService.DeleteEmployee(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
