package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"timesheet-backend/internal/database/models"
	apperrors "timesheet-backend/internal/errors"
	"timesheet-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectHandler handles HTTP requests for projects. Projects are a flat
// lookup table, so the handler talks to the repository directly.
type ProjectHandler struct {
	projectRepo repository.ProjectRepositoryInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectRepo repository.ProjectRepositoryInterface) *ProjectHandler {
	return &ProjectHandler{projectRepo: projectRepo}
}

// ProjectBody represents the expected request body for project writes
type ProjectBody struct {
	Name   string `json:"name" binding:"required,max=100"`
	Active *bool  `json:"active"`
}

// CreateProject handles POST /projects
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body ProjectBody true "Project data"
// @Success 201 {object} models.Project "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var body ProjectBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := &models.Project{Name: body.Name, Active: true}
	if body.Active != nil {
		project.Active = *body.Active
	}

	if err := h.projectRepo.Create(project); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject handles GET /projects/:id
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} models.Project "Successfully retrieved project"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	project, err := h.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apperrors.ErrProjectNotFound)
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects handles GET /projects
// @Summary List projects
// @Tags projects
// @Produce json
// @Param limit query int false "Number of items to return" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved projects list"
// @Security BearerAuth
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	projects, total, err := h.projectRepo.GetAll(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// UpdateProject handles PUT /projects/:id
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body ProjectBody true "Project data"
// @Success 200 {object} models.Project "Successfully updated project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var body ProjectBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apperrors.ErrProjectNotFound)
			return
		}
		respondError(c, err)
		return
	}

	project.Name = body.Name
	if body.Active != nil {
		project.Active = *body.Active
	}

	if err := h.projectRepo.Update(project); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete a project
// @Description Entries referencing the project keep their hours; the reference is nulled
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 204 "Successfully deleted project"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	if _, err := h.projectRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apperrors.ErrProjectNotFound)
			return
		}
		respondError(c, err)
		return
	}

	if err := h.projectRepo.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
