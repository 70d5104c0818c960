package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/planit-app/planit-api/internal/errors"
	"github.com/planit-app/planit-api/internal/middleware"
	"github.com/planit-app/planit-api/internal/services"
)

// ProjectHandler coordinates project-related HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "invalid "+param)
		return 0, false
	}
	return id, true
}

// ListProjects returns the projects visible to the caller.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	email, role := middleware.GetCaller(c)

	projects, err := h.projectService.GetAllProjects(role, email)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject creates a new project for the given owner.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	type CreateProjectRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		Owner       struct {
			ID uint64 `json:"id" binding:"required"`
		} `json:"owner" binding:"required"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	_, role := middleware.GetCaller(c)

	project, err := h.projectService.CreateProject(req.Title, req.Description, req.Owner.ID, role)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// GetProject returns a single project.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetProjectByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// ToggleProjectDone flips the done status of a project.
func (h *ProjectHandler) ToggleProjectDone(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.ToggleProjectDoneByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// AddTask attaches an existing task to a project.
func (h *ProjectHandler) AddTask(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	taskID, ok := parseID(c, "taskId")
	if !ok {
		return
	}

	project, err := h.projectService.AddTaskByIDByProjectID(projectID, taskID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// AddMember adds a user to a project's member list.
func (h *ProjectHandler) AddMember(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseID(c, "memberId")
	if !ok {
		return
	}

	email, role := middleware.GetCaller(c)

	project, err := h.projectService.AddMemberByIDByProjectID(projectID, memberID, role, email)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}
