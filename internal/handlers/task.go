package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/planit-app/planit-api/internal/errors"
	"github.com/planit-app/planit-api/internal/middleware"
	"github.com/planit-app/planit-api/internal/services"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskRequest is the request body for creating or replacing a task. Owner
// and tags are referenced by id, matching the project/task input shapes of
// the REST API.
type TaskRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Deadline    time.Time `json:"deadline" binding:"required"`
	Owner       struct {
		ID uint64 `json:"id" binding:"required"`
	} `json:"owner" binding:"required"`
	Tags []struct {
		ID uint64 `json:"id" binding:"required"`
	} `json:"tags"`
	ProjectID uint64 `json:"projectId" binding:"required"`
}

func (r TaskRequest) toInput() services.TaskInput {
	tagIDs := make([]uint64, len(r.Tags))
	for i, tag := range r.Tags {
		tagIDs[i] = tag.ID
	}
	return services.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Deadline:    r.Deadline,
		OwnerID:     r.Owner.ID,
		TagIDs:      tagIDs,
		ProjectID:   r.ProjectID,
	}
}

// ListTasks returns all tasks.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.GetAllTasks()
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask returns a single task.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTaskByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(req.toInput())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask replaces the mutable fields of an existing task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(id, req.toInput())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// AddTag attaches an existing tag to a task.
func (h *TaskHandler) AddTag(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}
	tagID, ok := parseID(c, "tagId")
	if !ok {
		return
	}

	task, err := h.taskService.AddTagByIDByTaskID(taskID, tagID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// ToggleTaskDone flips the done status of a task.
func (h *TaskHandler) ToggleTaskDone(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.ToggleTaskDoneByID(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task, admin or owner only.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	email, role := middleware.GetCaller(c)

	if err := h.taskService.DeleteTaskByID(id, role, email); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
