package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/planit-app/planit-api/internal/errors"
	"github.com/planit-app/planit-api/internal/models"
	"github.com/planit-app/planit-api/internal/repository"
)

// TaskService handles task business logic.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	tagRepo     repository.TagRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	tagRepo repository.TagRepository,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		tagRepo:     tagRepo,
	}
}

// TaskInput represents the fields for creating or fully replacing a task.
type TaskInput struct {
	Title       string
	Description string
	Deadline    time.Time
	OwnerID     uint64
	TagIDs      []uint64
	ProjectID   uint64
}

// GetAllTasks returns all tasks.
func (s *TaskService) GetAllTasks() ([]models.Task, error) {
	tasks, err := s.taskRepo.FindAll()
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to list tasks", err)
	}
	return tasks, nil
}

// GetTaskByID returns a task by ID.
func (s *TaskService) GetTaskByID(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("task with id:%d not found", id)
		}
		return nil, apperrors.NewInfrastructure("failed to find task", err)
	}
	return task, nil
}

// CreateTask resolves the referenced owner, project and tags, validates the
// task invariants and persists the new task.
func (s *TaskService) CreateTask(input TaskInput) (*models.Task, error) {
	owner, tags, err := s.resolveReferences(input)
	if err != nil {
		return nil, err
	}

	task, err := models.NewTask(input.Title, input.Description, input.Deadline, owner, tags, input.ProjectID)
	if err != nil {
		return nil, err
	}

	created, err := s.taskRepo.Create(task)
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to create task", err)
	}
	return created, nil
}

// UpdateTask runs the same resolution pipeline as CreateTask but replaces
// the mutable state of an existing task instead of creating a new identity.
func (s *TaskService) UpdateTask(id uint64, input TaskInput) (*models.Task, error) {
	existing, err := s.GetTaskByID(id)
	if err != nil {
		return nil, err
	}

	owner, tags, err := s.resolveReferences(input)
	if err != nil {
		return nil, err
	}

	replacement, err := models.NewTask(input.Title, input.Description, input.Deadline, owner, tags, input.ProjectID)
	if err != nil {
		return nil, err
	}
	replacement.ID = existing.ID
	replacement.Done = existing.Done

	updated, err := s.taskRepo.Update(replacement)
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to update task", err)
	}
	return updated, nil
}

// AddTagByIDByTaskID attaches an existing tag to an existing task.
func (s *TaskService) AddTagByIDByTaskID(taskID, tagID uint64) (*models.Task, error) {
	task, err := s.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}

	tag, err := s.tagRepo.FindByID(tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("tag with id:%d not found", tagID)
		}
		return nil, apperrors.NewInfrastructure("failed to find tag", err)
	}

	if err := task.AddTag(tag); err != nil {
		return nil, err
	}

	updated, err := s.taskRepo.Update(task)
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to update task", err)
	}
	return updated, nil
}

// ToggleTaskDoneByID flips the done flag of a task.
func (s *TaskService) ToggleTaskDoneByID(id uint64) (*models.Task, error) {
	task, err := s.GetTaskByID(id)
	if err != nil {
		return nil, err
	}

	task.SwitchDone()

	updated, err := s.taskRepo.Update(task)
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to toggle task", err)
	}
	return updated, nil
}

// DeleteTaskByID deletes a task. Admins may delete any task; everyone else
// only their own, resolved by the caller's email.
func (s *TaskService) DeleteTaskByID(id uint64, callerRole models.Role, callerEmail string) error {
	task, err := s.GetTaskByID(id)
	if err != nil {
		return err
	}

	isOwner := false
	if callerRole != models.RoleAdmin && callerRole.IsValid() {
		caller, err := s.userRepo.FindByEmail(callerEmail)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("user with email:%s not found", callerEmail)
			}
			return apperrors.NewInfrastructure("failed to find user", err)
		}
		isOwner = caller.ID == task.OwnerID
	}

	if err := canDeleteTask(callerRole, isOwner); err != nil {
		return err
	}

	if err := s.taskRepo.DeleteByID(id); err != nil {
		return apperrors.NewInfrastructure("failed to delete task", err)
	}
	return nil
}

// resolveReferences loads the owner, project and tags a task input refers
// to, in that order, and checks that the owner is a project member.
func (s *TaskService) resolveReferences(input TaskInput) (*models.User, []models.Tag, error) {
	owner, err := s.userRepo.FindByID(input.OwnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NewNotFound("owner with id:%d not found", input.OwnerID)
		}
		return nil, nil, apperrors.NewInfrastructure("failed to find owner", err)
	}

	project, err := s.projectRepo.FindByID(input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NewNotFound("project with id:%d not found", input.ProjectID)
		}
		return nil, nil, apperrors.NewInfrastructure("failed to find project", err)
	}

	if !project.HasMember(owner.ID) {
		return nil, nil, apperrors.NewValidation("user not a member of project")
	}

	tags := make([]models.Tag, 0, len(input.TagIDs))
	for _, tagID := range input.TagIDs {
		tag, err := s.tagRepo.FindByID(tagID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apperrors.NewNotFound("tag with id:%d not found", tagID)
			}
			return nil, nil, apperrors.NewInfrastructure("failed to find tag", err)
		}
		tags = append(tags, *tag)
	}

	return owner, tags, nil
}
