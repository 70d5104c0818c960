package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/planit-app/planit-api/internal/errors"
	"github.com/planit-app/planit-api/internal/models"
	"github.com/planit-app/planit-api/internal/repository"
)

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	taskRepo    repository.TaskRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		taskRepo:    taskRepo,
	}
}

// GetAllProjects returns every project for admins and the projects the
// caller is a member of for users and project managers.
func (s *ProjectService) GetAllProjects(callerRole models.Role, callerEmail string) ([]models.Project, error) {
	all, err := canListProjects(callerRole)
	if err != nil {
		return nil, err
	}

	var projects []models.Project
	if all {
		projects, err = s.projectRepo.FindAll()
	} else {
		projects, err = s.projectRepo.FindAllByMemberEmail(callerEmail)
	}
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to list projects", err)
	}
	return projects, nil
}

// CreateProject creates a project with the owner as its sole initial
// member. Restricted to admins and project managers; titles are globally
// unique.
func (s *ProjectService) CreateProject(title, description string, ownerID uint64, callerRole models.Role) (*models.Project, error) {
	if err := canCreateProject(callerRole); err != nil {
		return nil, err
	}

	if _, err := s.projectRepo.FindByTitle(title); err == nil {
		return nil, apperrors.NewConflict("project with title %s already exists", title)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewInfrastructure("failed to check project title", err)
	}

	owner, err := s.userRepo.FindByID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("owner with id:%d not found", ownerID)
		}
		return nil, apperrors.NewInfrastructure("failed to find owner", err)
	}

	project, err := models.NewProject(title, description, owner, nil)
	if err != nil {
		return nil, err
	}

	created, err := s.projectRepo.Create(project)
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to create project", err)
	}
	return created, nil
}

// GetProjectByID returns a project by ID.
func (s *ProjectService) GetProjectByID(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("project with id:%d not found", id)
		}
		return nil, apperrors.NewInfrastructure("failed to find project", err)
	}
	return project, nil
}

// ToggleProjectDoneByID flips the done flag of a project.
func (s *ProjectService) ToggleProjectDoneByID(id uint64) (*models.Project, error) {
	project, err := s.GetProjectByID(id)
	if err != nil {
		return nil, err
	}

	project.SwitchDone()

	updated, err := s.projectRepo.Update(project)
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to toggle project", err)
	}
	return updated, nil
}

// AddTaskByIDByProjectID attaches an existing task to a project. The task's
// owner must already be a project member.
func (s *ProjectService) AddTaskByIDByProjectID(projectID, taskID uint64) (*models.Project, error) {
	project, err := s.GetProjectByID(projectID)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("task with id:%d not found", taskID)
		}
		return nil, apperrors.NewInfrastructure("failed to find task", err)
	}

	if err := project.AddTask(task); err != nil {
		return nil, err
	}

	updated, err := s.projectRepo.Update(project)
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to update project", err)
	}
	return updated, nil
}

// AddMemberByIDByProjectID adds a user to a project's member list. Admins
// may add to any project, project managers only to projects they own.
func (s *ProjectService) AddMemberByIDByProjectID(projectID, memberID uint64, callerRole models.Role, callerEmail string) (*models.Project, error) {
	project, err := s.GetProjectByID(projectID)
	if err != nil {
		return nil, err
	}

	isProjectOwner := project.Owner != nil && project.Owner.Email == callerEmail
	if err := canAddMember(callerRole, isProjectOwner); err != nil {
		return nil, err
	}

	member, err := s.userRepo.FindByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("user with id:%d not found", memberID)
		}
		return nil, apperrors.NewInfrastructure("failed to find user", err)
	}

	if err := project.AddMember(member); err != nil {
		return nil, err
	}

	updated, err := s.projectRepo.Update(project)
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to update project", err)
	}
	return updated, nil
}
