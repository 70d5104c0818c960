package repository

import (
	"github.com/planit-app/planit-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindAll retrieves all users
	FindAll() ([]models.User, error)

	// Create creates a new user and assigns its ID
	Create(user *models.User) (*models.User, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// FindAll retrieves all projects with their owner, members and tasks
	FindAll() ([]models.Project, error)

	// FindAllByMemberEmail retrieves the projects a user is a member of
	FindAllByMemberEmail(email string) ([]models.Project, error)

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// FindByTitle finds a project by exact title
	FindByTitle(title string) (*models.Project, error)

	// Create creates a new project and assigns its ID
	Create(project *models.Project) (*models.Project, error)

	// Update persists a mutated project including its associations
	Update(project *models.Project) (*models.Project, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// FindAll retrieves all tasks with their owner and tags
	FindAll() ([]models.Task, error)

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// Create creates a new task and assigns its ID
	Create(task *models.Task) (*models.Task, error)

	// Update persists a mutated task including its tags
	Update(task *models.Task) (*models.Task, error)

	// DeleteByID deletes a task
	DeleteByID(id uint64) error
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	// FindAll retrieves all tags
	FindAll() ([]models.Tag, error)

	// FindByID finds a tag by ID
	FindByID(id uint64) (*models.Tag, error)

	// Create creates a new tag and assigns its ID
	Create(tag *models.Tag) (*models.Tag, error)
}
