package repository

import (
	"github.com/planit-app/planit-api/internal/models"
	"gorm.io/gorm"
)

// projectPreloads are the associations a fully-hydrated project carries.
var projectPreloads = []string{"Owner", "Members", "Tasks", "Tasks.Owner", "Tasks.Tags"}

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

func (r *GormProjectRepository) withPreloads() *gorm.DB {
	query := r.db
	for _, preload := range projectPreloads {
		query = query.Preload(preload)
	}
	return query
}

// FindAll retrieves all projects with their associations
func (r *GormProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	if err := r.withPreloads().Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindAllByMemberEmail retrieves the projects a user is a member of,
// queried by membership rather than ownership.
func (r *GormProjectRepository) FindAllByMemberEmail(email string) ([]models.Project, error) {
	var projects []models.Project
	err := r.withPreloads().
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Joins("JOIN users ON users.id = project_members.user_id").
		Where("users.email = ?", email).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.withPreloads().First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByTitle finds a project by exact title
func (r *GormProjectRepository) FindByTitle(title string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("title = ?", title).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) (*models.Project, error) {
	if err := r.db.Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// Update persists a mutated project. Membership and task additions are
// append-only at this layer, so upserting associations is sufficient.
func (r *GormProjectRepository) Update(project *models.Project) (*models.Project, error) {
	if err := r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}
