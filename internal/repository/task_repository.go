package repository

import (
	"github.com/planit-app/planit-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// FindAll retrieves all tasks with their owner and tags
func (r *GormTaskRepository) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Preload("Owner").Preload("Tags").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Preload("Owner").Preload("Tags").First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) (*models.Task, error) {
	if err := r.db.Create(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// Update persists a mutated task. The tag list is replaced wholesale so
// that tags dropped from the slice lose their join rows; Save alone only
// upserts and would leave stale associations behind.
func (r *GormTaskRepository) Update(task *models.Task) (*models.Task, error) {
	if err := r.db.Omit("Tags").Save(task).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(task).Association("Tags").Replace(task.Tags); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteByID deletes a task along with its tag join rows
func (r *GormTaskRepository) DeleteByID(id uint64) error {
	return r.db.Select(clause.Associations).Delete(&models.Task{ID: id}).Error
}
