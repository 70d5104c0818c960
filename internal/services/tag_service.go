package services

import (
	apperrors "github.com/planit-app/planit-api/internal/errors"
	"github.com/planit-app/planit-api/internal/models"
	"github.com/planit-app/planit-api/internal/repository"
)

// TagService handles tag business logic.
type TagService struct {
	tagRepo repository.TagRepository
}

// NewTagService creates a new TagService.
func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// GetAllTags returns all tags.
func (s *TagService) GetAllTags() ([]models.Tag, error) {
	tags, err := s.tagRepo.FindAll()
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to list tags", err)
	}
	return tags, nil
}

// CreateTag creates a tag. Duplicate titles are allowed.
func (s *TagService) CreateTag(title string) (*models.Tag, error) {
	tag, err := models.NewTag(title)
	if err != nil {
		return nil, err
	}

	created, err := s.tagRepo.Create(tag)
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to create tag", err)
	}
	return created, nil
}
