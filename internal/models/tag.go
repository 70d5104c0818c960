package models

import (
	"strings"

	apperrors "github.com/planit-app/planit-api/internal/errors"
)

// Tag is a label attached to tasks by reference. Titles are unique by
// convention only; the entity does not enforce it.
type Tag struct {
	ID    uint64 `gorm:"primarykey" json:"id"`
	Title string `gorm:"type:varchar(255);not null" json:"title"`
}

// NewTag validates and constructs a Tag.
func NewTag(title string) (*Tag, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.NewValidation("title is required")
	}
	return &Tag{Title: title}, nil
}

// Equals reports structural equality.
func (t *Tag) Equals(other *Tag) bool {
	if other == nil {
		return false
	}
	return t.ID == other.ID && t.Title == other.Title
}
