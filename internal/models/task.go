package models

import (
	"strings"
	"time"

	apperrors "github.com/planit-app/planit-api/internal/errors"
)

// Task is a unit of work belonging to exactly one project. The owner must be
// a member of that project; the check lives on Project.AddTask, not here.
type Task struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Done        bool      `gorm:"not null;default:false" json:"done"`
	Deadline    time.Time `gorm:"not null" json:"deadline"`
	OwnerID     uint64    `gorm:"not null" json:"ownerId"`
	Owner       *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Tags        []Tag     `gorm:"many2many:task_tags" json:"tags"`
	ProjectID   uint64    `gorm:"not null" json:"projectId"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask validates and constructs a Task. Initial tags are expected to be
// pre-deduplicated by the caller; later additions go through AddTag.
func NewTask(title, description string, deadline time.Time, owner *User, tags []Tag, projectID uint64) (*Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.NewValidation("title is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.NewValidation("description is required")
	}
	if deadline.IsZero() {
		return nil, apperrors.NewValidation("deadline is required")
	}
	if err := validateDeadline(deadline, time.Now()); err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperrors.NewValidation("owner is required")
	}
	if projectID == 0 {
		return nil, apperrors.NewValidation("project id is required")
	}

	task := &Task{
		Title:       title,
		Description: description,
		Done:        false,
		Deadline:    deadline,
		OwnerID:     owner.ID,
		Owner:       owner,
		Tags:        append([]Tag{}, tags...),
		ProjectID:   projectID,
	}
	return task, nil
}

// validateDeadline rejects deadlines strictly before now; a deadline equal
// to now is accepted.
func validateDeadline(deadline, now time.Time) error {
	if deadline.Before(now) {
		return apperrors.NewValidation("deadline cannot be in the past")
	}
	return nil
}

// AddTag appends a tag, rejecting duplicates.
func (t *Task) AddTag(tag *Tag) error {
	for i := range t.Tags {
		if t.Tags[i].ID == tag.ID {
			return apperrors.NewValidation("tag is already added")
		}
	}
	t.Tags = append(t.Tags, *tag)
	return nil
}

// SwitchDone flips the done flag. Flip semantics, not set-to-done.
func (t *Task) SwitchDone() {
	t.Done = !t.Done
}

// Equals reports structural equality, including tag order.
func (t *Task) Equals(other *Task) bool {
	if other == nil {
		return false
	}
	if t.ID != other.ID ||
		t.Title != other.Title ||
		t.Description != other.Description ||
		t.Done != other.Done ||
		!t.Deadline.Equal(other.Deadline) ||
		t.ProjectID != other.ProjectID {
		return false
	}
	if (t.Owner == nil) != (other.Owner == nil) {
		return false
	}
	if t.Owner != nil && !t.Owner.Equals(other.Owner) {
		return false
	}
	if len(t.Tags) != len(other.Tags) {
		return false
	}
	for i := range t.Tags {
		if !t.Tags[i].Equals(&other.Tags[i]) {
			return false
		}
	}
	return true
}
