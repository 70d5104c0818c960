package models

import (
	"strings"
	"time"

	apperrors "github.com/planit-app/planit-api/internal/errors"
)

// Project is the aggregate root for tasks and membership. It governs the
// consistency of the lists it references without owning the lifecycle of the
// referenced users and tasks.
type Project struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Done        bool      `gorm:"not null;default:false" json:"done"`
	OwnerID     uint64    `gorm:"not null" json:"ownerId"`
	Owner       *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Members     []User    `gorm:"many2many:project_members" json:"members"`
	Tasks       []Task    `gorm:"foreignKey:ProjectID" json:"tasks"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProject validates and constructs a Project. When members is nil the
// owner becomes the sole initial member.
func NewProject(title, description string, owner *User, members []User) (*Project, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.NewValidation("title is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.NewValidation("description is required")
	}
	if owner == nil {
		return nil, apperrors.NewValidation("owner is required")
	}

	if members == nil {
		members = []User{*owner}
	} else {
		members = append([]User{}, members...)
	}

	return &Project{
		Title:       title,
		Description: description,
		Done:        false,
		OwnerID:     owner.ID,
		Owner:       owner,
		Members:     members,
		Tasks:       []Task{},
	}, nil
}

// AddMember appends a member, rejecting duplicates.
func (p *Project) AddMember(member *User) error {
	if p.HasMember(member.ID) {
		return apperrors.NewValidation("user already member of project")
	}
	p.Members = append(p.Members, *member)
	return nil
}

// AddTask appends a task. The task's owner must already be a member, and a
// task may appear at most once.
func (p *Project) AddTask(task *Task) error {
	if !p.HasMember(task.OwnerID) {
		return apperrors.NewValidation("task owner not a member of project")
	}
	for i := range p.Tasks {
		if p.Tasks[i].ID == task.ID {
			return apperrors.NewValidation("task already in project")
		}
	}
	p.Tasks = append(p.Tasks, *task)
	return nil
}

// HasMember reports whether the user id is in the member list.
func (p *Project) HasMember(userID uint64) bool {
	for i := range p.Members {
		if p.Members[i].ID == userID {
			return true
		}
	}
	return false
}

// SwitchDone flips the done flag. Flip semantics, not set-to-done.
func (p *Project) SwitchDone() {
	p.Done = !p.Done
}

// Equals reports structural equality, comparing task and member lists
// element-wise in order.
func (p *Project) Equals(other *Project) bool {
	if other == nil {
		return false
	}
	if p.ID != other.ID ||
		p.Title != other.Title ||
		p.Description != other.Description ||
		p.Done != other.Done {
		return false
	}
	if (p.Owner == nil) != (other.Owner == nil) {
		return false
	}
	if p.Owner != nil && !p.Owner.Equals(other.Owner) {
		return false
	}
	if len(p.Tasks) != len(other.Tasks) || len(p.Members) != len(other.Members) {
		return false
	}
	for i := range p.Tasks {
		if !p.Tasks[i].Equals(&other.Tasks[i]) {
			return false
		}
	}
	for i := range p.Members {
		if !p.Members[i].Equals(&other.Members[i]) {
			return false
		}
	}
	return true
}
