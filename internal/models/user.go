package models

import (
	"strings"
	"time"

	apperrors "github.com/planit-app/planit-api/internal/errors"
)

// User is an identity and credential holder. Identity fields are immutable
// after creation; other entities reference users by id and never own them.
// The password digest is only populated on the authentication path and is
// never serialized.
type User struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	FirstName string    `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName  string    `gorm:"type:varchar(255);not null" json:"lastName"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser validates and constructs a User.
func NewUser(firstName, lastName, email, password string, role Role) (*User, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, apperrors.NewValidation("first name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, apperrors.NewValidation("last name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewValidation("email is required")
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidation("role is required")
	}

	return &User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		Role:      role,
	}, nil
}

// Equals reports structural equality including the credential field.
func (u *User) Equals(other *User) bool {
	if other == nil {
		return false
	}
	return u.ID == other.ID &&
		u.FirstName == other.FirstName &&
		u.LastName == other.LastName &&
		u.Email == other.Email &&
		u.Password == other.Password &&
		u.Role == other.Role
}
