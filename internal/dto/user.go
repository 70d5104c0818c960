package dto

import (
	"github.com/planit-app/planit-api/internal/models"
)

// UserDTO is the safe projection of a user: everything except the
// credential field. It is the only user shape that reaches a response
// serializer.
type UserDTO struct {
	ID        uint64      `json:"id"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
}

// AuthenticationResponse is returned by both login and sign-up.
type AuthenticationResponse struct {
	Token    string      `json:"token"`
	UserID   uint64      `json:"userId"`
	UserRole models.Role `json:"userRole"`
}

// ToUserDTO converts a User model to its safe projection
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
	}
}

// ToUserDTOs converts a slice of users to safe projections
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
