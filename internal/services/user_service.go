package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/planit-app/planit-api/internal/auth"
	"github.com/planit-app/planit-api/internal/dto"
	apperrors "github.com/planit-app/planit-api/internal/errors"
	"github.com/planit-app/planit-api/internal/models"
	"github.com/planit-app/planit-api/internal/repository"
)

const (
	defaultProjectTitle       = "TO DO"
	defaultProjectDescription = "Your default to do list."

	// Single generic failure for every authentication problem so responses
	// never reveal which part of the credential was wrong.
	loginFailedMessage = "problem logging in, try again"
)

// UserService handles user registration and authentication business logic.
type UserService struct {
	userRepo    repository.UserRepository
	projectRepo repository.ProjectRepository
	hasher      auth.PasswordHasher
	tokens      auth.TokenIssuer
}

// NewUserService creates a new UserService.
func NewUserService(
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	hasher auth.PasswordHasher,
	tokens auth.TokenIssuer,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		hasher:      hasher,
		tokens:      tokens,
	}
}

// Authenticate verifies credentials and issues a token carrying the user's
// email and role.
func (s *UserService) Authenticate(email, password string) (*dto.AuthenticationResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound(loginFailedMessage)
		}
		return nil, apperrors.NewInfrastructure("failed to find user", err)
	}

	if user.Password == "" || !s.hasher.Verify(password, user.Password) {
		return nil, apperrors.NewNotFound(loginFailedMessage)
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to issue token", err)
	}

	return &dto.AuthenticationResponse{
		Token:    token,
		UserID:   user.ID,
		UserRole: user.Role,
	}, nil
}

// CreateUser registers a new user with role USER, gives them their default
// "TO DO" project, and returns the same response shape as Authenticate.
func (s *UserService) CreateUser(firstName, lastName, email, password string) (*dto.AuthenticationResponse, error) {
	if strings.TrimSpace(password) == "" {
		return nil, apperrors.NewValidation("password is required")
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, apperrors.NewConflict("user with email %s already exists", email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewInfrastructure("failed to check email", err)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to hash password", err)
	}

	user, err := models.NewUser(firstName, lastName, email, digest, models.RoleUser)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(user)
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to create user", err)
	}

	toDo, err := models.NewProject(defaultProjectTitle, defaultProjectDescription, created, nil)
	if err != nil {
		return nil, err
	}
	if _, err := s.projectRepo.Create(toDo); err != nil {
		return nil, apperrors.NewInfrastructure("failed to create default project", err)
	}

	token, err := s.tokens.Issue(created.Email, created.Role)
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to issue token", err)
	}

	return &dto.AuthenticationResponse{
		Token:    token,
		UserID:   created.ID,
		UserRole: created.Role,
	}, nil
}

// GetAllUsers returns the safe projection of every user.
func (s *UserService) GetAllUsers() ([]dto.UserDTO, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to list users", err)
	}
	return dto.ToUserDTOs(users), nil
}
