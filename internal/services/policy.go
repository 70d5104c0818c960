package services

import (
	apperrors "github.com/planit-app/planit-api/internal/errors"
	"github.com/planit-app/planit-api/internal/models"
)

// Access policies, one per role-gated operation. Each returns nil when the
// operation is allowed, otherwise the precise AuthorizationError variant:
// "credentials required" for an absent or unrecognized role, "not
// authorized" for a recognized role without sufficient rights.

// canListProjects reports whether the caller may list projects and whether
// the listing spans all projects or only the caller's memberships.
func canListProjects(role models.Role) (all bool, err error) {
	switch role {
	case models.RoleAdmin:
		return true, nil
	case models.RoleUser, models.RoleProjectManager:
		return false, nil
	default:
		return false, apperrors.NewCredentialsRequired()
	}
}

// canCreateProject restricts project creation to admins and project
// managers.
func canCreateProject(role models.Role) error {
	switch role {
	case models.RoleAdmin, models.RoleProjectManager:
		return nil
	case models.RoleUser:
		return apperrors.NewNotAuthorized("you are not authorized to create projects")
	default:
		return apperrors.NewCredentialsRequired()
	}
}

// canAddMember lets admins add members to any project and project managers
// only to projects they own.
func canAddMember(role models.Role, isProjectOwner bool) error {
	switch role {
	case models.RoleAdmin:
		return nil
	case models.RoleProjectManager:
		if !isProjectOwner {
			return apperrors.NewNotAuthorized("only the project owner can add members")
		}
		return nil
	case models.RoleUser:
		return apperrors.NewNotAuthorized("you are not authorized to add members")
	default:
		return apperrors.NewCredentialsRequired()
	}
}

// canDeleteTask lets admins delete any task and everyone else only their
// own.
func canDeleteTask(role models.Role, isTaskOwner bool) error {
	if !role.IsValid() {
		return apperrors.NewCredentialsRequired()
	}
	if role == models.RoleAdmin {
		return nil
	}
	if !isTaskOwner {
		return apperrors.NewNotAuthorized("user not owner of task")
	}
	return nil
}
