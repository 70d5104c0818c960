package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/planit-app/planit-api/internal/errors"
	"github.com/planit-app/planit-api/internal/models"
)

func requireAuthzCode(t *testing.T, err error, code apperrors.AuthorizationCode) {
	t.Helper()
	var authzErr *apperrors.AuthorizationError
	require.True(t, errors.As(err, &authzErr))
	require.Equal(t, code, authzErr.Code)
}

func TestCanListProjects(t *testing.T) {
	all, err := canListProjects(models.RoleAdmin)
	require.NoError(t, err)
	require.True(t, all)

	for _, role := range []models.Role{models.RoleUser, models.RoleProjectManager} {
		all, err = canListProjects(role)
		require.NoError(t, err)
		require.False(t, all)
	}

	_, err = canListProjects(models.Role(""))
	requireAuthzCode(t, err, apperrors.CodeCredentialsRequired)
}

func TestCanCreateProject(t *testing.T) {
	require.NoError(t, canCreateProject(models.RoleAdmin))
	require.NoError(t, canCreateProject(models.RoleProjectManager))

	err := canCreateProject(models.RoleUser)
	requireAuthzCode(t, err, apperrors.CodeNotAuthorized)

	err = canCreateProject(models.Role("guest"))
	requireAuthzCode(t, err, apperrors.CodeCredentialsRequired)
}

func TestCanAddMember(t *testing.T) {
	require.NoError(t, canAddMember(models.RoleAdmin, false))
	require.NoError(t, canAddMember(models.RoleProjectManager, true))

	err := canAddMember(models.RoleProjectManager, false)
	requireAuthzCode(t, err, apperrors.CodeNotAuthorized)

	err = canAddMember(models.RoleUser, true)
	requireAuthzCode(t, err, apperrors.CodeNotAuthorized)

	err = canAddMember(models.Role(""), true)
	requireAuthzCode(t, err, apperrors.CodeCredentialsRequired)
}

func TestCanDeleteTask(t *testing.T) {
	require.NoError(t, canDeleteTask(models.RoleAdmin, false))
	require.NoError(t, canDeleteTask(models.RoleUser, true))
	require.NoError(t, canDeleteTask(models.RoleProjectManager, true))

	err := canDeleteTask(models.RoleUser, false)
	requireAuthzCode(t, err, apperrors.CodeNotAuthorized)

	err = canDeleteTask(models.Role(""), true)
	requireAuthzCode(t, err, apperrors.CodeCredentialsRequired)
}
