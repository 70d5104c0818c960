package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planit-app/planit-api/internal/models"
)

func (env *testEnv) createUserWithRole(t *testing.T, firstName, lastName, email string, role models.Role) (*models.User, string) {
	t.Helper()

	user, err := models.NewUser(firstName, lastName, email, "hashed-password", role)
	require.NoError(t, err)
	created, err := env.userRepo.Create(user)
	require.NoError(t, err)

	token, err := env.tokens.Issue(created.Email, created.Role)
	require.NoError(t, err)
	return created, token
}

func TestProjectHandler_ListProjects_AdminSeesAll(t *testing.T) {
	env := setupTestEnv(t)

	_, adminToken := env.createUserWithRole(t, "Sara", "Admin", "sara.admin@ucll.be", models.RoleAdmin)
	_, err := env.userService.CreateUser("Jane", "Toe", "jane.toe@ucll.be", "jane123")
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/projects", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var projects []models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	require.Equal(t, "TO DO", projects[0].Title)
}

func TestProjectHandler_ListProjects_UserSeesOwnOnly(t *testing.T) {
	env := setupTestEnv(t)

	jane, err := env.userService.CreateUser("Jane", "Toe", "jane.toe@ucll.be", "jane123")
	require.NoError(t, err)
	_, err = env.userService.CreateUser("John", "Doe", "john.doe@ucll.be", "john123")
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/projects", jane.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var projects []models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	require.Equal(t, "jane.toe@ucll.be", projects[0].Owner.Email)
}

func TestProjectHandler_CreateProject_UserForbidden(t *testing.T) {
	env := setupTestEnv(t)

	jane, err := env.userService.CreateUser("Jane", "Toe", "jane.toe@ucll.be", "jane123")
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/projects", jane.Token, map[string]interface{}{
		"title":       "Full-Stack",
		"description": "Course project",
		"owner":       map[string]uint64{"id": jane.UserID},
	})

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestProjectHandler_CreateProject_AsProjectManager(t *testing.T) {
	env := setupTestEnv(t)

	manager, managerToken := env.createUserWithRole(t, "Piet", "Manager", "piet.manager@ucll.be", models.RoleProjectManager)

	w := env.do(t, http.MethodPost, "/projects", managerToken, map[string]interface{}{
		"title":       "Full-Stack",
		"description": "Course project",
		"owner":       map[string]uint64{"id": manager.ID},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	require.Equal(t, "Full-Stack", project.Title)
	require.Equal(t, manager.ID, project.Owner.ID)

	// Creating it again must fail on the title.
	w = env.do(t, http.MethodPost, "/projects", managerToken, map[string]interface{}{
		"title":       "Full-Stack",
		"description": "Second attempt",
		"owner":       map[string]uint64{"id": manager.ID},
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestProjectHandler_GetProject_NotFound(t *testing.T) {
	env := setupTestEnv(t)

	_, token := env.createUserWithRole(t, "Sara", "Admin", "sara.admin@ucll.be", models.RoleAdmin)

	w := env.do(t, http.MethodGet, "/projects/999", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/projects/not-a-number", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandler_ToggleProjectDone(t *testing.T) {
	env := setupTestEnv(t)

	jane, err := env.userService.CreateUser("Jane", "Toe", "jane.toe@ucll.be", "jane123")
	require.NoError(t, err)

	projects, err := env.projectService.GetAllProjects(models.RoleAdmin, "")
	require.NoError(t, err)
	require.Len(t, projects, 1)

	path := fmt.Sprintf("/projects/%d/toggle", projects[0].ID)

	w := env.do(t, http.MethodPut, path, jane.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	require.True(t, project.Done)

	w = env.do(t, http.MethodPut, path, jane.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	require.False(t, project.Done)
}

func TestProjectHandler_AddMember_OnlyOwner(t *testing.T) {
	env := setupTestEnv(t)

	owner, ownerToken := env.createUserWithRole(t, "Piet", "Manager", "piet.manager@ucll.be", models.RoleProjectManager)
	_, otherToken := env.createUserWithRole(t, "Paul", "Manager", "paul.manager@ucll.be", models.RoleProjectManager)
	jane, err := env.userService.CreateUser("Jane", "Toe", "jane.toe@ucll.be", "jane123")
	require.NoError(t, err)

	project, err := env.projectService.CreateProject("Full-Stack", "Course project", owner.ID, models.RoleProjectManager)
	require.NoError(t, err)

	path := fmt.Sprintf("/projects/%d/members/%d", project.ID, jane.UserID)

	// A manager who does not own the project cannot add members.
	w := env.do(t, http.MethodPut, path, otherToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPut, path, ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Len(t, updated.Members, 2)

	// Adding the same member twice is rejected.
	w = env.do(t, http.MethodPut, path, ownerToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
