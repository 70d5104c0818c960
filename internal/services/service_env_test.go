package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/planit-app/planit-api/internal/auth"
	"github.com/planit-app/planit-api/internal/models"
	"github.com/planit-app/planit-api/internal/repository"
)

type serviceEnv struct {
	db     *gorm.DB
	hasher auth.PasswordHasher

	userRepo    repository.UserRepository
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	tagRepo     repository.TagRepository

	userService    *UserService
	projectService *ProjectService
	taskService    *TaskService
	tagService     *TagService
}

func setupServiceEnv(t *testing.T) *serviceEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Project{},
		&models.Task{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	hasher := auth.NewBcryptHasher()
	tokens, err := auth.NewJWTIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tagRepo := repository.NewTagRepository(db)

	return &serviceEnv{
		db:             db,
		hasher:         hasher,
		userRepo:       userRepo,
		projectRepo:    projectRepo,
		taskRepo:       taskRepo,
		tagRepo:        tagRepo,
		userService:    NewUserService(userRepo, projectRepo, hasher, tokens),
		projectService: NewProjectService(projectRepo, userRepo, taskRepo),
		taskService:    NewTaskService(taskRepo, projectRepo, userRepo, tagRepo),
		tagService:     NewTagService(tagRepo),
	}
}

func (env *serviceEnv) createUser(t *testing.T, firstName, lastName, email string, role models.Role) *models.User {
	t.Helper()

	user, err := models.NewUser(firstName, lastName, email, "hashed-password", role)
	require.NoError(t, err)

	created, err := env.userRepo.Create(user)
	require.NoError(t, err)
	return created
}

func (env *serviceEnv) createProject(t *testing.T, title string, owner *models.User, members []models.User) *models.Project {
	t.Helper()

	project, err := models.NewProject(title, "a project", owner, members)
	require.NoError(t, err)

	created, err := env.projectRepo.Create(project)
	require.NoError(t, err)
	return created
}

func (env *serviceEnv) createTask(t *testing.T, title string, owner *models.User, projectID uint64) *models.Task {
	t.Helper()

	task, err := models.NewTask(title, title+" task", time.Now().Add(24*time.Hour), owner, nil, projectID)
	require.NoError(t, err)

	created, err := env.taskRepo.Create(task)
	require.NoError(t, err)
	return created
}
