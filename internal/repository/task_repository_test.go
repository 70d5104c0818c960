package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/planit-app/planit-api/internal/models"
)

func setupSQLiteDB(t *testing.T) *gorm.DB {
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

	return db
}

func seedTaggedTask(t *testing.T, db *gorm.DB) (*models.Task, []models.Tag) {
	t.Helper()

	owner, err := models.NewUser("John", "Doe", "john.doe@ucll.be", "hashed-password", models.RoleUser)
	require.NoError(t, err)
	require.NoError(t, db.Create(owner).Error)

	project, err := models.NewProject("Full-Stack", "course", owner, nil)
	require.NoError(t, err)
	require.NoError(t, db.Create(project).Error)

	school, err := models.NewTag("school")
	require.NoError(t, err)
	require.NoError(t, db.Create(school).Error)
	urgent, err := models.NewTag("urgent")
	require.NoError(t, err)
	require.NoError(t, db.Create(urgent).Error)

	task, err := models.NewTask(
		"Finish lab2",
		"nodejs assignment",
		time.Now().Add(24*time.Hour),
		owner,
		[]models.Tag{*school, *urgent},
		project.ID,
	)
	require.NoError(t, err)
	require.NoError(t, db.Create(task).Error)

	return task, []models.Tag{*school, *urgent}
}

func countTaskTagRows(t *testing.T, db *gorm.DB, taskID uint64) int64 {
	t.Helper()

	var count int64
	err := db.Raw("SELECT COUNT(*) FROM task_tags WHERE task_id = ?", taskID).Scan(&count).Error
	require.NoError(t, err)
	return count
}

func TestGormTaskRepository_Update_ReplacesTags(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewTaskRepository(db)

	task, tags := seedTaggedTask(t, db)
	require.EqualValues(t, 2, countTaskTagRows(t, db, task.ID))

	task.Tags = []models.Tag{tags[1]}
	_, err := repo.Update(task)
	require.NoError(t, err)

	reloaded, err := repo.FindByID(task.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Tags, 1)
	require.Equal(t, tags[1].ID, reloaded.Tags[0].ID)
	require.EqualValues(t, 1, countTaskTagRows(t, db, task.ID))
}

func TestGormTaskRepository_Update_ClearsTags(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewTaskRepository(db)

	task, _ := seedTaggedTask(t, db)

	task.Tags = []models.Tag{}
	_, err := repo.Update(task)
	require.NoError(t, err)

	reloaded, err := repo.FindByID(task.ID)
	require.NoError(t, err)
	require.Empty(t, reloaded.Tags)
	require.EqualValues(t, 0, countTaskTagRows(t, db, task.ID))
}

func TestGormTaskRepository_DeleteByID_RemovesJoinRows(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewTaskRepository(db)

	task, _ := seedTaggedTask(t, db)
	require.EqualValues(t, 2, countTaskTagRows(t, db, task.ID))

	require.NoError(t, repo.DeleteByID(task.ID))

	_, err := repo.FindByID(task.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.EqualValues(t, 0, countTaskTagRows(t, db, task.ID))
}

func TestGormTagRepository_FindByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTagRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "tags" WHERE "tags"."id" = $1`)).
		WithArgs(42, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	_, err := repo.FindByID(42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
