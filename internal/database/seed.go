package database

import (
	"fmt"
	"log"
	"time"

	"github.com/planit-app/planit-api/internal/auth"
	"github.com/planit-app/planit-api/internal/models"
)

// Seed resets the development database and loads a small sample data set:
// a couple of regular users with their default projects, an admin, a
// project manager, a shared course project with one tagged task.
func Seed(hasher auth.PasswordHasher) error {
	log.Println("Seeding database...")

	tables := []string{"task_tags", "project_members", "tasks", "projects", "tags", "users"}
	for _, table := range tables {
		if err := DB.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	seedUsers := []struct {
		firstName string
		lastName  string
		email     string
		password  string
		role      models.Role
	}{
		{"John", "Doe", "john.doe@ucll.be", "john123", models.RoleUser},
		{"Jane", "Toe", "jane.toe@ucll.be", "jane123", models.RoleUser},
		{"Sara", "Admin", "sara.admin@ucll.be", "sara123", models.RoleAdmin},
		{"Piet", "Manager", "piet.manager@ucll.be", "piet123", models.RoleProjectManager},
	}

	users := make(map[string]*models.User, len(seedUsers))
	for _, su := range seedUsers {
		digest, err := hasher.Hash(su.password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		user, err := models.NewUser(su.firstName, su.lastName, su.email, digest, su.role)
		if err != nil {
			return err
		}
		if err := DB.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create seed user %s: %w", su.email, err)
		}
		users[su.email] = user

		toDo, err := models.NewProject("TO DO", "Your default to do list.", user, nil)
		if err != nil {
			return err
		}
		if err := DB.Create(toDo).Error; err != nil {
			return fmt.Errorf("failed to create default project: %w", err)
		}
	}

	highPriority, err := models.NewTag("high-priority")
	if err != nil {
		return err
	}
	if err := DB.Create(highPriority).Error; err != nil {
		return fmt.Errorf("failed to create seed tag: %w", err)
	}

	john := users["john.doe@ucll.be"]
	jane := users["jane.toe@ucll.be"]

	fullStack, err := models.NewProject("Full-Stack", "Full-Stack Course", john, []models.User{*john, *jane})
	if err != nil {
		return err
	}
	if err := DB.Create(fullStack).Error; err != nil {
		return fmt.Errorf("failed to create seed project: %w", err)
	}

	lab2, err := models.NewTask(
		"Finish lab2",
		"nodejs and express assignment",
		time.Now().AddDate(0, 1, 0),
		john,
		[]models.Tag{*highPriority},
		fullStack.ID,
	)
	if err != nil {
		return err
	}
	if err := DB.Create(lab2).Error; err != nil {
		return fmt.Errorf("failed to create seed task: %w", err)
	}

	log.Println("Database seeded")
	return nil
}
