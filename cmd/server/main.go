package main

import (
	"flag"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/planit-app/planit-api/internal/auth"
	"github.com/planit-app/planit-api/internal/config"
	"github.com/planit-app/planit-api/internal/database"
	"github.com/planit-app/planit-api/internal/handlers"
	"github.com/planit-app/planit-api/internal/middleware"
	"github.com/planit-app/planit-api/internal/repository"
	"github.com/planit-app/planit-api/internal/services"
)

func main() {
	seed := flag.Bool("seed", false, "reset the database and load sample data")
	flag.Parse()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatalf("Failed to add indexes: %v", err)
		}
	}

	// Auth collaborators
	hasher := auth.NewBcryptHasher()
	tokens, err := auth.NewJWTIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpiresHours)*time.Hour)
	if err != nil {
		log.Fatalf("Failed to configure token issuer: %v", err)
	}

	if *seed {
		if err := database.Seed(hasher); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tagRepo := repository.NewTagRepository(db)

	// Services
	userService := services.NewUserService(userRepo, projectRepo, hasher, tokens)
	projectService := services.NewProjectService(projectRepo, userRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo, tagRepo)
	tagService := services.NewTagService(tagRepo)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	tagHandler := handlers.NewTagHandler(tagService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "PlanIt API is running",
		})
	})

	// Public routes
	users := r.Group("/users")
	{
		users.POST("/signup", userHandler.Signup)
		users.POST("/login", userHandler.Login)
		users.GET("", middleware.RequireAuth(tokens), userHandler.ListUsers)
	}

	// Protected routes
	projects := r.Group("/projects")
	projects.Use(middleware.RequireAuth(tokens))
	{
		projects.GET("", projectHandler.ListProjects)
		projects.POST("", projectHandler.CreateProject)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PUT("/:id/toggle", projectHandler.ToggleProjectDone)
		projects.PUT("/:id/tasks/:taskId", projectHandler.AddTask)
		projects.PUT("/:id/members/:memberId", projectHandler.AddMember)
	}

	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireAuth(tokens))
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.PUT("/:id/toggle", taskHandler.ToggleTaskDone)
		tasks.PUT("/:id/tags/:tagId", taskHandler.AddTag)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}

	tags := r.Group("/tags")
	tags.Use(middleware.RequireAuth(tokens))
	{
		tags.GET("", tagHandler.ListTags)
		tags.POST("", tagHandler.CreateTag)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
