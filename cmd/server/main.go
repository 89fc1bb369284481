// Package main initializes and starts the tracker API server, setting up
// configuration, logging, the database connection, repositories, services,
// handlers and routing.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"github.com/projectdesk/projectdesk/internal/auth"
	"github.com/projectdesk/projectdesk/internal/config"
	"github.com/projectdesk/projectdesk/internal/db"
	"github.com/projectdesk/projectdesk/internal/logger"
	"github.com/projectdesk/projectdesk/internal/models"
	"github.com/projectdesk/projectdesk/internal/repository"
	"github.com/projectdesk/projectdesk/internal/server/handler/http"
	"github.com/projectdesk/projectdesk/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Install the token signing secret.
	if err := auth.Init(options.JWTSecret); err != nil {
		zapLogger.Fatal("cannot init token auth", zap.Error(err))
	}

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories.
	authRepo := repository.NewPostgresAuthRepository(postgresDB)
	fieldRepo := repository.NewPostgresFieldRepository(postgresDB)
	projectRepo := repository.NewPostgresProjectRepository(postgresDB)
	taskRepo := repository.NewPostgresTaskRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(authRepo)
	fieldService := service.NewFieldService(fieldRepo)
	projectService := service.NewProjectService(projectRepo, fieldRepo)
	taskService := service.NewTaskService(taskRepo)

	// Create HTTP handlers. The two field handlers share one type, bound
	// to the two registries.
	authHandler := &http.AuthHandler{AuthService: authService}
	projectFields := &http.FieldsHandler{FieldService: fieldService, Schema: models.SchemaProject}
	specFields := &http.FieldsHandler{FieldService: fieldService, Schema: models.SchemaSpecification}
	projectsHandler := &http.ProjectsHandler{ProjectService: projectService}
	tasksHandler := &http.TasksHandler{TaskService: taskService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, projectFields, specFields, projectsHandler, tasksHandler, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Port,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
