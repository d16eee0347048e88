package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yigit/campus/docs" // Swagger document
	appControllers "github.com/yigit/campus/internal/app/controllers"
	appMigrations "github.com/yigit/campus/internal/app/migrations"
	appRepos "github.com/yigit/campus/internal/app/repositories"
	appRoutes "github.com/yigit/campus/internal/app/routes"
	appServices "github.com/yigit/campus/internal/app/services"
	"github.com/yigit/campus/internal/config"
	"github.com/yigit/campus/internal/db"
	appMiddleware "github.com/yigit/campus/internal/middleware"
	"github.com/yigit/campus/internal/pkg/logger"
	"github.com/yigit/campus/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CollegeService    *appServices.CollegeService
	DepartmentService *appServices.DepartmentService
	StudentService    *appServices.StudentService
	TeacherService    *appServices.TeacherService
	Controllers       appRoutes.Controllers
	Metrics           *appMiddleware.Metrics
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, logger.Component("migrations"))
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	repos := deps.Repos

	deps.CollegeService = appServices.NewCollegeService(
		repos.CollegeRepository,
		repos.DepartmentRepository,
		database,
		logger.Component("college_service"),
	)
	deps.DepartmentService = appServices.NewDepartmentService(
		repos.DepartmentRepository,
		repos.CollegeRepository,
		repos.StudentRepository,
		repos.TeacherRepository,
		database,
		logger.Component("department_service"),
	)
	deps.StudentService = appServices.NewStudentService(
		repos.StudentRepository,
		repos.DepartmentRepository,
		database,
		logger.Component("student_service"),
	)
	deps.TeacherService = appServices.NewTeacherService(
		repos.TeacherRepository,
		repos.DepartmentRepository,
		database,
		logger.Component("teacher_service"),
	)

	deps.Controllers = appRoutes.Controllers{
		College:    appControllers.NewCollegeController(deps.CollegeService),
		Department: appControllers.NewDepartmentController(deps.DepartmentService),
		Student:    appControllers.NewStudentController(deps.StudentService),
		Teacher:    appControllers.NewTeacherController(deps.TeacherService),
		Info:       appControllers.NewInfoController(cfg.Server.Mode),
	}

	if cfg.Metrics.Enabled {
		deps.Metrics = appMiddleware.NewMetrics()
	}

	return deps
}

// SeedDefaultData creates the default college when seeding is enabled.
// Failures are logged and never stop the startup.
func SeedDefaultData(ctx context.Context, cfg *config.Config, deps *Dependencies) {
	if !cfg.Seed.Enabled {
		return
	}
	if err := seed.CreateDefaultData(ctx, deps.CollegeService, deps.DepartmentService, logger.Component("seed")); err != nil {
		deps.Logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(logger.Component("http")))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET(cfg.Metrics.Path, deps.Metrics.Handler())
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router, deps.Controllers)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
