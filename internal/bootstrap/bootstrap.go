// Package bootstrap wires configuration, database, repositories, services
// and the HTTP surface into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/campushub/campushub/internal/app/auth"
	appControllers "github.com/campushub/campushub/internal/app/controllers"
	appMigrations "github.com/campushub/campushub/internal/app/migrations"
	appRepos "github.com/campushub/campushub/internal/app/repositories"
	appRoutes "github.com/campushub/campushub/internal/app/routes"
	appServices "github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/config"
	"github.com/campushub/campushub/internal/db"
	appMiddleware "github.com/campushub/campushub/internal/middleware"
	pkgAuth "github.com/campushub/campushub/internal/pkg/auth"
	"github.com/campushub/campushub/internal/pkg/email"
	"github.com/campushub/campushub/internal/pkg/filestorage"
	"github.com/campushub/campushub/internal/pkg/logger"
	"github.com/campushub/campushub/internal/pkg/websocket"
	"github.com/campushub/campushub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Factory        *appRepos.Factory
	RoleResolver   *appAuth.RoleResolver
	JWTService     *pkgAuth.JWTService
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Hub            *websocket.Hub
	WSHandler      *websocket.Handler
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
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
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and the
// websocket hub. The hub and its persistence listener are started here.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Factory = appRepos.NewFactory(dbPool)

	deps.RoleResolver = appAuth.NewRoleResolver(
		deps.Repos.InstructorRepository,
		deps.Repos.TeachingAssistantRepository,
		deps.Repos.StudentRepository,
	)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  cfg.AccessTokenDuration(),
		RefreshTokenExp: cfg.RefreshTokenDuration(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	// File storage backs course material uploads; stored files are also
	// reachable through the static route below.
	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = fileStorage

	var emailService email.EmailService
	if cfg.Email.Host != "" {
		emailService = email.NewEmailService(email.SMTPConfig{
			Host:      cfg.Email.Host,
			Port:      cfg.Email.Port,
			Username:  cfg.Email.Username,
			Password:  cfg.Email.Password,
			FromName:  cfg.Email.FromName,
			FromEmail: cfg.Email.FromEmail,
			UseTLS:    cfg.Email.UseTLS,
		}, lgr)
	}

	deps.Hub = websocket.NewHub(lgr)
	go deps.Hub.Run()
	websocket.NewMessageHandler(deps.Repos.MessageRepository, deps.Hub, lgr).Start()
	deps.WSHandler = websocket.NewHandler(deps.Hub, lgr)

	deps.Services = appServices.NewServices(
		deps.Repos,
		deps.RoleResolver,
		deps.JWTService,
		deps.Hub,
		emailService,
		cfg.Planner,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.RoleResolver)

	deps.Controllers = appRoutes.Controllers{
		Auth: appControllers.NewAuthController(deps.Services.Auth, deps.Repos.UserRepository, lgr),
		User: appControllers.NewUserController(
			deps.Repos.UserRepository,
			deps.Repos.StudentRepository,
			deps.Repos.UserSettingsRepository,
			lgr,
		),
		Student: appControllers.NewStudentController(
			deps.Repos.StudentRepository,
			deps.Repos.TranscriptRepository,
			deps.Repos.ScheduleRepository,
			deps.Repos.EnrollmentRepository,
			lgr,
		),
		Course: appControllers.NewCourseController(
			deps.Repos.CourseRepository,
			deps.Repos.EnrollmentRepository,
			deps.Repos.InstructorRepository,
			deps.Repos.CourseScheduleSlotRepository,
			lgr,
		),
		Task: appControllers.NewTaskController(
			deps.Repos.TaskRepository,
			deps.Repos.CalendarEventRepository,
			deps.Repos.ReminderRepository,
			deps.Repos.FocusSessionRepository,
			deps.Repos.StudentRepository,
			lgr,
		),
		Note: appControllers.NewNoteController(
			deps.Repos.NoteRepository,
			deps.Repos.StudentRepository,
			lgr,
		),
		Message: appControllers.NewMessageController(deps.Services.Message, lgr),
		StudyPlan: appControllers.NewStudyPlanController(
			deps.Services.StudyPlan,
			deps.Repos.StudyPlanRepository,
			deps.Repos.StudyTaskRepository,
			deps.Repos.StudentRepository,
			lgr,
		),
		Assignment: appControllers.NewAssignmentController(
			deps.Repos.AssignmentRepository,
			deps.Repos.SubmissionRepository,
			deps.Repos.StudentRepository,
			deps.Repos.CourseRepository,
			deps.Repos.EnrollmentRepository,
			deps.Services.Notification,
			lgr,
		),
		Notification: appControllers.NewNotificationController(
			deps.Repos.NotificationRepository,
			deps.Services.Notification,
			lgr,
		),
		CourseMaterial: appControllers.NewCourseMaterialController(
			deps.Repos.CourseMaterialRepository,
			deps.Repos.CourseRepository,
			deps.Repos.InstructorRepository,
			deps.FileStorage,
			lgr,
		),
		Deadline: appControllers.NewDeadlineController(
			deps.Services.Deadline,
			deps.Repos.DeadlineNotificationRepository,
			lgr,
		),
		Entity: appControllers.NewEntityController(deps.Factory, lgr),
	}

	deps.Services.Deadline.StartOverdueSweep(context.Background(), 15*time.Minute)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.WSHandler)

	router.Static("/uploads", cfg.Server.StoragePath)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
