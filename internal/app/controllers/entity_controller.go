package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/middleware"
)

// EntityController exposes a generic listing endpoint over the repository
// factory. Entity names, canonical or alias, are resolved case
// insensitively; unknown names map to 400.
type EntityController struct {
	factory *repositories.Factory
	logger  zerolog.Logger
}

// NewEntityController creates a new EntityController
func NewEntityController(factory *repositories.Factory, logger zerolog.Logger) *EntityController {
	return &EntityController{
		factory: factory,
		logger:  logger,
	}
}

// ListEntities returns all rows of the named entity as map projections
func (c *EntityController) ListEntities(ctx *gin.Context) {
	name := ctx.Param("entity")

	repo, err := c.factory.Get(name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	reqCtx := ctx.Request.Context()
	var (
		items   []map[string]any
		listErr error
	)

	switch r := repo.(type) {
	case *repositories.UserRepository:
		users, err := r.GetAll(reqCtx)
		listErr = err
		items = project(users)
		// Password hashes never leave the API
		for _, item := range items {
			delete(item, "Password_Hash")
		}
	case *repositories.StudentRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.InstructorRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.TeachingAssistantRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.CourseRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.EnrollmentRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.ScheduleRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.TaskRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.NoteRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.MessageRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.TranscriptRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.CalendarEventRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.ReminderRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.FocusSessionRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.StudyPlanRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.StudyTaskRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.AssignmentRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.SubmissionRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.NotificationRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.CourseScheduleSlotRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.CourseMaterialRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	case *repositories.DeadlineNotificationRepository:
		rows, err := r.GetAll(reqCtx)
		listErr = err
		items = project(rows)
	default:
		// Settings rows are per-user, there is no meaningful listing
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Entity does not support listing")))
		return
	}

	if listErr != nil {
		middleware.HandleAPIError(ctx, listErr)
		return
	}

	respond(ctx, http.StatusOK, items, "Entities retrieved")
}
