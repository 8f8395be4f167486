package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// StudyPlanController handles study plan and study task endpoints
type StudyPlanController struct {
	planService *services.StudyPlanService
	planRepo    *repositories.StudyPlanRepository
	taskRepo    *repositories.StudyTaskRepository
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewStudyPlanController creates a new StudyPlanController
func NewStudyPlanController(
	planService *services.StudyPlanService,
	planRepo *repositories.StudyPlanRepository,
	taskRepo *repositories.StudyTaskRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *StudyPlanController {
	return &StudyPlanController{
		planService: planService,
		planRepo:    planRepo,
		taskRepo:    taskRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func (c *StudyPlanController) currentStudentID(ctx *gin.Context) (int64, bool) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return 0, false
	}

	student, err := c.studentRepo.GetByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return 0, false
	}
	if student == nil || student.StudentID == nil {
		notFound(ctx, "Student profile")
		return 0, false
	}
	return *student.StudentID, true
}

// GeneratePlan creates a study plan with derived tasks for the student
func (c *StudyPlanController) GeneratePlan(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.GenerateStudyPlanRequest](ctx)
	if !ok {
		return
	}

	plan, tasks, err := c.planService.GeneratePlan(ctx.Request.Context(), studentID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("studentID", studentID).
		Int("taskCount", len(tasks)).
		Msg("Study plan generated")

	respond(ctx, http.StatusCreated, gin.H{
		"plan":  plan.ToMap(),
		"tasks": project(tasks),
	}, "Study plan generated")
}

// ListPlans returns the student's study plans, newest first
func (c *StudyPlanController) ListPlans(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	plans, err := c.planRepo.GetByStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(plans), "Study plans retrieved")
}

// GetPlan returns a plan together with its tasks
func (c *StudyPlanController) GetPlan(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	plan, err := c.planRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if plan == nil {
		notFound(ctx, "Study plan")
		return
	}

	tasks, err := c.taskRepo.GetByPlan(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, gin.H{
		"plan":  plan.ToMap(),
		"tasks": project(tasks),
	}, "Study plan retrieved")
}

// DeletePlan removes a plan and its tasks
func (c *StudyPlanController) DeletePlan(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.planRepo.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		notFound(ctx, "Study plan")
		return
	}

	respond(ctx, http.StatusOK, nil, "Study plan deleted")
}

// UpdateStudyTask records task progress and recomputes plan completion
func (c *StudyPlanController) UpdateStudyTask(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.UpdateStudyTaskRequest](ctx)
	if !ok {
		return
	}

	task, err := c.planService.UpdateTaskProgress(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if task == nil {
		notFound(ctx, "Study task")
		return
	}

	respond(ctx, http.StatusOK, task.ToMap(), "Study task updated")
}
