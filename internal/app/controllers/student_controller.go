package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/middleware"
)

// StudentController handles student listing, transcripts and schedules
type StudentController struct {
	studentRepo    *repositories.StudentRepository
	transcriptRepo *repositories.TranscriptRepository
	scheduleRepo   *repositories.ScheduleRepository
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentRepo *repositories.StudentRepository,
	transcriptRepo *repositories.TranscriptRepository,
	scheduleRepo *repositories.ScheduleRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		studentRepo:    studentRepo,
		transcriptRepo: transcriptRepo,
		scheduleRepo:   scheduleRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// ListStudents returns all students
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentRepo.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(students), "Students retrieved")
}

// GetStudent returns a single student by ID
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if student == nil {
		notFound(ctx, "Student")
		return
	}

	respond(ctx, http.StatusOK, student.ToMap(), "Student retrieved")
}

// GetStudentEnrollments returns a student's enrollments
func (c *StudentController) GetStudentEnrollments(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentRepo.GetByStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(enrollments), "Enrollments retrieved")
}

// GetStudentTranscripts returns a student's transcripts, newest first
func (c *StudentController) GetStudentTranscripts(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	transcripts, err := c.transcriptRepo.GetByStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(transcripts), "Transcripts retrieved")
}

// GetStudentSchedules returns a student's saved schedules
func (c *StudentController) GetStudentSchedules(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	schedules, err := c.scheduleRepo.GetByStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(schedules), "Schedules retrieved")
}
