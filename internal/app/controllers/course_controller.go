package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/middleware"
)

// CourseController handles course, enrollment and schedule slot operations
type CourseController struct {
	courseRepo     *repositories.CourseRepository
	enrollmentRepo *repositories.EnrollmentRepository
	instructorRepo *repositories.InstructorRepository
	slotRepo       *repositories.CourseScheduleSlotRepository
	logger         zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(
	courseRepo *repositories.CourseRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	instructorRepo *repositories.InstructorRepository,
	slotRepo *repositories.CourseScheduleSlotRepository,
	logger zerolog.Logger,
) *CourseController {
	return &CourseController{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		instructorRepo: instructorRepo,
		slotRepo:       slotRepo,
		logger:         logger,
	}
}

// ListCourses returns all courses
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseRepo.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(courses), "Courses retrieved")
}

// GetCourse returns a single course by ID
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if course == nil {
		notFound(ctx, "Course")
		return
	}

	respond(ctx, http.StatusOK, course.ToMap(), "Course retrieved")
}

// CreateCourse creates a course owned by the authenticated instructor
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.CreateCourseRequest](ctx)
	if !ok {
		return
	}

	instructorID, err := c.resolveInstructorID(ctx, userID, req.InstructorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if instructorID == 0 {
		notFound(ctx, "Instructor profile")
		return
	}

	course := &models.Course{
		CourseName:   req.CourseName,
		Credits:      req.Credits,
		InstructorID: instructorID,
		Schedule:     req.Schedule,
	}
	if err := c.courseRepo.Create(ctx.Request.Context(), course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("courseID", *course.CourseID).
		Int64("instructorID", instructorID).
		Msg("Course created")

	respond(ctx, http.StatusCreated, course.ToMap(), "Course created")
}

// UpdateCourse replaces a course's fields
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.UpdateCourseRequest](ctx)
	if !ok {
		return
	}

	course, err := c.courseRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if course == nil {
		notFound(ctx, "Course")
		return
	}

	course.CourseName = req.CourseName
	course.Credits = req.Credits
	course.Schedule = req.Schedule
	if req.InstructorID != nil {
		course.InstructorID = *req.InstructorID
	}

	if err := c.courseRepo.Update(ctx.Request.Context(), course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, course.ToMap(), "Course updated")
}

// DeleteCourse removes a course
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.courseRepo.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		notFound(ctx, "Course")
		return
	}

	respond(ctx, http.StatusOK, nil, "Course deleted")
}

// ListCourseEnrollments returns all enrollments for a course
func (c *CourseController) ListCourseEnrollments(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentRepo.GetByCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(enrollments), "Enrollments retrieved")
}

// Enroll registers a student in a course
func (c *CourseController) Enroll(ctx *gin.Context) {
	req, ok := middleware.ValidatedBody[dto.EnrollRequest](ctx)
	if !ok {
		return
	}

	enrollment := &models.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Status:    models.EnrollmentStatusEnrolled,
		Semester:  req.Semester,
	}
	if err := c.enrollmentRepo.Create(ctx.Request.Context(), enrollment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, enrollment.ToMap(), "Student enrolled")
}

// DropEnrollment marks an enrollment as dropped
func (c *CourseController) DropEnrollment(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if enrollment == nil {
		notFound(ctx, "Enrollment")
		return
	}

	enrollment.Status = models.EnrollmentStatusDropped
	if err := c.enrollmentRepo.Update(ctx.Request.Context(), enrollment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, enrollment.ToMap(), "Enrollment dropped")
}

// GradeEnrollment records a final grade and completes the enrollment
func (c *CourseController) GradeEnrollment(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.GradeRequest](ctx)
	if !ok {
		return
	}

	enrollment, err := c.enrollmentRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if enrollment == nil {
		notFound(ctx, "Enrollment")
		return
	}

	enrollment.Grade = &req.Grade
	enrollment.Status = models.EnrollmentStatusCompleted
	if err := c.enrollmentRepo.Update(ctx.Request.Context(), enrollment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, enrollment.ToMap(), "Enrollment graded")
}

// GetCourseSlots returns the timetable slots for a course code. Optional
// academicYear and term query parameters narrow the result.
func (c *CourseController) GetCourseSlots(ctx *gin.Context) {
	courseCode := ctx.Param("code")
	if courseCode == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing course code")))
		return
	}

	var academicYear *int
	if yearStr := ctx.Query("academicYear"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid academicYear parameter")))
			return
		}
		academicYear = &year
	}

	var term *string
	if termStr := ctx.Query("term"); termStr != "" {
		term = &termStr
	}

	slots, err := c.slotRepo.GetByCourseCode(ctx.Request.Context(), courseCode, academicYear, term)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(slots), "Schedule slots retrieved")
}

// resolveInstructorID uses the explicit ID when given, otherwise looks up
// the caller's instructor profile. Returns 0 when no profile exists.
func (c *CourseController) resolveInstructorID(ctx *gin.Context, userID int64, explicit *int64) (int64, error) {
	if explicit != nil {
		return *explicit, nil
	}

	instructor, err := c.instructorRepo.GetByUserID(ctx.Request.Context(), userID)
	if err != nil {
		return 0, err
	}
	if instructor == nil || instructor.InstructorID == nil {
		return 0, nil
	}
	return *instructor.InstructorID, nil
}
