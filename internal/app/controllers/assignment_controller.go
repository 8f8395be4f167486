package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// AssignmentController handles assignment and submission operations
type AssignmentController struct {
	assignmentRepo      *repositories.AssignmentRepository
	submissionRepo      *repositories.SubmissionRepository
	studentRepo         *repositories.StudentRepository
	courseRepo          *repositories.CourseRepository
	enrollmentRepo      *repositories.EnrollmentRepository
	notificationService *services.NotificationService
	logger              zerolog.Logger
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(
	assignmentRepo *repositories.AssignmentRepository,
	submissionRepo *repositories.SubmissionRepository,
	studentRepo *repositories.StudentRepository,
	courseRepo *repositories.CourseRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	notificationService *services.NotificationService,
	logger zerolog.Logger,
) *AssignmentController {
	return &AssignmentController{
		assignmentRepo:      assignmentRepo,
		submissionRepo:      submissionRepo,
		studentRepo:         studentRepo,
		courseRepo:          courseRepo,
		enrollmentRepo:      enrollmentRepo,
		notificationService: notificationService,
		logger:              logger,
	}
}

func (c *AssignmentController) currentStudent(ctx *gin.Context) (*models.Student, bool) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return nil, false
	}

	student, err := c.studentRepo.GetByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}
	if student == nil || student.StudentID == nil {
		notFound(ctx, "Student profile")
		return nil, false
	}
	return student, true
}

// ListCourseAssignments returns the assignments for a course, due soonest first
func (c *AssignmentController) ListCourseAssignments(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	assignments, err := c.assignmentRepo.GetByCourse(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(assignments), "Assignments retrieved")
}

// GetAssignment returns a single assignment
func (c *AssignmentController) GetAssignment(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	assignment, err := c.assignmentRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if assignment == nil {
		notFound(ctx, "Assignment")
		return
	}

	respond(ctx, http.StatusOK, assignment.ToMap(), "Assignment retrieved")
}

// CreateAssignment creates an assignment and notifies enrolled students
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.CreateAssignmentRequest](ctx)
	if !ok {
		return
	}

	dueDate, err := parseClientTime(req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid dueDate format")))
		return
	}

	course, err := c.courseRepo.GetByID(ctx.Request.Context(), req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if course == nil {
		notFound(ctx, "Course")
		return
	}

	assignment := &models.Assignment{
		CourseID:         req.CourseID,
		Title:            req.Title,
		Description:      req.Description,
		Instructions:     req.Instructions,
		DueDate:          &dueDate,
		MaxScore:         req.MaxScore,
		AssignmentType:   req.AssignmentType,
		AllowedFileTypes: req.AllowedFileTypes,
		MaxFileSizeMB:    req.MaxFileSizeMB,
		CreatedBy:        &userID,
		CorrectAnswer:    req.CorrectAnswer,
		IsAutoGraded:     req.IsAutoGraded,
	}
	if err := c.assignmentRepo.Create(ctx.Request.Context(), assignment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.notifyEnrolledStudents(ctx, course, assignment)

	respond(ctx, http.StatusCreated, assignment.ToMap(), "Assignment created")
}

// notifyEnrolledStudents creates a notification for every enrolled student
func (c *AssignmentController) notifyEnrolledStudents(ctx *gin.Context, course *models.Course, assignment *models.Assignment) {
	enrollments, err := c.enrollmentRepo.GetByCourse(ctx.Request.Context(), *course.CourseID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("courseID", *course.CourseID).Msg("Failed to load enrollments for notification")
		return
	}

	for _, enrollment := range enrollments {
		if enrollment.Status != models.EnrollmentStatusEnrolled {
			continue
		}
		student, err := c.studentRepo.GetByID(ctx.Request.Context(), enrollment.StudentID)
		if err != nil || student == nil {
			continue
		}
		if err := c.notificationService.NotifyAssignment(ctx.Request.Context(), student.UserID, course.CourseName, assignment.Title); err != nil {
			c.logger.Warn().Err(err).Int64("userID", student.UserID).Msg("Failed to notify student about assignment")
		}
	}
}

// DeleteAssignment removes an assignment
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.assignmentRepo.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		notFound(ctx, "Assignment")
		return
	}

	respond(ctx, http.StatusOK, nil, "Assignment deleted")
}

// SubmitAssignment records the student's submission. Submissions past the
// due date are marked late.
func (c *AssignmentController) SubmitAssignment(ctx *gin.Context) {
	assignmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	student, ok := c.currentStudent(ctx)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.SubmitAssignmentRequest](ctx)
	if !ok {
		return
	}

	assignment, err := c.assignmentRepo.GetByID(ctx.Request.Context(), assignmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if assignment == nil {
		notFound(ctx, "Assignment")
		return
	}

	existing, err := c.submissionRepo.GetByStudentAndAssignment(ctx.Request.Context(), *student.StudentID, assignmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if existing != nil {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Assignment already submitted")))
		return
	}

	now := time.Now()
	status := models.SubmissionStatusSubmitted
	if assignment.DueDate != nil && now.After(*assignment.DueDate) {
		status = models.SubmissionStatusLate
	}

	submission := &models.Submission{
		AssignmentID:   assignmentID,
		StudentID:      *student.StudentID,
		SubmittedAt:    &now,
		Status:         status,
		SubmissionText: req.SubmissionText,
	}
	if err := c.submissionRepo.Create(ctx.Request.Context(), submission); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, submission.ToMap(), "Assignment submitted")
}

// ListSubmissions returns all submissions for an assignment
func (c *AssignmentController) ListSubmissions(ctx *gin.Context) {
	assignmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	submissions, err := c.submissionRepo.GetByAssignment(ctx.Request.Context(), assignmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(submissions), "Submissions retrieved")
}

// GradeSubmission records a grade and notifies the student
func (c *AssignmentController) GradeSubmission(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.GradeSubmissionRequest](ctx)
	if !ok {
		return
	}

	submission, err := c.submissionRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if submission == nil {
		notFound(ctx, "Submission")
		return
	}

	now := time.Now()
	submission.Grade = &req.Grade
	submission.Feedback = req.Feedback
	submission.GradedBy = &userID
	submission.GradedAt = &now
	submission.Status = models.SubmissionStatusGraded
	if err := c.submissionRepo.Update(ctx.Request.Context(), submission); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.notifyGrade(ctx, submission, req.Grade)

	respond(ctx, http.StatusOK, submission.ToMap(), "Submission graded")
}

func (c *AssignmentController) notifyGrade(ctx *gin.Context, submission *models.Submission, grade float64) {
	student, err := c.studentRepo.GetByID(ctx.Request.Context(), submission.StudentID)
	if err != nil || student == nil {
		return
	}

	title := "your assignment"
	if assignment, err := c.assignmentRepo.GetByID(ctx.Request.Context(), submission.AssignmentID); err == nil && assignment != nil {
		title = assignment.Title
	}

	if err := c.notificationService.NotifyGrade(ctx.Request.Context(), student.UserID, title, grade); err != nil {
		c.logger.Warn().Err(err).Int64("userID", student.UserID).Msg("Failed to notify student about grade")
	}
}

// RequestReview flags a graded submission for instructor review
func (c *AssignmentController) RequestReview(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.RequestReviewRequest](ctx)
	if !ok {
		return
	}

	submission, err := c.submissionRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if submission == nil {
		notFound(ctx, "Submission")
		return
	}

	submission.ReviewRequested = true
	submission.ReviewComment = &req.Comment
	if err := c.submissionRepo.Update(ctx.Request.Context(), submission); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, submission.ToMap(), "Review requested")
}

// ListStudentSubmissions returns the authenticated student's submissions
func (c *AssignmentController) ListStudentSubmissions(ctx *gin.Context) {
	student, ok := c.currentStudent(ctx)
	if !ok {
		return
	}

	submissions, err := c.submissionRepo.GetByStudent(ctx.Request.Context(), *student.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(submissions), "Submissions retrieved")
}
