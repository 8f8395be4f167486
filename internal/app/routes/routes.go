package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/controllers"
	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/middleware"
	"github.com/campushub/campushub/internal/pkg/websocket"
)

// Controllers groups every controller handed to the router
type Controllers struct {
	Auth           *controllers.AuthController
	User           *controllers.UserController
	Student        *controllers.StudentController
	Course         *controllers.CourseController
	Task           *controllers.TaskController
	Note           *controllers.NoteController
	Message        *controllers.MessageController
	StudyPlan      *controllers.StudyPlanController
	Assignment     *controllers.AssignmentController
	Notification   *controllers.NotificationController
	CourseMaterial *controllers.CourseMaterialController
	Deadline       *controllers.DeadlineController
	Entity         *controllers.EntityController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	c Controllers,
	authMiddleware *middleware.AuthMiddleware,
	wsHandler *websocket.Handler,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", middleware.ValidateBody[dto.RegisterRequest](), c.Auth.Register)
		auth.POST("/login", middleware.ValidateBody[dto.LoginRequest](), c.Auth.Login)
		auth.POST("/refresh", middleware.ValidateBody[dto.RefreshTokenRequest](), c.Auth.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", c.Auth.Me)
		authenticated.POST("/auth/change-password", middleware.ValidateBody[dto.ChangePasswordRequest](), c.Auth.ChangePassword)

		// User profile and settings
		authenticated.GET("/users/:id", c.User.GetUser)
		authenticated.GET("/profile/student", c.User.GetStudentProfile)
		authenticated.GET("/settings", c.User.GetSettings)
		authenticated.PUT("/settings", middleware.ValidateBody[dto.UpdateSettingsRequest](), c.User.UpdateSettings)

		// Courses, public to any authenticated user
		courses := authenticated.Group("/courses")
		{
			courses.GET("", c.Course.ListCourses)
			courses.GET("/:id", c.Course.GetCourse)
			courses.GET("/:id/enrollments", c.Course.ListCourseEnrollments)
			courses.GET("/:id/assignments", c.Assignment.ListCourseAssignments)
			courses.GET("/:id/materials", c.CourseMaterial.ListCourseMaterials)
		}
		authenticated.GET("/timetable/:code", c.Course.GetCourseSlots)

		// Instructor-only course management
		instructorOnly := authenticated.Group("")
		instructorOnly.Use(authMiddleware.RoleRequired(models.RoleInstructor))
		{
			instructorOnly.POST("/courses", middleware.ValidateBody[dto.CreateCourseRequest](), c.Course.CreateCourse)
			instructorOnly.PUT("/courses/:id", middleware.ValidateBody[dto.UpdateCourseRequest](), c.Course.UpdateCourse)
			instructorOnly.DELETE("/courses/:id", c.Course.DeleteCourse)
			instructorOnly.POST("/enrollments", middleware.ValidateBody[dto.EnrollRequest](), c.Course.Enroll)
			instructorOnly.PUT("/enrollments/:id/grade", middleware.ValidateBody[dto.GradeRequest](), c.Course.GradeEnrollment)
			instructorOnly.POST("/assignments", middleware.ValidateBody[dto.CreateAssignmentRequest](), c.Assignment.CreateAssignment)
			instructorOnly.DELETE("/assignments/:id", c.Assignment.DeleteAssignment)
			instructorOnly.POST("/course-materials", c.CourseMaterial.UploadMaterial)
			instructorOnly.PUT("/course-materials/:id", middleware.ValidateBody[dto.UpdateCourseMaterialRequest](), c.CourseMaterial.UpdateMaterial)
			instructorOnly.DELETE("/course-materials/:id", c.CourseMaterial.DeleteMaterial)
		}

		// Grading is open to instructors and teaching assistants
		graders := authenticated.Group("")
		graders.Use(authMiddleware.RoleRequired(models.RoleInstructor, models.RoleTA))
		{
			graders.GET("/assignments/:id/submissions", c.Assignment.ListSubmissions)
			graders.PUT("/submissions/:id/grade", middleware.ValidateBody[dto.GradeSubmissionRequest](), c.Assignment.GradeSubmission)
		}

		authenticated.DELETE("/enrollments/:id", c.Course.DropEnrollment)
		authenticated.GET("/course-materials/:id", c.CourseMaterial.GetMaterial)
		authenticated.GET("/course-materials/:id/download", c.CourseMaterial.DownloadMaterial)
		authenticated.GET("/assignments/:id", c.Assignment.GetAssignment)

		// Students directory
		students := authenticated.Group("/students")
		{
			students.GET("", c.Student.ListStudents)
			students.GET("/:id", c.Student.GetStudent)
			students.GET("/:id/enrollments", c.Student.GetStudentEnrollments)
			students.GET("/:id/transcripts", c.Student.GetStudentTranscripts)
			students.GET("/:id/schedules", c.Student.GetStudentSchedules)
		}

		// Student workspace, scoped to the caller's student profile
		studentOnly := authenticated.Group("")
		studentOnly.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			tasks := studentOnly.Group("/tasks")
			{
				tasks.GET("", c.Task.ListTasks)
				tasks.POST("", middleware.ValidateBody[dto.CreateTaskRequest](), c.Task.CreateTask)
				tasks.PUT("/:id", middleware.ValidateBody[dto.UpdateTaskRequest](), c.Task.UpdateTask)
				tasks.DELETE("/:id", c.Task.DeleteTask)
			}

			events := studentOnly.Group("/calendar-events")
			{
				events.GET("", c.Task.ListCalendarEvents)
				events.POST("", middleware.ValidateBody[dto.CreateCalendarEventRequest](), c.Task.CreateCalendarEvent)
				events.DELETE("/:id", c.Task.DeleteCalendarEvent)
			}

			reminders := studentOnly.Group("/reminders")
			{
				reminders.GET("", c.Task.ListReminders)
				reminders.POST("", middleware.ValidateBody[dto.CreateReminderRequest](), c.Task.CreateReminder)
				reminders.DELETE("/:id", c.Task.DeleteReminder)
			}

			focus := studentOnly.Group("/focus-sessions")
			{
				focus.GET("", c.Task.ListFocusSessions)
				focus.POST("", middleware.ValidateBody[dto.StartFocusSessionRequest](), c.Task.StartFocusSession)
				focus.PUT("/:id/complete", c.Task.CompleteFocusSession)
			}

			notes := studentOnly.Group("/notes")
			{
				notes.GET("", c.Note.ListNotes)
				notes.GET("/:id", c.Note.GetNote)
				notes.POST("", middleware.ValidateBody[dto.CreateNoteRequest](), c.Note.CreateNote)
				notes.PUT("/:id", middleware.ValidateBody[dto.UpdateNoteRequest](), c.Note.UpdateNote)
				notes.DELETE("/:id", c.Note.DeleteNote)
			}

			plans := studentOnly.Group("/study-plans")
			{
				plans.GET("", c.StudyPlan.ListPlans)
				plans.GET("/:id", c.StudyPlan.GetPlan)
				plans.POST("/generate", middleware.ValidateBody[dto.GenerateStudyPlanRequest](), c.StudyPlan.GeneratePlan)
				plans.DELETE("/:id", c.StudyPlan.DeletePlan)
			}
			studentOnly.PUT("/study-tasks/:id", middleware.ValidateBody[dto.UpdateStudyTaskRequest](), c.StudyPlan.UpdateStudyTask)

			studentOnly.POST("/assignments/:id/submit", middleware.ValidateBody[dto.SubmitAssignmentRequest](), c.Assignment.SubmitAssignment)
			studentOnly.GET("/submissions", c.Assignment.ListStudentSubmissions)
			studentOnly.POST("/submissions/:id/review", middleware.ValidateBody[dto.RequestReviewRequest](), c.Assignment.RequestReview)
		}

		// Messaging
		messages := authenticated.Group("/messages")
		{
			messages.POST("", middleware.ValidateBody[dto.SendMessageRequest](), c.Message.SendMessage)
			messages.GET("/conversations", c.Message.ListConversations)
			messages.GET("/conversations/:peerId", c.Message.GetConversation)
			messages.GET("/unread-count", c.Message.GetUnreadCount)
		}
		authenticated.GET("/ws", wsHandler.HandleConnection)

		// Tracked deadlines
		deadlines := authenticated.Group("/deadlines")
		{
			deadlines.GET("", c.Deadline.ListDeadlines)
			deadlines.GET("/upcoming", c.Deadline.ListUpcoming)
			deadlines.GET("/urgent", c.Deadline.ListUrgent)
			deadlines.POST("/sync", c.Deadline.SyncDeadlines)
			deadlines.PUT("/:id/complete", c.Deadline.CompleteDeadline)
			deadlines.DELETE("/:id", c.Deadline.DeleteDeadline)
		}

		// Notifications
		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", c.Notification.ListNotifications)
			notifications.POST("", middleware.ValidateBody[dto.CreateNotificationRequest](), c.Notification.CreateNotification)
			notifications.GET("/unread-count", c.Notification.GetUnreadCount)
			notifications.PUT("/:id/read", c.Notification.MarkAsRead)
			notifications.PUT("/read-all", c.Notification.MarkAllAsRead)
			notifications.DELETE("/:id", c.Notification.DeleteNotification)
		}

		// Generic entity listing over the repository factory, instructor only
		instructorOnly.GET("/entities/:entity", c.Entity.ListEntities)
	}
}
