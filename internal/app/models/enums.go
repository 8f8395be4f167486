package models

// Role is the label produced by the role resolver. A user may hold rows in
// several role tables at once; resolution order decides which label wins.
type Role string

const (
	RoleInstructor Role = "Instructor"
	RoleTA         Role = "TA"
	RoleStudent    Role = "Student"
	// RoleNone is the sentinel for a user without any role row.
	RoleNone Role = ""
)

// Known enumerated values. The object layer does not validate membership;
// unknown values pass through to and from the database unchanged.
const (
	EnrollmentStatusEnrolled  = "enrolled"
	EnrollmentStatusDropped   = "dropped"
	EnrollmentStatusCompleted = "completed"

	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	ReminderStatusPending = "pending"
	ReminderStatusDone    = "done"

	StudyPlanStatusActive    = "active"
	StudyPlanStatusPaused    = "paused"
	StudyPlanStatusCompleted = "completed"
	StudyPlanStatusArchived  = "archived"

	StudyTaskStatusPending    = "pending"
	StudyTaskStatusInProgress = "in_progress"
	StudyTaskStatusCompleted  = "completed"
	StudyTaskStatusSkipped    = "skipped"

	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusLate      = "late"
	SubmissionStatusGraded    = "graded"

	NotificationTypeTask         = "task"
	NotificationTypeAssignment   = "assignment"
	NotificationTypeGrade        = "grade"
	NotificationTypeAnnouncement = "announcement"
	NotificationTypeSystem       = "system"
	NotificationTypeMessage      = "message"
)
