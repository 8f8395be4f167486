package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository                 *UserRepository
	StudentRepository              *StudentRepository
	InstructorRepository           *InstructorRepository
	TeachingAssistantRepository    *TeachingAssistantRepository
	CourseRepository               *CourseRepository
	EnrollmentRepository           *EnrollmentRepository
	ScheduleRepository             *ScheduleRepository
	TaskRepository                 *TaskRepository
	NoteRepository                 *NoteRepository
	MessageRepository              *MessageRepository
	TranscriptRepository           *TranscriptRepository
	CalendarEventRepository        *CalendarEventRepository
	ReminderRepository             *ReminderRepository
	FocusSessionRepository         *FocusSessionRepository
	StudyPlanRepository            *StudyPlanRepository
	StudyTaskRepository            *StudyTaskRepository
	AssignmentRepository           *AssignmentRepository
	SubmissionRepository           *SubmissionRepository
	NotificationRepository         *NotificationRepository
	UserSettingsRepository         *UserSettingsRepository
	CourseScheduleSlotRepository   *CourseScheduleSlotRepository
	CourseMaterialRepository       *CourseMaterialRepository
	DeadlineNotificationRepository *DeadlineNotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:                 NewUserRepository(db),
		StudentRepository:              NewStudentRepository(db),
		InstructorRepository:           NewInstructorRepository(db),
		TeachingAssistantRepository:    NewTeachingAssistantRepository(db),
		CourseRepository:               NewCourseRepository(db),
		EnrollmentRepository:           NewEnrollmentRepository(db),
		ScheduleRepository:             NewScheduleRepository(db),
		TaskRepository:                 NewTaskRepository(db),
		NoteRepository:                 NewNoteRepository(db),
		MessageRepository:              NewMessageRepository(db),
		TranscriptRepository:           NewTranscriptRepository(db),
		CalendarEventRepository:        NewCalendarEventRepository(db),
		ReminderRepository:             NewReminderRepository(db),
		FocusSessionRepository:         NewFocusSessionRepository(db),
		StudyPlanRepository:            NewStudyPlanRepository(db),
		StudyTaskRepository:            NewStudyTaskRepository(db),
		AssignmentRepository:           NewAssignmentRepository(db),
		SubmissionRepository:           NewSubmissionRepository(db),
		NotificationRepository:         NewNotificationRepository(db),
		UserSettingsRepository:         NewUserSettingsRepository(db),
		CourseScheduleSlotRepository:   NewCourseScheduleSlotRepository(db),
		CourseMaterialRepository:       NewCourseMaterialRepository(db),
		DeadlineNotificationRepository: NewDeadlineNotificationRepository(db),
	}
}
