package repositories

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/pkg/apperrors"
)

// Kind identifies a repository type by its canonical entity name.
type Kind string

const (
	KindUser               Kind = "user"
	KindStudent            Kind = "student"
	KindInstructor         Kind = "instructor"
	KindTeachingAssistant  Kind = "teaching_assistant"
	KindCourse             Kind = "course"
	KindEnrollment         Kind = "enrollment"
	KindSchedule           Kind = "schedule"
	KindTask               Kind = "task"
	KindNote               Kind = "note"
	KindMessage            Kind = "message"
	KindTranscript         Kind = "transcript"
	KindCalendar           Kind = "calendar"
	KindReminder           Kind = "reminder"
	KindFocusSession       Kind = "focus_session"
	KindStudyPlan          Kind = "study_plan"
	KindStudyTask          Kind = "study_task"
	KindAssignment         Kind = "assignment"
	KindSubmission         Kind = "submission"
	KindNotification       Kind = "notification"
	KindUserSettings       Kind = "user_settings"
	KindCourseScheduleSlot Kind = "course_schedule_slot"
	KindCourseMaterial     Kind = "course_material"
	KindDeadline           Kind = "deadline_notification"
)

// aliases maps the short names accepted alongside the canonical ones.
var aliases = map[string]Kind{
	"ta":            KindTeachingAssistant,
	"settings":      KindUserSettings,
	"schedule_slot": KindCourseScheduleSlot,
	"material":      KindCourseMaterial,
	"deadline":      KindDeadline,
}

// KindFromName resolves a repository name, canonical or alias, case
// insensitively. The error carries the rejected name.
func KindFromName(name string) (Kind, error) {
	normalized := strings.ToLower(name)

	if kind, ok := aliases[normalized]; ok {
		return kind, nil
	}

	kind := Kind(normalized)
	if _, ok := constructors[kind]; ok {
		return kind, nil
	}

	return "", fmt.Errorf("%w: %s", apperrors.ErrUnknownRepository, name)
}

var constructors = map[Kind]func(db *pgxpool.Pool) any{
	KindUser:               func(db *pgxpool.Pool) any { return NewUserRepository(db) },
	KindStudent:            func(db *pgxpool.Pool) any { return NewStudentRepository(db) },
	KindInstructor:         func(db *pgxpool.Pool) any { return NewInstructorRepository(db) },
	KindTeachingAssistant:  func(db *pgxpool.Pool) any { return NewTeachingAssistantRepository(db) },
	KindCourse:             func(db *pgxpool.Pool) any { return NewCourseRepository(db) },
	KindEnrollment:         func(db *pgxpool.Pool) any { return NewEnrollmentRepository(db) },
	KindSchedule:           func(db *pgxpool.Pool) any { return NewScheduleRepository(db) },
	KindTask:               func(db *pgxpool.Pool) any { return NewTaskRepository(db) },
	KindNote:               func(db *pgxpool.Pool) any { return NewNoteRepository(db) },
	KindMessage:            func(db *pgxpool.Pool) any { return NewMessageRepository(db) },
	KindTranscript:         func(db *pgxpool.Pool) any { return NewTranscriptRepository(db) },
	KindCalendar:           func(db *pgxpool.Pool) any { return NewCalendarEventRepository(db) },
	KindReminder:           func(db *pgxpool.Pool) any { return NewReminderRepository(db) },
	KindFocusSession:       func(db *pgxpool.Pool) any { return NewFocusSessionRepository(db) },
	KindStudyPlan:          func(db *pgxpool.Pool) any { return NewStudyPlanRepository(db) },
	KindStudyTask:          func(db *pgxpool.Pool) any { return NewStudyTaskRepository(db) },
	KindAssignment:         func(db *pgxpool.Pool) any { return NewAssignmentRepository(db) },
	KindSubmission:         func(db *pgxpool.Pool) any { return NewSubmissionRepository(db) },
	KindNotification:       func(db *pgxpool.Pool) any { return NewNotificationRepository(db) },
	KindUserSettings:       func(db *pgxpool.Pool) any { return NewUserSettingsRepository(db) },
	KindCourseScheduleSlot: func(db *pgxpool.Pool) any { return NewCourseScheduleSlotRepository(db) },
	KindCourseMaterial:     func(db *pgxpool.Pool) any { return NewCourseMaterialRepository(db) },
	KindDeadline:           func(db *pgxpool.Pool) any { return NewDeadlineNotificationRepository(db) },
}

// Factory builds repository instances by entity name.
type Factory struct {
	db *pgxpool.Pool
}

// NewFactory creates a repository factory bound to a connection pool
func NewFactory(db *pgxpool.Pool) *Factory {
	return &Factory{db: db}
}

// Get returns a fresh repository instance for the given entity name,
// canonical or alias, case insensitively. Callers type-assert the result to
// the concrete repository type.
func (f *Factory) Get(name string) (any, error) {
	kind, err := KindFromName(name)
	if err != nil {
		return nil, err
	}
	return constructors[kind](f.db), nil
}
