// Package seed creates default data after migrations so a fresh database
// is immediately usable.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/campushub/campushub/internal/app/models"
	appRepos "github.com/campushub/campushub/internal/app/repositories"
)

const defaultPassword = "campushub123"

// CreateDefaultData creates a demo instructor, a demo student and one course
// with timetable slots when they do not already exist. Errors are collected
// rather than aborting, so a partial seed never blocks startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	instructorUserID, err := ensureUser(ctx, repos, "prof.chen", "prof.chen@campushub.app")
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default instructor user")
		finalErr = errors.Join(finalErr, err)
	}

	var instructorID int64
	if instructorUserID > 0 {
		instructor, err := repos.InstructorRepository.GetByUserID(ctx, instructorUserID)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
		} else if instructor == nil {
			dept := "Computer Science"
			office := "B-214"
			email := "prof.chen@campushub.app"
			instructor = &appModels.Instructor{
				UserID:     instructorUserID,
				Department: &dept,
				Office:     &office,
				Email:      &email,
			}
			if err := repos.InstructorRepository.Create(ctx, instructor); err != nil {
				lgr.Error().Err(err).Msg("Error creating default instructor")
				finalErr = errors.Join(finalErr, err)
			}
		}
		if instructor != nil && instructor.InstructorID != nil {
			instructorID = *instructor.InstructorID
		}
	}

	studentUserID, err := ensureUser(ctx, repos, "demo.student", "demo.student@campushub.app")
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default student user")
		finalErr = errors.Join(finalErr, err)
	}

	if studentUserID > 0 {
		student, err := repos.StudentRepository.GetByUserID(ctx, studentUserID)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
		} else if student == nil {
			dept := "Computer Science"
			year := 2
			student = &appModels.Student{
				UserID:     studentUserID,
				Department: &dept,
				YearLevel:  &year,
			}
			if err := repos.StudentRepository.Create(ctx, student); err != nil {
				lgr.Error().Err(err).Msg("Error creating default student")
				finalErr = errors.Join(finalErr, err)
			}
		}
		if _, err := repos.UserSettingsRepository.GetOrCreate(ctx, studentUserID); err != nil {
			lgr.Error().Err(err).Msg("Error creating default student settings")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if instructorID > 0 {
		if err := ensureCourse(ctx, repos, instructorID, lgr); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr != nil {
		lgr.Warn().Err(finalErr).Msg("Default data creation finished with errors")
	} else {
		lgr.Info().Msg("Default data check complete")
	}
	return finalErr
}

// ensureUser returns the user ID for the given email, creating the user
// with the default password when missing.
func ensureUser(ctx context.Context, repos *appRepos.Repositories, username, email string) (int64, error) {
	existing, err := repos.UserRepository.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		if existing.UserID == nil {
			return 0, errors.New("existing user has no id")
		}
		return *existing.UserID, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &appModels.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := repos.UserRepository.Create(ctx, user); err != nil {
		return 0, err
	}
	if user.UserID == nil {
		return 0, errors.New("created user has no id")
	}
	return *user.UserID, nil
}

// ensureCourse creates the introductory demo course and its timetable
// slots when the instructor has no courses yet.
func ensureCourse(ctx context.Context, repos *appRepos.Repositories, instructorID int64, lgr zerolog.Logger) error {
	courses, err := repos.CourseRepository.GetByInstructor(ctx, instructorID)
	if err != nil {
		return err
	}
	if len(courses) > 0 {
		return nil
	}

	schedule := "Mon/Wed 10:00-11:30"
	course := &appModels.Course{
		CourseName:   "Introduction to Programming",
		Credits:      6,
		InstructorID: instructorID,
		Schedule:     &schedule,
	}
	if err := repos.CourseRepository.Create(ctx, course); err != nil {
		lgr.Error().Err(err).Msg("Error creating default course")
		return err
	}

	section := "1"
	slotType := "Lecture"
	year := 2026
	term := "Fall"
	slots := []*appModels.CourseScheduleSlot{
		{
			CourseID:     course.CourseID,
			CourseCode:   "CS101",
			Section:      &section,
			Day:          "Monday",
			StartTime:    "10:00",
			EndTime:      "11:30",
			SlotType:     &slotType,
			AcademicYear: &year,
			Term:         &term,
		},
		{
			CourseID:     course.CourseID,
			CourseCode:   "CS101",
			Section:      &section,
			Day:          "Wednesday",
			StartTime:    "10:00",
			EndTime:      "11:30",
			SlotType:     &slotType,
			AcademicYear: &year,
			Term:         &term,
		},
	}
	if err := repos.CourseScheduleSlotRepository.CreateBatch(ctx, slots); err != nil {
		lgr.Error().Err(err).Msg("Error creating default timetable slots")
		return err
	}
	return nil
}
