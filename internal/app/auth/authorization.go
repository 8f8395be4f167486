package auth

import (
	"context"
	"errors"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/pkg/logger"
)

// Common errors specific to authorization that aren't in the central apperrors
var (
	ErrNotInstructor    = errors.New("only instructors can perform this action")
	ErrPermissionDenied = errors.New("you don't have permission for this action")
)

// instructorProbe looks up an instructor row by owning user ID.
type instructorProbe interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Instructor, error)
}

// taProbe looks up a teaching assistant row by owning user ID.
type taProbe interface {
	GetByUserID(ctx context.Context, userID int64) (*models.TeachingAssistant, error)
}

// studentProbe looks up a student row by owning user ID.
type studentProbe interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
}

// RoleResolver determines which role a user holds by probing the role tables
// in priority order. A user with rows in several tables resolves to the
// highest one: Instructor, then TA, then Student.
type RoleResolver struct {
	instructors instructorProbe
	tas         taProbe
	students    studentProbe
}

// NewRoleResolver creates a role resolver over the three role lookups
func NewRoleResolver(instructors instructorProbe, tas taProbe, students studentProbe) *RoleResolver {
	return &RoleResolver{
		instructors: instructors,
		tas:         tas,
		students:    students,
	}
}

// ResolveRole returns the user's role, or RoleNone when the user has no row
// in any role table. Each probe is one query; the first hit short-circuits.
func (r *RoleResolver) ResolveRole(ctx context.Context, userID int64) (models.Role, error) {
	instructor, err := r.instructors.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error probing instructor role")
		return models.RoleNone, err
	}
	if instructor != nil {
		return models.RoleInstructor, nil
	}

	ta, err := r.tas.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error probing TA role")
		return models.RoleNone, err
	}
	if ta != nil {
		return models.RoleTA, nil
	}

	student, err := r.students.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error probing student role")
		return models.RoleNone, err
	}
	if student != nil {
		return models.RoleStudent, nil
	}

	return models.RoleNone, nil
}

// IsInstructor reports whether the user resolves to the instructor role
func (r *RoleResolver) IsInstructor(ctx context.Context, userID int64) (bool, error) {
	role, err := r.ResolveRole(ctx, userID)
	if err != nil {
		return false, err
	}
	return role == models.RoleInstructor, nil
}

// ValidateInstructor returns ErrNotInstructor when the user does not resolve
// to the instructor role
func (r *RoleResolver) ValidateInstructor(ctx context.Context, userID int64) error {
	isInstructor, err := r.IsInstructor(ctx, userID)
	if err != nil {
		return err
	}
	if !isInstructor {
		return ErrNotInstructor
	}
	return nil
}

// RequireRole returns ErrPermissionDenied unless the user resolves to one of
// the allowed roles
func (r *RoleResolver) RequireRole(ctx context.Context, userID int64, allowed ...models.Role) (models.Role, error) {
	role, err := r.ResolveRole(ctx, userID)
	if err != nil {
		return models.RoleNone, err
	}
	for _, a := range allowed {
		if role == a {
			return role, nil
		}
	}
	return role, ErrPermissionDenied
}
