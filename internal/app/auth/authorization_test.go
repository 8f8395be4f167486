package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campushub/internal/app/models"
)

type stubInstructorProbe struct {
	instructor *models.Instructor
	err        error
}

func (s *stubInstructorProbe) GetByUserID(ctx context.Context, userID int64) (*models.Instructor, error) {
	return s.instructor, s.err
}

type stubTAProbe struct {
	ta  *models.TeachingAssistant
	err error
}

func (s *stubTAProbe) GetByUserID(ctx context.Context, userID int64) (*models.TeachingAssistant, error) {
	return s.ta, s.err
}

type stubStudentProbe struct {
	student *models.Student
	err     error
}

func (s *stubStudentProbe) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return s.student, s.err
}

func newResolver(i *stubInstructorProbe, ta *stubTAProbe, st *stubStudentProbe) *RoleResolver {
	if i == nil {
		i = &stubInstructorProbe{}
	}
	if ta == nil {
		ta = &stubTAProbe{}
	}
	if st == nil {
		st = &stubStudentProbe{}
	}
	return NewRoleResolver(i, ta, st)
}

func TestResolveRolePriority(t *testing.T) {
	ctx := context.Background()

	// A user with rows in all three tables resolves to Instructor.
	r := newResolver(
		&stubInstructorProbe{instructor: &models.Instructor{UserID: 1}},
		&stubTAProbe{ta: &models.TeachingAssistant{UserID: 1}},
		&stubStudentProbe{student: &models.Student{UserID: 1}},
	)
	role, err := r.ResolveRole(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.RoleInstructor, role)

	// TA beats Student.
	r = newResolver(
		nil,
		&stubTAProbe{ta: &models.TeachingAssistant{UserID: 1}},
		&stubStudentProbe{student: &models.Student{UserID: 1}},
	)
	role, err = r.ResolveRole(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTA, role)

	r = newResolver(nil, nil, &stubStudentProbe{student: &models.Student{UserID: 1}})
	role, err = r.ResolveRole(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, role)
}

func TestResolveRoleNone(t *testing.T) {
	r := newResolver(nil, nil, nil)

	role, err := r.ResolveRole(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, models.RoleNone, role)
}

func TestResolveRoleProbeError(t *testing.T) {
	probeErr := errors.New("connection refused")
	r := newResolver(&stubInstructorProbe{err: probeErr}, nil, nil)

	role, err := r.ResolveRole(context.Background(), 1)
	assert.ErrorIs(t, err, probeErr)
	assert.Equal(t, models.RoleNone, role)
}

func TestValidateInstructor(t *testing.T) {
	ctx := context.Background()

	r := newResolver(&stubInstructorProbe{instructor: &models.Instructor{UserID: 1}}, nil, nil)
	assert.NoError(t, r.ValidateInstructor(ctx, 1))

	r = newResolver(nil, nil, &stubStudentProbe{student: &models.Student{UserID: 1}})
	assert.ErrorIs(t, r.ValidateInstructor(ctx, 1), ErrNotInstructor)
}

func TestRequireRole(t *testing.T) {
	ctx := context.Background()
	r := newResolver(nil, &stubTAProbe{ta: &models.TeachingAssistant{UserID: 1}}, nil)

	role, err := r.RequireRole(ctx, 1, models.RoleInstructor, models.RoleTA)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTA, role)

	role, err = r.RequireRole(ctx, 1, models.RoleInstructor)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, models.RoleTA, role)
}
