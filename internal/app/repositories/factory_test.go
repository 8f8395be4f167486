package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campushub/internal/pkg/apperrors"
)

func TestKindFromNameCanonical(t *testing.T) {
	kind, err := KindFromName("user")
	require.NoError(t, err)
	assert.Equal(t, KindUser, kind)

	kind, err = KindFromName("course_schedule_slot")
	require.NoError(t, err)
	assert.Equal(t, KindCourseScheduleSlot, kind)
}

func TestKindFromNameCaseInsensitive(t *testing.T) {
	for _, name := range []string{"User", "USER", "uSeR"} {
		kind, err := KindFromName(name)
		require.NoError(t, err, name)
		assert.Equal(t, KindUser, kind)
	}
}

func TestKindFromNameAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  Kind
	}{
		{"ta", KindTeachingAssistant},
		{"TA", KindTeachingAssistant},
		{"settings", KindUserSettings},
		{"schedule_slot", KindCourseScheduleSlot},
		{"material", KindCourseMaterial},
		{"deadline", KindDeadline},
	}
	for _, tt := range tests {
		kind, err := KindFromName(tt.alias)
		require.NoError(t, err, tt.alias)
		assert.Equal(t, tt.want, kind)
	}
}

func TestKindFromNameUnknown(t *testing.T) {
	_, err := KindFromName("faculty")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnknownRepository)
	assert.Contains(t, err.Error(), "faculty")
}

func TestFactoryGetReturnsTypedRepositories(t *testing.T) {
	f := NewFactory(nil)

	repo, err := f.Get("user")
	require.NoError(t, err)
	_, ok := repo.(*UserRepository)
	assert.True(t, ok)

	repo, err = f.Get("ta")
	require.NoError(t, err)
	_, ok = repo.(*TeachingAssistantRepository)
	assert.True(t, ok)
}

func TestFactoryGetFreshInstances(t *testing.T) {
	f := NewFactory(nil)

	first, err := f.Get("note")
	require.NoError(t, err)
	second, err := f.Get("note")
	require.NoError(t, err)

	assert.NotSame(t, first.(*NoteRepository), second.(*NoteRepository))
}

func TestFactoryGetUnknown(t *testing.T) {
	f := NewFactory(nil)

	repo, err := f.Get("department")
	assert.Nil(t, repo)
	assert.ErrorIs(t, err, apperrors.ErrUnknownRepository)
}

func TestFactoryCoversEveryKind(t *testing.T) {
	f := NewFactory(nil)
	for kind := range constructors {
		repo, err := f.Get(string(kind))
		require.NoError(t, err, kind)
		assert.NotNil(t, repo, kind)
	}
}
