package migrations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"001_users.sql", "001"},
		{"010_course_materials.sql", "010"},
		{"migrations/003_planner.sql", "003"},
		{"noseparator.sql", "noseparator.sql"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, versionFromFilename(tt.filename))
		})
	}
}

func TestSQLFilenamesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"002_courses.sql", "001_users.sql", "notes.txt", "010_extra.sql"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.sql"), 0o755))

	names, err := sqlFilenames(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_users.sql", "002_courses.sql", "010_extra.sql"}, names)
}

func TestSQLFilenamesMissingDirectory(t *testing.T) {
	_, err := sqlFilenames(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
