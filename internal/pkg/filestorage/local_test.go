package filestorage

import (
	"bytes"
	"mime/multipart"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSaveFileWithPathRoundTrip(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base, "http://localhost:8080/uploads")
	require.NoError(t, err)

	header := uploadHeader(t, "syllabus.pdf", "course content")
	savedPath, err := storage.SaveFileWithPath(header, "materials")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(savedPath, "http://localhost:8080/uploads/materials/"))
	assert.True(t, strings.HasSuffix(savedPath, ".pdf"))

	fullPath := storage.GetFullPath(savedPath)
	require.NotEmpty(t, fullPath)
	content, err := os.ReadFile(fullPath)
	require.NoError(t, err)
	assert.Equal(t, "course content", string(content))
}

func TestDeleteFileInSubdirectory(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base, "http://localhost:8080/uploads")
	require.NoError(t, err)

	savedPath, err := storage.SaveFileWithPath(uploadHeader(t, "notes.txt", "x"), "materials")
	require.NoError(t, err)
	fullPath := storage.GetFullPath(savedPath)

	require.NoError(t, storage.DeleteFile(savedPath))
	_, statErr := os.Stat(fullPath)
	assert.True(t, os.IsNotExist(statErr))

	// Deleting again is a no-op
	assert.NoError(t, storage.DeleteFile(savedPath))
}

func TestGetFullPathRejectsEscapes(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	assert.Equal(t, "", storage.GetFullPath("../../etc/passwd"))
	assert.Equal(t, "", storage.GetFullPath(""))
	assert.Error(t, storage.DeleteFile("../../etc/passwd"))
}
