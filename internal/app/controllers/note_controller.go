package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/middleware"
)

// NoteController handles lecture note operations
type NoteController struct {
	noteRepo    *repositories.NoteRepository
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewNoteController creates a new NoteController
func NewNoteController(
	noteRepo *repositories.NoteRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *NoteController {
	return &NoteController{
		noteRepo:    noteRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func (c *NoteController) currentStudentID(ctx *gin.Context) (int64, bool) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return 0, false
	}

	student, err := c.studentRepo.GetByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return 0, false
	}
	if student == nil || student.StudentID == nil {
		notFound(ctx, "Student profile")
		return 0, false
	}
	return *student.StudentID, true
}

// ListNotes returns the student's notes, newest first
func (c *NoteController) ListNotes(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	notes, err := c.noteRepo.GetByStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(notes), "Notes retrieved")
}

// GetNote returns a single note by ID
func (c *NoteController) GetNote(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	note, err := c.noteRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if note == nil {
		notFound(ctx, "Note")
		return
	}

	respond(ctx, http.StatusOK, note.ToMap(), "Note retrieved")
}

// CreateNote records an uploaded note file
func (c *NoteController) CreateNote(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.CreateNoteRequest](ctx)
	if !ok {
		return
	}

	note := &models.Note{
		StudentID:    studentID,
		OriginalFile: req.OriginalFile,
		SummaryText:  req.SummaryText,
	}
	if err := c.noteRepo.Create(ctx.Request.Context(), note); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, note.ToMap(), "Note created")
}

// UpdateNote replaces a note's summary text
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.UpdateNoteRequest](ctx)
	if !ok {
		return
	}

	note, err := c.noteRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if note == nil {
		notFound(ctx, "Note")
		return
	}

	note.SummaryText = &req.SummaryText
	if err := c.noteRepo.Update(ctx.Request.Context(), note); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, note.ToMap(), "Note updated")
}

// DeleteNote removes a note
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.noteRepo.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		notFound(ctx, "Note")
		return
	}

	respond(ctx, http.StatusOK, nil, "Note deleted")
}
