package controllers

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/middleware"
	"github.com/campushub/campushub/internal/pkg/filestorage"
)

const materialsSubdir = "materials"

// CourseMaterialController handles course material uploads, metadata and
// downloads. Uploads are multipart; stored files are served through the
// download endpoint so the counter stays accurate.
type CourseMaterialController struct {
	materialRepo   *repositories.CourseMaterialRepository
	courseRepo     *repositories.CourseRepository
	instructorRepo *repositories.InstructorRepository
	storage        filestorage.FileStorage
	logger         zerolog.Logger
}

// NewCourseMaterialController creates a new CourseMaterialController
func NewCourseMaterialController(
	materialRepo *repositories.CourseMaterialRepository,
	courseRepo *repositories.CourseRepository,
	instructorRepo *repositories.InstructorRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *CourseMaterialController {
	return &CourseMaterialController{
		materialRepo:   materialRepo,
		courseRepo:     courseRepo,
		instructorRepo: instructorRepo,
		storage:        storage,
		logger:         logger,
	}
}

func (c *CourseMaterialController) currentInstructorID(ctx *gin.Context) (int64, bool) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return 0, false
	}

	instructor, err := c.instructorRepo.GetByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return 0, false
	}
	if instructor == nil || instructor.InstructorID == nil {
		notFound(ctx, "Instructor profile")
		return 0, false
	}
	return *instructor.InstructorID, true
}

// ListCourseMaterials returns a course's active materials, optionally
// filtered by ?week=
func (c *CourseMaterialController) ListCourseMaterials(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	reqCtx := ctx.Request.Context()
	var (
		materials []*models.CourseMaterial
		err       error
	)
	if weekParam := ctx.Query("week"); weekParam != "" {
		week, parseErr := strconv.Atoi(weekParam)
		if parseErr != nil || week < 1 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid week parameter")))
			return
		}
		materials, err = c.materialRepo.GetByCourseAndWeek(reqCtx, courseID, week)
	} else {
		materials, err = c.materialRepo.GetByCourse(reqCtx, courseID)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project(materials), "Course materials retrieved")
}

// GetMaterial returns a single material by ID
func (c *CourseMaterialController) GetMaterial(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	material, err := c.materialRepo.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if material == nil || !material.IsActive {
		notFound(ctx, "Course material")
		return
	}

	respond(ctx, http.StatusOK, material.ToMap(), "Course material retrieved")
}

// UploadMaterial creates a material from a multipart form. Either a file or
// a linkUrl must be provided; the uploading instructor becomes the owner.
func (c *CourseMaterialController) UploadMaterial(ctx *gin.Context) {
	instructorID, ok := c.currentInstructorID(ctx)
	if !ok {
		return
	}

	courseID, err := strconv.ParseInt(ctx.PostForm("courseId"), 10, 64)
	if err != nil || courseID < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid courseId field")))
		return
	}

	title := strings.TrimSpace(ctx.PostForm("title"))
	if title == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing title field")))
		return
	}

	reqCtx := ctx.Request.Context()
	course, err := c.courseRepo.GetByID(reqCtx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if course == nil {
		notFound(ctx, "Course")
		return
	}

	fileHeader, _ := ctx.FormFile("file")
	linkURL := strings.TrimSpace(ctx.PostForm("linkUrl"))
	if fileHeader == nil && linkURL == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Either a file or a linkUrl is required")))
		return
	}

	material := &models.CourseMaterial{
		CourseID:      courseID,
		InstructorID:  instructorID,
		MaterialTitle: title,
		MaterialType:  materialType(ctx.PostForm("materialType"), fileHeader, linkURL),
		IsActive:      true,
	}
	if linkURL != "" {
		material.LinkURL = &linkURL
	}
	if description := strings.TrimSpace(ctx.PostForm("description")); description != "" {
		material.Description = &description
	}
	if topic := strings.TrimSpace(ctx.PostForm("topic")); topic != "" {
		material.Topic = &topic
	}
	if weekParam := ctx.PostForm("weekNumber"); weekParam != "" {
		week, parseErr := strconv.Atoi(weekParam)
		if parseErr != nil || week < 1 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid weekNumber field")))
			return
		}
		material.WeekNumber = &week
	}

	if fileHeader != nil {
		savedPath, saveErr := c.storage.SaveFileWithPath(fileHeader, materialsSubdir)
		if saveErr != nil {
			c.logger.Error().Err(saveErr).Str("filename", fileHeader.Filename).Msg("Failed to store course material file")
			middleware.HandleAPIError(ctx, saveErr)
			return
		}
		size := fileHeader.Size
		material.FilePath = &savedPath
		material.FileSize = &size
	}

	if err := c.materialRepo.Create(reqCtx, material); err != nil {
		if material.FilePath != nil {
			if cleanupErr := c.storage.DeleteFile(*material.FilePath); cleanupErr != nil {
				c.logger.Warn().Err(cleanupErr).Str("path", *material.FilePath).Msg("Failed to remove orphaned upload")
			}
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, material.ToMap(), "Course material uploaded")
}

// materialType picks the stored type: an explicit known value wins, links
// are detected from linkUrl, otherwise the file extension decides.
func materialType(requested string, fileHeader *multipart.FileHeader, linkURL string) string {
	switch requested {
	case models.MaterialTypePDF, models.MaterialTypeSlides, models.MaterialTypeVideo,
		models.MaterialTypeAssignment, models.MaterialTypeLink, models.MaterialTypeOther:
		return requested
	}

	if fileHeader == nil && linkURL != "" {
		return models.MaterialTypeLink
	}
	if fileHeader != nil {
		switch strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), ".")) {
		case "pdf":
			return models.MaterialTypePDF
		case "ppt", "pptx":
			return models.MaterialTypeSlides
		case "mp4", "mov", "avi", "mkv", "webm":
			return models.MaterialTypeVideo
		}
	}
	return models.MaterialTypeOther
}

// UpdateMaterial edits a material's metadata. Only the owning instructor
// may edit.
func (c *CourseMaterialController) UpdateMaterial(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	instructorID, ok := c.currentInstructorID(ctx)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.UpdateCourseMaterialRequest](ctx)
	if !ok {
		return
	}

	reqCtx := ctx.Request.Context()
	material, err := c.materialRepo.GetByID(reqCtx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if material == nil || !material.IsActive {
		notFound(ctx, "Course material")
		return
	}
	if material.InstructorID != instructorID {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Only the owning instructor can edit this material")))
		return
	}

	material.MaterialTitle = req.Title
	material.MaterialType = req.MaterialType
	material.LinkURL = req.LinkURL
	material.Description = req.Description
	material.WeekNumber = req.WeekNumber
	material.Topic = req.Topic

	if err := c.materialRepo.Update(reqCtx, material); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, material.ToMap(), "Course material updated")
}

// DeleteMaterial deactivates a material. Only the owning instructor may
// delete; the stored file is kept.
func (c *CourseMaterialController) DeleteMaterial(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	instructorID, ok := c.currentInstructorID(ctx)
	if !ok {
		return
	}

	reqCtx := ctx.Request.Context()
	material, err := c.materialRepo.GetByID(reqCtx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if material == nil || !material.IsActive {
		notFound(ctx, "Course material")
		return
	}
	if material.InstructorID != instructorID {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Only the owning instructor can delete this material")))
		return
	}

	deleted, err := c.materialRepo.Delete(reqCtx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		notFound(ctx, "Course material")
		return
	}

	respond(ctx, http.StatusOK, nil, "Course material deleted")
}

// DownloadMaterial serves a material's file, or redirects to the external
// URL for link materials. Every successful hit bumps the download counter.
func (c *CourseMaterialController) DownloadMaterial(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	reqCtx := ctx.Request.Context()
	material, err := c.materialRepo.GetByID(reqCtx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if material == nil || !material.IsActive {
		notFound(ctx, "Course material")
		return
	}

	if material.IsLink() && material.LinkURL != nil {
		if err := c.materialRepo.IncrementDownloadCount(reqCtx, id); err != nil {
			c.logger.Warn().Err(err).Int64("materialId", id).Msg("Failed to bump download count")
		}
		ctx.Redirect(http.StatusFound, *material.LinkURL)
		return
	}

	if material.FilePath == nil || *material.FilePath == "" {
		notFound(ctx, "Material file")
		return
	}

	if err := c.materialRepo.IncrementDownloadCount(reqCtx, id); err != nil {
		c.logger.Warn().Err(err).Int64("materialId", id).Msg("Failed to bump download count")
	}

	fullPath := c.storage.GetFullPath(*material.FilePath)
	ctx.FileAttachment(fullPath, filepath.Base(*material.FilePath))
}
