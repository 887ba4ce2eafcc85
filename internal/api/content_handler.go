package api

import (
	"errors"
	"fmt"
	"net/http"

	"alcyxob/x3-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ContentHandler holds the content service dependency.
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// --- Request/Response Structs ---

type DemoVideoURLResponse struct {
	ExerciseName string `json:"exerciseName"`
	URL          string `json:"url"`
}

type PrepareUploadRequest struct {
	ExerciseName string `json:"exerciseName" binding:"required"`
	ContentType  string `json:"contentType" binding:"required"`
}

type PrepareUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	Method    string `json:"method"` // Always PUT
}

// --- Handler Methods ---

// GetDemoVideoURL godoc
// @Summary Get a streaming URL for an exercise demo clip
// @Description Returns a short-lived presigned URL; the client streams directly from storage.
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param name path string true "Exercise name (e.g. Chest Press)"
// @Success 200 {object} DemoVideoURLResponse
// @Failure 400 {object} gin.H "Unknown exercise"
// @Failure 404 {object} gin.H "No demo video uploaded yet"
// @Router /exercises/{name}/demo-video [get]
func (h *ContentHandler) GetDemoVideoURL(c *gin.Context) {
	exerciseName := c.Param("name")

	url, err := h.contentService.DemoVideoURL(c.Request.Context(), exerciseName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownExercise):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDemoVideoNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to generate video URL")
		}
		return
	}

	c.JSON(http.StatusOK, DemoVideoURLResponse{
		ExerciseName: exerciseName,
		URL:          url,
	})
}

// PrepareDemoVideoUpload godoc
// @Summary Get a presigned URL to upload an exercise demo clip
// @Description The caller PUTs the video body to the returned URL with the declared Content-Type.
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PrepareUploadRequest true "Upload details"
// @Success 200 {object} PrepareUploadResponse
// @Failure 400 {object} gin.H "Unknown exercise or non-video content type"
// @Router /demo-videos/upload [post]
func (h *ContentHandler) PrepareDemoVideoUpload(c *gin.Context) {
	var req PrepareUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	uploadURL, err := h.contentService.PrepareDemoVideoUpload(c.Request.Context(), req.ExerciseName, req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownExercise), errors.Is(err, service.ErrInvalidVideoType):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to prepare upload")
		}
		return
	}

	c.JSON(http.StatusOK, PrepareUploadResponse{
		UploadURL: uploadURL,
		Method:    http.MethodPut,
	})
}
