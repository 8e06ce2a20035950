package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/internal/api/middleware"
	"github.com/linskybing/property-portal/internal/application"
	"github.com/linskybing/property-portal/pkg/apperrors"
)

type UploadHandler struct {
	base
	svc *application.UploadService
}

func NewUploadHandler(b base, svc *application.UploadService) *UploadHandler {
	return &UploadHandler{base: b, svc: svc}
}

// UploadImage godoc
// @Summary Upload an image to object storage
// @Tags uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param folder formData string false "Target folder (uploads, properties, blogs, avatars)"
// @Success 201 {object} application.UploadResult
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 503 {object} response.ErrorResponse "Object storage not configured"
// @Router /api/uploads [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if !h.svc.Enabled() {
		h.fail(c, application.ErrUploadsDisabled)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		h.fail(c, apperrors.Invalid("file", "required", "file is required"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	res, err := h.svc.Upload(c.Request.Context(), middleware.SessionFrom(c), application.UploadInput{
		Folder:   c.PostForm("folder"),
		Filename: fh.Filename,
		Size:     fh.Size,
		Body:     f,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
