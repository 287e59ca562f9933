package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sunspire/solar-crm/pkg/objectstore"
	"github.com/sunspire/solar-crm/pkg/response"
)

const maxUploadBytes = 2 << 20 // 2 MiB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type UploadHandler struct{}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{}
}

// Upload godoc
// @Summary Upload an installation photo
// @Description Accepts jpeg, png or webp up to 2 MiB and stores it in the object store under a random key.
// @Tags uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} response.UploadResponse
// @Failure 400 {object} response.ErrorResponse "Invalid file"
// @Failure 500 {object} response.ErrorResponse "Upload failed"
// @Router /api/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file exceeds 2 MiB limit"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "only jpeg, png and webp images are accepted"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to read file"})
		return
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	objectName := fmt.Sprintf("photos/%s%s", uuid.NewString(), ext)

	if err := objectstore.UploadObject(c.Request.Context(), objectName, contentType, src, fileHeader.Size); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "upload failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.UploadResponse{
		URL:        objectstore.ObjectURL(objectName),
		ObjectName: objectName,
	})
}
