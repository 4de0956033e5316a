package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"impulso/utils"

	"github.com/gin-gonic/gin"
)

// allowedBuckets defines permitted folders for uploads.
var allowedBuckets = map[string]bool{
	"bookings": true,
	"profiles": true,
}

// UploadFileHandler stores a multipart file in the content store and returns
// its reference.
func (h *HandlerBundle) UploadFileHandler(c *gin.Context) {
	if h.Content == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "uploads disabled", "no content store configured")
		return
	}

	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		utils.JSONError(c, http.StatusBadRequest, "invalid bucket", "allowed values are 'bookings' and 'profiles'")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	ref, err := h.Content.UploadFile(c, tempFilePath, bucket)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload file", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"ref": ref})
}
