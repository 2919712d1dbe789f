package handler

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"
)

// openCSVUpload opens the "file" field of a multipart upload.
func openCSVUpload(c *gin.Context) (multipart.File, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}
	return fileHeader.Open()
}
