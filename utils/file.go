package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"shoe-store/config"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// StageUploadedFile writes an incoming image under the upload directory and
// returns its full path, ready to be pushed to object storage.
func StageUploadedFile(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > config.AppConfig.MaxUploadSize {
		return "", errors.New("file size exceeds maximum allowed size")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return "", errors.New("invalid file type. Only images are allowed")
	}

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		return "", err
	}

	safeName := strings.ReplaceAll(fileHeader.Filename, " ", "_")
	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), safeName)
	if len(filename) > 255 {
		filename = fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	}

	filePath := filepath.Join(config.AppConfig.UploadDir, filename)
	if err := c.SaveUploadedFile(fileHeader, filePath); err != nil {
		return "", err
	}

	return filePath, nil
}
