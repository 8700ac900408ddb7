package util

import (
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fcurti/falegnameria-backend/pkg/config"
)

// Upload validation is by file extension only, mirroring the admin form
// contract: anything else is silently skipped, never surfaced as an error.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

// AllowedImage reports whether the filename has an allowed image extension,
// case-insensitively.
func AllowedImage(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := allowedExtensions[ext]
	return ok
}

// SaveUpload writes the uploaded file under a random name preserving the
// original extension and returns the public URL path it is served from.
func SaveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	storage := config.GetConfig().Storage
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := strings.ReplaceAll(uuid.New().String(), "-", "") + ext

	if err := os.MkdirAll(storage.UploadDir, 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(storage.UploadDir, name)); err != nil {
		return "", err
	}
	return path.Join(storage.UploadPrefix, name), nil
}
