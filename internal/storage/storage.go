package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFileSize is the upload size limit (5MB)
const MaxFileSize = 5 * 1024 * 1024

// Upload validation errors, surfaced as 400 at the HTTP boundary
var (
	ErrInvalidFileType = errors.New("올바른 파일 타입이 아닙니다")
	ErrFileTooLarge    = errors.New("파일 크기는 5MB를 초과할 수 없습니다")
)

// allowedContentTypes is the image MIME allow-list
var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// validExtensions is the safe extension whitelist; anything else is
// rewritten to .jpg
var validExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Storage persists an uploaded image and returns its canonical relative
// storage path (e.g. "uploads/morning-run_1700000000.jpg")
type Storage interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// ValidateUpload checks the declared content type and size of an upload
func ValidateUpload(file *multipart.FileHeader) error {
	if !allowedContentTypes[file.Header.Get("Content-Type")] {
		return ErrInvalidFileType
	}
	if file.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// SafeFilename builds a collision-safe stored filename from the uploaded
// name. Unknown extensions default to .jpg.
func SafeFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !validExtensions[ext] {
		ext = ".jpg"
	}
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	if base == "" || base == "." {
		base = "image"
	}
	return fmt.Sprintf("%s_%s_%d%s", base, uuid.New().String()[:8], time.Now().Unix(), ext)
}
