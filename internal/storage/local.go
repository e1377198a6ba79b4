package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// LocalStorage writes uploads to the local filesystem under uploadDir.
// Stored files are served statically under the "uploads/" path prefix.
type LocalStorage struct {
	uploadDir string
}

// NewLocalStorage creates a LocalStorage rooted at uploadDir
func NewLocalStorage(uploadDir string) *LocalStorage {
	return &LocalStorage{uploadDir: uploadDir}
}

// Save validates and stores the upload, returning its canonical path
func (s *LocalStorage) Save(_ context.Context, file *multipart.FileHeader) (string, error) {
	if err := ValidateUpload(file); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := SafeFilename(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "uploads/" + name, nil
}
