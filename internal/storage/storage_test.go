package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a real multipart.FileHeader by round-tripping a
// multipart request the way gin does.
func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func TestValidateUpload(t *testing.T) {
	t.Run("jpeg 허용", func(t *testing.T) {
		file := makeFileHeader(t, "photo.jpg", "image/jpeg", []byte("data"))
		assert.NoError(t, ValidateUpload(file))
	})

	t.Run("png 허용", func(t *testing.T) {
		file := makeFileHeader(t, "photo.png", "image/png", []byte("data"))
		assert.NoError(t, ValidateUpload(file))
	})

	t.Run("허용되지 않은 타입 거부", func(t *testing.T) {
		file := makeFileHeader(t, "doc.pdf", "application/pdf", []byte("data"))
		assert.ErrorIs(t, ValidateUpload(file), ErrInvalidFileType)
	})

	t.Run("5MB 초과 거부", func(t *testing.T) {
		file := makeFileHeader(t, "big.jpg", "image/jpeg", []byte("data"))
		file.Size = MaxFileSize + 1
		assert.ErrorIs(t, ValidateUpload(file), ErrFileTooLarge)
	})
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantBase string
		wantExt  string
	}{
		{"jpg 유지", "photo.jpg", "photo", ".jpg"},
		{"jpeg 유지", "photo.JPEG", "photo", ".jpeg"},
		{"png 유지", "photo.png", "photo", ".png"},
		{"알 수 없는 확장자는 jpg로", "script.exe", "script", ".jpg"},
		{"확장자 없음", "photo", "photo", ".jpg"},
		{"빈 이름", ".jpg", "image", ".jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeFilename(tt.input)
			assert.True(t, strings.HasPrefix(got, tt.wantBase+"_"), "got %q", got)
			assert.True(t, strings.HasSuffix(got, tt.wantExt), "got %q", got)
		})
	}

	t.Run("경로 구성 요소 제거", func(t *testing.T) {
		got := SafeFilename("../../etc/passwd.png")
		assert.False(t, strings.Contains(got, "/"))
		assert.True(t, strings.HasPrefix(got, "passwd_"))
	})

	t.Run("호출마다 고유한 이름", func(t *testing.T) {
		a := SafeFilename("photo.jpg")
		b := SafeFilename("photo.jpg")
		assert.NotEqual(t, a, b)
	})
}

func TestLocalStorageSave(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStorage(dir)

	file := makeFileHeader(t, "photo.jpg", "image/jpeg", []byte("jpeg-bytes"))

	path, err := store.Save(context.Background(), file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "uploads/"))

	stored := filepath.Join(dir, strings.TrimPrefix(path, "uploads/"))
	content, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), content)
}

func TestLocalStorageSave_RejectsInvalidType(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStorage(dir)

	file := makeFileHeader(t, "doc.txt", "text/plain", []byte("text"))

	_, err := store.Save(context.Background(), file)
	assert.ErrorIs(t, err, ErrInvalidFileType)

	// 거부된 업로드는 디스크에 남지 않는다
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
