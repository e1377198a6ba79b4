package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"group-exercise-api/internal/dto"
	"group-exercise-api/internal/service"
	"group-exercise-api/internal/storage"
)

func setupImageRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uploadDir := t.TempDir()
	store := storage.NewLocalStorage(uploadDir)
	images := service.NewImageService("")
	h := NewImageHandler(store, images, zap.NewNop())

	r := gin.New()
	r.POST("/api/images", h.UploadImage)
	r.POST("/api/images/multi", h.UploadImages)
	return r, uploadDir
}

func multipartBody(t *testing.T, field string, filenames ...string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, name := range filenames {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+name+`"`)
		header.Set("Content-Type", "image/jpeg")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	t.Run("성공", func(t *testing.T) {
		r, _ := setupImageRouter(t)
		body, contentType := multipartBody(t, "image", "photo.jpg")

		req := httptest.NewRequest("POST", "/api/images", body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			OK   bool                `json:"ok"`
			Data dto.SingleImageData `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		assert.Contains(t, resp.Data.ImageURL, "/uploads/")
		assert.True(t, strings.HasPrefix(resp.Data.ImageURL, "http://"))
	})

	t.Run("파일 누락: NO_FILE", func(t *testing.T) {
		r, _ := setupImageRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/api/images", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.UploadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.OK)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "NO_FILE", resp.Error.Code)
	})

	t.Run("허용되지 않은 타입: INVALID_FILE_TYPE", func(t *testing.T) {
		r, _ := setupImageRouter(t)

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="doc.pdf"`)
		header.Set("Content-Type", "application/pdf")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("pdf"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/api/images", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.UploadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_FILE_TYPE", resp.Error.Code)
	})
}

func TestUploadImages(t *testing.T) {
	t.Run("다중 업로드 성공", func(t *testing.T) {
		r, _ := setupImageRouter(t)
		body, contentType := multipartBody(t, "images", "a.jpg", "b.png")

		req := httptest.NewRequest("POST", "/api/images/multi", body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			OK   bool               `json:"ok"`
			Data dto.MultiImageData `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		assert.Len(t, resp.Data.ImageURLs, 2)
	})

	t.Run("파일 누락: NO_FILE", func(t *testing.T) {
		r, _ := setupImageRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/api/images/multi", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.UploadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "NO_FILE", resp.Error.Code)
	})

	t.Run("3장 초과: TOO_MANY_FILES, 아무것도 저장되지 않음", func(t *testing.T) {
		r, uploadDir := setupImageRouter(t)
		body, contentType := multipartBody(t, "images", "a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg")

		req := httptest.NewRequest("POST", "/api/images/multi", body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.UploadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.OK)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "TOO_MANY_FILES", resp.Error.Code)

		entries, err := os.ReadDir(uploadDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("정확히 3장은 허용", func(t *testing.T) {
		r, _ := setupImageRouter(t)
		body, contentType := multipartBody(t, "images", "a.jpg", "b.jpg", "c.jpg")

		req := httptest.NewRequest("POST", "/api/images/multi", body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
