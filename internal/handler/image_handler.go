package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"group-exercise-api/internal/dto"
	"group-exercise-api/internal/service"
	"group-exercise-api/internal/storage"
)

// maxUploadImages limits how many files one multi-upload request may carry
const maxUploadImages = 3

type ImageHandler struct {
	storage storage.Storage
	images  *service.ImageService
	logger  *zap.Logger
}

func NewImageHandler(store storage.Storage, images *service.ImageService, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{
		storage: store,
		images:  images,
		logger:  logger,
	}
}

// uploadError maps a storage error to the upload envelope
func uploadError(err error) *dto.UploadErrorDetail {
	switch {
	case errors.Is(err, storage.ErrInvalidFileType):
		return &dto.UploadErrorDetail{Code: "INVALID_FILE_TYPE", Message: err.Error()}
	case errors.Is(err, storage.ErrFileTooLarge):
		return &dto.UploadErrorDetail{Code: "FILE_TOO_LARGE", Message: err.Error()}
	default:
		return &dto.UploadErrorDetail{Code: "UPLOAD_FAILED", Message: "파일 저장에 실패했습니다"}
	}
}

// UploadImage godoc
// @Summary      이미지 단건 업로드
// @Description  이미지 파일을 저장하고 공개 URL을 반환합니다
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Success      201 {object} dto.UploadResponse "업로드 성공"
// @Failure      400 {object} dto.UploadResponse "파일 누락 또는 검증 실패"
// @Router       /images [post]
func (h *ImageHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.UploadResponse{
			OK:    false,
			Error: &dto.UploadErrorDetail{Code: "NO_FILE", Message: "업로드할 파일이 없습니다"},
		})
		return
	}

	path, err := h.storage.Save(c.Request.Context(), file)
	if err != nil {
		h.logger.Warn("image upload failed", zap.String("filename", file.Filename), zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.UploadResponse{OK: false, Error: uploadError(err)})
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{
		OK:   true,
		Data: dto.SingleImageData{ImageURL: h.images.PublicURLFor(c.Request, path)},
	})
}

// UploadImages godoc
// @Summary      이미지 다중 업로드
// @Description  여러 이미지 파일을 저장하고 공개 URL 목록을 반환합니다. 최대 3장까지 업로드할 수 있습니다.
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Success      201 {object} dto.UploadResponse "업로드 성공"
// @Failure      400 {object} dto.UploadResponse "파일 누락, 개수 초과 또는 검증 실패"
// @Router       /images/multi [post]
func (h *ImageHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || form == nil || len(form.File["images"]) == 0 {
		c.JSON(http.StatusBadRequest, dto.UploadResponse{
			OK:    false,
			Error: &dto.UploadErrorDetail{Code: "NO_FILE", Message: "업로드할 파일이 없습니다"},
		})
		return
	}
	if len(form.File["images"]) > maxUploadImages {
		c.JSON(http.StatusBadRequest, dto.UploadResponse{
			OK:    false,
			Error: &dto.UploadErrorDetail{Code: "TOO_MANY_FILES", Message: "이미지는 최대 3장까지 업로드할 수 있습니다"},
		})
		return
	}

	urls := make([]string, 0, len(form.File["images"]))
	for _, file := range form.File["images"] {
		path, err := h.storage.Save(c.Request.Context(), file)
		if err != nil {
			h.logger.Warn("image upload failed", zap.String("filename", file.Filename), zap.Error(err))
			c.JSON(http.StatusBadRequest, dto.UploadResponse{OK: false, Error: uploadError(err)})
			return
		}
		urls = append(urls, h.images.PublicURLFor(c.Request, path))
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{
		OK:   true,
		Data: dto.MultiImageData{ImageURLs: urls},
	})
}
