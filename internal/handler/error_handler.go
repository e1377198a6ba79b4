package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"group-exercise-api/internal/response"
	"group-exercise-api/internal/storage"
)

// handleServiceError maps service layer errors to appropriate HTTP responses
func handleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	// Check for GORM errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "리소스를 찾을 수 없습니다.")
		return
	}

	// Check for custom AppError
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		statusCode := mapErrorCodeToHTTPStatus(appErr.Code)
		response.SendAppError(c, statusCode, appErr)
		return
	}

	logger.Error("Unhandled service error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "서버 내부 오류가 발생했습니다")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeAlreadyExists:
		return http.StatusConflict
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// handleUploadError maps storage validation errors to 400 responses
func handleUploadError(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrInvalidFileType) || errors.Is(err, storage.ErrFileTooLarge) {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}
	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "파일 저장에 실패했습니다")
}

// parseIDParam parses a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, name+"는 양의 정수여야 합니다")
		return 0, false
	}
	return uint(id), true
}
