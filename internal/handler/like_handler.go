package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"group-exercise-api/internal/dto"
	"group-exercise-api/internal/service"
)

type LikeHandler struct {
	likeService service.LikeService
	logger      *zap.Logger
}

func NewLikeHandler(likeService service.LikeService, logger *zap.Logger) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
		logger:      logger,
	}
}

// IncrementLike godoc
// @Summary      그룹 추천
// @Description  그룹의 추천 수를 1 증가시킵니다
// @Tags         likes
// @Produce      json
// @Param        groupId path int true "그룹 ID"
// @Success      200 {object} dto.LikeCountResponse "그룹 추천 성공"
// @Failure      404 {object} response.ErrorResponse "그룹을 찾을 수 없음"
// @Router       /groups/{groupId}/likes [post]
func (h *LikeHandler) IncrementLike(c *gin.Context) {
	groupID, ok := parseIDParam(c, "groupId")
	if !ok {
		return
	}

	data, err := h.likeService.IncrementLike(c.Request.Context(), groupID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikeCountResponse{Message: "그룹 추천 성공", Data: *data})
}

// DecrementLike godoc
// @Summary      그룹 추천 취소
// @Description  그룹의 추천 수를 1 감소시킵니다. 0 아래로는 내려가지 않습니다.
// @Tags         likes
// @Produce      json
// @Param        groupId path int true "그룹 ID"
// @Success      200 {object} dto.LikeCountResponse "그룹 추천 취소 성공"
// @Failure      404 {object} response.ErrorResponse "그룹을 찾을 수 없음"
// @Router       /groups/{groupId}/likes [delete]
func (h *LikeHandler) DecrementLike(c *gin.Context) {
	groupID, ok := parseIDParam(c, "groupId")
	if !ok {
		return
	}

	data, err := h.likeService.DecrementLike(c.Request.Context(), groupID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikeCountResponse{Message: "그룹 추천 취소 성공", Data: *data})
}
