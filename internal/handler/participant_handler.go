package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"group-exercise-api/internal/dto"
	"group-exercise-api/internal/response"
	"group-exercise-api/internal/service"
)

type ParticipantHandler struct {
	participantService service.ParticipantService
	logger             *zap.Logger
}

func NewParticipantHandler(participantService service.ParticipantService, logger *zap.Logger) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: participantService,
		logger:             logger,
	}
}

// JoinGroup godoc
// @Summary      그룹 참여
// @Description  닉네임과 비밀번호로 그룹에 참여합니다. 닉네임은 그룹 내에서 유일해야 합니다.
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        groupId path int true "그룹 ID"
// @Param        request body dto.JoinGroupRequest true "참여 요청"
// @Success      201 {object} dto.ParticipantResponse "그룹 참여 성공"
// @Failure      404 {object} response.ErrorResponse "그룹을 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "닉네임 중복"
// @Router       /groups/{groupId}/participants [post]
func (h *ParticipantHandler) JoinGroup(c *gin.Context) {
	groupID, ok := parseIDParam(c, "groupId")
	if !ok {
		return
	}

	var req dto.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "잘못된 요청 형식입니다")
		return
	}

	result, err := h.participantService.Join(c.Request.Context(), groupID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// LeaveGroup godoc
// @Summary      그룹 탈퇴
// @Description  본인 비밀번호 검증 후 그룹에서 탈퇴합니다. 소유자는 탈퇴할 수 없습니다.
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        groupId path int true "그룹 ID"
// @Param        request body dto.LeaveGroupRequest true "탈퇴 요청"
// @Success      200 {object} response.MessageResponse "그룹 탈퇴 성공"
// @Failure      401 {object} response.ErrorResponse "비밀번호 불일치"
// @Failure      404 {object} response.ErrorResponse "그룹 또는 참여자를 찾을 수 없음"
// @Router       /groups/{groupId}/participants [delete]
func (h *ParticipantHandler) LeaveGroup(c *gin.Context) {
	groupID, ok := parseIDParam(c, "groupId")
	if !ok {
		return
	}

	var req dto.LeaveGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "잘못된 요청 형식입니다")
		return
	}

	if err := h.participantService.Leave(c.Request.Context(), groupID, &req); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "그룹 탈퇴 성공")
}
