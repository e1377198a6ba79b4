package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"group-exercise-api/internal/dto"
	"group-exercise-api/internal/response"
	"group-exercise-api/internal/service"
	"group-exercise-api/internal/storage"
)

type GroupHandler struct {
	groupService service.GroupService
	storage      storage.Storage
	logger       *zap.Logger
}

func NewGroupHandler(groupService service.GroupService, store storage.Storage, logger *zap.Logger) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
		storage:      store,
		logger:       logger,
	}
}

// ListGroups godoc
// @Summary      그룹 목록 조회
// @Description  페이지네이션, 정렬, 이름 검색으로 그룹 목록을 조회합니다
// @Tags         groups
// @Produce      json
// @Param        page query int false "페이지 번호 (기본 1)"
// @Param        limit query int false "페이지 크기 (기본 10)"
// @Param        orderBy query string false "정렬 기준 [createdAt, likeCount, participantCount]"
// @Param        order query string false "정렬 방향 [asc, desc]"
// @Param        search query string false "그룹명 검색어"
// @Success      200 {object} dto.GroupListResponse "그룹 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 쿼리 파라미터"
// @Router       /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	var req dto.ListGroupsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "잘못된 쿼리 파라미터입니다")
		return
	}

	result, err := h.groupService.ListGroups(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateGroup godoc
// @Summary      그룹 생성
// @Description  그룹과 소유자 참여자를 함께 생성합니다. 이미지 파일이 photoUrl 문자열보다 우선합니다.
// @Tags         groups
// @Accept       multipart/form-data
// @Produce      json
// @Success      201 {object} dto.GroupResponse "그룹 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Router       /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBind(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "잘못된 요청 형식입니다")
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := h.storage.Save(c.Request.Context(), file)
		if err != nil {
			handleUploadError(c, err)
			return
		}
		req.UploadedImage = path
	}

	result, err := h.groupService.CreateGroup(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetGroup godoc
// @Summary      그룹 상세 조회
// @Tags         groups
// @Produce      json
// @Param        groupId path int true "그룹 ID"
// @Success      200 {object} dto.GroupResponse "그룹 조회 성공"
// @Failure      404 {object} response.ErrorResponse "그룹을 찾을 수 없음"
// @Router       /groups/{groupId} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	groupID, ok := parseIDParam(c, "groupId")
	if !ok {
		return
	}

	result, err := h.groupService.GetGroupDetail(c.Request.Context(), groupID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateGroup godoc
// @Summary      그룹 수정
// @Description  소유자 비밀번호 검증 후 그룹 정보를 수정합니다
// @Tags         groups
// @Accept       multipart/form-data
// @Produce      json
// @Param        groupId path int true "그룹 ID"
// @Success      200 {object} dto.GroupResponse "그룹 수정 성공"
// @Failure      401 {object} response.ErrorResponse "비밀번호 불일치"
// @Failure      404 {object} response.ErrorResponse "그룹을 찾을 수 없음"
// @Router       /groups/{groupId} [patch]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	groupID, ok := parseIDParam(c, "groupId")
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if err := c.ShouldBind(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "잘못된 요청 형식입니다")
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := h.storage.Save(c.Request.Context(), file)
		if err != nil {
			handleUploadError(c, err)
			return
		}
		req.UploadedImage = path
	}

	result, err := h.groupService.UpdateGroup(c.Request.Context(), groupID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteGroup godoc
// @Summary      그룹 삭제
// @Description  소유자 비밀번호 검증 후 그룹과 모든 하위 데이터를 삭제합니다
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        groupId path int true "그룹 ID"
// @Success      200 {object} response.MessageResponse "그룹 삭제 성공"
// @Failure      401 {object} response.ErrorResponse "비밀번호 불일치"
// @Failure      404 {object} response.ErrorResponse "그룹을 찾을 수 없음"
// @Router       /groups/{groupId} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	groupID, ok := parseIDParam(c, "groupId")
	if !ok {
		return
	}

	var req dto.DeleteGroupRequest
	if err := c.ShouldBind(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "잘못된 요청 형식입니다")
		return
	}

	if err := h.groupService.DeleteGroup(c.Request.Context(), groupID, req.OwnerPassword); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, "그룹 삭제 성공")
}
