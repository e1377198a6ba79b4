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

// maxRecordPhotos limits how many photos one record may carry
const maxRecordPhotos = 3

type RecordHandler struct {
	recordService service.RecordService
	storage       storage.Storage
	logger        *zap.Logger
}

func NewRecordHandler(recordService service.RecordService, store storage.Storage, logger *zap.Logger) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
		storage:       store,
		logger:        logger,
	}
}

// ListRecords godoc
// @Summary      운동 기록 목록 조회
// @Description  그룹의 운동 기록을 페이지네이션과 작성자 닉네임 검색으로 조회합니다
// @Tags         records
// @Produce      json
// @Param        groupId path int true "그룹 ID"
// @Param        page query int false "페이지 번호 (기본 1)"
// @Param        limit query int false "페이지 크기 (기본 10)"
// @Param        orderBy query string false "정렬 기준 [createdAt, time]"
// @Param        order query string false "정렬 방향 [asc, desc]"
// @Param        search query string false "작성자 닉네임 검색어"
// @Success      200 {object} dto.RecordListResponse "기록 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 쿼리 파라미터"
// @Router       /groups/{groupId}/records [get]
func (h *RecordHandler) ListRecords(c *gin.Context) {
	groupID, ok := parseIDParam(c, "groupId")
	if !ok {
		return
	}

	var req dto.ListRecordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "잘못된 쿼리 파라미터입니다")
		return
	}

	result, err := h.recordService.ListRecords(c.Request.Context(), groupID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateRecord godoc
// @Summary      운동 기록 생성
// @Description  참여자 인증 후 운동 기록을 생성합니다. 사진은 최대 3장까지 첨부할 수 있습니다.
// @Tags         records
// @Accept       multipart/form-data
// @Produce      json
// @Param        groupId path int true "그룹 ID"
// @Success      201 {object} dto.RecordResponse "기록 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "참여자 인증 실패"
// @Router       /groups/{groupId}/records [post]
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	groupID, ok := parseIDParam(c, "groupId")
	if !ok {
		return
	}

	var req dto.CreateRecordRequest
	if err := c.ShouldBind(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "잘못된 요청 형식입니다")
		return
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["photos"]
		if len(files) > maxRecordPhotos {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "사진은 최대 3장까지 업로드할 수 있습니다")
			return
		}
		for _, file := range files {
			path, err := h.storage.Save(c.Request.Context(), file)
			if err != nil {
				handleUploadError(c, err)
				return
			}
			req.UploadedPhotos = append(req.UploadedPhotos, path)
		}
	}

	result, err := h.recordService.CreateRecord(c.Request.Context(), groupID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetRecord godoc
// @Summary      운동 기록 상세 조회
// @Tags         records
// @Produce      json
// @Param        groupId path int true "그룹 ID"
// @Param        recordId path int true "기록 ID"
// @Success      200 {object} dto.RecordResponse "기록 조회 성공"
// @Failure      404 {object} response.ErrorResponse "기록을 찾을 수 없음"
// @Router       /groups/{groupId}/records/{recordId} [get]
func (h *RecordHandler) GetRecord(c *gin.Context) {
	groupID, ok := parseIDParam(c, "groupId")
	if !ok {
		return
	}
	recordID, ok := parseIDParam(c, "recordId")
	if !ok {
		return
	}

	result, err := h.recordService.GetRecord(c.Request.Context(), groupID, recordID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRank godoc
// @Summary      그룹 랭킹 조회
// @Description  주간 또는 월간 트레일링 윈도우의 참여자 랭킹을 조회합니다
// @Tags         records
// @Produce      json
// @Param        groupId path int true "그룹 ID"
// @Param        duration query string false "랭킹 기간 [weekly, monthly] (기본 weekly)"
// @Success      200 {object} dto.RankResponse "랭킹 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 duration"
// @Router       /groups/{groupId}/rank [get]
func (h *RecordHandler) GetRank(c *gin.Context) {
	groupID, ok := parseIDParam(c, "groupId")
	if !ok {
		return
	}

	duration := c.DefaultQuery("duration", "weekly")

	result, err := h.recordService.GetRank(c.Request.Context(), groupID, duration)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
