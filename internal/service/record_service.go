package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"group-exercise-api/internal/domain"
	"group-exercise-api/internal/dto"
	"group-exercise-api/internal/metrics"
	"group-exercise-api/internal/repository"
	"group-exercise-api/internal/response"
)

// RecordService defines the interface for exercise record logic
type RecordService interface {
	CreateRecord(ctx context.Context, groupID uint, req *dto.CreateRecordRequest) (*dto.RecordResponse, error)
	GetRecord(ctx context.Context, groupID, recordID uint) (*dto.RecordResponse, error)
	ListRecords(ctx context.Context, groupID uint, req *dto.ListRecordsRequest) (*dto.RecordListResponse, error)
	GetRank(ctx context.Context, groupID uint, duration string) (*dto.RankResponse, error)
}

// recordServiceImpl is the implementation of RecordService
type recordServiceImpl struct {
	groupRepo       repository.GroupRepository
	participantRepo repository.ParticipantRepository
	recordRepo      repository.RecordRepository
	badges          BadgeService
	images          *ImageService
	cache           *GroupCache
	metrics         *metrics.Metrics
	logger          *zap.Logger
	now             func() time.Time
}

// NewRecordService creates a new instance of RecordService
func NewRecordService(
	groupRepo repository.GroupRepository,
	participantRepo repository.ParticipantRepository,
	recordRepo repository.RecordRepository,
	badges BadgeService,
	images *ImageService,
	cache *GroupCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) RecordService {
	return &recordServiceImpl{
		groupRepo:       groupRepo,
		participantRepo: participantRepo,
		recordRepo:      recordRepo,
		badges:          badges,
		images:          images,
		cache:           cache,
		metrics:         m,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *recordServiceImpl) requireGroup(ctx context.Context, groupID uint) error {
	if _, err := s.groupRepo.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("그룹을 찾을 수 없습니다.")
		}
		return err
	}
	return nil
}

// authenticateAuthor resolves the record author by nickname and verifies
// the participant's password
func (s *recordServiceImpl) authenticateAuthor(ctx context.Context, groupID uint, nickname, password string) (*domain.Participant, error) {
	if nickname == "" {
		return nil, response.NewValidationError("authorNickname", "작성자 닉네임은 필수입니다")
	}
	if password == "" {
		return nil, response.NewValidationError("authorPassword", "작성자 비밀번호는 필수입니다")
	}

	participant, err := s.participantRepo.FindByGroupAndNickname(ctx, groupID, nickname)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorizedError("authorNickname", "참여자 정보를 찾을 수 없습니다.")
		}
		return nil, err
	}
	if password != participant.Password {
		return nil, response.NewUnauthorizedError("authorPassword", "비밀번호가 일치하지 않습니다.")
	}
	return participant, nil
}

// CreateRecord logs an exercise record authored by a participant of the group
func (s *recordServiceImpl) CreateRecord(ctx context.Context, groupID uint, req *dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	if err := s.requireGroup(ctx, groupID); err != nil {
		return nil, err
	}

	author, err := s.authenticateAuthor(ctx, groupID, req.AuthorNickname, req.AuthorPassword)
	if err != nil {
		return nil, err
	}

	exerciseType := domain.ExerciseType(req.ExerciseType)
	if !exerciseType.IsValid() {
		return nil, response.NewValidationError("exerciseType", "exerciseType는 반드시 [run, bike, swim] 중 하나여야 합니다.")
	}

	seconds, err := strconv.Atoi(req.Time)
	if err != nil || seconds <= 0 {
		return nil, response.NewValidationError("time", "운동 시간은 1 이상의 정수여야 합니다")
	}

	distance, err := strconv.ParseFloat(req.Distance, 64)
	if err != nil || distance < 0 {
		return nil, response.NewValidationError("distance", "거리는 0 이상의 숫자여야 합니다")
	}
	// 소수점 둘째 자리까지 저장
	distance = math.Round(distance*100) / 100

	record := &domain.Record{
		GroupID:      groupID,
		AuthorID:     author.ID,
		ExerciseType: exerciseType,
		Description:  req.Description,
		Time:         seconds,
		Distance:     distance,
		Photos:       datatypes.NewJSONSlice(append([]string{}, req.UploadedPhotos...)),
	}
	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "운동 기록 생성에 실패했습니다")
	}
	record.Author = author

	if s.metrics != nil {
		s.metrics.IncrementRecordCreated()
	}
	s.cache.Invalidate(ctx, groupID)

	if _, err := s.badges.Recompute(ctx, groupID); err != nil {
		s.logger.Warn("badge recomputation failed after record creation",
			zap.Uint("group_id", groupID),
			zap.Uint("record_id", record.ID),
			zap.Error(err),
		)
	}

	return toRecordResponse(record, s.images), nil
}

// GetRecord returns one record of a group
func (s *recordServiceImpl) GetRecord(ctx context.Context, groupID, recordID uint) (*dto.RecordResponse, error) {
	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("운동 기록을 찾을 수 없습니다.")
		}
		return nil, err
	}
	if record.GroupID != groupID {
		return nil, response.NewNotFoundError("운동 기록을 찾을 수 없습니다.")
	}
	return toRecordResponse(record, s.images), nil
}

// ListRecords returns one page of a group's records
func (s *recordServiceImpl) ListRecords(ctx context.Context, groupID uint, req *dto.ListRecordsRequest) (*dto.RecordListResponse, error) {
	order, ok := domain.ParseSortOrder(req.Order)
	if !ok {
		return nil, response.NewValidationError("order", "order는 반드시 [asc, desc] 중 하나여야 합니다.")
	}
	orderBy, ok := domain.ParseRecordSortKey(req.OrderBy)
	if !ok {
		return nil, response.NewValidationError("orderBy", "orderBy는 반드시 [createdAt, time] 중 하나여야 합니다.")
	}

	if err := s.requireGroup(ctx, groupID); err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 10
	}

	records, total, err := s.recordRepo.ListByGroup(ctx, repository.ListRecordsQuery{
		GroupID: groupID,
		Page:    page,
		Limit:   limit,
		OrderBy: orderBy,
		Order:   order,
		Search:  req.Search,
	})
	if err != nil {
		return nil, err
	}

	data := make([]*dto.RecordResponse, 0, len(records))
	for _, record := range records {
		data = append(data, toRecordResponse(record, s.images))
	}
	return &dto.RecordListResponse{Data: data, Total: total}, nil
}

// GetRank aggregates participant standings over the trailing weekly or
// monthly window
func (s *recordServiceImpl) GetRank(ctx context.Context, groupID uint, duration string) (*dto.RankResponse, error) {
	rankDuration, ok := domain.ParseRankDuration(duration)
	if !ok {
		return nil, response.NewValidationError("duration", "duration은 반드시 [weekly, monthly] 중 하나여야 합니다.")
	}

	if err := s.requireGroup(ctx, groupID); err != nil {
		return nil, err
	}

	start, end := rankDuration.Range(s.now())
	rows, err := s.recordRepo.Rank(ctx, groupID, start, end)
	if err != nil {
		return nil, err
	}

	return &dto.RankResponse{Duration: string(rankDuration), Data: rows}, nil
}
