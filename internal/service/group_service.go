package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"group-exercise-api/internal/domain"
	"group-exercise-api/internal/dto"
	"group-exercise-api/internal/metrics"
	"group-exercise-api/internal/repository"
	"group-exercise-api/internal/response"
)

// GroupService defines the interface for group lifecycle business logic
type GroupService interface {
	CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*dto.GroupResponse, error)
	GetGroupDetail(ctx context.Context, id uint) (*dto.GroupResponse, error)
	ListGroups(ctx context.Context, req *dto.ListGroupsRequest) (*dto.GroupListResponse, error)
	UpdateGroup(ctx context.Context, id uint, req *dto.UpdateGroupRequest) (*dto.GroupResponse, error)
	DeleteGroup(ctx context.Context, id uint, ownerPassword string) error
}

// groupServiceImpl is the implementation of GroupService
type groupServiceImpl struct {
	groupRepo  repository.GroupRepository
	recordRepo repository.RecordRepository
	badges     BadgeService
	images     *ImageService
	cache      *GroupCache
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewGroupService creates a new instance of GroupService
func NewGroupService(
	groupRepo repository.GroupRepository,
	recordRepo repository.RecordRepository,
	badges BadgeService,
	images *ImageService,
	cache *GroupCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) GroupService {
	return &groupServiceImpl{
		groupRepo:  groupRepo,
		recordRepo: recordRepo,
		badges:     badges,
		images:     images,
		cache:      cache,
		metrics:    m,
		logger:     logger,
	}
}

// parseGoalRep validates the goal rep form value as a non-negative integer
func parseGoalRep(raw string) (int, error) {
	goalRep, err := strconv.Atoi(raw)
	if err != nil || goalRep < 0 {
		return 0, response.NewValidationError("goalRep", "목표 횟수는 0 이상의 정수여야 합니다")
	}
	return goalRep, nil
}

// CreateGroup persists a new group and its owner participant atomically.
// The owner participant is created inside the same transaction as the
// group, so a failure on either side leaves no partial state behind.
func (s *groupServiceImpl) CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	if req.Name == "" {
		return nil, response.NewValidationError("name", "그룹명은 필수입니다")
	}
	if req.OwnerNickname == "" {
		return nil, response.NewValidationError("ownerNickname", "소유자 닉네임은 필수입니다")
	}
	if req.OwnerPassword == "" {
		return nil, response.NewValidationError("ownerPassword", "소유자 비밀번호는 필수입니다")
	}
	goalRep, err := parseGoalRep(req.GoalRep)
	if err != nil {
		return nil, err
	}

	// 업로드 파일이 있으면 photoUrl 문자열보다 우선
	var photoURL *string
	if req.UploadedImage != "" {
		photoURL = &req.UploadedImage
	} else if req.PhotoURL != nil {
		photoURL = s.images.Canonical(*req.PhotoURL)
	}

	group := &domain.Group{
		Name:              req.Name,
		Description:       req.Description,
		PhotoURL:          photoURL,
		GoalRep:           goalRep,
		Tags:              datatypes.NewJSONSlice(append([]string{}, req.Tags...)),
		Badges:            datatypes.NewJSONSlice([]string{}),
		DiscordWebhookURL: req.DiscordWebhookURL,
		DiscordInviteURL:  req.DiscordInviteURL,
	}
	owner := &domain.Participant{
		Nickname: req.OwnerNickname,
		Password: req.OwnerPassword,
	}

	if err := s.groupRepo.CreateWithOwner(ctx, group, owner); err != nil {
		s.logger.Error("group creation failed",
			zap.String("name", req.Name),
			zap.Error(err),
		)
		return nil, response.NewAppError(response.ErrCodeInternal, "그룹 생성에 실패했습니다")
	}

	if s.metrics != nil {
		s.metrics.IncrementGroupCreated()
	}
	s.logger.Info("group created",
		zap.Uint("group_id", group.ID),
		zap.String("name", group.Name),
	)

	return toGroupResponse(group, s.images, nil), nil
}

// GetGroupDetail returns the full projection of one group
func (s *groupServiceImpl) GetGroupDetail(ctx context.Context, id uint) (*dto.GroupResponse, error) {
	if cached, ok := s.cache.GetDetail(ctx, id); ok {
		return cached, nil
	}

	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("그룹을 찾을 수 없습니다.")
		}
		return nil, err
	}

	resp := toGroupResponse(group, s.images, nil)
	s.cache.SetDetail(ctx, id, resp)
	return resp, nil
}

// ListGroups returns one page of groups sorted and filtered per the query.
// order and orderBy are validated at this boundary into closed enumerations.
func (s *groupServiceImpl) ListGroups(ctx context.Context, req *dto.ListGroupsRequest) (*dto.GroupListResponse, error) {
	order, ok := domain.ParseSortOrder(req.Order)
	if !ok {
		return nil, response.NewValidationError("order", "order는 반드시 [asc, desc] 중 하나여야 합니다.")
	}
	orderBy, ok := domain.ParseGroupSortKey(req.OrderBy)
	if !ok {
		return nil, response.NewValidationError("orderBy", "orderBy는 반드시 [createdAt, likeCount, participantCount] 중 하나여야 합니다.")
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 10
	}

	groups, total, err := s.groupRepo.List(ctx, repository.ListGroupsQuery{
		Page:    page,
		Limit:   limit,
		OrderBy: orderBy,
		Order:   order,
		Search:  req.Search,
	})
	if err != nil {
		return nil, err
	}

	data := make([]*dto.GroupResponse, 0, len(groups))
	for _, group := range groups {
		recordCount, err := s.recordRepo.CountByGroupID(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		data = append(data, toGroupResponse(group, s.images, &recordCount))
	}

	return &dto.GroupListResponse{Data: data, Total: total}, nil
}

// verifyOwnerPassword gates every ownership-authenticated mutation. The
// comparison is the plaintext credential check the API contract defines;
// it is isolated here so a hashed scheme can replace it without touching
// callers.
func (s *groupServiceImpl) verifyOwnerPassword(group *domain.Group, supplied string) error {
	if group.Owner == nil {
		return response.NewUnauthorizedError("", "group owner의 정보를 찾을 수 없습니다.")
	}
	if supplied != group.Owner.Password {
		return response.NewUnauthorizedError("password", "비밀번호가 일치하지 않습니다.")
	}
	return nil
}

// UpdateGroup applies a partial update after the ownership gate. All
// validation happens before the single persistence write, so a rejected
// patch leaves the group entirely unmodified.
func (s *groupServiceImpl) UpdateGroup(ctx context.Context, id uint, req *dto.UpdateGroupRequest) (*dto.GroupResponse, error) {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("그룹을 찾을 수 없습니다.")
		}
		return nil, err
	}
	if err := s.verifyOwnerPassword(group, req.OwnerPassword); err != nil {
		return nil, err
	}

	// name은 부분 수정에서도 필수
	if req.Name == nil || *req.Name == "" {
		return nil, response.NewValidationError("name", "그룹명은 필수입니다")
	}

	fields := map[string]interface{}{
		"name": *req.Name,
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.GoalRep != nil {
		goalRep, err := parseGoalRep(*req.GoalRep)
		if err != nil {
			return nil, err
		}
		fields["goal_rep"] = goalRep
	}
	if len(req.Tags) > 0 {
		fields["tags"] = datatypes.NewJSONSlice(req.Tags)
	}
	if req.DiscordWebhookURL != nil {
		fields["discord_webhook_url"] = *req.DiscordWebhookURL
	}
	if req.DiscordInviteURL != nil {
		fields["discord_invite_url"] = *req.DiscordInviteURL
	}

	// 업로드 파일이 있으면 photoUrl 문자열보다 우선
	if req.UploadedImage != "" {
		fields["photo_url"] = req.UploadedImage
	} else if req.PhotoURL != nil {
		fields["photo_url"] = s.images.Canonical(*req.PhotoURL)
	}

	if err := s.groupRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "그룹 수정에 실패했습니다")
	}
	s.cache.Invalidate(ctx, id)

	updated, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toGroupResponse(updated, s.images, nil), nil
}

// DeleteGroup removes a group after the ownership gate. Participants and
// records cascade at the persistence boundary.
func (s *groupServiceImpl) DeleteGroup(ctx context.Context, id uint, ownerPassword string) error {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("그룹을 찾을 수 없습니다.")
		}
		return err
	}
	if err := s.verifyOwnerPassword(group, ownerPassword); err != nil {
		return err
	}

	if err := s.groupRepo.Delete(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "그룹 삭제에 실패했습니다")
	}
	s.cache.Invalidate(ctx, id)

	s.logger.Info("group deleted", zap.Uint("group_id", id))
	return nil
}
