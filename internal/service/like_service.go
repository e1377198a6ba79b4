package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"group-exercise-api/internal/dto"
	"group-exercise-api/internal/metrics"
	"group-exercise-api/internal/repository"
	"group-exercise-api/internal/response"
)

// LikeService defines the interface for the group like counter
type LikeService interface {
	IncrementLike(ctx context.Context, groupID uint) (*dto.LikeCountData, error)
	DecrementLike(ctx context.Context, groupID uint) (*dto.LikeCountData, error)
}

// likeServiceImpl is the implementation of LikeService
type likeServiceImpl struct {
	groupRepo repository.GroupRepository
	badges    BadgeService
	cache     *GroupCache
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewLikeService creates a new instance of LikeService
func NewLikeService(
	groupRepo repository.GroupRepository,
	badges BadgeService,
	cache *GroupCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) LikeService {
	return &likeServiceImpl{
		groupRepo: groupRepo,
		badges:    badges,
		cache:     cache,
		metrics:   m,
		logger:    logger,
	}
}

// IncrementLike adds one like to a group
func (s *likeServiceImpl) IncrementLike(ctx context.Context, groupID uint) (*dto.LikeCountData, error) {
	return s.addLike(ctx, groupID, 1)
}

// DecrementLike removes one like from a group, floored at zero
func (s *likeServiceImpl) DecrementLike(ctx context.Context, groupID uint) (*dto.LikeCountData, error) {
	return s.addLike(ctx, groupID, -1)
}

// addLike delegates the arithmetic to the store's single-statement update
// so concurrent likes never lose counts. Badge recomputation runs after
// every like event; its failure must not fail the like itself.
func (s *likeServiceImpl) addLike(ctx context.Context, groupID uint, delta int) (*dto.LikeCountData, error) {
	group, err := s.groupRepo.AddLike(ctx, groupID, delta)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("그룹을 찾을 수 없습니다")
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementLikeEvent(delta > 0)
	}
	s.cache.Invalidate(ctx, groupID)

	if _, err := s.badges.Recompute(ctx, groupID); err != nil {
		s.logger.Warn("badge recomputation failed after like event",
			zap.Uint("group_id", groupID),
			zap.Int("delta", delta),
			zap.Error(err),
		)
	}

	return &dto.LikeCountData{ID: group.ID, LikeCount: group.LikeCount}, nil
}
