package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"group-exercise-api/internal/domain"
	"group-exercise-api/internal/metrics"
	"group-exercise-api/internal/repository"
)

// BadgeService recomputes a group's derived badge set from live counts.
// It is invoked after every event that changes a group's participant,
// record or like count; the nightly reconciliation job uses the same path.
type BadgeService interface {
	Recompute(ctx context.Context, groupID uint) ([]string, error)
}

// badgeServiceImpl is the implementation of BadgeService
type badgeServiceImpl struct {
	groupRepo       repository.GroupRepository
	participantRepo repository.ParticipantRepository
	recordRepo      repository.RecordRepository
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewBadgeService creates a new instance of BadgeService
func NewBadgeService(
	groupRepo repository.GroupRepository,
	participantRepo repository.ParticipantRepository,
	recordRepo repository.RecordRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) BadgeService {
	return &badgeServiceImpl{
		groupRepo:       groupRepo,
		participantRepo: participantRepo,
		recordRepo:      recordRepo,
		metrics:         m,
		logger:          logger,
	}
}

// Recompute evaluates the badge rules against live counts and persists the
// result only when set membership actually changed. A vanished group is not
// an error; the triggering mutation may race with a delete.
func (s *badgeServiceImpl) Recompute(ctx context.Context, groupID uint) ([]string, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	participantCount, err := s.participantRepo.CountByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	recordCount, err := s.recordRepo.CountByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	newBadges := domain.EvaluateBadges(participantCount, recordCount, int64(group.LikeCount), group.Badges)

	if domain.BadgeSetsEqual(group.Badges, newBadges) {
		return newBadges, nil
	}

	if err := s.groupRepo.UpdateBadges(ctx, groupID, newBadges); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementBadgeWrite()
	}
	s.logger.Info("group badges updated",
		zap.Uint("group_id", groupID),
		zap.Strings("badges", newBadges),
	)
	return newBadges, nil
}
