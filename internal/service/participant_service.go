package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"group-exercise-api/internal/domain"
	"group-exercise-api/internal/dto"
	"group-exercise-api/internal/repository"
	"group-exercise-api/internal/response"
)

// ParticipantService defines the interface for group membership logic
type ParticipantService interface {
	Join(ctx context.Context, groupID uint, req *dto.JoinGroupRequest) (*dto.ParticipantResponse, error)
	Leave(ctx context.Context, groupID uint, req *dto.LeaveGroupRequest) error
}

// participantServiceImpl is the implementation of ParticipantService
type participantServiceImpl struct {
	groupRepo       repository.GroupRepository
	participantRepo repository.ParticipantRepository
	badges          BadgeService
	cache           *GroupCache
	logger          *zap.Logger
}

// NewParticipantService creates a new instance of ParticipantService
func NewParticipantService(
	groupRepo repository.GroupRepository,
	participantRepo repository.ParticipantRepository,
	badges BadgeService,
	cache *GroupCache,
	logger *zap.Logger,
) ParticipantService {
	return &participantServiceImpl{
		groupRepo:       groupRepo,
		participantRepo: participantRepo,
		badges:          badges,
		cache:           cache,
		logger:          logger,
	}
}

// Join adds a new participant to a group. Nicknames are unique per group.
func (s *participantServiceImpl) Join(ctx context.Context, groupID uint, req *dto.JoinGroupRequest) (*dto.ParticipantResponse, error) {
	if req.Nickname == "" {
		return nil, response.NewValidationError("nickname", "닉네임은 필수입니다")
	}
	if req.Password == "" {
		return nil, response.NewValidationError("password", "비밀번호는 필수입니다")
	}

	if _, err := s.groupRepo.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("그룹을 찾을 수 없습니다.")
		}
		return nil, err
	}

	if _, err := s.participantRepo.FindByGroupAndNickname(ctx, groupID, req.Nickname); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "이미 사용 중인 닉네임입니다.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	participant := &domain.Participant{
		GroupID:  groupID,
		Nickname: req.Nickname,
		Password: req.Password,
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "그룹 참여에 실패했습니다")
	}
	s.cache.Invalidate(ctx, groupID)

	if _, err := s.badges.Recompute(ctx, groupID); err != nil {
		s.logger.Warn("badge recomputation failed after join",
			zap.Uint("group_id", groupID),
			zap.Error(err),
		)
	}

	return toParticipantResponse(participant), nil
}

// Leave removes a participant from a group after verifying the
// participant's own password. The owner cannot leave; the group has to be
// deleted instead.
func (s *participantServiceImpl) Leave(ctx context.Context, groupID uint, req *dto.LeaveGroupRequest) error {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("그룹을 찾을 수 없습니다.")
		}
		return err
	}

	participant, err := s.participantRepo.FindByGroupAndNickname(ctx, groupID, req.Nickname)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("참여자를 찾을 수 없습니다.")
		}
		return err
	}
	if req.Password != participant.Password {
		return response.NewUnauthorizedError("password", "비밀번호가 일치하지 않습니다.")
	}
	if group.OwnerID != nil && *group.OwnerID == participant.ID {
		return response.NewValidationError("nickname", "그룹 소유자는 탈퇴할 수 없습니다.")
	}

	if err := s.participantRepo.Delete(ctx, participant.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "그룹 탈퇴에 실패했습니다")
	}
	s.cache.Invalidate(ctx, groupID)

	if _, err := s.badges.Recompute(ctx, groupID); err != nil {
		s.logger.Warn("badge recomputation failed after leave",
			zap.Uint("group_id", groupID),
			zap.Error(err),
		)
	}

	return nil
}
