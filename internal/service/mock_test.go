package service

import (
	"context"
	"time"

	"group-exercise-api/internal/domain"
	"group-exercise-api/internal/repository"
)

// MockGroupRepository is a mock implementation of GroupRepository
type MockGroupRepository struct {
	CreateWithOwnerFunc func(ctx context.Context, group *domain.Group, owner *domain.Participant) error
	FindByIDFunc        func(ctx context.Context, id uint) (*domain.Group, error)
	ListFunc            func(ctx context.Context, q repository.ListGroupsQuery) ([]*domain.Group, int64, error)
	UpdateFieldsFunc    func(ctx context.Context, id uint, fields map[string]interface{}) error
	UpdateBadgesFunc    func(ctx context.Context, id uint, badges []string) error
	AddLikeFunc         func(ctx context.Context, id uint, delta int) (*domain.Group, error)
	DeleteFunc          func(ctx context.Context, id uint) error
	ListIDsFunc         func(ctx context.Context) ([]uint, error)
}

func (m *MockGroupRepository) CreateWithOwner(ctx context.Context, group *domain.Group, owner *domain.Participant) error {
	if m.CreateWithOwnerFunc != nil {
		return m.CreateWithOwnerFunc(ctx, group, owner)
	}
	return nil
}

func (m *MockGroupRepository) FindByID(ctx context.Context, id uint) (*domain.Group, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockGroupRepository) List(ctx context.Context, q repository.ListGroupsQuery) ([]*domain.Group, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return nil, 0, nil
}

func (m *MockGroupRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockGroupRepository) UpdateBadges(ctx context.Context, id uint, badges []string) error {
	if m.UpdateBadgesFunc != nil {
		return m.UpdateBadgesFunc(ctx, id, badges)
	}
	return nil
}

func (m *MockGroupRepository) AddLike(ctx context.Context, id uint, delta int) (*domain.Group, error) {
	if m.AddLikeFunc != nil {
		return m.AddLikeFunc(ctx, id, delta)
	}
	return nil, nil
}

func (m *MockGroupRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockGroupRepository) ListIDs(ctx context.Context) ([]uint, error) {
	if m.ListIDsFunc != nil {
		return m.ListIDsFunc(ctx)
	}
	return nil, nil
}

// MockParticipantRepository is a mock implementation of ParticipantRepository
type MockParticipantRepository struct {
	CreateFunc                 func(ctx context.Context, participant *domain.Participant) error
	FindByIDFunc               func(ctx context.Context, id uint) (*domain.Participant, error)
	FindByGroupAndNicknameFunc func(ctx context.Context, groupID uint, nickname string) (*domain.Participant, error)
	DeleteFunc                 func(ctx context.Context, id uint) error
	CountByGroupIDFunc         func(ctx context.Context, groupID uint) (int64, error)
}

func (m *MockParticipantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, participant)
	}
	return nil
}

func (m *MockParticipantRepository) FindByID(ctx context.Context, id uint) (*domain.Participant, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockParticipantRepository) FindByGroupAndNickname(ctx context.Context, groupID uint, nickname string) (*domain.Participant, error) {
	if m.FindByGroupAndNicknameFunc != nil {
		return m.FindByGroupAndNicknameFunc(ctx, groupID, nickname)
	}
	return nil, nil
}

func (m *MockParticipantRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockParticipantRepository) CountByGroupID(ctx context.Context, groupID uint) (int64, error) {
	if m.CountByGroupIDFunc != nil {
		return m.CountByGroupIDFunc(ctx, groupID)
	}
	return 0, nil
}

// MockRecordRepository is a mock implementation of RecordRepository
type MockRecordRepository struct {
	CreateFunc         func(ctx context.Context, record *domain.Record) error
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.Record, error)
	ListByGroupFunc    func(ctx context.Context, q repository.ListRecordsQuery) ([]*domain.Record, int64, error)
	CountByGroupIDFunc func(ctx context.Context, groupID uint) (int64, error)
	RankFunc           func(ctx context.Context, groupID uint, start, end time.Time) ([]repository.RankRow, error)
}

func (m *MockRecordRepository) Create(ctx context.Context, record *domain.Record) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *MockRecordRepository) FindByID(ctx context.Context, id uint) (*domain.Record, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockRecordRepository) ListByGroup(ctx context.Context, q repository.ListRecordsQuery) ([]*domain.Record, int64, error) {
	if m.ListByGroupFunc != nil {
		return m.ListByGroupFunc(ctx, q)
	}
	return nil, 0, nil
}

func (m *MockRecordRepository) CountByGroupID(ctx context.Context, groupID uint) (int64, error) {
	if m.CountByGroupIDFunc != nil {
		return m.CountByGroupIDFunc(ctx, groupID)
	}
	return 0, nil
}

func (m *MockRecordRepository) Rank(ctx context.Context, groupID uint, start, end time.Time) ([]repository.RankRow, error) {
	if m.RankFunc != nil {
		return m.RankFunc(ctx, groupID, start, end)
	}
	return nil, nil
}

// MockBadgeService is a mock implementation of BadgeService
type MockBadgeService struct {
	RecomputeFunc func(ctx context.Context, groupID uint) ([]string, error)
}

func (m *MockBadgeService) Recompute(ctx context.Context, groupID uint) ([]string, error) {
	if m.RecomputeFunc != nil {
		return m.RecomputeFunc(ctx, groupID)
	}
	return nil, nil
}
