package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"group-exercise-api/internal/domain"
	"group-exercise-api/internal/response"
)

func newTestLikeService(groupRepo *MockGroupRepository, badges *MockBadgeService) LikeService {
	return NewLikeService(groupRepo, badges, nil, nil, zap.NewNop())
}

func TestIncrementLike(t *testing.T) {
	var gotDelta int
	svc := newTestLikeService(&MockGroupRepository{
		AddLikeFunc: func(ctx context.Context, id uint, delta int) (*domain.Group, error) {
			gotDelta = delta
			return &domain.Group{BaseModel: domain.BaseModel{ID: id}, LikeCount: 6}, nil
		},
	}, &MockBadgeService{})

	data, err := svc.IncrementLike(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 1, gotDelta)
	assert.Equal(t, uint(3), data.ID)
	assert.Equal(t, 6, data.LikeCount)
}

func TestDecrementLike(t *testing.T) {
	var gotDelta int
	svc := newTestLikeService(&MockGroupRepository{
		AddLikeFunc: func(ctx context.Context, id uint, delta int) (*domain.Group, error) {
			gotDelta = delta
			return &domain.Group{BaseModel: domain.BaseModel{ID: id}, LikeCount: 0}, nil
		},
	}, &MockBadgeService{})

	data, err := svc.DecrementLike(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, -1, gotDelta)
	assert.Equal(t, 0, data.LikeCount)
}

func TestLike_GroupNotFound(t *testing.T) {
	svc := newTestLikeService(&MockGroupRepository{
		AddLikeFunc: func(ctx context.Context, id uint, delta int) (*domain.Group, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}, &MockBadgeService{})

	_, err := svc.IncrementLike(context.Background(), 99)
	assertAppError(t, err, response.ErrCodeNotFound)

	_, err = svc.DecrementLike(context.Background(), 99)
	assertAppError(t, err, response.ErrCodeNotFound)
}

func TestLike_BadgeRecomputeFailureDoesNotFailLike(t *testing.T) {
	svc := newTestLikeService(&MockGroupRepository{
		AddLikeFunc: func(ctx context.Context, id uint, delta int) (*domain.Group, error) {
			return &domain.Group{BaseModel: domain.BaseModel{ID: id}, LikeCount: 100}, nil
		},
	}, &MockBadgeService{
		RecomputeFunc: func(ctx context.Context, groupID uint) ([]string, error) {
			return nil, errors.New("db down")
		},
	})

	data, err := svc.IncrementLike(context.Background(), 1)

	require.NoError(t, err, "배지 재계산 실패가 추천 요청을 실패시키면 안 됨")
	assert.Equal(t, 100, data.LikeCount)
}

func TestLike_TriggersBadgeRecompute(t *testing.T) {
	var recomputedFor uint
	svc := newTestLikeService(&MockGroupRepository{
		AddLikeFunc: func(ctx context.Context, id uint, delta int) (*domain.Group, error) {
			return &domain.Group{BaseModel: domain.BaseModel{ID: id}, LikeCount: 100}, nil
		},
	}, &MockBadgeService{
		RecomputeFunc: func(ctx context.Context, groupID uint) ([]string, error) {
			recomputedFor = groupID
			return []string{domain.BadgeLike100}, nil
		},
	})

	_, err := svc.IncrementLike(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, uint(42), recomputedFor)
}
