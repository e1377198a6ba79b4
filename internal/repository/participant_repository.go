package repository

import (
	"context"

	"gorm.io/gorm"

	"group-exercise-api/internal/domain"
)

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	Create(ctx context.Context, participant *domain.Participant) error
	FindByID(ctx context.Context, id uint) (*domain.Participant, error)
	FindByGroupAndNickname(ctx context.Context, groupID uint, nickname string) (*domain.Participant, error)
	Delete(ctx context.Context, id uint) error
	CountByGroupID(ctx context.Context, groupID uint) (int64, error)
}

// participantRepositoryImpl is the GORM implementation of ParticipantRepository
type participantRepositoryImpl struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new instance of ParticipantRepository
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepositoryImpl{db: db}
}

// Create creates a new participant
func (r *participantRepositoryImpl) Create(ctx context.Context, participant *domain.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

// FindByID finds a participant by id
func (r *participantRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Participant, error) {
	var participant domain.Participant
	if err := r.db.WithContext(ctx).First(&participant, id).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// FindByGroupAndNickname finds a participant by group id and nickname
func (r *participantRepositoryImpl) FindByGroupAndNickname(ctx context.Context, groupID uint, nickname string) (*domain.Participant, error) {
	var participant domain.Participant
	if err := r.db.WithContext(ctx).
		Where("group_id = ? AND nickname = ?", groupID, nickname).
		First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// Delete removes a participant. The participant's records are removed by
// the ON DELETE CASCADE constraint on records.author_id.
func (r *participantRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Participant{}, id).Error
}

// CountByGroupID counts the live participants of a group
func (r *participantRepositoryImpl) CountByGroupID(ctx context.Context, groupID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Participant{}).
		Where("group_id = ?", groupID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
