package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"group-exercise-api/internal/domain"
)

// ListRecordsQuery holds the validated parameters for a record list query
type ListRecordsQuery struct {
	GroupID uint
	Page    int
	Limit   int
	OrderBy domain.RecordSortKey
	Order   domain.SortOrder
	Search  string
}

// RankRow is one participant's aggregated standing within a ranking window
type RankRow struct {
	ParticipantID uint   `json:"participantId"`
	Nickname      string `json:"nickname"`
	RecordCount   int64  `json:"recordCount"`
	TotalTime     int64  `json:"totalTime"`
}

// RecordRepository defines the interface for record data access
type RecordRepository interface {
	Create(ctx context.Context, record *domain.Record) error
	FindByID(ctx context.Context, id uint) (*domain.Record, error)
	ListByGroup(ctx context.Context, q ListRecordsQuery) ([]*domain.Record, int64, error)
	CountByGroupID(ctx context.Context, groupID uint) (int64, error)
	Rank(ctx context.Context, groupID uint, start, end time.Time) ([]RankRow, error)
}

// recordRepositoryImpl is the GORM implementation of RecordRepository
type recordRepositoryImpl struct {
	db *gorm.DB
}

// NewRecordRepository creates a new instance of RecordRepository
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepositoryImpl{db: db}
}

// Create creates a new record
func (r *recordRepositoryImpl) Create(ctx context.Context, record *domain.Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByID finds a record by id with its author loaded
func (r *recordRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Record, error) {
	var record domain.Record
	if err := r.db.WithContext(ctx).
		Preload("Author").
		First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByGroup returns one page of a group's records plus the total count
// matching the author nickname filter
func (r *recordRepositoryImpl) ListByGroup(ctx context.Context, q ListRecordsQuery) ([]*domain.Record, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&domain.Record{}).
		Where("records.group_id = ?", q.GroupID)
	if q.Search != "" {
		base = base.
			Joins("JOIN participants ON participants.id = records.author_id").
			Where("LOWER(participants.nickname) LIKE LOWER(?)", "%"+q.Search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Session(&gorm.Session{}).
		Preload("Author").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit)

	dir := "DESC"
	if q.Order == domain.SortOrderAsc {
		dir = "ASC"
	}
	if q.OrderBy == domain.RecordSortTime {
		query = query.Order("records.time " + dir)
	} else {
		query = query.Order("records.created_at " + dir)
	}

	var records []*domain.Record
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// CountByGroupID counts the records logged in a group
func (r *recordRepositoryImpl) CountByGroupID(ctx context.Context, groupID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Record{}).
		Where("group_id = ?", groupID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Rank aggregates record count and total exercise time per participant for
// records created inside the window, most active first
func (r *recordRepositoryImpl) Rank(ctx context.Context, groupID uint, start, end time.Time) ([]RankRow, error) {
	var rows []RankRow
	if err := r.db.WithContext(ctx).
		Table("records").
		Select("participants.id AS participant_id, participants.nickname AS nickname, COUNT(records.id) AS record_count, COALESCE(SUM(records.time), 0) AS total_time").
		Joins("JOIN participants ON participants.id = records.author_id").
		Where("records.group_id = ? AND records.created_at BETWEEN ? AND ?", groupID, start, end).
		Group("participants.id, participants.nickname").
		Order("record_count DESC, total_time DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
