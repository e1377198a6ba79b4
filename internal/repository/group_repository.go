package repository

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"group-exercise-api/internal/domain"
)

// ListGroupsQuery holds the validated parameters for a group list query
type ListGroupsQuery struct {
	Page    int
	Limit   int
	OrderBy domain.GroupSortKey
	Order   domain.SortOrder
	Search  string
}

// GroupRepository defines the interface for group data access
type GroupRepository interface {
	CreateWithOwner(ctx context.Context, group *domain.Group, owner *domain.Participant) error
	FindByID(ctx context.Context, id uint) (*domain.Group, error)
	List(ctx context.Context, q ListGroupsQuery) ([]*domain.Group, int64, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	UpdateBadges(ctx context.Context, id uint, badges []string) error
	AddLike(ctx context.Context, id uint, delta int) (*domain.Group, error)
	Delete(ctx context.Context, id uint) error
	ListIDs(ctx context.Context) ([]uint, error)
}

// groupRepositoryImpl is the GORM implementation of GroupRepository
type groupRepositoryImpl struct {
	db *gorm.DB
}

// NewGroupRepository creates a new instance of GroupRepository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepositoryImpl{db: db}
}

// CreateWithOwner persists a group together with its owner participant in a
// single transaction. The owner row needs the group id to exist first, so
// the owner reference is a second write inside the same transaction; a
// failure at any step rolls the whole creation back.
func (r *groupRepositoryImpl) CreateWithOwner(ctx context.Context, group *domain.Group, owner *domain.Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}

		owner.GroupID = group.ID
		if err := tx.Create(owner).Error; err != nil {
			return err
		}

		if err := tx.Model(group).UpdateColumn("owner_id", owner.ID).Error; err != nil {
			return err
		}

		group.OwnerID = &owner.ID
		group.Participants = []domain.Participant{*owner}
		group.ResolveOwner()
		return nil
	})
}

// FindByID finds a group by id with its participants loaded and the owner
// back-reference resolved
func (r *groupRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Group, error) {
	var group domain.Group
	if err := r.db.WithContext(ctx).
		Preload("Participants").
		First(&group, id).Error; err != nil {
		return nil, err
	}
	group.ResolveOwner()
	return &group, nil
}

// List returns one page of groups plus the total count of groups matching
// the search filter. participantCount ordering is computed live from the
// participants table, never from a cached column.
func (r *groupRepositoryImpl) List(ctx context.Context, q ListGroupsQuery) ([]*domain.Group, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.Group{})
	if q.Search != "" {
		base = base.Where("LOWER(name) LIKE LOWER(?)", "%"+q.Search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Session(&gorm.Session{}).
		Preload("Participants").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit)

	dir := "DESC"
	if q.Order == domain.SortOrderAsc {
		dir = "ASC"
	}
	switch q.OrderBy {
	case domain.GroupSortLikeCount:
		query = query.Order("like_count " + dir)
	case domain.GroupSortParticipantCount:
		query = query.Order(fmt.Sprintf("(SELECT COUNT(*) FROM participants WHERE participants.group_id = groups.id) %s", dir))
	default:
		query = query.Order("created_at " + dir)
	}

	var groups []*domain.Group
	if err := query.Find(&groups).Error; err != nil {
		return nil, 0, err
	}
	for _, g := range groups {
		g.ResolveOwner()
	}
	return groups, total, nil
}

// UpdateFields applies a partial update to a group
func (r *groupRepositoryImpl) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&domain.Group{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// UpdateBadges replaces a group's badge set
func (r *groupRepositoryImpl) UpdateBadges(ctx context.Context, id uint, badges []string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Group{}).
		Where("id = ?", id).
		UpdateColumn("badges", datatypes.NewJSONSlice(badges)).Error
}

// AddLike atomically adds delta to a group's like counter, clamped at zero.
// The arithmetic runs in a single UPDATE at the store so concurrent likes
// never lose updates. Returns gorm.ErrRecordNotFound when the group is absent.
func (r *groupRepositoryImpl) AddLike(ctx context.Context, id uint, delta int) (*domain.Group, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Group{}).
		Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("CASE WHEN like_count + ? < 0 THEN 0 ELSE like_count + ? END", delta, delta))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var group domain.Group
	if err := r.db.WithContext(ctx).
		Select("id", "like_count", "badges").
		First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// Delete removes a group. Participants and records are removed by the
// ON DELETE CASCADE constraints at the store.
func (r *groupRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Group{}, id).Error
}

// ListIDs returns the ids of all groups, used by the badge reconciliation job
func (r *groupRepositoryImpl) ListIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&domain.Group{}).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
