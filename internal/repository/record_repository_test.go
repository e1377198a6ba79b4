package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"group-exercise-api/internal/domain"
)

func seedRecord(t *testing.T, repo RecordRepository, groupID, authorID uint, seconds int) *domain.Record {
	t.Helper()
	record := &domain.Record{
		GroupID:      groupID,
		AuthorID:     authorID,
		ExerciseType: domain.ExerciseRun,
		Time:         seconds,
		Distance:     5,
	}
	require.NoError(t, repo.Create(context.Background(), record))
	return record
}

func TestRecordListByGroup(t *testing.T) {
	db := setupTestDB(t)
	groupRepo := NewGroupRepository(db)
	participantRepo := NewParticipantRepository(db)
	recordRepo := NewRecordRepository(db)
	ctx := context.Background()

	group := createGroupWithOwner(t, groupRepo, "러닝", "runner")
	other := &domain.Participant{GroupID: group.ID, Nickname: "walker", Password: "pw"}
	require.NoError(t, participantRepo.Create(ctx, other))

	seedRecord(t, recordRepo, group.ID, *group.OwnerID, 600)
	seedRecord(t, recordRepo, group.ID, *group.OwnerID, 1800)
	seedRecord(t, recordRepo, group.ID, other.ID, 1200)

	t.Run("전체 조회", func(t *testing.T) {
		records, total, err := recordRepo.ListByGroup(ctx, ListRecordsQuery{
			GroupID: group.ID, Page: 1, Limit: 10,
			OrderBy: domain.RecordSortCreatedAt, Order: domain.SortOrderDesc,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, records, 3)
		require.NotNil(t, records[0].Author)
	})

	t.Run("운동 시간 정렬", func(t *testing.T) {
		records, _, err := recordRepo.ListByGroup(ctx, ListRecordsQuery{
			GroupID: group.ID, Page: 1, Limit: 10,
			OrderBy: domain.RecordSortTime, Order: domain.SortOrderDesc,
		})
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, 1800, records[0].Time)
		assert.Equal(t, 600, records[2].Time)
	})

	t.Run("작성자 닉네임 검색", func(t *testing.T) {
		records, total, err := recordRepo.ListByGroup(ctx, ListRecordsQuery{
			GroupID: group.ID, Page: 1, Limit: 10,
			OrderBy: domain.RecordSortCreatedAt, Order: domain.SortOrderDesc,
			Search:  "WALK",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, records, 1)
		assert.Equal(t, other.ID, records[0].AuthorID)
	})

	t.Run("다른 그룹 기록은 제외", func(t *testing.T) {
		otherGroup := createGroupWithOwner(t, groupRepo, "수영", "swimmer")
		seedRecord(t, recordRepo, otherGroup.ID, *otherGroup.OwnerID, 900)

		_, total, err := recordRepo.ListByGroup(ctx, ListRecordsQuery{
			GroupID: group.ID, Page: 1, Limit: 10,
			OrderBy: domain.RecordSortCreatedAt, Order: domain.SortOrderDesc,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})
}

func TestRecordFindByID(t *testing.T) {
	db := setupTestDB(t)
	groupRepo := NewGroupRepository(db)
	recordRepo := NewRecordRepository(db)
	ctx := context.Background()

	group := createGroupWithOwner(t, groupRepo, "러닝", "runner")
	created := seedRecord(t, recordRepo, group.ID, *group.OwnerID, 600)

	loaded, err := recordRepo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	require.NotNil(t, loaded.Author)
	assert.Equal(t, "runner", loaded.Author.Nickname)
}

func TestRecordCountByGroupID(t *testing.T) {
	db := setupTestDB(t)
	groupRepo := NewGroupRepository(db)
	recordRepo := NewRecordRepository(db)
	ctx := context.Background()

	group := createGroupWithOwner(t, groupRepo, "러닝", "runner")
	for i := 0; i < 4; i++ {
		seedRecord(t, recordRepo, group.ID, *group.OwnerID, 600)
	}

	count, err := recordRepo.CountByGroupID(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestRank(t *testing.T) {
	db := setupTestDB(t)
	groupRepo := NewGroupRepository(db)
	participantRepo := NewParticipantRepository(db)
	recordRepo := NewRecordRepository(db)
	ctx := context.Background()

	group := createGroupWithOwner(t, groupRepo, "러닝", "runner")
	second := &domain.Participant{GroupID: group.ID, Nickname: "walker", Password: "pw"}
	require.NoError(t, participantRepo.Create(ctx, second))

	// runner: 기록 1개 / walker: 기록 2개
	seedRecord(t, recordRepo, group.ID, *group.OwnerID, 3600)
	seedRecord(t, recordRepo, group.ID, second.ID, 600)
	seedRecord(t, recordRepo, group.ID, second.ID, 900)

	now := time.Now()
	start, end := domain.RankWeekly.Range(now)

	rows, err := recordRepo.Rank(ctx, group.ID, start, end)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// 기록 수 우선, 동률이면 총 시간으로 정렬
	assert.Equal(t, "walker", rows[0].Nickname)
	assert.Equal(t, int64(2), rows[0].RecordCount)
	assert.Equal(t, int64(1500), rows[0].TotalTime)
	assert.Equal(t, "runner", rows[1].Nickname)
	assert.Equal(t, int64(1), rows[1].RecordCount)
}

func TestRank_ExcludesRecordsOutsideWindow(t *testing.T) {
	db := setupTestDB(t)
	groupRepo := NewGroupRepository(db)
	recordRepo := NewRecordRepository(db)
	ctx := context.Background()

	group := createGroupWithOwner(t, groupRepo, "러닝", "runner")

	old := seedRecord(t, recordRepo, group.ID, *group.OwnerID, 600)
	// 기록을 윈도우 밖(10일 전)으로 이동
	require.NoError(t, db.Model(old).UpdateColumn("created_at", time.Now().AddDate(0, 0, -10)).Error)
	seedRecord(t, recordRepo, group.ID, *group.OwnerID, 900)

	start, end := domain.RankWeekly.Range(time.Now())
	rows, err := recordRepo.Rank(ctx, group.ID, start, end)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].RecordCount)
	assert.Equal(t, int64(900), rows[0].TotalTime)
}
