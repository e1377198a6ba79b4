package domain

import "time"

// SortOrder is the sort direction for list queries
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// ParseSortOrder validates a raw order string into a SortOrder
func ParseSortOrder(raw string) (SortOrder, bool) {
	switch SortOrder(raw) {
	case SortOrderAsc, SortOrderDesc:
		return SortOrder(raw), true
	}
	return "", false
}

// GroupSortKey is the closed enumeration of group list sort keys
type GroupSortKey string

const (
	GroupSortCreatedAt        GroupSortKey = "createdAt"
	GroupSortLikeCount        GroupSortKey = "likeCount"
	GroupSortParticipantCount GroupSortKey = "participantCount"
)

// ParseGroupSortKey validates a raw orderBy string into a GroupSortKey
func ParseGroupSortKey(raw string) (GroupSortKey, bool) {
	switch GroupSortKey(raw) {
	case GroupSortCreatedAt, GroupSortLikeCount, GroupSortParticipantCount:
		return GroupSortKey(raw), true
	}
	return "", false
}

// RecordSortKey is the closed enumeration of record list sort keys
type RecordSortKey string

const (
	RecordSortCreatedAt RecordSortKey = "createdAt"
	RecordSortTime      RecordSortKey = "time"
)

// ParseRecordSortKey validates a raw orderBy string into a RecordSortKey
func ParseRecordSortKey(raw string) (RecordSortKey, bool) {
	switch RecordSortKey(raw) {
	case RecordSortCreatedAt, RecordSortTime:
		return RecordSortKey(raw), true
	}
	return "", false
}

// RankDuration selects the trailing window for group rankings
type RankDuration string

const (
	RankWeekly  RankDuration = "weekly"
	RankMonthly RankDuration = "monthly"
)

// ParseRankDuration validates a raw duration string into a RankDuration
func ParseRankDuration(raw string) (RankDuration, bool) {
	switch RankDuration(raw) {
	case RankWeekly, RankMonthly:
		return RankDuration(raw), true
	}
	return "", false
}

// Range returns the inclusive time window for the duration, ending at the
// end of the current day. weekly covers the last 7 days including today,
// monthly the last 30 days including today.
func (d RankDuration) Range(now time.Time) (time.Time, time.Time) {
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, int(999*time.Millisecond), now.Location())

	days := 6
	if d == RankMonthly {
		days = 29
	}
	startDay := end.AddDate(0, 0, -days)
	start := time.Date(startDay.Year(), startDay.Month(), startDay.Day(), 0, 0, 0, 0, now.Location())
	return start, end
}
