package domain

// Badge codes awarded to a group when activity thresholds are met
const (
	BadgeParticipant10 = "PARTICIPANT_10"
	BadgeRecord100     = "RECORD_100"
	BadgeLike100       = "LIKE_100"
)

// Badge thresholds
const (
	badgeParticipantThreshold = 10
	badgeRecordThreshold      = 100
	badgeLikeThreshold        = 100
)

// knownBadges lists every badge code in award order
var knownBadges = []string{BadgeParticipant10, BadgeRecord100, BadgeLike100}

// EvaluateBadges derives a group's badge set from live counts. The function
// is pure and idempotent: badges are recomputed from scratch on every call,
// so a badge is revoked as soon as its threshold is no longer met.
// Unknown codes already present on the group are preserved untouched.
func EvaluateBadges(participantCount, recordCount, likeCount int64, current []string) []string {
	earned := map[string]bool{
		BadgeParticipant10: participantCount >= badgeParticipantThreshold,
		BadgeRecord100:     recordCount >= badgeRecordThreshold,
		BadgeLike100:       likeCount >= badgeLikeThreshold,
	}

	result := make([]string, 0, len(current)+len(knownBadges))
	seen := make(map[string]bool, len(current))
	for _, code := range current {
		if seen[code] {
			continue
		}
		if has, known := earned[code]; known && !has {
			continue
		}
		result = append(result, code)
		seen[code] = true
	}
	for _, code := range knownBadges {
		if earned[code] && !seen[code] {
			result = append(result, code)
			seen[code] = true
		}
	}
	return result
}

// BadgeSetsEqual compares two badge sets by membership, not cardinality.
// Two different sets can have the same size, so the symmetric difference
// has to be empty before a persistence write is skipped.
func BadgeSetsEqual(a, b []string) bool {
	setA := make(map[string]bool, len(a))
	for _, code := range a {
		setA[code] = true
	}
	setB := make(map[string]bool, len(b))
	for _, code := range b {
		setB[code] = true
	}
	if len(setA) != len(setB) {
		return false
	}
	for code := range setA {
		if !setB[code] {
			return false
		}
	}
	return true
}
