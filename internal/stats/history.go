package stats

import (
	"cmp"
	"slices"

	"alcyxob/fittrack/internal/domain"
)

// SortByRecency returns a copy of sessions ordered newest first by
// timestamp seconds. Sessions without a timestamp count as 0 and end up
// last. Ties keep their input order.
func SortByRecency(sessions []domain.WorkoutSession) []domain.WorkoutSession {
	sorted := slices.Clone(sessions)
	slices.SortStableFunc(sorted, func(a, b domain.WorkoutSession) int {
		return cmp.Compare(timestampSeconds(b), timestampSeconds(a))
	})
	return sorted
}

func timestampSeconds(s domain.WorkoutSession) int64 {
	if s.Timestamp.IsZero() {
		return 0
	}
	return s.Timestamp.Unix()
}
