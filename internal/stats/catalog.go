package stats

import (
	"slices"
	"strings"

	"alcyxob/fittrack/internal/domain"
)

// MuscleGroups returns the distinct muscle names of the catalog, sorted.
func MuscleGroups(exercises []domain.Exercise) []string {
	seen := make(map[string]struct{}, len(exercises))
	groups := make([]string, 0)
	for _, ex := range exercises {
		if _, ok := seen[ex.Muscle]; ok {
			continue
		}
		seen[ex.Muscle] = struct{}{}
		groups = append(groups, ex.Muscle)
	}
	slices.Sort(groups)
	return groups
}

// FilterByMuscle keeps the exercises of one muscle group, ignoring case.
func FilterByMuscle(exercises []domain.Exercise, muscle string) []domain.Exercise {
	out := make([]domain.Exercise, 0)
	for _, ex := range exercises {
		if strings.EqualFold(ex.Muscle, muscle) {
			out = append(out, ex)
		}
	}
	return out
}
