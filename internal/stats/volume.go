package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"alcyxob/fittrack/internal/domain"
)

// InvalidSetError reports a set field that is not a usable number: text
// that does not parse, NaN or Inf, a negative weight, or reps below one.
type InvalidSetError struct {
	Index int    `json:"index"` // position of the set in the session
	Field string `json:"field"` // "reps" or "weight"
	Value string `json:"value"`
}

func (e *InvalidSetError) Error() string {
	return fmt.Sprintf("set %d: invalid %s %q", e.Index, e.Field, e.Value)
}

// ParseSet converts the entered text of one set into numbers.
func ParseSet(index int, s domain.Set) (reps, weight float64, err error) {
	reps, ok := parseField(s.Reps)
	if !ok || reps <= 0 {
		return 0, 0, &InvalidSetError{Index: index, Field: "reps", Value: s.Reps}
	}
	weight, ok = parseField(s.Weight)
	if !ok || weight < 0 {
		return 0, 0, &InvalidSetError{Index: index, Field: "weight", Value: s.Weight}
	}
	return reps, weight, nil
}

// parseField accepts finite decimal numbers only.
func parseField(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ComputeVolume returns the sum of reps x weight over sets.
// The first set that fails to parse aborts the sum with an *InvalidSetError.
func ComputeVolume(sets []domain.Set) (float64, error) {
	var total float64
	for i, s := range sets {
		reps, weight, err := ParseSet(i, s)
		if err != nil {
			return 0, err
		}
		total += reps * weight
	}
	return total, nil
}

// ValidSets drops sets whose reps or weight is blank. The input is not modified.
func ValidSets(sets []domain.Set) []domain.Set {
	valid := make([]domain.Set, 0, len(sets))
	for _, s := range sets {
		if strings.TrimSpace(s.Reps) == "" || strings.TrimSpace(s.Weight) == "" {
			continue
		}
		valid = append(valid, s)
	}
	return valid
}
