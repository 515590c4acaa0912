package exercisedb

import "alcyxob/fittrack/internal/domain"

var fallbackCatalog = []domain.Exercise{
	{ID: "1", Name: "Bench Press", Muscle: "Chest"},
	{ID: "2", Name: "Squat", Muscle: "Legs"},
	{ID: "3", Name: "Deadlift", Muscle: "Back"},
	{ID: "4", Name: "Pull Up", Muscle: "Back"},
	{ID: "5", Name: "Dumbbell Curl", Muscle: "Biceps"},
	{ID: "6", Name: "Tricep Dip", Muscle: "Triceps"},
	{ID: "7", Name: "Lunges", Muscle: "Legs"},
	{ID: "8", Name: "Shoulder Press", Muscle: "Shoulders"},
}

// FallbackCatalog returns a copy of the built-in catalog served whenever
// the remote catalog cannot be used.
func FallbackCatalog() []domain.Exercise {
	out := make([]domain.Exercise, len(fallbackCatalog))
	copy(out, fallbackCatalog)
	return out
}
