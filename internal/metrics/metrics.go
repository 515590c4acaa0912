// Package metrics holds the prometheus collectors of the API process.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Food search outcomes.
const (
	SearchOK          = "ok"
	SearchRateLimited = "rate_limited"
	SearchError       = "error"
	SearchSkipped     = "skipped"
)

var (
	foodSearches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "nutrition",
		Name:      "food_searches_total",
		Help:      "Food searches by outcome.",
	}, []string{"outcome"})
	mealsLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "nutrition",
		Name:      "meals_logged_total",
		Help:      "Meal log entries created.",
	})
	catalogLoads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "workout",
		Name:      "exercise_catalog_loads_total",
		Help:      "Exercise catalog loads by source (api, cache, fallback).",
	}, []string{"source"})
	workoutsLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "workout",
		Name:      "sessions_logged_total",
		Help:      "Workout sessions created.",
	})
)

func init() {
	prometheus.MustRegister(foodSearches, mealsLogged, catalogLoads, workoutsLogged)
}

func RecordFoodSearch(outcome string) {
	foodSearches.WithLabelValues(outcome).Inc()
}

func RecordMealLogged() {
	mealsLogged.Inc()
}

func RecordCatalogLoad(source string) {
	catalogLoads.WithLabelValues(source).Inc()
}

func RecordWorkoutLogged() {
	workoutsLogged.Inc()
}

// FoodSearches returns the counter of one outcome. Used by tests.
func FoodSearches(outcome string) prometheus.Counter {
	return foodSearches.WithLabelValues(outcome)
}

// CatalogLoads returns the counter of one source. Used by tests.
func CatalogLoads(source string) prometheus.Counter {
	return catalogLoads.WithLabelValues(source)
}
