package service

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/metrics"
	"alcyxob/fittrack/internal/provider/edamam"
	"alcyxob/fittrack/internal/repository"
	"alcyxob/fittrack/internal/stats"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

// FoodSearcher is the nutrition search API. *edamam.Client implements it.
type FoodSearcher interface {
	Search(ctx context.Context, query string) ([]domain.FoodHint, error)
}

// AddMealInput describes a food picked from the search results.
type AddMealInput struct {
	MealType domain.MealType
	Food     domain.FoodHint
	Quantity float64 // servings, defaults to 1
	Date     string  // YYYY-MM-DD, defaults to today (UTC)
}

// DailyDashboard is everything the dashboard shows for one day.
type DailyDashboard struct {
	Date       string                                  `json:"date"`
	Entries    []domain.MealLogEntry                   `json:"entries"`
	Totals     domain.DailySummary                     `json:"totals"`
	ByMealType map[domain.MealType]domain.DailySummary `json:"byMealType"`
}

type NutritionService interface {
	SearchFood(ctx context.Context, query string) ([]domain.FoodHint, error)
	AddMeal(ctx context.Context, ownerID string, in AddMealInput) (*domain.MealLogEntry, error)
	DailyLog(ctx context.Context, ownerID, date string) ([]domain.MealLogEntry, error)
	Dashboard(ctx context.Context, ownerID, date string) (*DailyDashboard, error)
}

type nutritionService struct {
	mealRepo       repository.MealLogRepository
	searcher       FoodSearcher
	minQueryLength int
	now            func() time.Time
}

// NewNutritionService creates the meal logging service. Queries shorter than
// minQueryLength runes never reach the searcher.
func NewNutritionService(mealRepo repository.MealLogRepository, searcher FoodSearcher, minQueryLength int) NutritionService {
	if minQueryLength <= 0 {
		minQueryLength = 3
	}
	return &nutritionService{
		mealRepo:       mealRepo,
		searcher:       searcher,
		minQueryLength: minQueryLength,
		now:            time.Now,
	}
}

// SearchFood queries the nutrition API. Short queries and rate-limited
// requests yield an empty list, not an error.
func (s *nutritionService) SearchFood(ctx context.Context, query string) ([]domain.FoodHint, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < s.minQueryLength {
		metrics.RecordFoodSearch(metrics.SearchSkipped)
		return []domain.FoodHint{}, nil
	}

	hints, err := s.searcher.Search(ctx, query)
	if err != nil {
		if errors.Is(err, edamam.ErrRateLimited) {
			log.Warnf("rate limit exceeded searching food %q", query)
			metrics.RecordFoodSearch(metrics.SearchRateLimited)
			return []domain.FoodHint{}, nil
		}
		log.Errorf("error fetching food data for %q: %s", query, err)
		metrics.RecordFoodSearch(metrics.SearchError)
		return nil, fmt.Errorf("search food: %w", err)
	}

	metrics.RecordFoodSearch(metrics.SearchOK)
	if hints == nil {
		hints = []domain.FoodHint{}
	}
	return hints, nil
}

// AddMeal stores a food under a meal category for the owner.
func (s *nutritionService) AddMeal(ctx context.Context, ownerID string, in AddMealInput) (*domain.MealLogEntry, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	if !in.MealType.Valid() {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrValidationFailed, in.MealType)
	}
	if strings.TrimSpace(in.Food.Label) == "" {
		return nil, fmt.Errorf("%w: food label is required", ErrValidationFailed)
	}
	date, err := s.resolveDate(in.Date)
	if err != nil {
		return nil, err
	}
	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	entry := &domain.MealLogEntry{
		UserID:    ownerID,
		Date:      date,
		Timestamp: s.now().UTC(),
		MealType:  in.MealType,
		FoodName:  in.Food.Label,
		Calories:  scale(in.Food.Nutrients.Calories, quantity),
		Protein:   scale(in.Food.Nutrients.Protein, quantity),
		Fat:       scale(in.Food.Nutrients.Fat, quantity),
		Carbs:     scale(in.Food.Nutrients.Carbs, quantity),
		Quantity:  quantity,
		SourceID:  in.Food.FoodID,
	}
	if in.Food.Image != "" {
		image := in.Food.Image
		entry.Image = &image
	}

	id, err := s.mealRepo.Create(ctx, entry)
	if err != nil {
		log.Errorf("error adding meal for %s: %s", ownerID, err)
		return nil, fmt.Errorf("add meal: %w", err)
	}
	entry.ID = id
	metrics.RecordMealLogged()
	return entry, nil
}

// DailyLog returns the owner's entries for date (today when empty).
func (s *nutritionService) DailyLog(ctx context.Context, ownerID, date string) ([]domain.MealLogEntry, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	entries, err := s.mealRepo.ListByOwnerAndDate(ctx, ownerID, date)
	if err != nil {
		log.Errorf("error fetching logs for %s on %s: %s", ownerID, date, err)
		return nil, fmt.Errorf("daily log: %w", err)
	}
	return entries, nil
}

// Dashboard fetches the day's entries and derives the totals from them.
func (s *nutritionService) Dashboard(ctx context.Context, ownerID, date string) (*DailyDashboard, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	entries, err := s.DailyLog(ctx, ownerID, date)
	if err != nil {
		return nil, err
	}
	return &DailyDashboard{
		Date:       date,
		Entries:    entries,
		Totals:     stats.ComputeDailyTotals(entries),
		ByMealType: stats.TotalsByMealType(entries),
	}, nil
}

func (s *nutritionService) resolveDate(date string) (string, error) {
	return resolveDate(date, s.now)
}

// resolveDate defaults an empty date to today (UTC) and checks the format otherwise.
func resolveDate(date string, now func() time.Time) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return now().UTC().Format(domain.DateLayout), nil
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrValidationFailed, date)
	}
	return date, nil
}

func scale(v *float64, quantity float64) *float64 {
	if v == nil {
		return nil
	}
	scaled := *v * quantity
	return &scaled
}
