package service

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/metrics"
	"alcyxob/fittrack/internal/provider/exercisedb"
	"alcyxob/fittrack/internal/repository"
	"alcyxob/fittrack/internal/stats"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrNoValidSets = errors.New("workout needs at least one set with reps and weight")

// ExerciseCatalog is the exercise catalog API. *exercisedb.Client implements it.
type ExerciseCatalog interface {
	Exercises(ctx context.Context) ([]domain.Exercise, exercisedb.Source)
}

// Catalog is a list of exercises and where it came from.
type Catalog struct {
	Exercises []domain.Exercise `json:"exercises"`
	Source    exercisedb.Source `json:"source"`
}

// LogWorkoutInput is a session as entered by the user.
type LogWorkoutInput struct {
	ExerciseID   string
	ExerciseName string
	Sets         []domain.Set
	Date         string // YYYY-MM-DD, defaults to today (UTC)
}

// SessionSummary is a logged session with its derived volume. Volume is
// nil when a set could not be parsed; InvalidSet then says which one.
type SessionSummary struct {
	domain.WorkoutSession
	Volume     *float64               `json:"volume"`
	InvalidSet *stats.InvalidSetError `json:"invalidSet,omitempty"`
}

type WorkoutService interface {
	Catalog(ctx context.Context, muscle string) *Catalog
	MuscleGroups(ctx context.Context) []string
	LogWorkout(ctx context.Context, ownerID string, in LogWorkoutInput) (*domain.WorkoutSession, error)
	History(ctx context.Context, ownerID string) ([]SessionSummary, error)
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
	catalog     ExerciseCatalog
	now         func() time.Time
}

func NewWorkoutService(workoutRepo repository.WorkoutRepository, catalog ExerciseCatalog) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		catalog:     catalog,
		now:         time.Now,
	}
}

// Catalog returns the exercise catalog, filtered to one muscle group when
// muscle is set. It cannot fail: an unreachable API yields the built-in catalog.
func (s *workoutService) Catalog(ctx context.Context, muscle string) *Catalog {
	exercises, source := s.catalog.Exercises(ctx)
	metrics.RecordCatalogLoad(string(source))
	if muscle = strings.TrimSpace(muscle); muscle != "" {
		exercises = stats.FilterByMuscle(exercises, muscle)
	}
	return &Catalog{Exercises: exercises, Source: source}
}

// MuscleGroups returns the sorted distinct muscle groups of the catalog.
func (s *workoutService) MuscleGroups(ctx context.Context) []string {
	return stats.MuscleGroups(s.Catalog(ctx, "").Exercises)
}

// LogWorkout stores a session after dropping sets with a blank field.
func (s *workoutService) LogWorkout(ctx context.Context, ownerID string, in LogWorkoutInput) (*domain.WorkoutSession, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(in.ExerciseName) == "" {
		return nil, fmt.Errorf("%w: exercise name is required", ErrValidationFailed)
	}
	sets := stats.ValidSets(in.Sets)
	if len(sets) == 0 {
		return nil, ErrNoValidSets
	}
	date, err := resolveDate(in.Date, s.now)
	if err != nil {
		return nil, err
	}

	session := &domain.WorkoutSession{
		UserID:       ownerID,
		Date:         date,
		Timestamp:    s.now().UTC(),
		ExerciseName: in.ExerciseName,
		ExerciseID:   in.ExerciseID,
		Sets:         sets,
	}
	id, err := s.workoutRepo.Create(ctx, session)
	if err != nil {
		log.Errorf("error saving workout for %s: %s", ownerID, err)
		return nil, fmt.Errorf("log workout: %w", err)
	}
	session.ID = id
	metrics.RecordWorkoutLogged()
	return session, nil
}

// History returns the owner's sessions newest first, each with its volume.
func (s *workoutService) History(ctx context.Context, ownerID string) ([]SessionSummary, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	sessions, err := s.workoutRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Errorf("error fetching workout history for %s: %s", ownerID, err)
		return nil, fmt.Errorf("workout history: %w", err)
	}

	ordered := stats.SortByRecency(sessions)
	summaries := make([]SessionSummary, 0, len(ordered))
	for _, session := range ordered {
		summary := SessionSummary{WorkoutSession: session}
		volume, err := stats.ComputeVolume(session.Sets)
		var setErr *stats.InvalidSetError
		switch {
		case errors.As(err, &setErr):
			log.Warnf("workout %s has an unparseable set: %s", session.ID.Hex(), setErr)
			summary.InvalidSet = setErr
		case err != nil:
			return nil, err
		default:
			summary.Volume = &volume
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
