package service

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/provider/exercisedb"
	"alcyxob/fittrack/internal/repository"
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var fixedNow = time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*domain.User
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	if _, ok := r.byEmail[user.Email]; ok {
		return primitive.NilObjectID, repository.ErrDuplicate
	}
	stored := *user
	stored.ID = primitive.NewObjectID()
	r.byEmail[user.Email] = &stored
	return stored.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeMealRepo struct {
	mu      sync.Mutex
	entries []domain.MealLogEntry
	err     error
}

func (r *fakeMealRepo) Create(_ context.Context, entry *domain.MealLogEntry) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	stored := *entry
	stored.ID = primitive.NewObjectID()
	r.entries = append(r.entries, stored)
	return stored.ID, nil
}

func (r *fakeMealRepo) ListByOwnerAndDate(_ context.Context, ownerID, date string) ([]domain.MealLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.MealLogEntry{}
	for _, e := range r.entries {
		if e.UserID == ownerID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeWorkoutRepo struct {
	mu       sync.Mutex
	sessions []domain.WorkoutSession
	err      error
}

func (r *fakeWorkoutRepo) Create(_ context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	stored := *session
	stored.ID = primitive.NewObjectID()
	r.sessions = append(r.sessions, stored)
	return stored.ID, nil
}

func (r *fakeWorkoutRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.WorkoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.WorkoutSession{}
	for _, s := range r.sessions {
		if s.UserID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeSearcher struct {
	hints   []domain.FoodHint
	err     error
	queries []string
}

func (f *fakeSearcher) Search(_ context.Context, query string) ([]domain.FoodHint, error) {
	f.queries = append(f.queries, query)
	return f.hints, f.err
}

type fakeCatalog struct {
	exercises []domain.Exercise
	source    exercisedb.Source
}

func (f *fakeCatalog) Exercises(context.Context) ([]domain.Exercise, exercisedb.Source) {
	return f.exercises, f.source
}

type fakeStorage struct {
	uploadKey   string
	contentType string
	downloadKey string
	err         error
}

func (f *fakeStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, contentType string, _ time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploadKey, f.contentType = objectKey, contentType
	return "https://bucket.example/put/" + objectKey, nil
}

func (f *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.downloadKey = objectKey
	return "https://bucket.example/get/" + objectKey, nil
}

var errBoom = errors.New("boom")

func ptr(v float64) *float64 { return &v }
