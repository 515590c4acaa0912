package repository

import (
	"alcyxob/fittrack/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// MealLogRepository stores meal entries. Entries are never updated or deleted.
type MealLogRepository interface {
	Create(ctx context.Context, entry *domain.MealLogEntry) (primitive.ObjectID, error)
	ListByOwnerAndDate(ctx context.Context, ownerID, date string) ([]domain.MealLogEntry, error)
}

// WorkoutRepository stores workout sessions. Sessions are never updated or deleted.
type WorkoutRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.WorkoutSession, error)
}
