package mongo

import (
	"context"
	"testing"
	"time"

	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMealLogRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewMongoMealLogRepository(mt.DB)

		calories := 95.0
		entry := &domain.MealLogEntry{
			UserID:   "owner-1",
			Date:     "2026-10-16",
			MealType: domain.MealSnack,
			FoodName: "Apple",
			Calories: &calories,
			Quantity: 1,
		}
		id, err := repo.Create(context.Background(), entry)
		require.NoError(mt, err)
		assert.False(mt, id.IsZero())
		assert.Equal(mt, id, entry.ID)
	})

	mt.Run("create rejects unknown meal type", func(mt *mtest.T) {
		repo := NewMongoMealLogRepository(mt.DB)
		_, err := repo.Create(context.Background(), &domain.MealLogEntry{UserID: "o", Date: "2026-10-16", MealType: "Brunch"})
		assert.Error(mt, err)
	})

	mt.Run("list by owner and date", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mealLogCollectionName
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
				bson.D{
					{Key: "_id", Value: primitive.NewObjectID()},
					{Key: "userId", Value: "owner-1"},
					{Key: "date", Value: "2026-10-16"},
					{Key: "mealType", Value: "Lunch"},
					{Key: "foodName", Value: "Rice"},
					{Key: "calories", Value: 200.0},
					{Key: "carbs", Value: 44.5},
					{Key: "quantity", Value: 1.0},
				},
				bson.D{
					{Key: "_id", Value: primitive.NewObjectID()},
					{Key: "userId", Value: "owner-1"},
					{Key: "date", Value: "2026-10-16"},
					{Key: "mealType", Value: "Dinner"},
					{Key: "foodName", Value: "Tofu"},
					{Key: "protein", Value: 12.0},
				},
			),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)
		repo := NewMongoMealLogRepository(mt.DB)

		entries, err := repo.ListByOwnerAndDate(context.Background(), "owner-1", "2026-10-16")
		require.NoError(mt, err)
		require.Len(mt, entries, 2)
		assert.Equal(mt, domain.MealLunch, entries[0].MealType)
		require.NotNil(mt, entries[0].Calories)
		assert.Equal(mt, 200.0, *entries[0].Calories)
		assert.Nil(mt, entries[0].Protein)
		assert.Nil(mt, entries[1].Calories)
		assert.Equal(mt, 12.0, *entries[1].Protein)
	})

	mt.Run("list empty", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + mealLogCollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		repo := NewMongoMealLogRepository(mt.DB)

		entries, err := repo.ListByOwnerAndDate(context.Background(), "owner-1", "2026-10-16")
		require.NoError(mt, err)
		assert.NotNil(mt, entries)
		assert.Empty(mt, entries)
	})
}

func TestWorkoutRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create requires sets", func(mt *mtest.T) {
		repo := NewMongoWorkoutRepository(mt.DB)
		_, err := repo.Create(context.Background(), &domain.WorkoutSession{UserID: "o", ExerciseName: "Squat"})
		assert.Error(mt, err)
	})

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewMongoWorkoutRepository(mt.DB)

		id, err := repo.Create(context.Background(), &domain.WorkoutSession{
			UserID:       "owner-1",
			Date:         "2026-10-16",
			Timestamp:    time.Now().UTC(),
			ExerciseName: "Squat",
			ExerciseID:   "2",
			Sets:         []domain.Set{{Reps: "5", Weight: "100"}},
		})
		require.NoError(mt, err)
		assert.False(mt, id.IsZero())
	})

	mt.Run("list by owner", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + workoutCollectionName
		ts := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{
					{Key: "_id", Value: primitive.NewObjectID()},
					{Key: "userId", Value: "owner-1"},
					{Key: "date", Value: "2026-10-16"},
					{Key: "timestamp", Value: ts},
					{Key: "exerciseName", Value: "Deadlift"},
					{Key: "exerciseId", Value: "3"},
					{Key: "sets", Value: bson.A{
						bson.D{{Key: "reps", Value: "5"}, {Key: "weight", Value: "140"}},
					}},
				},
			),
		)
		repo := NewMongoWorkoutRepository(mt.DB)

		sessions, err := repo.ListByOwner(context.Background(), "owner-1")
		require.NoError(mt, err)
		require.Len(mt, sessions, 1)
		assert.Equal(mt, "Deadlift", sessions[0].ExerciseName)
		assert.Equal(mt, ts, sessions[0].Timestamp.UTC())
		assert.Equal(mt, []domain.Set{{Reps: "5", Weight: "140"}}, sessions[0].Sets)
	})
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		repo := NewMongoUserRepository(mt.DB)

		_, err := repo.Create(context.Background(), &domain.User{Email: "a@b.c", PasswordHash: "hash"})
		assert.ErrorIs(mt, err, repository.ErrDuplicate)
	})

	mt.Run("get by email not found", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + userCollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		repo := NewMongoUserRepository(mt.DB)

		_, err := repo.GetByEmail(context.Background(), "missing@example.com")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("get by email lowercases", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + userCollectionName
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Sam"},
			{Key: "email", Value: "sam@example.com"},
			{Key: "passwordHash", Value: "hash"},
		}))
		repo := NewMongoUserRepository(mt.DB)

		user, err := repo.GetByEmail(context.Background(), " Sam@Example.com ")
		require.NoError(mt, err)
		assert.Equal(mt, id, user.ID)
		assert.Equal(mt, id.Hex(), user.OwnerID())
	})
}
