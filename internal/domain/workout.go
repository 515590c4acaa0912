package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Set is one set of a lift. Reps and weight are kept as entered.
type Set struct {
	Reps   string `bson:"reps" json:"reps"`
	Weight string `bson:"weight" json:"weight"`
}

// UnmarshalJSON accepts reps and weight either as strings or as JSON numbers.
// Numbers are kept in their literal form, so 22.5 is stored as "22.5".
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw struct {
		Reps   json.RawMessage `json:"reps"`
		Weight json.RawMessage `json:"weight"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	reps, err := enteredText(raw.Reps)
	if err != nil {
		return fmt.Errorf("reps: %w", err)
	}
	weight, err := enteredText(raw.Weight)
	if err != nil {
		return fmt.Errorf("weight: %w", err)
	}
	s.Reps, s.Weight = reps, weight
	return nil
}

func enteredText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var text string
		err := json.Unmarshal(raw, &text)
		return text, err
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("must be a string or a number, got %s", raw)
	}
	return n.String(), nil
}

// WorkoutSession is a logged exercise with its sets.
type WorkoutSession struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"userId" json:"userId"`
	Date         string             `bson:"date" json:"date"` // YYYY-MM-DD
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
	ExerciseName string             `bson:"exerciseName" json:"exerciseName"`
	ExerciseID   string             `bson:"exerciseId" json:"exerciseId"`
	Sets         []Set              `bson:"sets" json:"sets"`
}
