package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealType is the meal category an entry is logged under.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// MealTypes lists the categories in display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// Valid reports whether m is one of the known categories.
func (m MealType) Valid() bool {
	for _, t := range MealTypes {
		if m == t {
			return true
		}
	}
	return false
}

// DateLayout is the calendar date format used for the "date" field of log entries.
const DateLayout = "2006-01-02"

// MealLogEntry is a single food logged by a user for one meal of one day.
// Nutrient fields are pointers: the nutrition API omits keys it has no value for.
type MealLogEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Date      string             `bson:"date" json:"date"` // YYYY-MM-DD
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	MealType  MealType           `bson:"mealType" json:"mealType"`
	FoodName  string             `bson:"foodName" json:"foodName"`
	Calories  *float64           `bson:"calories,omitempty" json:"calories,omitempty"`
	Protein   *float64           `bson:"protein,omitempty" json:"protein,omitempty"`
	Fat       *float64           `bson:"fat,omitempty" json:"fat,omitempty"`
	Carbs     *float64           `bson:"carbs,omitempty" json:"carbs,omitempty"`
	Quantity  float64            `bson:"quantity" json:"quantity"`
	SourceID  string             `bson:"sourceId,omitempty" json:"sourceId,omitempty"`
	Image     *string            `bson:"image" json:"image"`
}
