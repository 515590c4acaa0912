package domain

// Nutrients carries the macro values of one serving as reported by the
// nutrition search API. Missing keys stay nil.
type Nutrients struct {
	Calories *float64 `json:"ENERC_KCAL,omitempty"`
	Protein  *float64 `json:"PROCNT,omitempty"`
	Fat      *float64 `json:"FAT,omitempty"`
	Carbs    *float64 `json:"CHOCDF,omitempty"`
}

// FoodHint is one search result of the nutrition API.
type FoodHint struct {
	FoodID    string    `json:"foodId"`
	Label     string    `json:"label"`
	Image     string    `json:"image,omitempty"`
	Nutrients Nutrients `json:"nutrients"`
}
