package domain

// DailySummary holds the macro totals over a set of meal entries.
// It is derived on every read and never stored.
type DailySummary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}
