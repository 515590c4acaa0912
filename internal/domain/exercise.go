// internal/domain/exercise.go
package domain

// Exercise is a normalized catalog record. The catalog itself lives in a
// third-party API; nothing here is persisted.
type Exercise struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Muscle string  `json:"muscle"`           // e.g., "Chest", "Legs", "Back"
	Image  *string `json:"image,omitempty"`  // Optional image or gif URL
	Target string  `json:"target,omitempty"` // Target muscle, when the API provides one
}
