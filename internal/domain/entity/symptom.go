package entity

import "time"

// Symptom is a single diary entry describing how the user felt.
// Intensity is a 1-10 severity rating; nil means the row predates the
// rating column and is skipped by the intensity histogram.
type Symptom struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Intensity   *int      `json:"intensity"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}
