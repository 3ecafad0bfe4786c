package entity

import "time"

// Medication records a medication intake. TakenAt may be in the past
// (users can log an earlier intake), so listings order by TakenAt when
// present and fall back to CreatedAt.
type Medication struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage"`
	Frequency string     `json:"frequency"`
	TakenAt   *time.Time `json:"taken_at"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
}
