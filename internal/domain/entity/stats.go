package entity

import "time"

// IntensityCount is a raw per-intensity row count as read from storage.
type IntensityCount struct {
	Intensity int
	Count     int
}

// IntensityBucket is one histogram entry of the stats overview.
type IntensityBucket struct {
	Intensity  int     `json:"intensity"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// RecentSymptom is the trimmed symptom projection shown in the overview.
type RecentSymptom struct {
	Description string    `json:"description"`
	Intensity   *int      `json:"intensity"`
	CreatedAt   time.Time `json:"created_at"`
}

// StatsOverview aggregates a single user's diary.
type StatsOverview struct {
	Counts struct {
		Symptoms    int `json:"symptoms"`
		Medications int `json:"medications"`
	} `json:"counts"`
	IntensityStats []IntensityBucket `json:"intensityStats"`
	RecentSymptoms []RecentSymptom   `json:"recentSymptoms"`
	Timestamp      time.Time         `json:"timestamp"`
}
