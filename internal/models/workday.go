package models

import "time"

// WorkDay is one qualifying day in the work-presence report: the inferred
// start and end of work plus the accumulated active duration
type WorkDay struct {
	Date            time.Time `json:"date"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationSeconds int64     `json:"durationSeconds"`
}

// Duration returns the accumulated working time as a time.Duration
func (d WorkDay) Duration() time.Duration {
	return time.Duration(d.DurationSeconds) * time.Second
}

// WorkReport holds the per-day rows for the evaluated range. Days where no
// work window could be resolved are omitted.
type WorkReport struct {
	Days         []WorkDay `json:"days"`
	TotalSeconds int64     `json:"totalSeconds"`
}

// WorkSummary aggregates the per-day durations (in hours)
type WorkSummary struct {
	DayCount    int     `json:"dayCount"`
	TotalHours  float64 `json:"totalHours"`
	MeanHours   float64 `json:"meanHours"`
	MedianHours float64 `json:"medianHours"`
	StdDevHours float64 `json:"stdDevHours"`
	MinHours    float64 `json:"minHours"`
	Q1Hours     float64 `json:"q1Hours"`
	Q3Hours     float64 `json:"q3Hours"`
	MaxHours    float64 `json:"maxHours"`
}
