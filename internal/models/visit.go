package models

import "time"

// Visit represents one raw browsing-history row
type Visit struct {
	ID         int64  `json:"id" db:"id"`
	VisitTime  int64  `json:"visitTime" db:"visit_time"` // Unix timestamp (seconds)
	Title      string `json:"title" db:"title"`
	URL        string `json:"url" db:"url"`
	VisitCount int    `json:"visitCount,omitempty" db:"visit_count"`
	TypedCount int    `json:"typedCount,omitempty" db:"typed_count"`
	Transition int    `json:"transition,omitempty" db:"transition"`
	ImportID   string `json:"importId,omitempty" db:"import_id"`
	CreatedAt  string `json:"createdAt,omitempty" db:"created_at"`
}

// Timestamp returns the visit instant in the local time zone
func (v Visit) Timestamp() time.Time {
	return time.Unix(v.VisitTime, 0)
}

// VisitFilter represents filter parameters for querying visits
type VisitFilter struct {
	StartTime   int64  `form:"startTime"` // Unix timestamp lower bound
	EndTime     int64  `form:"endTime"`   // Unix timestamp upper bound
	URLContains string `form:"urlContains"`
	Page        int    `form:"page"`
	PageSize    int    `form:"pageSize"`
}
