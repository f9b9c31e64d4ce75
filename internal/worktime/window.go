package worktime

import "time"

// DefaultStartFloor is the earliest time of day a presence record may open
// the work window. Activity before it (late-night browsing) never counts as
// starting the workday.
const DefaultStartFloor = 7 * time.Hour

// StartOfWork returns the timestamp of the first Presence record whose
// time of day is at or after the floor, or nil when no record qualifies.
func StartOfWork(records []Record, floor time.Duration) *time.Time {
	if floor <= 0 {
		floor = DefaultStartFloor
	}
	for _, r := range records {
		if r.Label != Presence {
			continue
		}
		if r.Timestamp.Sub(DayOf(r.Timestamp)) >= floor {
			ts := r.Timestamp
			return &ts
		}
	}
	return nil
}

// EndOfWork returns the timestamp of the last Presence record, with no
// time-of-day floor, or nil when the day has no presence at all.
func EndOfWork(records []Record) *time.Time {
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Label == Presence {
			ts := records[i].Timestamp
			return &ts
		}
	}
	return nil
}
