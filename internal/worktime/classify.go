package worktime

import "time"

// Label marks a classified record as active presence or a long absence
type Label int

const (
	Presence Label = iota
	Absence
)

// String returns the label name
func (l Label) String() string {
	if l == Absence {
		return "absence"
	}
	return "presence"
}

// DefaultAbsenceThreshold is the gap length above which the user is
// considered away from the machine
const DefaultAbsenceThreshold = 20 * time.Minute

// Event is one raw timestamped browsing-activity record
type Event struct {
	Timestamp time.Time
	Title     string
	URL       string
}

// Record is an Event annotated with the gap to the chronologically next
// event and the presence label derived from that gap
type Record struct {
	Timestamp time.Time
	Title     string
	URL       string
	Duration  time.Duration
	Label     Label
}

// Classify walks adjacent pairs of the chronologically sorted event sequence
// and labels each event by the gap to its successor: gaps strictly longer
// than threshold are absences, everything else (including zero gaps) is
// presence. The last event has no successor and yields no record, so the
// output is always one element shorter than the input. A single-event or
// empty input yields an empty sequence.
func Classify(events []Event, threshold time.Duration) []Record {
	if threshold <= 0 {
		threshold = DefaultAbsenceThreshold
	}
	if len(events) < 2 {
		return nil
	}

	records := make([]Record, 0, len(events)-1)
	for i := 0; i < len(events)-1; i++ {
		gap := events[i+1].Timestamp.Sub(events[i].Timestamp)

		label := Presence
		if gap > threshold {
			label = Absence
		}

		records = append(records, Record{
			Timestamp: events[i].Timestamp,
			Title:     events[i].Title,
			URL:       events[i].URL,
			Duration:  gap,
			Label:     label,
		})
	}

	return records
}
