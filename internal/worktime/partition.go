package worktime

import (
	"errors"
	"time"
)

// ErrNoData signals that there are no classified records at all, so no day
// range can be established. Callers should surface this instead of an empty
// report.
var ErrNoData = errors.New("worktime: no records to evaluate")

// DayWindow is the per-calendar-day view of classified records plus the
// resolved work window. Start and End are nil when the day has no qualifying
// presence record; such days are skipped by reports.
type DayWindow struct {
	Date    time.Time
	Records []Record
	Start   *time.Time
	End     *time.Time
}

// DayOf truncates a timestamp to midnight of its calendar day, keeping the
// location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayRange returns the first and last calendar day covered by the records,
// derived from the records' own timestamps. Returns ErrNoData for an empty
// sequence.
func DayRange(records []Record) (first, last time.Time, err error) {
	if len(records) == 0 {
		return time.Time{}, time.Time{}, ErrNoData
	}

	first = DayOf(records[0].Timestamp)
	last = first
	for _, r := range records[1:] {
		day := DayOf(r.Timestamp)
		if day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}
	}

	return first, last, nil
}

// Partition groups classified records by calendar day over the full observed
// date range. Every day in [first, last] is represented, including days with
// no records; within a day, record order is inherited from the global
// chronological order. Each window carries its resolved work window
// (StartOfWork / EndOfWork with the given start floor).
func Partition(records []Record, startFloor time.Duration) ([]DayWindow, error) {
	first, last, err := DayRange(records)
	if err != nil {
		return nil, err
	}

	byDay := make(map[time.Time][]Record)
	for _, r := range records {
		day := DayOf(r.Timestamp)
		byDay[day] = append(byDay[day], r)
	}

	var windows []DayWindow
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		recs := byDay[day]
		windows = append(windows, DayWindow{
			Date:    day,
			Records: recs,
			Start:   StartOfWork(recs, startFloor),
			End:     EndOfWork(recs),
		})
	}

	return windows, nil
}
