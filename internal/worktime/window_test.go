package worktime

import (
	"testing"
	"time"
)

func TestStartOfWorkHonorsFloor(t *testing.T) {
	t.Parallel()

	records := []Record{
		presenceAt(4, 5, 45),
		presenceAt(4, 6, 59),
		presenceAt(4, 7, 0), // first at or after the floor
		presenceAt(4, 8, 0),
	}

	start := StartOfWork(records, DefaultStartFloor)
	if start == nil || !start.Equal(at(4, 7, 0)) {
		t.Fatalf("expected 07:00 exactly to qualify, got %v", start)
	}
}

func TestStartOfWorkSkipsAbsences(t *testing.T) {
	t.Parallel()

	records := []Record{
		absenceAt(4, 8, 0),
		presenceAt(4, 10, 0),
	}

	start := StartOfWork(records, DefaultStartFloor)
	if start == nil || !start.Equal(at(4, 10, 0)) {
		t.Fatalf("absence records must not open the day, got %v", start)
	}
}

func TestStartOfWorkAbsentWhenNothingQualifies(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		records []Record
	}{
		{"no records", nil},
		{"only absences", []Record{absenceAt(4, 9, 0), absenceAt(4, 14, 0)}},
		{"presence only before floor", []Record{presenceAt(4, 2, 0), presenceAt(4, 6, 30)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if start := StartOfWork(tc.records, DefaultStartFloor); start != nil {
				t.Fatalf("expected no start of work, got %v", *start)
			}
		})
	}
}

func TestEndOfWorkIgnoresFloor(t *testing.T) {
	t.Parallel()

	// The end of work has no time-of-day floor: a lone early-morning
	// presence record can close the day.
	records := []Record{
		presenceAt(4, 1, 30),
		absenceAt(4, 2, 0),
	}

	end := EndOfWork(records)
	if end == nil || !end.Equal(at(4, 1, 30)) {
		t.Fatalf("expected 01:30, got %v", end)
	}
}

func TestEndOfWorkAbsentForAllAbsences(t *testing.T) {
	t.Parallel()

	records := []Record{absenceAt(4, 9, 0), absenceAt(4, 14, 0)}
	if end := EndOfWork(records); end != nil {
		t.Fatalf("expected no end of work, got %v", *end)
	}
}

func TestStartOfWorkCustomFloor(t *testing.T) {
	t.Parallel()

	records := []Record{presenceAt(4, 8, 0), presenceAt(4, 9, 30)}

	start := StartOfWork(records, 9*time.Hour)
	if start == nil || !start.Equal(at(4, 9, 30)) {
		t.Fatalf("expected 09:30 under a 09:00 floor, got %v", start)
	}
}
