package worktime

import (
	"testing"
	"time"
)

func at(day int, hour, min int) time.Time {
	return time.Date(2024, time.March, day, hour, min, 0, 0, time.Local)
}

func TestClassifyPairsAndLabels(t *testing.T) {
	t.Parallel()

	events := []Event{
		{Timestamp: at(4, 9, 0), Title: "inbox", URL: "https://mail.example.com"},
		{Timestamp: at(4, 9, 20), Title: "docs", URL: "https://docs.example.com"},
		{Timestamp: at(4, 9, 41), Title: "news", URL: "https://news.example.com"},
		{Timestamp: at(4, 10, 30), Title: "inbox", URL: "https://mail.example.com"},
	}

	records := Classify(events, DefaultAbsenceThreshold)
	if len(records) != len(events)-1 {
		t.Fatalf("expected %d records, got %d", len(events)-1, len(records))
	}

	// Exactly 20 minutes is presence; 21 minutes is absence.
	if records[0].Label != Presence {
		t.Fatalf("20-minute gap should be presence, got %v", records[0].Label)
	}
	if records[1].Label != Absence {
		t.Fatalf("21-minute gap should be absence, got %v", records[1].Label)
	}
	if records[2].Label != Absence {
		t.Fatalf("49-minute gap should be absence, got %v", records[2].Label)
	}

	for i, r := range records {
		if r.Duration < 0 {
			t.Fatalf("record %d has negative duration %v", i, r.Duration)
		}
		if !r.Timestamp.Equal(events[i].Timestamp) {
			t.Fatalf("record %d should carry the earlier event's timestamp", i)
		}
		if r.Title != events[i].Title || r.URL != events[i].URL {
			t.Fatalf("record %d should carry the earlier event's metadata", i)
		}
	}
}

func TestClassifyDegenerateInputs(t *testing.T) {
	t.Parallel()

	if got := Classify(nil, DefaultAbsenceThreshold); len(got) != 0 {
		t.Fatalf("empty input should yield no records, got %d", len(got))
	}

	single := []Event{{Timestamp: at(4, 9, 0)}}
	if got := Classify(single, DefaultAbsenceThreshold); len(got) != 0 {
		t.Fatalf("single event should yield no records, got %d", len(got))
	}
}

func TestClassifyZeroGapIsPresence(t *testing.T) {
	t.Parallel()

	ts := at(4, 9, 0)
	records := Classify([]Event{{Timestamp: ts}, {Timestamp: ts}}, DefaultAbsenceThreshold)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Duration != 0 || records[0].Label != Presence {
		t.Fatalf("zero gap should be presence with zero duration, got %v %v",
			records[0].Duration, records[0].Label)
	}
}

func TestClassifyDefaultThresholdFallback(t *testing.T) {
	t.Parallel()

	events := []Event{
		{Timestamp: at(4, 9, 0)},
		{Timestamp: at(4, 9, 25)},
	}

	// threshold <= 0 falls back to the 20-minute default
	records := Classify(events, 0)
	if records[0].Label != Absence {
		t.Fatalf("25-minute gap should be absence under the default threshold")
	}
}
