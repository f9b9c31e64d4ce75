package importer

import (
	"strings"
	"testing"
	"time"
)

const sampleExport = `order,id,date,time,title,url,visit_count,typed_count,transition
1,101,2024-03-04,09:15:00,Inbox,https://mail.example.com,12,3,0
2,102,2024-03-04,09:32:10,Design doc,https://docs.example.com/d/1,4,0,1
3,103,2024-03-05,08:05:00,Standup notes,https://wiki.example.com/standup,2,0,0
`

func TestParseHistoryCSV(t *testing.T) {
	t.Parallel()

	visits, skipped, err := ParseHistoryCSV(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if skipped != 0 {
		t.Fatalf("expected no skipped rows, got %d", skipped)
	}
	if len(visits) != 3 {
		t.Fatalf("expected 3 visits, got %d", len(visits))
	}

	first := visits[0]
	want := time.Date(2024, time.March, 4, 9, 15, 0, 0, time.Local)
	if first.VisitTime != want.Unix() {
		t.Fatalf("expected visit time %v, got %v", want, time.Unix(first.VisitTime, 0))
	}
	if first.Title != "Inbox" || first.URL != "https://mail.example.com" {
		t.Fatalf("unexpected title/url: %q %q", first.Title, first.URL)
	}
	if first.VisitCount != 12 || first.TypedCount != 3 || first.Transition != 0 {
		t.Fatalf("counters not carried through: %+v", first)
	}
}

func TestParseHistoryCSVWithoutHeader(t *testing.T) {
	t.Parallel()

	body := "1,101,2024-03-04,09:15:00,Inbox,https://mail.example.com,12,3,0\n"
	visits, skipped, err := ParseHistoryCSV(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(visits) != 1 || skipped != 0 {
		t.Fatalf("headerless export should parse: %d visits, %d skipped", len(visits), skipped)
	}
}

func TestParseHistoryCSVSkipsMalformedRows(t *testing.T) {
	t.Parallel()

	body := sampleExport +
		"4,104,not-a-date,09:00:00,Broken,https://example.com,0,0,0\n" +
		"5,105,2024-03-05,12:00:00,Short row,https://example.com,0\n"

	visits, skipped, err := ParseHistoryCSV(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(visits) != 3 {
		t.Fatalf("expected 3 good visits, got %d", len(visits))
	}
	if skipped != 2 {
		t.Fatalf("expected 2 skipped rows, got %d", skipped)
	}
}

func TestParseHistoryCSVMinuteOnlyTime(t *testing.T) {
	t.Parallel()

	body := "1,101,2024-03-04,09:15,Inbox,https://mail.example.com,1,0,0\n"
	visits, _, err := ParseHistoryCSV(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2024, time.March, 4, 9, 15, 0, 0, time.Local)
	if len(visits) != 1 || visits[0].VisitTime != want.Unix() {
		t.Fatalf("HH:MM time should parse, got %+v", visits)
	}
}

func TestParseHistoryCSVEmpty(t *testing.T) {
	t.Parallel()

	visits, skipped, err := ParseHistoryCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(visits) != 0 || skipped != 0 {
		t.Fatalf("empty export should yield nothing, got %d/%d", len(visits), skipped)
	}
}
