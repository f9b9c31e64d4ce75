package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/worktrace/worktrace/internal/models"
)

func sampleReport() models.WorkReport {
	day := models.WorkDay{
		Date:            time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local),
		Start:           time.Date(2024, time.March, 4, 9, 5, 0, 0, time.Local),
		End:             time.Date(2024, time.March, 4, 17, 30, 0, 0, time.Local),
		DurationSeconds: int64((7*time.Hour + 25*time.Minute) / time.Second),
	}
	return models.WorkReport{Days: []models.WorkDay{day}, TotalSeconds: day.DurationSeconds}
}

func TestFormatLine(t *testing.T) {
	t.Parallel()

	got := FormatLine(sampleReport().Days[0])
	want := "04/03/2024  09:05  17:30  7h25m"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0h00m"},
		{5 * time.Minute, "0h05m"},
		{time.Hour, "1h00m"},
		{7*time.Hour + 25*time.Minute, "7h25m"},
		{25*time.Minute + 29*time.Second, "0h25m"}, // rounds to minutes
		{25*time.Minute + 31*time.Second, "0h26m"},
	}

	for _, tc := range cases {
		if got := FormatDuration(tc.d); got != tc.want {
			t.Fatalf("FormatDuration(%v): expected %q, got %q", tc.d, tc.want, got)
		}
	}
}

func TestRenderOneLinePerDay(t *testing.T) {
	t.Parallel()

	rep := sampleReport()
	out := Render(rep)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(rep.Days) {
		t.Fatalf("expected %d lines, got %d", len(rep.Days), len(lines))
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.txt")
	if err := WriteFile(path, sampleReport()); err != nil {
		t.Fatalf("write report: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "04/03/2024") {
		t.Fatalf("report file missing expected line: %q", string(data))
	}
}
