package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/worktrace/worktrace/internal/models"
	"github.com/worktrace/worktrace/internal/repository"
)

// History exports carry nine columns per row:
// order index, record id, date, time, title, url, visit count, typed count,
// transition type. The inference core only consumes date+time, title and url;
// the counters are stored untouched.
const expectedColumns = 9

var (
	dateLayout  = "2006-01-02"
	timeLayouts = []string{"15:04:05", "15:04"}
)

// Importer ingests history export files into the visits table
type Importer struct {
	visits *repository.VisitRepository
	runs   *repository.ImportRunRepository
}

// New creates a new importer
func New(visits *repository.VisitRepository, runs *repository.ImportRunRepository) *Importer {
	return &Importer{visits: visits, runs: runs}
}

// ImportFile parses a history export CSV and stores its visits. Malformed
// rows are skipped and counted; the run is recorded either way.
func (i *Importer) ImportFile(path string) (models.ImportRun, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.ImportRun{}, fmt.Errorf("failed to open history export: %w", err)
	}
	defer f.Close()

	return i.Import(f, filepath.Base(path))
}

// Import parses a history export from a reader and stores its visits under a
// fresh import run id
func (i *Importer) Import(r io.Reader, sourceName string) (models.ImportRun, error) {
	visits, skipped, err := ParseHistoryCSV(r)
	if err != nil {
		return models.ImportRun{}, err
	}

	run := models.ImportRun{
		ID:          uuid.NewString(),
		SourceFile:  sourceName,
		RowCount:    int64(len(visits)),
		SkippedRows: int64(skipped),
	}

	if err := i.visits.InsertBatch(visits, run.ID); err != nil {
		return models.ImportRun{}, fmt.Errorf("failed to store visits: %w", err)
	}
	if err := i.runs.Create(run); err != nil {
		return models.ImportRun{}, fmt.Errorf("failed to record import run: %w", err)
	}

	log.Printf("[Importer] Imported %d visits from %s (%d rows skipped)",
		run.RowCount, sourceName, run.SkippedRows)
	return run, nil
}

// ParseHistoryCSV reads export rows into visits. The first row is skipped if
// it looks like a header. Rows that cannot be parsed are counted and skipped
// rather than failing the whole import.
func ParseHistoryCSV(r io.Reader) ([]models.Visit, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row length validated per record

	var visits []models.Visit
	skipped := 0
	line := 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read history export: %w", err)
		}
		line++

		visit, err := parseRow(row)
		if err != nil {
			if line == 1 {
				// header row
				continue
			}
			skipped++
			continue
		}
		visits = append(visits, visit)
	}

	return visits, skipped, nil
}

func parseRow(row []string) (models.Visit, error) {
	if len(row) != expectedColumns {
		return models.Visit{}, fmt.Errorf("expected %d columns, got %d", expectedColumns, len(row))
	}

	ts, err := parseInstant(row[2], row[3])
	if err != nil {
		return models.Visit{}, err
	}

	return models.Visit{
		VisitTime:  ts.Unix(),
		Title:      row[4],
		URL:        row[5],
		VisitCount: atoiOrZero(row[6]),
		TypedCount: atoiOrZero(row[7]),
		Transition: atoiOrZero(row[8]),
	}, nil
}

// parseInstant combines the separate date and time columns into one local
// instant
func parseInstant(date, clock string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q: %w", date, err)
	}

	for _, layout := range timeLayouts {
		tod, err := time.Parse(layout, clock)
		if err != nil {
			continue
		}
		return day.Add(time.Duration(tod.Hour())*time.Hour +
			time.Duration(tod.Minute())*time.Minute +
			time.Duration(tod.Second())*time.Second), nil
	}

	return time.Time{}, fmt.Errorf("bad time %q", clock)
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
