package service

import (
	"context"
	"time"

	"github.com/worktrace/worktrace/internal/models"
	"github.com/worktrace/worktrace/internal/stats"
	"github.com/worktrace/worktrace/internal/worktime"
)

// VisitSource provides the chronologically ordered visit history
type VisitSource interface {
	ListAll(ctx context.Context) ([]models.Visit, error)
}

// WorktimeService runs the presence-inference pipeline over the stored
// visit history
type WorktimeService struct {
	visits     VisitSource
	threshold  time.Duration
	startFloor time.Duration
}

// NewWorktimeService creates a new worktime service
func NewWorktimeService(visits VisitSource, threshold, startFloor time.Duration) *WorktimeService {
	return &WorktimeService{
		visits:     visits,
		threshold:  threshold,
		startFloor: startFloor,
	}
}

// Report evaluates the whole visit history into per-day work rows. The day
// range always derives from the full dataset; from/to only filter which rows
// are returned, they never change what is evaluated. Days whose work window
// cannot be resolved are omitted. Returns worktime.ErrNoData when there is
// nothing to evaluate at all.
func (s *WorktimeService) Report(ctx context.Context, from, to *time.Time) (models.WorkReport, error) {
	visits, err := s.visits.ListAll(ctx)
	if err != nil {
		return models.WorkReport{}, err
	}

	events := make([]worktime.Event, 0, len(visits))
	for _, v := range visits {
		events = append(events, worktime.Event{
			Timestamp: v.Timestamp(),
			Title:     v.Title,
			URL:       v.URL,
		})
	}

	records := worktime.Classify(events, s.threshold)
	windows, err := worktime.Partition(records, s.startFloor)
	if err != nil {
		return models.WorkReport{}, err
	}

	var rep models.WorkReport
	for _, w := range windows {
		if w.Start == nil || w.End == nil {
			continue
		}
		if from != nil && w.Date.Before(worktime.DayOf(*from)) {
			continue
		}
		if to != nil && w.Date.After(worktime.DayOf(*to)) {
			continue
		}

		day := models.WorkDay{
			Date:            w.Date,
			Start:           *w.Start,
			End:             *w.End,
			DurationSeconds: int64(worktime.Accumulate(w) / time.Second),
		}
		rep.Days = append(rep.Days, day)
		rep.TotalSeconds += day.DurationSeconds
	}

	return rep, nil
}

// Summary aggregates the per-day durations of the full report
func (s *WorktimeService) Summary(ctx context.Context) (models.WorkSummary, error) {
	rep, err := s.Report(ctx, nil, nil)
	if err != nil {
		return models.WorkSummary{}, err
	}

	hours := make([]float64, 0, len(rep.Days))
	for _, day := range rep.Days {
		hours = append(hours, day.Duration().Hours())
	}

	min, q1, median, q3, max := stats.FiveNumberSummary(hours)
	return models.WorkSummary{
		DayCount:    len(rep.Days),
		TotalHours:  (time.Duration(rep.TotalSeconds) * time.Second).Hours(),
		MeanHours:   stats.Mean(hours),
		MedianHours: median,
		StdDevHours: stats.StdDev(hours),
		MinHours:    min,
		Q1Hours:     q1,
		Q3Hours:     q3,
		MaxHours:    max,
	}, nil
}
