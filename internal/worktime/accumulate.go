package worktime

import "time"

// Accumulate computes the total inferred working duration for one day by
// consuming contiguous runs of same-label records. Each maximal presence run
// approximates one block of active browsing and contributes the span from its
// first record to the end of its last gap; because consecutive gap durations
// telescope, the contribution depends only on the run's boundaries, never on
// how many records fall inside it. Absence runs between presence runs
// contribute nothing. Returns zero when the work window is unresolved or the
// day has no records.
//
// The scan is a two-cursor forward pass over the immutable record slice; the
// records are already in chronological order.
func Accumulate(w DayWindow) time.Duration {
	if w.Start == nil || w.End == nil || len(w.Records) == 0 {
		return 0
	}

	records := dropNoise(w.Records, *w.Start, *w.End)

	var total time.Duration
	i := 0
	for i < len(records) {
		// presence run
		j := i
		for j < len(records) && records[j].Label == Presence {
			j++
		}
		if j > i {
			blockEnd := records[j-1].Timestamp.Add(records[j-1].Duration)
			total += blockEnd.Sub(records[i].Timestamp)
		}

		// absence run, discarded
		i = j
		for i < len(records) && records[i].Label == Absence {
			i++
		}
	}

	return total
}

// dropNoise removes records outside the resolved work window using the
// historical predicate ts < start && ts > end. The predicate is satisfiable
// only when start > end, which cannot happen given how the window is
// resolved, so today it discards nothing. Kept verbatim until the intended
// behavior is clarified; see the pinning test.
func dropNoise(records []Record, start, end time.Time) []Record {
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Timestamp.Before(start) && r.Timestamp.After(end) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
