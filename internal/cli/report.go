package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/worktrace/worktrace/internal/report"
	"github.com/worktrace/worktrace/internal/repository"
	"github.com/worktrace/worktrace/internal/service"
	"github.com/worktrace/worktrace/internal/worktime"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the per-day work-presence report",
	Long: `Print one row per day with inferred work: date, start of work, end of
work and accumulated active duration. Days without a resolvable work window
are omitted.

Examples:
  worktrace report                          # whole history
  worktrace report --from 2024-03-01        # rows from March 2024 on
  worktrace report --out worktime.txt       # write the plain-text report`,
	RunE: runReport,
}

// Flags
var (
	reportFrom string
	reportTo   string
	reportOut  string
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportFrom, "from", "", "First day to show (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "Last day to show (YYYY-MM-DD)")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "Write the plain-text report to a file")
}

func runReport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	from, err := parseDayFlag(reportFrom, "--from")
	if err != nil {
		return err
	}
	to, err := parseDayFlag(reportTo, "--to")
	if err != nil {
		return err
	}

	svc := service.NewWorktimeService(
		repository.NewVisitRepository(db),
		cfg.AbsenceThreshold(),
		cfg.StartFloor(),
	)

	rep, err := svc.Report(context.Background(), from, to)
	if err != nil {
		if errors.Is(err, worktime.ErrNoData) {
			return fmt.Errorf("no visit history to evaluate; run 'worktrace import' first")
		}
		return err
	}

	if reportOut != "" {
		if err := report.WriteFile(reportOut, rep); err != nil {
			return err
		}
		fmt.Printf("Report written to %s (%d days)\n", reportOut, len(rep.Days))
		return nil
	}

	fmt.Print(report.Table(rep))
	return nil
}

func parseDayFlag(value, name string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date %q, expected YYYY-MM-DD", name, value)
	}
	return &day, nil
}
