package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worktrace/worktrace/internal/repository"
	"github.com/worktrace/worktrace/internal/service"
	"github.com/worktrace/worktrace/internal/worktime"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show aggregate statistics over the inferred work days",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	svc := service.NewWorktimeService(
		repository.NewVisitRepository(db),
		cfg.AbsenceThreshold(),
		cfg.StartFloor(),
	)

	sum, err := svc.Summary(context.Background())
	if err != nil {
		if errors.Is(err, worktime.ErrNoData) {
			return fmt.Errorf("no visit history to evaluate; run 'worktrace import' first")
		}
		return err
	}

	fmt.Println()
	fmt.Printf("  worktrace Summary\n")
	fmt.Printf("  =================\n")
	fmt.Println()
	fmt.Printf("  Work days:         %d\n", sum.DayCount)
	fmt.Printf("  Total:             %.1fh\n", sum.TotalHours)
	fmt.Println()
	fmt.Printf("  Per day\n")
	fmt.Printf("  -------\n")
	fmt.Printf("  Mean:              %.2fh\n", sum.MeanHours)
	fmt.Printf("  Median:            %.2fh\n", sum.MedianHours)
	fmt.Printf("  Std dev:           %.2fh\n", sum.StdDevHours)
	fmt.Printf("  Min / Max:         %.2fh / %.2fh\n", sum.MinHours, sum.MaxHours)
	fmt.Printf("  Q1 / Q3:           %.2fh / %.2fh\n", sum.Q1Hours, sum.Q3Hours)
	fmt.Println()

	return nil
}
