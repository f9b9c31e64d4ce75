package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worktrace/worktrace/internal/importer"
	"github.com/worktrace/worktrace/internal/repository"
)

var importCmd = &cobra.Command{
	Use:   "import <history.csv>",
	Short: "Import a browser-history export into the local database",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	imp := importer.New(
		repository.NewVisitRepository(db),
		repository.NewImportRunRepository(db),
	)

	run, err := imp.ImportFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d visits from %s", run.RowCount, run.SourceFile)
	if run.SkippedRows > 0 {
		fmt.Printf(" (%d malformed rows skipped)", run.SkippedRows)
	}
	fmt.Println()

	return nil
}
