package cli

import (
	"database/sql"

	"github.com/spf13/cobra"

	"github.com/worktrace/worktrace/internal/config"
	"github.com/worktrace/worktrace/internal/database"
)

var (
	cfgFile string
	dbPath  string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "worktrace",
	Short: "Infer daily work presence from browsing history",
	Long: `worktrace ingests a browser-history export and reconstructs, per day,
a plausible start of work, end of work and total active duration by treating
long gaps between visits as absences.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if cfgFile != "" {
			return cfg.ApplyFile(cfgFile)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the sqlite database (overrides config)")
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func openDB() (*sql.DB, error) {
	path := cfg.DBPath
	if dbPath != "" {
		path = dbPath
	}
	if err := database.Init(database.Config{Path: path}); err != nil {
		return nil, err
	}
	return database.GetDB(), nil
}
