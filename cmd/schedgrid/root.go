package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"schedgrid/internal/app"
	"schedgrid/internal/config"
	"schedgrid/internal/timeutil"
)

var (
	outputJSON bool
	cfg        *config.Config
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "schedgrid",
	Short: "Schedule grid layout and classification engine",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		logger = app.NewLogger(cfg.Environment)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

func Execute() {
	rootCmd.AddCommand(layoutCmd())
	rootCmd.AddCommand(agendaCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(demoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")
}

// parseDate interprets a YYYY-MM-DD flag as local midnight in loc; empty
// means today.
func parseDate(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return timeutil.StartOfDay(time.Now(), loc), nil
	}
	day, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", value, err)
	}
	return day, nil
}
