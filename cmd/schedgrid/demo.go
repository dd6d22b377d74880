package main

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"schedgrid/internal/provider"
	"schedgrid/internal/timeutil"
)

// demoCmd writes a sample fixture day: two stylists with working hours,
// a lunch break, a closure, and a handful of appointments in various
// states. Handy for trying the other commands without real data.
func demoCmd() *cobra.Command {
	var date string
	var out string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a sample fixture file",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, fallback := timeutil.Resolve(cfg.Timezone)
			if fallback {
				logger.Warn("timezone fallback to UTC", zap.String("timezone", cfg.Timezone))
			}
			day, err := parseDate(date, loc)
			if err != nil {
				return err
			}

			at := func(h, m int) time.Time {
				return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
			}

			file := provider.File{
				Timezone: cfg.Timezone,
				Resources: []provider.Resource{
					{ID: "dana", Name: "Dana"},
					{ID: "mia", Name: "Mia"},
				},
				Segments: []provider.SegmentRecord{
					{ResourceID: "dana", Kind: "working", Start: at(9, 0), End: at(17, 0)},
					{ResourceID: "dana", Kind: "break", Start: at(12, 0), End: at(12, 30), Note: "lunch"},
					{ResourceID: "mia", Kind: "working", Start: at(10, 0), End: at(18, 0)},
					{ResourceID: "mia", Kind: "closed", Start: at(16, 0), End: at(18, 0), Note: "training"},
					{ResourceID: "mia", Kind: "buffer", Start: at(9, 45), End: at(10, 0)},
				},
				Appointments: []provider.AppointmentRecord{
					{ID: uuid.NewString(), ResourceID: "dana", Start: at(9, 15), End: at(10, 0),
						Status: "confirmed", Customer: "R. Vega", Service: "Cut"},
					{ID: uuid.NewString(), ResourceID: "dana", Start: at(10, 0), End: at(10, 5),
						Status: "pending", Customer: "J. Okafor", Service: "Fringe trim",
						Problems: []string{"unconfirmed"}},
					{ID: uuid.NewString(), ResourceID: "dana", Start: at(10, 0), End: at(11, 0),
						Status: "scheduled", Customer: "T. Marsh", Service: "Color",
						Problems: []string{"conflict"}},
					{ID: uuid.NewString(), ResourceID: "mia", Start: at(11, 0), End: at(12, 30),
						Status: "confirmed", Customer: "A. Lindqvist", Service: "Balayage", WalkIn: true},
					{ID: uuid.NewString(), ResourceID: "mia", Start: at(14, 0), End: at(15, 0),
						Status: "cancelled", Customer: "K. Ito", Service: "Blowout"},
				},
			}

			data, err := yaml.Marshal(&file)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			logger.Info("wrote demo fixture", zap.String("path", out))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD), default today")
	cmd.Flags().StringVarP(&out, "out", "o", "schedule.yaml", "Output fixture path")
	return cmd
}
