package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"schedgrid/internal/grid"
	"schedgrid/internal/model"
	"schedgrid/internal/provider"
	"schedgrid/internal/render"
	"schedgrid/internal/schedule"
)

func previewCmd() *cobra.Command {
	var file string
	var date string
	var out string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the day grid to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := provider.LoadFixture(file, logger)
			if err != nil {
				return err
			}
			day, err := parseDate(date, fx.Location())
			if err != nil {
				return err
			}

			view := render.DayView{
				Date:       day,
				Window:     cfg.Window,
				Density:    cfg.Density,
				Loc:        fx.Location(),
				Resources:  fx.Resources(),
				Background: make(map[string]map[int]model.SegmentKind),
				Bookings:   make(map[string][]schedule.PlacedBooking),
				NowLine:    grid.NowLine(time.Now(), cfg.Window, fx.Location(), cfg.Density),
			}
			for _, res := range fx.Resources() {
				segments, err := fx.SegmentsFor(res.ID, day)
				if err != nil {
					return err
				}
				appts, err := fx.AppointmentsFor(res.ID, day)
				if err != nil {
					return err
				}
				view.Background[res.ID] = schedule.Composite(segments, cfg.Window, fx.Location())
				view.Bookings[res.ID] = schedule.PlaceBookings(appts, cfg.Window, fx.Location(), cfg.Density)
			}

			png, err := render.DayImage(view)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return err
			}
			logger.Info("wrote preview", zap.String("path", out), zap.Int("bytes", len(png)))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "schedule.yaml", "Fixture file")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD), default today")
	cmd.Flags().StringVarP(&out, "out", "o", "day.png", "Output PNG path")
	return cmd
}
