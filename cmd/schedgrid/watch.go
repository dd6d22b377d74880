package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"schedgrid/internal/live"
	"schedgrid/internal/model"
	"schedgrid/internal/provider"
)

func watchCmd() *cobra.Command {
	var file string
	var date string
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-evaluate the live indicator on a timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := provider.LoadFixture(file, logger)
			if err != nil {
				return err
			}
			day, err := parseDate(date, fx.Location())
			if err != nil {
				return err
			}

			var appts []model.Appointment
			for _, res := range fx.Resources() {
				list, err := fx.AppointmentsFor(res.ID, day)
				if err != nil {
					return err
				}
				appts = append(appts, list...)
			}

			ind := live.Indicator{
				Window:  cfg.Window,
				Density: cfg.Density,
				Loc:     fx.Location(),
				Clock:   live.SystemClock{},
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			printSnapshot(ind.Snapshot(appts), fx)

			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					printSnapshot(ind.Snapshot(appts), fx)
				case <-ctx.Done():
					return nil
				}
			}
		},
	}

	cmd.Flags().StringVar(&file, "file", "schedule.yaml", "Fixture file")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD), default today")
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "Refresh cadence")
	return cmd
}

func printSnapshot(snap live.Snapshot, fx *provider.Fixture) {
	at := snap.At.In(fx.Location()).Format("15:04:05")
	line := "outside window"
	if snap.NowLine != nil {
		line = fmt.Sprintf("now-line at %.1f", snap.NowLine.Top)
	}
	next := "no upcoming appointment"
	if snap.Next != nil {
		next = fmt.Sprintf("next %s %s (%s)",
			snap.Next.Interval.Start.In(fx.Location()).Format("15:04"),
			snap.Next.Customer, snap.Countdown)
	}
	fmt.Printf("%s  %s  %s\n", at, line, next)
}
