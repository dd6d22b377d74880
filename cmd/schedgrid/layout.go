package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"schedgrid/internal/grid"
	"schedgrid/internal/model"
	"schedgrid/internal/provider"
	"schedgrid/internal/schedule"
)

type resourceLayout struct {
	Resource   provider.Resource         `json:"resource"`
	Background map[int]model.SegmentKind `json:"background"`
	Bookings   []schedule.PlacedBooking  `json:"bookings"`
}

func layoutCmd() *cobra.Command {
	var file string
	var date string
	var resourceID string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute the day grid layout for a fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := provider.LoadFixture(file, logger)
			if err != nil {
				return err
			}
			day, err := parseDate(date, fx.Location())
			if err != nil {
				return err
			}

			layouts, err := buildLayouts(fx, day, resourceID)
			if err != nil {
				return err
			}

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(layouts)
			}
			printLayouts(layouts, fx.Location())
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "schedule.yaml", "Fixture file")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD), default today")
	cmd.Flags().StringVar(&resourceID, "resource", "", "Limit to one resource")
	return cmd
}

// selectResources returns the fixture resources, narrowed to one when
// resourceID is set.
func selectResources(fx *provider.Fixture, resourceID string) ([]provider.Resource, error) {
	if resourceID == "" {
		return fx.Resources(), nil
	}
	for _, res := range fx.Resources() {
		if res.ID == resourceID {
			return []provider.Resource{res}, nil
		}
	}
	return nil, fmt.Errorf("unknown resource %q", resourceID)
}

func buildLayouts(fx *provider.Fixture, day time.Time, resourceID string) ([]resourceLayout, error) {
	resources, err := selectResources(fx, resourceID)
	if err != nil {
		return nil, err
	}

	layouts := make([]resourceLayout, 0, len(resources))
	for _, res := range resources {
		segments, err := fx.SegmentsFor(res.ID, day)
		if err != nil {
			return nil, err
		}
		appts, err := fx.AppointmentsFor(res.ID, day)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, resourceLayout{
			Resource:   res,
			Background: schedule.Composite(segments, cfg.Window, fx.Location()),
			Bookings:   schedule.PlaceBookings(appts, cfg.Window, fx.Location(), cfg.Density),
		})
	}
	return layouts, nil
}

func printLayouts(layouts []resourceLayout, loc *time.Location) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	for _, l := range layouts {
		fmt.Fprintf(w, "%s (%s)\n", l.Resource.Name, l.Resource.ID)

		slots := make([]int, 0, len(l.Background))
		for slot := range l.Background {
			slots = append(slots, slot)
		}
		sort.Ints(slots)
		for _, slot := range slots {
			fmt.Fprintf(w, "  %s\t%s\n", slotLabel(cfg.Window, slot), l.Background[slot])
		}

		for _, p := range l.Bookings {
			a := p.Appointment
			fmt.Fprintf(w, "  %s-%s\t%s\t%s\t%s\ttop=%.1f h=%.1f stack=%d\n",
				a.Interval.Start.In(loc).Format("15:04"),
				a.Interval.End.In(loc).Format("15:04"),
				a.Customer, a.Service, a.Status,
				p.Rect.Top, p.Rect.Height, p.StackGroup)
		}
	}
}

// slotLabel formats the wall-clock range a slot index covers.
func slotLabel(w grid.Window, slot int) string {
	startMin := w.StartHour*60 + slot*w.SlotMinutes
	endMin := startMin + w.SlotMinutes
	return fmt.Sprintf("%02d:%02d-%02d:%02d", startMin/60, startMin%60, endMin/60, endMin%60)
}
