package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"schedgrid/internal/classify"
	"schedgrid/internal/model"
	"schedgrid/internal/provider"
)

type agendaOutput struct {
	Now       time.Time                                   `json:"now"`
	Buckets   map[classify.Bucket][]model.Appointment     `json:"buckets"`
	Next      *model.Appointment                          `json:"next,omitempty"`
	Countdown string                                      `json:"countdown,omitempty"`
}

func agendaCmd() *cobra.Command {
	var file string
	var date string
	var nowFlag string

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Classify a day's appointments into operational buckets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := provider.LoadFixture(file, logger)
			if err != nil {
				return err
			}
			day, err := parseDate(date, fx.Location())
			if err != nil {
				return err
			}

			now := time.Now()
			if nowFlag != "" {
				now, err = time.Parse(time.RFC3339, nowFlag)
				if err != nil {
					return fmt.Errorf("now %q: %w", nowFlag, err)
				}
			}

			var appts []model.Appointment
			for _, res := range fx.Resources() {
				list, err := fx.AppointmentsFor(res.ID, day)
				if err != nil {
					return err
				}
				appts = append(appts, list...)
			}

			out := agendaOutput{
				Now:     now,
				Buckets: classify.Classify(appts, now, fx.Location()),
				Next:    classify.SelectNext(appts, now),
			}
			if out.Next != nil {
				out.Countdown = classify.Countdown(now, out.Next.Interval.Start, fx.Location())
			}

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(out)
			}
			printAgenda(out, fx.Location())
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "schedule.yaml", "Fixture file")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD), default today")
	cmd.Flags().StringVar(&nowFlag, "now", "", "Override current time (RFC3339)")
	return cmd
}

func printAgenda(out agendaOutput, loc *time.Location) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	for _, bucket := range classify.Buckets {
		list := out.Buckets[bucket]
		if len(list) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s (%d)\n", bucket, len(list))
		for _, a := range list {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
				a.Interval.Start.In(loc).Format("Mon 15:04"),
				a.Customer, a.Service, a.Status)
		}
	}

	if out.Next != nil {
		fmt.Fprintf(w, "next: %s %s (%s)\n",
			out.Next.Interval.Start.In(loc).Format("Mon 15:04"),
			out.Next.Customer, out.Countdown)
	} else {
		fmt.Fprintln(w, "next: none")
	}
}
