package root

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"lazybear/internal/engine"
	"lazybear/internal/model"
	"lazybear/internal/store"
	"lazybear/internal/ui"
)

func newEventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Track birthdays, holidays, and anniversaries",
	}
	cmd.AddCommand(
		newEventAddCmd(),
		newEventListCmd(),
		newEventRmCmd(),
	)
	return cmd
}

func newEventAddCmd() *cobra.Command {
	var date, kind string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a recurring special event",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				return errors.New("--date is required")
			}
			if _, err := engine.ParseDate(date); err != nil {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
			}
			t, err := model.ParseEventType(kind)
			if err != nil {
				return err
			}

			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ev := model.SpecialEvent{
				ID:    model.NewID(),
				Title: strings.Join(args, " "),
				Date:  date,
				Type:  t,
			}
			events := append(append([]model.SpecialEvent{}, st.Data().SpecialEvents...), ev)
			st.Apply(ctx, store.Patch{SpecialEvents: &events})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s %s\n",
				engine.EventGlyph([]model.SpecialEvent{ev}), ui.Key.Render(shortID(ev.ID)), ev.Title, ui.Muted.Render(date))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&kind, "type", "t", "other", "Type (birthday|holiday|anniversary|other)")
	return cmd
}

func newEventListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List events in calendar order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			events := append([]model.SpecialEvent{}, st.Data().SpecialEvents...)
			// Calendar order within the year, regardless of which year the
			// event was entered for.
			sort.SliceStable(events, func(i, j int) bool {
				return engine.MonthDay(events[i].Date) < engine.MonthDay(events[j].Date)
			})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Special events"))
			for _, ev := range events {
				fmt.Fprintf(out, "  %s %s %s %s %s\n",
					engine.EventGlyph([]model.SpecialEvent{ev}),
					ui.Muted.Render(shortID(ev.ID)),
					ui.Key.Render(engine.MonthDay(ev.Date)),
					ev.Title,
					ui.Dim.Render(string(ev.Type)))
			}
			return nil
		},
	}
}

func newEventRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.SpecialEvents, func(e model.SpecialEvent) string { return e.ID }, args[0])
			if err != nil {
				return err
			}
			events := engine.DeleteByID(doc.SpecialEvents, id, func(e model.SpecialEvent) string { return e.ID })
			st.Apply(ctx, store.Patch{SpecialEvents: &events})
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", ui.Muted.Render(shortID(id)))
			return nil
		},
	}
}
