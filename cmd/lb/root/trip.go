package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lazybear/internal/engine"
	"lazybear/internal/model"
	"lazybear/internal/store"
	"lazybear/internal/ui"
)

func newTripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Plan trips",
	}
	cmd.AddCommand(
		newTripAddCmd(),
		newTripListCmd(),
		newTripRmCmd(),
	)
	return cmd
}

func newTripAddCmd() *cobra.Command {
	var start, end, notes string

	cmd := &cobra.Command{
		Use:   "add <destination>",
		Short: "Add a trip",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("destination is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range []string{start, end} {
				if d != "" {
					if _, err := engine.ParseDate(d); err != nil {
						return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", d)
					}
				}
			}
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			trip := model.Trip{
				ID:          model.NewID(),
				Destination: strings.Join(args, " "),
				StartDate:   start,
				EndDate:     end,
				Notes:       notes,
			}
			trips := append(append([]model.Trip{}, st.Data().Trips...), trip)
			st.Apply(ctx, store.Patch{Trips: &trips})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s\n", ui.IconTrip, ui.Key.Render(shortID(trip.ID)), trip.Destination)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes")
	return cmd
}

func newTripListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			trips := st.Data().Trips
			fmt.Fprintln(out, ui.Heading(ui.IconTrip, "Trips"))
			if len(trips) == 0 {
				fmt.Fprintln(out, ui.Dim.Render("  no trips planned"))
				return nil
			}
			for _, t := range trips {
				line := fmt.Sprintf("  %s %s", ui.Muted.Render(shortID(t.ID)), ui.H2.Render(t.Destination))
				if t.StartDate != "" || t.EndDate != "" {
					line += ui.Muted.Render(fmt.Sprintf("  %s → %s", t.StartDate, t.EndDate))
				}
				fmt.Fprintln(out, line)
				if t.Notes != "" {
					fmt.Fprintln(out, ui.Dim.Render("      "+t.Notes))
				}
			}
			return nil
		},
	}
}

func newTripRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Trips, func(t model.Trip) string { return t.ID }, args[0])
			if err != nil {
				return err
			}
			trips := engine.DeleteByID(doc.Trips, id, func(t model.Trip) string { return t.ID })
			st.Apply(ctx, store.Patch{Trips: &trips})
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", ui.Muted.Render(shortID(id)))
			return nil
		},
	}
}
