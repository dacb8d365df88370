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

func newRestaurantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "restaurant",
		Aliases: []string{"eat"},
		Short:   "Keep a list of places to eat",
	}
	cmd.AddCommand(
		newRestaurantAddCmd(),
		newRestaurantListCmd(),
		newRestaurantRmCmd(),
	)
	return cmd
}

func newRestaurantAddCmd() *cobra.Command {
	var kind, area, notes string
	var rating int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a restaurant",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if rating < 0 || rating > 5 {
				return fmt.Errorf("rating must be 0-5, got %d", rating)
			}
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			r := model.Restaurant{
				ID:     model.NewID(),
				Name:   strings.Join(args, " "),
				Type:   kind,
				Area:   area,
				Rating: rating,
				Notes:  notes,
			}
			rs := append(append([]model.Restaurant{}, st.Data().Restaurants...), r)
			st.Apply(ctx, store.Patch{Restaurants: &rs})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s\n", ui.IconFood, ui.Key.Render(shortID(r.ID)), r.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", "Cuisine or type")
	cmd.Flags().StringVar(&area, "area", "", "Area or neighborhood")
	cmd.Flags().IntVarP(&rating, "rating", "r", 0, "Rating (1-5)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes")
	return cmd
}

func newRestaurantListCmd() *cobra.Command {
	var area string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved restaurants",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconFood, "Restaurants"))
			shown := 0
			for _, r := range st.Data().Restaurants {
				if area != "" && !strings.EqualFold(r.Area, area) {
					continue
				}
				shown++
				line := fmt.Sprintf("  %s %s", ui.Muted.Render(shortID(r.ID)), r.Name)
				if r.Rating > 0 {
					line += " " + ui.Warn.Render(strings.Repeat("★", r.Rating))
				}
				if r.Type != "" {
					line += ui.Dim.Render(" #" + r.Type)
				}
				if r.Area != "" {
					line += ui.Muted.Render(" @" + r.Area)
				}
				fmt.Fprintln(out, line)
				if r.Notes != "" {
					fmt.Fprintln(out, ui.Dim.Render("      "+r.Notes))
				}
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Dim.Render("  nothing saved"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&area, "area", "", "Filter by area")
	return cmd
}

func newRestaurantRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Restaurants, func(r model.Restaurant) string { return r.ID }, args[0])
			if err != nil {
				return err
			}
			rs := engine.DeleteByID(doc.Restaurants, id, func(r model.Restaurant) string { return r.ID })
			st.Apply(ctx, store.Patch{Restaurants: &rs})
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", ui.Muted.Render(shortID(id)))
			return nil
		},
	}
}
