package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lazybear/internal/engine"
	"lazybear/internal/model"
	"lazybear/internal/store"
	"lazybear/internal/ui"
)

func newChecklistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checklist",
		Aliases: []string{"cl"},
		Short:   "Keep reusable checklists",
	}
	cmd.AddCommand(
		newChecklistAddCmd(),
		newChecklistItemCmd(),
		newChecklistTickCmd(),
		newChecklistMoveCmd(),
		newChecklistListCmd(),
		newChecklistRmCmd(),
	)
	return cmd
}

func newChecklistAddCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a checklist",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list := model.Checklist{
				ID:    model.NewID(),
				Title: strings.Join(args, " "),
				Items: []model.ChecklistItem{},
				Color: color,
			}
			lists := append(append([]model.Checklist{}, st.Data().Checklists...), list)
			st.Apply(ctx, store.Patch{Checklists: &lists})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s %s\n", ui.IconList, ui.Key.Render(shortID(list.ID)), list.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "Display color")
	return cmd
}

func newChecklistItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "item <list-id> <text>",
		Short: "Append an item to a checklist",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Checklists, func(l model.Checklist) string { return l.ID }, args[0])
			if err != nil {
				return err
			}
			text := strings.TrimSpace(strings.Join(args[1:], " "))
			if text == "" {
				return errors.New("item text is required")
			}
			lists := engine.AddChecklistItem(doc.Checklists, id, text)
			st.Apply(ctx, store.Patch{Checklists: &lists})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added item to %s\n", ui.IconList, ui.Muted.Render(shortID(id)))
			return nil
		},
	}
}

func newChecklistTickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tick <list-id> <item-id>",
		Short: "Toggle a checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Checklists, func(l model.Checklist) string { return l.ID }, args[0])
			if err != nil {
				return err
			}
			var list model.Checklist
			for _, l := range doc.Checklists {
				if l.ID == id {
					list = l
				}
			}
			itemID, err := resolveID(list.Items, func(it model.ChecklistItem) string { return it.ID }, args[1])
			if err != nil {
				return err
			}
			lists := engine.ToggleChecklistItem(doc.Checklists, id, itemID)
			st.Apply(ctx, store.Patch{Checklists: &lists})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Toggled %s\n", ui.IconDone, ui.Muted.Render(shortID(itemID)))
			return nil
		},
	}
}

func newChecklistMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <list-id> <index> <up|down>",
		Short: "Reorder a checklist item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil || index < 0 {
				return fmt.Errorf("invalid index %q", args[1])
			}
			var delta int
			switch args[2] {
			case "up":
				delta = -1
			case "down":
				delta = 1
			default:
				return fmt.Errorf("direction must be up or down, got %q", args[2])
			}

			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Checklists, func(l model.Checklist) string { return l.ID }, args[0])
			if err != nil {
				return err
			}
			lists := engine.MoveChecklistItem(doc.Checklists, id, index, delta)
			st.Apply(ctx, store.Patch{Checklists: &lists})
			fmt.Fprintf(cmd.OutOrStdout(), "Moved item %d %s\n", index, args[2])
			return nil
		},
	}
}

func newChecklistListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all checklists",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			lists := st.Data().Checklists
			if len(lists) == 0 {
				fmt.Fprintln(out, ui.Dim.Render("No checklists yet."))
				return nil
			}
			for _, l := range lists {
				done := 0
				for _, it := range l.Items {
					if it.Completed {
						done++
					}
				}
				fmt.Fprintf(out, "%s %s %s %s\n", ui.IconList, ui.Muted.Render(shortID(l.ID)), ui.H2.Render(l.Title),
					ui.Muted.Render(fmt.Sprintf("%d/%d", done, len(l.Items))))
				for i, it := range l.Items {
					fmt.Fprintf(out, "  %2d %s %s %s\n", i, ui.Checkbox(it.Completed), ui.Muted.Render(shortID(it.ID)), it.Text)
				}
			}
			return nil
		},
	}
}

func newChecklistRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <list-id>",
		Short: "Delete a checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Checklists, func(l model.Checklist) string { return l.ID }, args[0])
			if err != nil {
				return err
			}
			lists := engine.DeleteByID(doc.Checklists, id, func(l model.Checklist) string { return l.ID })
			st.Apply(ctx, store.Patch{Checklists: &lists})
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", ui.Muted.Render(shortID(id)))
			return nil
		},
	}
}
