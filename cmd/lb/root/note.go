package root

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lazybear/internal/engine"
	"lazybear/internal/model"
	"lazybear/internal/store"
	"lazybear/internal/ui"
)

func newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Keep dated journal notes",
	}
	cmd.AddCommand(
		newNoteAddCmd(),
		newNoteListCmd(),
		newNoteShowCmd(),
		newNoteRmCmd(),
	)
	return cmd
}

func newNoteAddCmd() *cobra.Command {
	var content, mood, date string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Write a note",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = engine.DateString(time.Now())
			} else if _, err := engine.ParseDate(date); err != nil {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
			}
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			note := model.Note{
				ID:      model.NewID(),
				Title:   strings.Join(args, " "),
				Content: content,
				Date:    date,
				Mood:    mood,
			}
			notes := append(append([]model.Note{}, st.Data().Notes...), note)
			st.Apply(ctx, store.Patch{Notes: &notes})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Saved %s %s\n", ui.IconNote, ui.Key.Render(shortID(note.ID)), note.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&content, "content", "c", "", "Note body")
	cmd.Flags().StringVarP(&mood, "mood", "m", "", "Mood (free text or emoji)")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	return cmd
}

func newNoteListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			notes := st.Data().Notes
			fmt.Fprintln(out, ui.Heading(ui.IconNote, "Notes"))
			if len(notes) == 0 {
				fmt.Fprintln(out, ui.Dim.Render("  nothing written yet"))
				return nil
			}
			for _, n := range notes {
				line := fmt.Sprintf("  %s %s %s", ui.Muted.Render(shortID(n.ID)), ui.Key.Render(n.Date), n.Title)
				if n.Mood != "" {
					line += " " + n.Mood
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func newNoteShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a note's full content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Notes, func(n model.Note) string { return n.ID }, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, n := range doc.Notes {
				if n.ID != id {
					continue
				}
				fmt.Fprintln(out, ui.Heading(ui.IconNote, n.Title))
				fmt.Fprintln(out, ui.Muted.Render(n.Date))
				if n.Mood != "" {
					fmt.Fprintln(out, ui.LabelValue("Mood", n.Mood))
				}
				if n.Content != "" {
					fmt.Fprintln(out, "")
					fmt.Fprintln(out, n.Content)
				}
			}
			return nil
		},
	}
}

func newNoteRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Notes, func(n model.Note) string { return n.ID }, args[0])
			if err != nil {
				return err
			}
			notes := engine.DeleteByID(doc.Notes, id, func(n model.Note) string { return n.ID })
			st.Apply(ctx, store.Patch{Notes: &notes})
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", ui.Muted.Render(shortID(id)))
			return nil
		},
	}
}
