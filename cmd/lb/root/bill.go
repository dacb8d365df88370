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

func newBillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Track bills and due dates",
	}
	cmd.AddCommand(
		newBillAddCmd(),
		newBillListCmd(),
		newBillPayCmd(),
		newBillRmCmd(),
	)
	return cmd
}

func newBillAddCmd() *cobra.Command {
	var amount float64
	var due string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a bill",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if due != "" {
				if _, err := engine.ParseDate(due); err != nil {
					return fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", due)
				}
			}
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			bill := model.Bill{
				ID:      model.NewID(),
				Title:   strings.Join(args, " "),
				Amount:  amount,
				DueDate: due,
			}
			bills := append(append([]model.Bill{}, st.Data().Bills...), bill)
			st.Apply(ctx, store.Patch{Bills: &bills})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s\n", ui.IconWallet, ui.Key.Render(shortID(bill.ID)), bill.Title)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "Amount due")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	return cmd
}

func newBillListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List unpaid bills (use --all for history)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconWallet, "Bills"))
			shown := 0
			for _, b := range st.Data().Bills {
				if b.Paid && !all {
					continue
				}
				shown++
				status := ui.Warn.Render("due")
				if b.Paid {
					status = ui.Good.Render("paid")
				}
				line := fmt.Sprintf("  %s %s %s", ui.Muted.Render(shortID(b.ID)), status, b.Title)
				if b.Amount != 0 {
					line += fmt.Sprintf("  %s", ui.Key.Render(strconv.FormatFloat(b.Amount, 'f', 2, 64)))
				}
				if b.DueDate != "" {
					line += ui.Muted.Render("  due " + b.DueDate)
				}
				fmt.Fprintln(out, line)
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Dim.Render("  nothing outstanding"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include paid bills")
	return cmd
}

func newBillPayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay <id>",
		Short: "Mark a bill paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Bills, func(b model.Bill) string { return b.ID }, args[0])
			if err != nil {
				return err
			}
			bills := engine.PayBill(doc.Bills, id)
			st.Apply(ctx, store.Patch{Bills: &bills})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Paid %s\n", ui.IconDone, ui.Muted.Render(shortID(id)))
			return nil
		},
	}
}

func newBillRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Bills, func(b model.Bill) string { return b.ID }, args[0])
			if err != nil {
				return err
			}
			bills := engine.DeleteByID(doc.Bills, id, func(b model.Bill) string { return b.ID })
			st.Apply(ctx, store.Patch{Bills: &bills})
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", ui.Muted.Render(shortID(id)))
			return nil
		},
	}
}
