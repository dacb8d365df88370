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

func newCouponCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coupon",
		Short: "Track coupons and expiry dates",
	}
	cmd.AddCommand(
		newCouponAddCmd(),
		newCouponListCmd(),
		newCouponUseCmd(),
		newCouponRmCmd(),
	)
	return cmd
}

func newCouponAddCmd() *cobra.Command {
	var expiry, code string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a coupon",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if expiry != "" {
				if _, err := engine.ParseDate(expiry); err != nil {
					return fmt.Errorf("invalid expiry date %q (want YYYY-MM-DD)", expiry)
				}
			}
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			coupon := model.Coupon{
				ID:         model.NewID(),
				Title:      strings.Join(args, " "),
				ExpiryDate: expiry,
				Code:       code,
			}
			coupons := append(append([]model.Coupon{}, st.Data().Coupons...), coupon)
			st.Apply(ctx, store.Patch{Coupons: &coupons})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s\n", ui.IconCoupon, ui.Key.Render(shortID(coupon.ID)), coupon.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&expiry, "expiry", "", "Expiry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&code, "code", "", "Coupon code")
	return cmd
}

func newCouponListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List unused coupons (use --all for history)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCoupon, "Coupons"))
			shown := 0
			for _, c := range st.Data().Coupons {
				if c.Used && !all {
					continue
				}
				shown++
				status := ui.Good.Render("valid")
				if c.Used {
					status = ui.Muted.Render("used")
				}
				line := fmt.Sprintf("  %s %s %s", ui.Muted.Render(shortID(c.ID)), status, c.Title)
				if c.Code != "" {
					line += "  " + ui.Key.Render(c.Code)
				}
				if c.ExpiryDate != "" {
					line += ui.Muted.Render("  expires " + c.ExpiryDate)
				}
				fmt.Fprintln(out, line)
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Dim.Render("  no coupons"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include used coupons")
	return cmd
}

func newCouponUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Mark a coupon used",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Coupons, func(c model.Coupon) string { return c.ID }, args[0])
			if err != nil {
				return err
			}
			coupons := engine.UseCoupon(doc.Coupons, id)
			st.Apply(ctx, store.Patch{Coupons: &coupons})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Used %s\n", ui.IconDone, ui.Muted.Render(shortID(id)))
			return nil
		},
	}
}

func newCouponRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a coupon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Coupons, func(c model.Coupon) string { return c.ID }, args[0])
			if err != nil {
				return err
			}
			coupons := engine.DeleteByID(doc.Coupons, id, func(c model.Coupon) string { return c.ID })
			st.Apply(ctx, store.Patch{Coupons: &coupons})
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", ui.Muted.Render(shortID(id)))
			return nil
		},
	}
}
