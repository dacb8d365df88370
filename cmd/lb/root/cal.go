package root

import (
	"context"

	"github.com/spf13/cobra"

	"lazybear/internal/tui"
)

func newCalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cal",
		Short: "Open the interactive calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunCalendar(ctx, st, cmd.OutOrStdout())
		},
	}
}
