package root

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lazybear/internal/engine"
	"lazybear/internal/model"
	"lazybear/internal/notify"
	"lazybear/internal/ui"
)

func newRemindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Run the reminder daemon",
		Long:  "Polls the clock and fires desktop notifications for timed tasks and for recurring events at " + engine.EventTriggerTime + ". Runs until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			st, cfg, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			notifier := notify.Desktop()
			if !notify.Available(notifier) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" No desktop notifier found; reminders will be logged only."))
			}

			log := newLogger()
			poller := engine.NewPoller(func() model.AppData {
				return st.Load(ctx)
			}, notifier, log, cfg.PollInterval)

			fmt.Fprintf(cmd.OutOrStdout(), "%s Watching for reminders (Ctrl-C to stop)\n", ui.IconBell)
			if err := poller.Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}
}
