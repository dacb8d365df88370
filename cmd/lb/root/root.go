package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lazybear/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "lb",
	Short:         "Lazybear — local-first life organizer",
	Long:          "Lazybear is a local-first CLI/TUI life organizer: tasks and plans, health logs, bills and coupons, checklists, and lifestyle journaling.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newTaskCmd(),
		newPlanCmd(),
		newHealthCmd(),
		newBillCmd(),
		newCouponCmd(),
		newChecklistCmd(),
		newRestaurantCmd(),
		newTripCmd(),
		newEventCmd(),
		newNoteCmd(),
		newCalCmd(),
		newRemindCmd(),
		newDataCmd(),
		newConfigCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
