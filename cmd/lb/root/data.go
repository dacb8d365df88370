package root

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lazybear/internal/ui"
)

func newDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Back up, restore, or wipe the document",
	}
	cmd.AddCommand(
		newDataExportCmd(),
		newDataImportCmd(),
		newDataResetCmd(),
	)
	return cmd
}

func newDataExportCmd() *cobra.Command {
	var dir string
	var stdout bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of everything",
		Long:  "Exports the whole document as JSON. The stored API key is never part of a backup.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if stdout {
				return st.Export(cmd.OutOrStdout())
			}
			if dir == "" {
				dir, err = os.Getwd()
				if err != nil {
					return err
				}
			}
			path, err := st.ExportFile(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported to %s\n", ui.IconDone, ui.Key.Render(path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "o", "", "Directory for the backup file (default current)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Write the backup to stdout instead")
	return cmd
}

func newDataImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore a JSON backup",
		Long:  "Replaces the current document with the backup. The backup is schema-merged on the way in, so files from older versions restore cleanly.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := st.Import(ctx, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %s\n", ui.IconDone, args[0])
			return nil
		},
	}
}

func newDataResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe the document and start fresh",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Fprint(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" This deletes everything. Type 'yes' to continue: "))
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				if strings.TrimSpace(answer) != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := st.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Fresh start.\n", ui.IconBear)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}
