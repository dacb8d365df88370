package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lazybear/internal/config"
	"lazybear/internal/model"
	"lazybear/internal/store"
	"lazybear/internal/ui"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change settings",
	}
	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigKeyCmd(),
		newConfigThemeCmd(),
	)
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cfg, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			key, err := st.APIKey(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBear, "Settings"))
			fmt.Fprintln(out, ui.LabelValue("Config file", config.Path()))
			dbPath := cfg.DBPath
			if dbPath == "" {
				dbPath, _ = store.DefaultDBPath()
			}
			fmt.Fprintln(out, ui.LabelValue("Database", dbPath))
			fmt.Fprintln(out, ui.LabelValue("Model", cfg.Model))
			fmt.Fprintln(out, ui.LabelValue("Language", cfg.Language))
			fmt.Fprintln(out, ui.LabelValue("Poll interval", cfg.PollInterval))
			fmt.Fprintln(out, ui.LabelValue("Theme", string(st.Data().Theme)))
			fmt.Fprintln(out, ui.LabelValue("API key", maskKey(key)))
			return nil
		},
	}
}

func newConfigKeyCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "key [value]",
		Short: "Set or clear the generative API key",
		Long:  "Stores the API key locally, outside the document, so it never appears in exports.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			switch {
			case clear:
				if err := st.SetAPIKey(ctx, ""); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "API key cleared.")
			case len(args) == 1:
				key := strings.TrimSpace(args[0])
				if key == "" {
					return fmt.Errorf("empty key (use --clear to remove it)")
				}
				if err := st.SetAPIKey(ctx, key); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s API key saved.\n", ui.IconDone)
			default:
				key, err := st.APIKey(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("API key", maskKey(key)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the stored key")
	return cmd
}

func newConfigThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme <name>",
		Short: "Set the color theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := model.ParseTheme(args[0])
			if err != nil {
				return err
			}
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st.Apply(ctx, store.Patch{Theme: &theme})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Theme set to %s\n", ui.IconSparkle, theme)
			return nil
		},
	}
}

func maskKey(key string) string {
	if key == "" {
		return ui.Dim.Render("(unset)")
	}
	if len(key) <= 6 {
		return strings.Repeat("*", len(key))
	}
	return key[:3] + strings.Repeat("*", len(key)-6) + key[len(key)-3:]
}
