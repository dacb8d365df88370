package root

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"lazybear/internal/engine"
	"lazybear/internal/gemini"
	"lazybear/internal/store"
	"lazybear/internal/ui"
)

func newHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Log and review health metrics",
	}
	cmd.AddCommand(
		newHealthWaterCmd(),
		newHealthStepsCmd(),
		newHealthWeightCmd(),
		newHealthBPCmd(),
		newHealthOxygenCmd(),
		newHealthHeartCmd(),
		newHealthSleepCmd(),
		newHealthShowCmd(),
		newHealthAnalyzeCmd(),
	)
	return cmd
}

func today() string {
	return engine.DateString(time.Now())
}

func newHealthWaterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "water",
		Short: "Log one cup of water for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			logs := engine.AddWaterCup(st.Data().WaterLogs, today())
			st.Apply(ctx, store.Patch{WaterLogs: &logs})
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d/%d cups today\n", ui.IconWater, engine.WaterOn(logs, today()), engine.WaterCupsPerDay)
			return nil
		},
	}
}

func newHealthStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps <count>",
		Short: "Set today's step count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := strconv.Atoi(args[0])
			if err != nil || steps < 0 {
				return fmt.Errorf("invalid step count %q", args[0])
			}
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			logs := engine.SetSteps(st.Data().StepLogs, today(), steps)
			st.Apply(ctx, store.Patch{StepLogs: &logs})
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d steps today\n", ui.IconHealth, steps)
			return nil
		},
	}
}

func newHealthWeightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weight <kg>",
		Short: "Record a weight reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kg, err := strconv.ParseFloat(args[0], 64)
			if err != nil || kg <= 0 {
				return fmt.Errorf("invalid weight %q", args[0])
			}
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			history := engine.AddWeight(st.Data().WeightHistory, today(), kg)
			st.Apply(ctx, store.Patch{WeightHistory: &history})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Recorded %.1f kg\n", ui.IconHealth, kg)
			return nil
		},
	}
}

func newHealthBPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bp <systolic> <diastolic>",
		Short: "Record a blood-pressure reading",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err1 := strconv.Atoi(args[0])
			dia, err2 := strconv.Atoi(args[1])
			if err1 != nil || err2 != nil || sys <= 0 || dia <= 0 {
				return fmt.Errorf("invalid blood pressure %q/%q", args[0], args[1])
			}
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			logs := engine.AddBloodPressure(st.Data().BPLogs, today(), sys, dia)
			st.Apply(ctx, store.Patch{BPLogs: &logs})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Recorded %d/%d\n", ui.IconHealth, sys, dia)
			return nil
		},
	}
}

func newHealthOxygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "oxygen <percent>",
		Short: "Record a blood-oxygen reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pct, err := strconv.Atoi(args[0])
			if err != nil || pct <= 0 || pct > 100 {
				return fmt.Errorf("invalid oxygen percentage %q", args[0])
			}
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			logs := engine.AddBloodOxygen(st.Data().OxygenLogs, today(), pct)
			st.Apply(ctx, store.Patch{OxygenLogs: &logs})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Recorded %d%%\n", ui.IconHealth, pct)
			return nil
		},
	}
}

func newHealthHeartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heart <bpm>",
		Short: "Record a heart-rate reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bpm, err := strconv.Atoi(args[0])
			if err != nil || bpm <= 0 {
				return fmt.Errorf("invalid heart rate %q", args[0])
			}
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			logs := engine.AddHeartRate(st.Data().HeartRateLogs, today(), bpm)
			st.Apply(ctx, store.Patch{HeartRateLogs: &logs})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Recorded %d bpm\n", ui.IconHealth, bpm)
			return nil
		},
	}
}

func newHealthSleepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sleep <hours>",
		Short: "Set last night's sleep hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(args[0], 64)
			if err != nil || hours < 0 || hours > 24 {
				return fmt.Errorf("invalid sleep hours %q", args[0])
			}
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			logs := engine.SetSleep(st.Data().SleepLogs, today(), hours)
			st.Apply(ctx, store.Patch{SleepLogs: &logs})
			fmt.Fprintf(cmd.OutOrStdout(), "%s %.1f hours of sleep\n", ui.IconHealth, hours)
			return nil
		},
	}
}

func newHealthShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show today's metrics and recent readings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHealth, "Health"))
			fmt.Fprintln(out, ui.LabelValue("Water", fmt.Sprintf("%d/%d cups", engine.WaterOn(doc.WaterLogs, today()), engine.WaterCupsPerDay)))
			for _, s := range doc.StepLogs {
				if s.Date == today() {
					fmt.Fprintln(out, ui.LabelValue("Steps", s.Steps))
				}
			}
			for _, s := range doc.SleepLogs {
				if s.Date == today() {
					fmt.Fprintln(out, ui.LabelValue("Sleep", fmt.Sprintf("%.1f h", s.Hours)))
				}
			}
			if len(doc.WeightHistory) > 0 {
				w := doc.WeightHistory[0]
				fmt.Fprintln(out, ui.LabelValue("Weight", fmt.Sprintf("%.1f kg (%s)", w.Weight, w.Date)))
			}
			if len(doc.BPLogs) > 0 {
				bp := doc.BPLogs[0]
				fmt.Fprintln(out, ui.LabelValue("Blood pressure", fmt.Sprintf("%d/%d (%s)", bp.Systolic, bp.Diastolic, bp.Date)))
			}
			if len(doc.OxygenLogs) > 0 {
				o := doc.OxygenLogs[0]
				fmt.Fprintln(out, ui.LabelValue("Blood oxygen", fmt.Sprintf("%d%% (%s)", o.Percentage, o.Date)))
			}
			if len(doc.HeartRateLogs) > 0 {
				h := doc.HeartRateLogs[0]
				fmt.Fprintln(out, ui.LabelValue("Heart rate", fmt.Sprintf("%d bpm (%s)", h.BPM, h.Date)))
			}
			if doc.HealthAnalysis != "" {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("Dr. Bear says"))
				fmt.Fprintln(out, doc.HealthAnalysis)
			}
			return nil
		},
	}
}

func newHealthAnalyzeCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Summarize recent health logs with the assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cfg, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			apiKey, err := st.APIKey(ctx)
			if err != nil {
				return err
			}
			if lang == "" {
				lang = cfg.Language
			}

			client := gemini.NewClient(apiKey, cfg.Model)
			analysis, err := client.AnalyzeHealth(ctx, st.Data(), lang)
			if err != nil {
				return fmt.Errorf("health analysis failed, please retry: %w", err)
			}

			st.Apply(ctx, store.Patch{HealthAnalysis: &analysis})
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconHealth, "Dr. Bear says"))
			fmt.Fprintln(cmd.OutOrStdout(), analysis)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Output language (default from config)")
	return cmd
}
