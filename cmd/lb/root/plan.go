package root

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lazybear/internal/engine"
	"lazybear/internal/gemini"
	"lazybear/internal/model"
	"lazybear/internal/store"
	"lazybear/internal/ui"
)

func newPlanCmd() *cobra.Command {
	var date, lang string

	cmd := &cobra.Command{
		Use:   "plan <free text>",
		Short: "Turn a brain dump into structured tasks",
		Long:  "Sends your free-text plan for the day to the generative API and appends the structured tasks it returns. Requires an API key (`lb config key`).",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("plan text is required")
			}
			return nil
		},
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
			if date == "" {
				date = engine.DateString(time.Now())
			} else if _, err := engine.ParseDate(date); err != nil {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
			}

			client := gemini.NewClient(apiKey, cfg.Model)
			planned, err := client.GeneratePlan(ctx, strings.Join(args, " "), date, lang)
			if err != nil {
				return fmt.Errorf("plan generation failed, please retry: %w", err)
			}
			if len(planned) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Dim.Render("The assistant returned no tasks."))
				return nil
			}

			doc := st.Data()
			tasks := append(append([]model.Task{}, doc.Tasks...), planned...)
			st.Apply(ctx, store.Patch{Tasks: &tasks})

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSun, fmt.Sprintf("Planned %d tasks for %s", len(planned), date)))
			printTasks(cmd.OutOrStdout(), engine.SortTasks(planned))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to plan for (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&lang, "lang", "", "Output language (default from config)")

	return cmd
}

func newTaskBreakdownCmd() *cobra.Command {
	var apply bool
	var lang string

	cmd := &cobra.Command{
		Use:   "breakdown <id>",
		Short: "Suggest subtasks for a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cfg, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Tasks, func(t model.Task) string { return t.ID }, args[0])
			if err != nil {
				return err
			}
			task, _ := engine.FindTask(doc.Tasks, id)

			apiKey, err := st.APIKey(ctx)
			if err != nil {
				return err
			}
			if lang == "" {
				lang = cfg.Language
			}

			client := gemini.NewClient(apiKey, cfg.Model)
			titles, err := client.SuggestSubtasks(ctx, task.Title, lang)
			if err != nil {
				return fmt.Errorf("subtask suggestion failed, please retry: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTask, "Suggested subtasks for "+task.Title))
			for _, title := range titles {
				fmt.Fprintf(cmd.OutOrStdout(), "  • %s\n", title)
			}
			if !apply {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Dim.Render(ui.IconInfo+" Re-run with --apply to attach them."))
				return nil
			}

			tasks := doc.Tasks
			for _, title := range titles {
				tasks = engine.AddSubTask(tasks, id, title)
			}
			st.Apply(ctx, store.Patch{Tasks: &tasks})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Attached %d subtasks.\n", ui.IconDone, len(titles))
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Attach the suggestions to the task")
	cmd.Flags().StringVar(&lang, "lang", "", "Output language (default from config)")

	return cmd
}
