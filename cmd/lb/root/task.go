package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lazybear/internal/engine"
	"lazybear/internal/model"
	"lazybear/internal/store"
	"lazybear/internal/ui"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks and goals",
	}
	cmd.AddCommand(
		newTaskAddCmd(),
		newTaskListCmd(),
		newTaskDoneCmd(),
		newTaskRmCmd(),
		newTaskSubCmd(),
		newTaskTickCmd(),
		newTaskBreakdownCmd(),
	)
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var date, timeOfDay, priority, scope, category, desc string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task (or weekly/monthly goal)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return errors.New("title is required")
			}

			p, err := model.ParsePriority(priority)
			if err != nil {
				return err
			}
			sc, err := model.ParsePlanScope(scope)
			if err != nil {
				return err
			}

			day := time.Now()
			if date != "" {
				day, err = engine.ParseDate(date)
				if err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
				}
			}
			// Weekly and monthly goals anchor to the span start, not a
			// specific day.
			switch sc {
			case model.ScopeWeekly:
				day = engine.StartOfWeek(day)
			case model.ScopeMonthly:
				day = engine.StartOfMonth(day)
			}

			if timeOfDay != "" {
				if _, err := time.Parse("15:04", timeOfDay); err != nil {
					return fmt.Errorf("invalid time %q (want HH:MM)", timeOfDay)
				}
			}

			task := model.Task{
				ID:          model.NewID(),
				Title:       title,
				Description: desc,
				Time:        timeOfDay,
				Date:        engine.DateString(day),
				Priority:    p,
				SubTasks:    []model.SubTask{},
				Category:    category,
				PlanScope:   sc,
			}
			tasks := append(append([]model.Task{}, st.Data().Tasks...), task)
			st.Apply(ctx, store.Patch{Tasks: &tasks})

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s\n", ui.IconTask, ui.Key.Render(shortID(task.ID)), title)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&timeOfDay, "time", "t", "", "Time of day (HH:MM)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (high|medium|low)")
	cmd.Flags().StringVarP(&scope, "scope", "s", "daily", "Plan scope (daily|weekly|monthly)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description")

	return cmd
}

func newTaskListCmd() *cobra.Command {
	var date string
	var week, month bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks for a day, week, or month",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			anchor := time.Now()
			if date != "" {
				anchor, err = engine.ParseDate(date)
				if err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
				}
			}
			doc := st.Data()
			out := cmd.OutOrStdout()

			switch {
			case month:
				start := engine.StartOfMonth(anchor)
				fmt.Fprintln(out, ui.Heading(ui.IconCalendar, anchor.Format("January 2006")))
				for _, cell := range engine.MonthGrid(anchor) {
					if cell == nil {
						continue
					}
					dayStr := engine.DateString(*cell)
					tasks := engine.TasksOn(doc.Tasks, dayStr)
					glyph := engine.EventGlyph(engine.EventsOn(doc.SpecialEvents, dayStr))
					if len(tasks) == 0 && glyph == "" {
						continue
					}
					fmt.Fprintf(out, "%s %s\n", ui.H2.Render(cell.Format("Mon Jan 2")), glyph)
					printTasks(out, tasks)
				}
				goals := engine.ScopedGoals(doc.Tasks, model.ScopeMonthly, engine.DateString(start))
				if len(goals) > 0 {
					fmt.Fprintln(out, ui.H2.Render("Monthly goals"))
					printTasks(out, goals)
				}
			case week:
				days := engine.WeekDates(anchor)
				fmt.Fprintln(out, ui.Heading(ui.IconCalendar,
					fmt.Sprintf("%s – %s", days[0].Format("Jan 2"), days[6].Format("Jan 2"))))
				for _, day := range days {
					dayStr := engine.DateString(day)
					tasks := engine.TasksOn(doc.Tasks, dayStr)
					glyph := engine.EventGlyph(engine.EventsOn(doc.SpecialEvents, dayStr))
					fmt.Fprintf(out, "%s %s\n", ui.H2.Render(day.Format("Mon Jan 2")), glyph)
					if len(tasks) == 0 {
						fmt.Fprintln(out, ui.Dim.Render("  nothing planned"))
						continue
					}
					printTasks(out, tasks)
				}
				goals := engine.ScopedGoals(doc.Tasks, model.ScopeWeekly, engine.DateString(days[0]))
				if len(goals) > 0 {
					fmt.Fprintln(out, ui.H2.Render("Weekly goals"))
					printTasks(out, goals)
				}
			default:
				dayStr := engine.DateString(anchor)
				fmt.Fprintln(out, ui.Heading(ui.IconSun, anchor.Format("Monday, January 2")))
				if dayStr == engine.DateString(time.Now()) {
					fmt.Fprintln(out, ui.Muted.Render(engine.QuoteOfDay(anchor)))
					cups := engine.WaterOn(doc.WaterLogs, dayStr)
					fmt.Fprintf(out, "%s %d/%d cups\n", ui.IconWater, cups, engine.WaterCupsPerDay)
				}
				tasks := engine.DailyTasksOn(doc.Tasks, dayStr)
				if len(tasks) == 0 {
					fmt.Fprintln(out, ui.Dim.Render("No tasks — add one with `lb task add`."))
					return nil
				}
				printTasks(out, tasks)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Anchor date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVarP(&week, "week", "w", false, "Show the Monday-start week")
	cmd.Flags().BoolVarP(&month, "month", "m", false, "Show the whole month")

	return cmd
}

func printTasks(out io.Writer, tasks []model.Task) {
	for _, t := range tasks {
		line := fmt.Sprintf("  %s %s %s %s", ui.Checkbox(t.Completed), ui.Muted.Render(shortID(t.ID)), ui.PriorityText(t.Priority), t.Title)
		if t.Time != "" {
			line += ui.Muted.Render(" @" + t.Time)
		}
		if t.Category != "" {
			line += ui.Dim.Render(" #" + t.Category)
		}
		fmt.Fprintln(out, line)
		for _, s := range t.SubTasks {
			fmt.Fprintf(out, "      %s %s %s\n", ui.Checkbox(s.Completed), ui.Muted.Render(shortID(s.ID)), s.Title)
		}
	}
}

func newTaskDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Tasks, func(t model.Task) string { return t.ID }, args[0])
			if err != nil {
				return err
			}
			tasks := engine.ToggleTask(doc.Tasks, id)
			st.Apply(ctx, store.Patch{Tasks: &tasks})

			t, _ := engine.FindTask(tasks, id)
			state := "reopened"
			if t.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", ui.IconDone, state, t.Title)
			return nil
		},
	}
	return cmd
}

func newTaskRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Tasks, func(t model.Task) string { return t.ID }, args[0])
			if err != nil {
				return err
			}
			tasks := engine.DeleteTask(doc.Tasks, id)
			st.Apply(ctx, store.Patch{Tasks: &tasks})
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", ui.Muted.Render(shortID(id)))
			return nil
		},
	}
	return cmd
}

func newTaskSubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub <task-id> <title>",
		Short: "Add a subtask",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Tasks, func(t model.Task) string { return t.ID }, args[0])
			if err != nil {
				return err
			}
			title := strings.TrimSpace(strings.Join(args[1:], " "))
			if title == "" {
				return errors.New("subtask title is required")
			}
			tasks := engine.AddSubTask(doc.Tasks, id, title)
			st.Apply(ctx, store.Patch{Tasks: &tasks})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added subtask to %s\n", ui.IconTask, ui.Muted.Render(shortID(id)))
			return nil
		},
	}
	return cmd
}

func newTaskTickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tick <task-id> <subtask-id>",
		Short: "Toggle a subtask",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := st.Data()
			id, err := resolveID(doc.Tasks, func(t model.Task) string { return t.ID }, args[0])
			if err != nil {
				return err
			}
			t, _ := engine.FindTask(doc.Tasks, id)
			subID, err := resolveID(t.SubTasks, func(s model.SubTask) string { return s.ID }, args[1])
			if err != nil {
				return err
			}
			tasks := engine.ToggleSubTask(doc.Tasks, id, subID)
			st.Apply(ctx, store.Patch{Tasks: &tasks})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Toggled subtask %s\n", ui.IconDone, ui.Muted.Render(shortID(subID)))
			return nil
		},
	}
	return cmd
}
