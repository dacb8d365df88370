package engine

import (
	"sort"

	"lazybear/internal/model"
)

// SortTasks orders a day's bucket: completed last, then priority
// (HIGH before MEDIUM before LOW), then time-of-day when both tasks
// carry one. The sort is stable, so tasks equal on all three keys keep
// their input order. The input slice is not modified.
func SortTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if a.Priority != b.Priority {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		if a.Time != "" && b.Time != "" {
			return a.Time < b.Time
		}
		return false
	})
	return out
}

// TasksOn returns the sorted bucket for date, across all plan scopes.
func TasksOn(tasks []model.Task, date string) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return SortTasks(out)
}

// DailyTasksOn returns the sorted daily-scope bucket for date.
func DailyTasksOn(tasks []model.Task, date string) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.Date == date && t.PlanScope.IsDaily() {
			out = append(out, t)
		}
	}
	return SortTasks(out)
}

// ScopedGoals returns the sorted tasks of the given scope anchored to
// anchorDate (week start for weekly, month start for monthly).
func ScopedGoals(tasks []model.Task, scope model.PlanScope, anchorDate string) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.PlanScope == scope && t.Date == anchorDate {
			out = append(out, t)
		}
	}
	return SortTasks(out)
}
