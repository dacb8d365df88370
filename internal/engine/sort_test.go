package engine

import (
	"testing"

	"lazybear/internal/model"
)

func TestSortTasksOrdering(t *testing.T) {
	tasks := []model.Task{
		{ID: "done-high", Title: "done", Completed: true, Priority: model.PriorityHigh},
		{ID: "low", Priority: model.PriorityLow},
		{ID: "high-late", Priority: model.PriorityHigh, Time: "18:00"},
		{ID: "high-early", Priority: model.PriorityHigh, Time: "08:00"},
		{ID: "medium", Priority: model.PriorityMedium},
	}

	got := SortTasks(tasks)
	want := []string{"high-early", "high-late", "medium", "low", "done-high"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
	// Input untouched.
	if tasks[0].ID != "done-high" {
		t.Fatalf("SortTasks mutated its input")
	}
}

func TestSortTasksStableOnTies(t *testing.T) {
	// Same completion and priority, only one has a time: order preserved.
	tasks := []model.Task{
		{ID: "a", Priority: model.PriorityMedium, Time: "09:00"},
		{ID: "b", Priority: model.PriorityMedium},
		{ID: "c", Priority: model.PriorityMedium, Time: "07:00"},
	}
	got := SortTasks(tasks)
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d = %s, want %s (times compare only when both set)", i, got[i].ID, id)
		}
	}
}

func TestDailyTasksOnFiltersScope(t *testing.T) {
	tasks := []model.Task{
		{ID: "d1", Date: "2024-07-10"},
		{ID: "legacy", Date: "2024-07-10", PlanScope: ""},
		{ID: "w1", Date: "2024-07-10", PlanScope: model.ScopeWeekly},
		{ID: "other-day", Date: "2024-07-11"},
	}
	got := DailyTasksOn(tasks, "2024-07-10")
	if len(got) != 2 {
		t.Fatalf("got %d tasks, want 2 (unset scope counts as daily)", len(got))
	}
	for _, task := range got {
		if task.ID == "w1" {
			t.Fatalf("weekly goal leaked into daily bucket")
		}
	}
}

func TestScopedGoalsAnchoring(t *testing.T) {
	tasks := []model.Task{
		{ID: "wk", Date: "2024-07-08", PlanScope: model.ScopeWeekly},
		{ID: "wk-other", Date: "2024-07-15", PlanScope: model.ScopeWeekly},
		{ID: "mo", Date: "2024-07-01", PlanScope: model.ScopeMonthly},
	}
	got := ScopedGoals(tasks, model.ScopeWeekly, "2024-07-08")
	if len(got) != 1 || got[0].ID != "wk" {
		t.Fatalf("ScopedGoals = %v, want just wk", got)
	}
}
