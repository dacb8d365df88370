package engine

import (
	"testing"
	"time"

	"lazybear/internal/model"
)

type recordingNotifier struct {
	fired []string
}

func (r *recordingNotifier) Notify(title, body string) error {
	r.fired = append(r.fired, title)
	return nil
}

func remindDoc() model.AppData {
	return model.AppData{
		Tasks: []model.Task{
			{ID: "t1", Title: "Stretch", Date: "2024-07-10", Time: "09:00"},
			{ID: "t2", Title: "Done already", Date: "2024-07-10", Time: "09:00", Completed: true},
			{ID: "t3", Title: "Later", Date: "2024-07-10", Time: "14:30"},
			{ID: "t4", Title: "Weekly goal", Date: "2024-07-08", Time: "09:00", PlanScope: model.ScopeWeekly},
		},
		SpecialEvents: []model.SpecialEvent{
			{ID: "e1", Title: "Mom", Date: "2019-07-10", Type: model.EventBirthday},
			{ID: "e2", Title: "Off day", Date: "2024-08-01", Type: model.EventOther},
		},
	}
}

func TestDueRemindersAtEventTrigger(t *testing.T) {
	now := time.Date(2024, time.July, 10, 9, 0, 0, 0, time.UTC)
	due := DueReminders(remindDoc(), now)

	// The 09:00 minute carries both the timed task and the recurring
	// birthday; completed and non-daily tasks stay silent.
	if len(due) != 2 {
		t.Fatalf("got %d reminders, want 2: %v", len(due), due)
	}
	if due[0].Title != "Lazybear reminder: Stretch" {
		t.Fatalf("unexpected task reminder: %q", due[0].Title)
	}
	if due[1].Title != "✨ Mom" {
		t.Fatalf("unexpected event reminder: %q", due[1].Title)
	}
}

func TestDueRemindersOutsideEventTrigger(t *testing.T) {
	now := time.Date(2024, time.July, 10, 14, 30, 45, 0, time.UTC)
	due := DueReminders(remindDoc(), now)
	if len(due) != 1 || due[0].Title != "Lazybear reminder: Later" {
		t.Fatalf("14:30 should fire only the timed task, got %v", due)
	}
}

func TestPollerFiresOncePerMinute(t *testing.T) {
	doc := remindDoc()
	n := &recordingNotifier{}
	p := NewPoller(func() model.AppData { return doc }, n, nil, time.Second)

	clock := time.Date(2024, time.July, 10, 9, 0, 2, 0, time.UTC)
	p.now = func() time.Time { return clock }

	if fired := p.Tick(); len(fired) != 2 {
		t.Fatalf("first tick fired %d, want 2", len(fired))
	}
	// Same wall-clock minute, later second: nothing fires again.
	clock = clock.Add(30 * time.Second)
	if fired := p.Tick(); fired != nil {
		t.Fatalf("second tick in the same minute fired %v, want none", fired)
	}
	// Next minute has no due reminders.
	clock = clock.Add(time.Minute)
	if fired := p.Tick(); fired != nil {
		t.Fatalf("09:01 fired %v, want none", fired)
	}
	if len(n.fired) != 2 {
		t.Fatalf("notifier saw %d notifications, want 2", len(n.fired))
	}
}

func TestPollerSkippedMinuteIsNotBackfilled(t *testing.T) {
	doc := model.AppData{Tasks: []model.Task{
		{ID: "t", Title: "Missed", Date: "2024-07-10", Time: "09:01"},
	}}
	n := &recordingNotifier{}
	p := NewPoller(func() model.AppData { return doc }, n, nil, time.Second)

	clock := time.Date(2024, time.July, 10, 9, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return clock }
	p.Tick()

	// The process stalls past 09:01; the reminder is gone for good.
	clock = clock.Add(2 * time.Minute)
	if fired := p.Tick(); fired != nil {
		t.Fatalf("09:02 fired %v, want none", fired)
	}
	if len(n.fired) != 0 {
		t.Fatalf("missed minute should never fire")
	}
}
