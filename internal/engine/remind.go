package engine

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"lazybear/internal/model"
)

// EventTriggerTime is the fixed minute at which recurring events fire.
const EventTriggerTime = "09:00"

// Notifier is the platform notification boundary. Implementations
// without the capability silently no-op.
type Notifier interface {
	Notify(title, body string) error
}

// Reminder is one notification attempt.
type Reminder struct {
	Title string
	Body  string
}

// DueReminders evaluates the two reminder triggers for now's minute:
// incomplete daily-scope tasks dated today whose time equals the
// current minute, plus (only at the fixed 09:00 trigger) every
// recurring event whose month-day matches today.
func DueReminders(doc model.AppData, now time.Time) []Reminder {
	minute := now.Format("15:04")
	today := DateString(now)

	var out []Reminder
	for _, t := range doc.Tasks {
		if t.PlanScope.IsDaily() && !t.Completed && t.Date == today && t.Time == minute {
			body := t.Description
			if body == "" {
				body = "Time to get this one done!"
			}
			out = append(out, Reminder{Title: "Lazybear reminder: " + t.Title, Body: body})
		}
	}

	if minute == EventTriggerTime {
		monthDay := MonthDay(today)
		for _, e := range doc.SpecialEvents {
			if MonthDay(e.Date) == monthDay {
				out = append(out, Reminder{Title: "✨ " + e.Title, Body: eventBody(e.Type)})
			}
		}
	}
	return out
}

func eventBody(t model.EventType) string {
	switch t {
	case model.EventBirthday:
		return "Happy birthday! Don't forget the cake 🎂"
	case model.EventHoliday:
		return "Happy holiday! Go celebrate 🎉"
	default:
		return "Today is a special day!"
	}
}

// Poller drives the reminder check against wall-clock time. It ticks
// at sub-minute granularity but evaluates each wall-clock minute at
// most once; a missed minute is permanently missed, never backfilled.
type Poller struct {
	data       func() model.AppData
	notifier   Notifier
	log        *logrus.Logger
	interval   time.Duration
	now        func() time.Time
	lastMinute string
}

func NewPoller(data func() model.AppData, n Notifier, log *logrus.Logger, interval time.Duration) *Poller {
	if log == nil {
		log = logrus.New()
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Poller{
		data:     data,
		notifier: n,
		log:      log,
		interval: interval,
		now:      time.Now,
	}
}

// Tick runs one poll step and returns the reminders fired. Repeat
// calls within the same minute return nothing.
func (p *Poller) Tick() []Reminder {
	now := p.now()
	minute := now.Format("15:04")
	if minute == p.lastMinute {
		return nil
	}
	p.lastMinute = minute

	due := DueReminders(p.data(), now)
	for _, r := range due {
		if err := p.notifier.Notify(r.Title, r.Body); err != nil {
			p.log.WithError(err).Warn("notification failed")
		} else {
			p.log.WithField("title", r.Title).Info("reminder fired")
		}
	}
	return due
}

// Run polls until ctx is cancelled. The ticker is torn down on return,
// and Run owns the only ticker, so reminders can never double-fire.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Tick()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.Tick()
		}
	}
}
