package engine

import (
	"strings"

	"lazybear/internal/model"
)

// MatchesDate reports whether an event fires on date. Holiday-typed
// events match by exact date (explicitly dated instances) or by
// month-day (annual recurrence); every other type matches by month-day
// only, ignoring the year.
func MatchesDate(e model.SpecialEvent, date string) bool {
	if e.Type == model.EventHoliday && e.Date == date {
		return true
	}
	return MonthDay(e.Date) != "" && MonthDay(e.Date) == MonthDay(date)
}

// EventsOn returns every event that fires on date, in input order.
func EventsOn(events []model.SpecialEvent, date string) []model.SpecialEvent {
	var out []model.SpecialEvent
	for _, e := range events {
		if MatchesDate(e, date) {
			out = append(out, e)
		}
	}
	return out
}

// EventGlyph picks the single display glyph for a match set. The set
// may contain several events; precedence is birthday, then holiday
// (with keyword sub-precedence), then anniversary, then a generic
// sparkle. Returns "" for an empty set.
func EventGlyph(events []model.SpecialEvent) string {
	if len(events) == 0 {
		return ""
	}
	var holiday, anniversary *model.SpecialEvent
	for i := range events {
		switch events[i].Type {
		case model.EventBirthday:
			return "🎂"
		case model.EventHoliday:
			if holiday == nil {
				holiday = &events[i]
			}
		case model.EventAnniversary:
			if anniversary == nil {
				anniversary = &events[i]
			}
		}
	}
	if holiday != nil {
		return holidayGlyph(holiday.Title)
	}
	if anniversary != nil {
		return "❤️"
	}
	return "✨"
}

// holidayGlyph keys off the title. The keyword lists cover the English
// and Chinese names the documents are known to contain.
func holidayGlyph(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "christmas"), strings.Contains(t, "圣诞"):
		return "🎅"
	case strings.Contains(t, "halloween"), strings.Contains(t, "万圣"):
		return "🎃"
	case strings.Contains(t, "valentine"), strings.Contains(t, "情人"):
		return "🌹"
	case strings.Contains(t, "new year"), strings.Contains(t, "年"):
		return "🧧"
	default:
		return "🎉"
	}
}
