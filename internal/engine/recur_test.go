package engine

import (
	"testing"

	"lazybear/internal/model"
)

func TestMatchesDateRecursYearly(t *testing.T) {
	anniv := model.SpecialEvent{ID: "a", Title: "First date", Date: "2024-03-15", Type: model.EventAnniversary}

	for _, d := range []string{"2024-03-15", "2025-03-15", "2030-03-15"} {
		if !MatchesDate(anniv, d) {
			t.Fatalf("anniversary should match %s", d)
		}
	}
	if MatchesDate(anniv, "2025-03-16") {
		t.Fatalf("anniversary must not match a different month-day")
	}
}

func TestMatchesDateHolidayExactPath(t *testing.T) {
	holiday := model.SpecialEvent{ID: "h", Title: "Christmas", Date: "2024-12-25", Type: model.EventHoliday}

	if !MatchesDate(holiday, "2024-12-25") {
		t.Fatalf("holiday should match its exact date")
	}
	if !MatchesDate(holiday, "2026-12-25") {
		t.Fatalf("holiday should also recur by month-day")
	}
	if MatchesDate(holiday, "2024-12-24") {
		t.Fatalf("holiday must not match a different day")
	}
}

func TestEventGlyphPrecedence(t *testing.T) {
	birthday := model.SpecialEvent{Title: "Mom", Type: model.EventBirthday}
	christmas := model.SpecialEvent{Title: "Christmas Eve", Type: model.EventHoliday}
	anniv := model.SpecialEvent{Title: "Us", Type: model.EventAnniversary}
	other := model.SpecialEvent{Title: "Hmm", Type: model.EventOther}

	cases := []struct {
		name   string
		events []model.SpecialEvent
		want   string
	}{
		{"empty", nil, ""},
		{"birthday wins", []model.SpecialEvent{christmas, birthday}, "🎂"},
		{"christmas keyword", []model.SpecialEvent{christmas}, "🎅"},
		{"halloween keyword", []model.SpecialEvent{{Title: "万圣节", Type: model.EventHoliday}}, "🎃"},
		{"valentine keyword", []model.SpecialEvent{{Title: "Valentine's Day", Type: model.EventHoliday}}, "🌹"},
		{"new year keyword", []model.SpecialEvent{{Title: "New Year", Type: model.EventHoliday}}, "🧧"},
		{"generic holiday", []model.SpecialEvent{{Title: "Midsummer", Type: model.EventHoliday}}, "🎉"},
		{"anniversary", []model.SpecialEvent{other, anniv}, "❤️"},
		{"fallback sparkle", []model.SpecialEvent{other}, "✨"},
	}
	for _, c := range cases {
		if got := EventGlyph(c.events); got != c.want {
			t.Fatalf("%s: glyph = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestEventsOnKeepsInputOrder(t *testing.T) {
	events := []model.SpecialEvent{
		{ID: "1", Date: "2024-05-01", Type: model.EventOther},
		{ID: "2", Date: "2023-05-01", Type: model.EventBirthday},
		{ID: "3", Date: "2024-05-02", Type: model.EventOther},
	}
	got := EventsOn(events, "2025-05-01")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("EventsOn = %v, want ids 1,2 in order", got)
	}
}
