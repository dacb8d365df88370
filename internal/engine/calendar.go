package engine

import "time"

// DateLayout is the calendar-date form used everywhere in the
// document: "YYYY-MM-DD". Bucketing compares these strings directly.
const DateLayout = "2006-01-02"

func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// MonthDay returns the "MM-DD" part of a date string, used for
// recurring matches that ignore the year.
func MonthDay(date string) string {
	if len(date) < 10 {
		return ""
	}
	return date[5:10]
}

// StartOfWeek returns the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// WeekDates returns the 7-day Monday-start span containing anchor.
func WeekDates(anchor time.Time) []time.Time {
	start := StartOfWeek(anchor)
	out := make([]time.Time, 7)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

// MonthGrid returns the full weeks covering anchor's month as a
// Monday-start grid. Cells outside the month are nil placeholders;
// the result length is always a multiple of 7.
func MonthGrid(anchor time.Time) []*time.Time {
	first := StartOfMonth(anchor)
	last := first.AddDate(0, 1, -1)
	lead := (int(first.Weekday()) + 6) % 7

	grid := make([]*time.Time, 0, lead+last.Day())
	for i := 0; i < lead; i++ {
		grid = append(grid, nil)
	}
	for day := 1; day <= last.Day(); day++ {
		d := time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, anchor.Location())
		grid = append(grid, &d)
	}
	for len(grid)%7 != 0 {
		grid = append(grid, nil)
	}
	return grid
}
