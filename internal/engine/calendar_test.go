package engine

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeekIsMonday(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{date(2024, time.July, 10), "2024-07-08"}, // Wednesday
		{date(2024, time.July, 8), "2024-07-08"},  // Monday itself
		{date(2024, time.July, 14), "2024-07-08"}, // Sunday belongs to the prior Monday
		{date(2024, time.January, 1), "2024-01-01"},
	}
	for _, c := range cases {
		got := DateString(StartOfWeek(c.in))
		if got != c.want {
			t.Fatalf("StartOfWeek(%s) = %s, want %s", DateString(c.in), got, c.want)
		}
		if StartOfWeek(c.in).Weekday() != time.Monday {
			t.Fatalf("StartOfWeek(%s) is not a Monday", DateString(c.in))
		}
	}
}

func TestWeekDatesSpansSevenDays(t *testing.T) {
	days := WeekDates(date(2024, time.July, 10))
	if len(days) != 7 {
		t.Fatalf("got %d days, want 7", len(days))
	}
	if DateString(days[0]) != "2024-07-08" || DateString(days[6]) != "2024-07-14" {
		t.Fatalf("week span %s..%s, want 2024-07-08..2024-07-14", DateString(days[0]), DateString(days[6]))
	}
}

func TestMonthGridAlignment(t *testing.T) {
	// July 2024 starts on a Monday: no leading placeholders, 31 days,
	// padded to 35 cells.
	grid := MonthGrid(date(2024, time.July, 15))
	if len(grid) != 35 {
		t.Fatalf("July 2024 grid has %d cells, want 35", len(grid))
	}
	if grid[0] == nil || DateString(*grid[0]) != "2024-07-01" {
		t.Fatalf("July 2024 grid should start on the 1st")
	}
	for i := 31; i < 35; i++ {
		if grid[i] != nil {
			t.Fatalf("cell %d should be a trailing placeholder", i)
		}
	}

	// September 2024 starts on a Sunday: six leading placeholders.
	grid = MonthGrid(date(2024, time.September, 1))
	if len(grid)%7 != 0 {
		t.Fatalf("grid length %d is not a multiple of 7", len(grid))
	}
	for i := 0; i < 6; i++ {
		if grid[i] != nil {
			t.Fatalf("cell %d should be a leading placeholder", i)
		}
	}
	if grid[6] == nil || DateString(*grid[6]) != "2024-09-01" {
		t.Fatalf("September 1st should land in the Sunday column")
	}
}

func TestMonthDay(t *testing.T) {
	if got := MonthDay("2024-12-25"); got != "12-25" {
		t.Fatalf("MonthDay = %q, want 12-25", got)
	}
	if got := MonthDay("bogus"); got != "" {
		t.Fatalf("MonthDay on short input = %q, want empty", got)
	}
}
