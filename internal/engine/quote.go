package engine

import "time"

var quotes = []string{
	"Take it easy today.",
	"It's fine to rest for a bit.",
	"Go at your own pace.",
	"You're doing great!",
	"Drink some water and look after yourself.",
	"Good luck is coming your way ✨",
	"Breathe deep, relax.",
	"Daydreaming counts as serious business.",
	"Slow is fast.",
	"Add a little sweetness to your day.",
	"Another day full of energy!",
	"Every bit of effort pays off.",
	"Keep smiling and luck will follow.",
	"Just starting already makes you amazing.",
	"Live leisurely, like a lazy bear.",
	"Whatever happens, be kind to yourself.",
}

// QuoteOfDay rotates through the quote list by day of year, so the
// pick is stable across the day.
func QuoteOfDay(t time.Time) string {
	idx := (t.YearDay() + t.Year()) % len(quotes)
	return quotes[idx]
}
