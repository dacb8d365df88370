package store

import "lazybear/internal/model"

// Seed special events. These carry stable ids so the loader can union
// them back in without duplicating ones already present.
const (
	SeedNewYear   = "seed-new-year"
	SeedValentine = "seed-valentine"
	SeedHalloween = "seed-halloween"
	SeedChristmas = "seed-christmas"
)

// SeedEvents returns the fixed recurring-holiday list that every
// loaded document is guaranteed to contain.
func SeedEvents() []model.SpecialEvent {
	return []model.SpecialEvent{
		{ID: SeedNewYear, Title: "New Year's Day", Date: "2024-01-01", Type: model.EventHoliday},
		{ID: SeedValentine, Title: "Valentine's Day", Date: "2024-02-14", Type: model.EventHoliday},
		{ID: SeedHalloween, Title: "Halloween", Date: "2024-10-31", Type: model.EventHoliday},
		{ID: SeedChristmas, Title: "Christmas", Date: "2024-12-25", Type: model.EventHoliday},
	}
}

// DefaultData is the schema-complete empty document. Every collection
// is present (and non-nil) so the shallow merge in Load can backfill
// fields added after a user's data was first saved.
func DefaultData() model.AppData {
	return model.AppData{
		Tasks:         []model.Task{},
		WeightHistory: []model.WeightEntry{},
		WaterLogs:     []model.WaterLog{},
		StepLogs:      []model.StepLog{},
		BPLogs:        []model.BloodPressureLog{},
		OxygenLogs:    []model.BloodOxygenLog{},
		HeartRateLogs: []model.HeartRateLog{},
		SleepLogs:     []model.SleepLog{},
		Bills:         []model.Bill{},
		Coupons:       []model.Coupon{},
		Checklists:    []model.Checklist{},
		Restaurants:   []model.Restaurant{},
		Trips:         []model.Trip{},
		SpecialEvents: SeedEvents(),
		Notes:         []model.Note{},
		Theme:         model.ThemeOriginal,
	}
}
