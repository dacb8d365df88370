package engine

import "lazybear/internal/model"

// Cumulative logs (water, steps, sleep) hold at most one authoritative
// entry per calendar date: adding again for the same date replaces the
// entry. Point-in-time readings (weight, blood pressure, oxygen, heart
// rate) are append-only history with the newest entry first. All
// helpers return new slices; the input is never mutated.

// WaterCupsPerDay caps the daily water tracker.
const WaterCupsPerDay = 8

func AddWaterCup(logs []model.WaterLog, date string) []model.WaterLog {
	for i, l := range logs {
		if l.Date == date {
			out := make([]model.WaterLog, len(logs))
			copy(out, logs)
			if out[i].Cups < WaterCupsPerDay {
				out[i].Cups++
			}
			return out
		}
	}
	out := make([]model.WaterLog, 0, len(logs)+1)
	out = append(out, logs...)
	return append(out, model.WaterLog{Date: date, Cups: 1})
}

func WaterOn(logs []model.WaterLog, date string) int {
	for _, l := range logs {
		if l.Date == date {
			return l.Cups
		}
	}
	return 0
}

func SetSteps(logs []model.StepLog, date string, steps int) []model.StepLog {
	for i, l := range logs {
		if l.Date == date {
			out := make([]model.StepLog, len(logs))
			copy(out, logs)
			out[i].Steps = steps
			return out
		}
	}
	out := make([]model.StepLog, 0, len(logs)+1)
	out = append(out, logs...)
	return append(out, model.StepLog{Date: date, Steps: steps})
}

func SetSleep(logs []model.SleepLog, date string, hours float64) []model.SleepLog {
	for i, l := range logs {
		if l.Date == date {
			out := make([]model.SleepLog, len(logs))
			copy(out, logs)
			out[i].Hours = hours
			return out
		}
	}
	out := make([]model.SleepLog, 0, len(logs)+1)
	out = append(out, logs...)
	return append(out, model.SleepLog{ID: model.NewID(), Date: date, Hours: hours})
}

func AddWeight(history []model.WeightEntry, date string, weight float64) []model.WeightEntry {
	out := make([]model.WeightEntry, 0, len(history)+1)
	out = append(out, model.WeightEntry{ID: model.NewID(), Date: date, Weight: weight})
	return append(out, history...)
}

func AddBloodPressure(logs []model.BloodPressureLog, date string, systolic, diastolic int) []model.BloodPressureLog {
	out := make([]model.BloodPressureLog, 0, len(logs)+1)
	out = append(out, model.BloodPressureLog{ID: model.NewID(), Date: date, Systolic: systolic, Diastolic: diastolic})
	return append(out, logs...)
}

func AddBloodOxygen(logs []model.BloodOxygenLog, date string, percentage int) []model.BloodOxygenLog {
	out := make([]model.BloodOxygenLog, 0, len(logs)+1)
	out = append(out, model.BloodOxygenLog{ID: model.NewID(), Date: date, Percentage: percentage})
	return append(out, logs...)
}

func AddHeartRate(logs []model.HeartRateLog, date string, bpm int) []model.HeartRateLog {
	out := make([]model.HeartRateLog, 0, len(logs)+1)
	out = append(out, model.HeartRateLog{ID: model.NewID(), Date: date, BPM: bpm})
	return append(out, logs...)
}
