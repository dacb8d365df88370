package engine

import (
	"testing"

	"lazybear/internal/model"
)

func TestAddWaterCupUpsertsAndCaps(t *testing.T) {
	var logs []model.WaterLog
	for i := 0; i < WaterCupsPerDay+3; i++ {
		logs = AddWaterCup(logs, "2024-07-10")
	}
	if len(logs) != 1 {
		t.Fatalf("got %d entries for one date, want 1", len(logs))
	}
	if logs[0].Cups != WaterCupsPerDay {
		t.Fatalf("cups = %d, want capped at %d", logs[0].Cups, WaterCupsPerDay)
	}

	logs = AddWaterCup(logs, "2024-07-11")
	if len(logs) != 2 || WaterOn(logs, "2024-07-11") != 1 {
		t.Fatalf("new date should append one entry with 1 cup")
	}
}

func TestSetStepsReplacesSameDate(t *testing.T) {
	logs := SetSteps(nil, "2024-07-10", 4000)
	logs = SetSteps(logs, "2024-07-10", 9000)
	if len(logs) != 1 {
		t.Fatalf("got %d entries, want 1", len(logs))
	}
	if logs[0].Steps != 9000 {
		t.Fatalf("steps = %d, want the replacement value", logs[0].Steps)
	}
}

func TestSetSleepKeepsIDOnUpdate(t *testing.T) {
	logs := SetSleep(nil, "2024-07-10", 6.5)
	id := logs[0].ID
	logs = SetSleep(logs, "2024-07-10", 8)
	if len(logs) != 1 || logs[0].ID != id {
		t.Fatalf("updating the same date must keep the entry's id")
	}
	if logs[0].Hours != 8 {
		t.Fatalf("hours = %v, want 8", logs[0].Hours)
	}
}

func TestReadingHistoriesPrependNewest(t *testing.T) {
	weights := AddWeight(nil, "2024-07-01", 70)
	weights = AddWeight(weights, "2024-07-08", 69.5)
	if len(weights) != 2 || weights[0].Date != "2024-07-08" {
		t.Fatalf("weight history should grow newest-first")
	}

	bp := AddBloodPressure(nil, "2024-07-01", 120, 80)
	bp = AddBloodPressure(bp, "2024-07-02", 118, 78)
	if bp[0].Systolic != 118 {
		t.Fatalf("blood pressure history should grow newest-first")
	}

	hr := AddHeartRate(nil, "2024-07-01", 62)
	hr = AddHeartRate(hr, "2024-07-02", 65)
	if hr[0].BPM != 65 {
		t.Fatalf("heart rate history should grow newest-first")
	}

	ox := AddBloodOxygen(nil, "2024-07-01", 98)
	ox = AddBloodOxygen(ox, "2024-07-02", 97)
	if ox[0].Percentage != 97 {
		t.Fatalf("oxygen history should grow newest-first")
	}
}

func TestLogHelpersDoNotMutateInput(t *testing.T) {
	in := []model.WaterLog{{Date: "2024-07-10", Cups: 3}}
	_ = AddWaterCup(in, "2024-07-10")
	if in[0].Cups != 3 {
		t.Fatalf("AddWaterCup mutated its input")
	}
}
