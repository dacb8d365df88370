package model

import "testing"

func TestParsePriority(t *testing.T) {
	cases := []struct {
		in   string
		want Priority
		ok   bool
	}{
		{"high", PriorityHigh, true},
		{"HIGH", PriorityHigh, true},
		{" medium ", PriorityMedium, true},
		{"low", PriorityLow, true},
		{"urgent", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, err := ParsePriority(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Fatalf("ParsePriority(%q) = %v, %v; want %v", c.in, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Fatalf("ParsePriority(%q) should fail", c.in)
		}
	}
}

func TestPriorityRankOrdering(t *testing.T) {
	if !(PriorityHigh.Rank() < PriorityMedium.Rank() && PriorityMedium.Rank() < PriorityLow.Rank()) {
		t.Fatalf("priority ranks out of order")
	}
}

func TestPlanScopeUnsetIsDaily(t *testing.T) {
	if !PlanScope("").IsDaily() {
		t.Fatalf("unset scope must count as daily")
	}
	if !ScopeDaily.IsDaily() || ScopeWeekly.IsDaily() {
		t.Fatalf("IsDaily misclassifies scopes")
	}
}

func TestNewIDUnique(t *testing.T) {
	a, b := NewID(), NewID()
	if a == "" || a == b {
		t.Fatalf("ids must be non-empty and unique")
	}
}
