package engine

import (
	"testing"

	"lazybear/internal/model"
)

func TestToggleTaskFlipsAndCopies(t *testing.T) {
	in := []model.Task{{ID: "a"}, {ID: "b"}}
	out := ToggleTask(in, "a")
	if !out[0].Completed {
		t.Fatalf("toggle should flip completion")
	}
	if in[0].Completed {
		t.Fatalf("ToggleTask mutated its input")
	}
	out = ToggleTask(out, "a")
	if out[0].Completed {
		t.Fatalf("second toggle should flip back")
	}
}

func TestAddSubTaskOnMissingParentIsNoop(t *testing.T) {
	in := []model.Task{{ID: "a"}}
	out := AddSubTask(in, "nope", "x")
	if len(out) != 1 || len(out[0].SubTasks) != 0 {
		t.Fatalf("missing parent should leave tasks unchanged")
	}
}

func TestAddAndToggleSubTask(t *testing.T) {
	tasks := []model.Task{{ID: "a"}}
	tasks = AddSubTask(tasks, "a", "first")
	tasks = AddSubTask(tasks, "a", "second")
	if len(tasks[0].SubTasks) != 2 {
		t.Fatalf("got %d subtasks, want 2", len(tasks[0].SubTasks))
	}
	subID := tasks[0].SubTasks[1].ID
	tasks = ToggleSubTask(tasks, "a", subID)
	if !tasks[0].SubTasks[1].Completed || tasks[0].SubTasks[0].Completed {
		t.Fatalf("only the addressed subtask should toggle")
	}
}

func TestPayBillIsOneWay(t *testing.T) {
	bills := []model.Bill{{ID: "b", Title: "Rent"}}
	bills = PayBill(bills, "b")
	if !bills[0].Paid {
		t.Fatalf("PayBill should set paid")
	}
	bills = PayBill(bills, "b")
	if !bills[0].Paid {
		t.Fatalf("paying again must not unset the flag")
	}
}

func TestUseCouponIsOneWay(t *testing.T) {
	coupons := []model.Coupon{{ID: "c"}}
	coupons = UseCoupon(coupons, "c")
	coupons = UseCoupon(coupons, "c")
	if !coupons[0].Used {
		t.Fatalf("used flag must stay set")
	}
}

func TestMoveChecklistItem(t *testing.T) {
	lists := []model.Checklist{{
		ID: "l",
		Items: []model.ChecklistItem{
			{ID: "1", Text: "one"},
			{ID: "2", Text: "two"},
			{ID: "3", Text: "three"},
		},
	}}

	moved := MoveChecklistItem(lists, "l", 0, 1)
	if moved[0].Items[0].ID != "2" || moved[0].Items[1].ID != "1" {
		t.Fatalf("move down should swap adjacent items")
	}

	// Out-of-range moves are no-ops.
	same := MoveChecklistItem(lists, "l", 0, -1)
	if same[0].Items[0].ID != "1" {
		t.Fatalf("moving the first item up should do nothing")
	}
	same = MoveChecklistItem(lists, "l", 2, 1)
	if same[0].Items[2].ID != "3" {
		t.Fatalf("moving the last item down should do nothing")
	}
}

func TestDeleteByID(t *testing.T) {
	notes := []model.Note{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	got := DeleteByID(notes, "b", func(n model.Note) string { return n.ID })
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("DeleteByID = %v, want a and c", got)
	}
	if len(notes) != 3 {
		t.Fatalf("DeleteByID mutated its input")
	}
}
