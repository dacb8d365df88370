package engine

import "lazybear/internal/model"

// Copy-on-write mutations over document collections. Each returns a
// new slice with one element replaced, appended, or filtered out.

func ToggleTask(tasks []model.Task, id string) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
		}
	}
	return out
}

func UpdateTask(tasks []model.Task, updated model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID == updated.ID {
			out[i] = updated
		}
	}
	return out
}

func DeleteTask(tasks []model.Task, id string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

func FindTask(tasks []model.Task, id string) (model.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// AddSubTask appends a subtask to the given task. Subtasks exist only
// as part of their parent task.
func AddSubTask(tasks []model.Task, taskID, title string) []model.Task {
	t, ok := FindTask(tasks, taskID)
	if !ok {
		return tasks
	}
	subs := make([]model.SubTask, 0, len(t.SubTasks)+1)
	subs = append(subs, t.SubTasks...)
	subs = append(subs, model.SubTask{ID: model.NewID(), Title: title})
	t.SubTasks = subs
	return UpdateTask(tasks, t)
}

func ToggleSubTask(tasks []model.Task, taskID, subID string) []model.Task {
	t, ok := FindTask(tasks, taskID)
	if !ok {
		return tasks
	}
	subs := make([]model.SubTask, len(t.SubTasks))
	copy(subs, t.SubTasks)
	for i := range subs {
		if subs[i].ID == subID {
			subs[i].Completed = !subs[i].Completed
		}
	}
	t.SubTasks = subs
	return UpdateTask(tasks, t)
}

// PayBill marks a bill paid. The flag is one-way: nothing unsets it.
func PayBill(bills []model.Bill, id string) []model.Bill {
	out := make([]model.Bill, len(bills))
	copy(out, bills)
	for i := range out {
		if out[i].ID == id {
			out[i].Paid = true
		}
	}
	return out
}

// UseCoupon marks a coupon used; one-way like PayBill.
func UseCoupon(coupons []model.Coupon, id string) []model.Coupon {
	out := make([]model.Coupon, len(coupons))
	copy(out, coupons)
	for i := range out {
		if out[i].ID == id {
			out[i].Used = true
		}
	}
	return out
}

func AddChecklistItem(lists []model.Checklist, listID, text string) []model.Checklist {
	out := make([]model.Checklist, len(lists))
	copy(out, lists)
	for i := range out {
		if out[i].ID == listID {
			items := make([]model.ChecklistItem, 0, len(out[i].Items)+1)
			items = append(items, out[i].Items...)
			items = append(items, model.ChecklistItem{ID: model.NewID(), Text: text})
			out[i].Items = items
		}
	}
	return out
}

func ToggleChecklistItem(lists []model.Checklist, listID, itemID string) []model.Checklist {
	out := make([]model.Checklist, len(lists))
	copy(out, lists)
	for i := range out {
		if out[i].ID != listID {
			continue
		}
		items := make([]model.ChecklistItem, len(out[i].Items))
		copy(items, out[i].Items)
		for j := range items {
			if items[j].ID == itemID {
				items[j].Completed = !items[j].Completed
			}
		}
		out[i].Items = items
	}
	return out
}

// MoveChecklistItem moves the item at index by delta (±1) with a swap;
// item order is user-defined, never resorted. Out-of-range moves are
// no-ops.
func MoveChecklistItem(lists []model.Checklist, listID string, index, delta int) []model.Checklist {
	out := make([]model.Checklist, len(lists))
	copy(out, lists)
	for i := range out {
		if out[i].ID != listID {
			continue
		}
		target := index + delta
		if index < 0 || index >= len(out[i].Items) || target < 0 || target >= len(out[i].Items) {
			return out
		}
		items := make([]model.ChecklistItem, len(out[i].Items))
		copy(items, out[i].Items)
		items[index], items[target] = items[target], items[index]
		out[i].Items = items
	}
	return out
}

func DeleteByID[T any](items []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out
}
