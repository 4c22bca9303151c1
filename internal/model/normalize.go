package model

// EnsureUnassigned guarantees the reserved unassigned list is present.
// It is prepended when missing and never duplicated. The returned flag
// reports whether the slice changed; an unchanged input is returned
// as-is so callers can skip re-rendering.
func EnsureUnassigned(lists []List) ([]List, bool) {
	for _, l := range lists {
		if l.ID == UnassignedListID {
			return lists, false
		}
	}
	out := make([]List, 0, len(lists)+1)
	out = append(out, UnassignedList())
	out = append(out, lists...)
	return out, true
}

// ReconcileOrphans rewrites every task whose listId does not resolve to
// a current list so it references the unassigned list. Tasks that are
// already valid are passed through untouched; when nothing changes the
// original slice is returned unchanged.
func ReconcileOrphans(tasks []Task, lists []List) ([]Task, bool) {
	valid := make(map[string]bool, len(lists))
	for _, l := range lists {
		valid[l.ID] = true
	}
	changed := false
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		if t.ListID == "" || !valid[t.ListID] {
			t.ListID = UnassignedListID
			changed = true
		}
		out[i] = t
	}
	if !changed {
		return tasks, false
	}
	return out, true
}

// Normalize runs both invariants in order: the unassigned list is
// seeded first so reconciliation always has a valid target. It is
// idempotent; running it on its own output is a no-op.
func Normalize(tasks []Task, lists []List) ([]Task, []List, bool) {
	nextLists, listsChanged := EnsureUnassigned(lists)
	nextTasks, tasksChanged := ReconcileOrphans(tasks, nextLists)
	return nextTasks, nextLists, listsChanged || tasksChanged
}
