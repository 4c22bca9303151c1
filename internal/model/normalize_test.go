package model

import "testing"

func TestEnsureUnassignedSeedsOnce(t *testing.T) {
	lists, changed := EnsureUnassigned([]List{{ID: "list_1", Name: "工作"}})
	if !changed {
		t.Fatal("expected change when unassigned list missing")
	}
	if lists[0].ID != UnassignedListID || !lists[0].Locked {
		t.Fatalf("expected locked unassigned list first, got %+v", lists[0])
	}

	again, changed := EnsureUnassigned(lists)
	if changed {
		t.Fatal("expected no change when unassigned list present")
	}
	count := 0
	for _, l := range again {
		if l.ID == UnassignedListID {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one unassigned list, got %d", count)
	}
}

func TestReconcileOrphansRewritesDanglingReferences(t *testing.T) {
	lists := []List{UnassignedList(), {ID: "list_1", Name: "工作"}}
	tasks := []Task{
		{ID: "a", Title: "kept", ListID: "list_1", Priority: PriorityMedium, Status: StatusTodo, Date: "2026-01-01"},
		{ID: "b", Title: "orphan", ListID: "list_gone", Priority: PriorityMedium, Status: StatusTodo, Date: "2026-01-01"},
		{ID: "c", Title: "empty", ListID: "", Priority: PriorityMedium, Status: StatusTodo, Date: "2026-01-01"},
	}

	out, changed := ReconcileOrphans(tasks, lists)
	if !changed {
		t.Fatal("expected reconciliation to report a change")
	}
	if out[0].ListID != "list_1" {
		t.Fatalf("valid task must be untouched, got %q", out[0].ListID)
	}
	if out[1].ListID != UnassignedListID || out[2].ListID != UnassignedListID {
		t.Fatalf("orphans must reference unassigned list, got %q %q", out[1].ListID, out[2].ListID)
	}

	valid := make(map[string]bool)
	for _, l := range lists {
		valid[l.ID] = true
	}
	for _, task := range out {
		if !valid[task.ListID] {
			t.Fatalf("task %s still dangling: %q", task.ID, task.ListID)
		}
	}
}

func TestReconcileOrphansIsIdempotent(t *testing.T) {
	lists := []List{UnassignedList()}
	tasks := []Task{{ID: "a", Title: "x", ListID: "nowhere", Priority: PriorityLow, Status: StatusTodo, Date: "2026-01-01"}}

	once, changed := ReconcileOrphans(tasks, lists)
	if !changed {
		t.Fatal("expected first pass to change tasks")
	}
	twice, changed := ReconcileOrphans(once, lists)
	if changed {
		t.Fatal("expected second pass to be a no-op")
	}
	if &twice[0] != &once[0] {
		t.Fatal("expected unchanged input returned as-is")
	}
}

func TestNormalizeCombinesBothInvariants(t *testing.T) {
	tasks := []Task{{ID: "a", Title: "x", ListID: "ghost", Priority: PriorityLow, Status: StatusTodo, Date: "2026-01-01"}}

	outTasks, outLists, changed := Normalize(tasks, nil)
	if !changed {
		t.Fatal("expected normalize to report change")
	}
	if len(outLists) != 1 || outLists[0].ID != UnassignedListID {
		t.Fatalf("expected seeded unassigned list, got %+v", outLists)
	}
	if outTasks[0].ListID != UnassignedListID {
		t.Fatalf("expected task reassigned, got %q", outTasks[0].ListID)
	}

	_, _, changed = Normalize(outTasks, outLists)
	if changed {
		t.Fatal("expected normalize on normalized state to be a no-op")
	}
}
