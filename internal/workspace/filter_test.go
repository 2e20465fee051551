package workspace

import (
	"testing"

	"github.com/kalistajoy/crm-workspace/internal/model"
)

func TestVisibleTasksExcludesDone(t *testing.T) {
	done := todoTask("t2", alex)
	done.Status = model.StatusDone
	tasks := []model.Task{todoTask("t1", alex), done, todoTask("t3", sofia)}

	visible := VisibleTasks(tasks, nil)

	if len(visible) != 2 {
		t.Fatalf("got %d visible tasks, want 2", len(visible))
	}
	for _, v := range visible {
		if v.Status == model.StatusDone {
			t.Fatalf("task %s is done and must not be visible", v.ID)
		}
	}
}

func TestVisibleTasksAssigneeFilter(t *testing.T) {
	unassigned := todoTask("t3", alex)
	unassigned.AssignedTo = nil
	tasks := []model.Task{todoTask("t1", alex), todoTask("t2", sofia), unassigned}

	visible := VisibleTasks(tasks, &alex)

	if len(visible) != 1 || visible[0].ID != "t1" {
		t.Fatalf("visible = %v, want only t1", visible)
	}
}

func TestVisibleTasksPreservesOrder(t *testing.T) {
	tasks := []model.Task{todoTask("b", alex), todoTask("a", alex), todoTask("c", alex)}

	visible := VisibleTasks(tasks, nil)

	want := []string{"b", "a", "c"}
	for i, id := range want {
		if visible[i].ID != id {
			t.Fatalf("visible[%d] = %s, want %s (insertion order)", i, visible[i].ID, id)
		}
	}
}
