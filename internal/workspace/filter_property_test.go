package workspace

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/kalistajoy/crm-workspace/internal/model"
)

func genTask(rt *rapid.T) model.Task {
	t := model.Task{
		ID:     rapid.StringMatching(`task-[a-z]{3,8}`).Draw(rt, "id"),
		Title:  "generated",
		Status: model.TaskStatus(rapid.IntRange(0, 4).Draw(rt, "status")),
	}
	if rapid.Bool().Draw(rt, "assigned") {
		name := rapid.SampledFrom([]string{"Alex Schiller", "Sofia Martinez", "Kalista Joy"}).Draw(rt, "assignee")
		t.AssignedTo = &model.User{Name: name}
	}
	return t
}

// VisibleTasks never lets a done task through, regardless of filter.
func TestVisibleTasksNeverIncludesDone(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(rt, "n")
		tasks := make([]model.Task, n)
		for i := range tasks {
			tasks[i] = genTask(rt)
		}

		var filter *model.User
		if rapid.Bool().Draw(rt, "filtered") {
			filter = &model.User{Name: rapid.SampledFrom([]string{"Alex Schiller", "Sofia Martinez"}).Draw(rt, "filter")}
		}

		for _, v := range VisibleTasks(tasks, filter) {
			if v.Status == model.StatusDone {
				rt.Fatalf("done task %s leaked into visible set", v.ID)
			}
			if filter != nil && (v.AssignedTo == nil || v.AssignedTo.Name != filter.Name) {
				rt.Fatalf("task %s does not match assignee filter %q", v.ID, filter.Name)
			}
		}
	})
}

// VisibleTasks preserves the relative order of the input sequence.
func TestVisibleTasksOrderPreservation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(rt, "n")
		tasks := make([]model.Task, n)
		for i := range tasks {
			tasks[i] = genTask(rt)
		}

		visible := VisibleTasks(tasks, nil)

		j := 0
		for _, orig := range tasks {
			if j < len(visible) && visible[j].ID == orig.ID && visible[j].Status == orig.Status {
				j++
			}
		}
		if j != len(visible) {
			rt.Fatalf("visible set is not a subsequence of the input (matched %d of %d)", j, len(visible))
		}
	})
}

// The two user actions only ever move status forward; done is terminal.
func TestStatusTransitionsAreMonotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := model.TaskStatus(rapid.IntRange(0, 4).Draw(rt, "start"))
		task := model.Task{ID: "t1", Title: "x", Status: start}
		s := NewStore(Options{
			CurrentUser: model.User{Name: "Kalista Joy"},
			Tasks:       []model.Task{task},
			Reviewer:    model.User{Name: "Alex Schiller"},
		})
		s.SelectTask("t1")

		prev := start
		steps := rapid.IntRange(1, 12).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 2).Draw(rt, "op") {
			case 0:
				s.OpenWorkflow()
			case 1:
				s.RequestReview()
			case 2:
				s.Approve()
			}
			cur, _ := s.ActiveTask()
			if cur.Status < prev {
				rt.Fatalf("status moved backwards: %v -> %v", prev, cur.Status)
			}
			if prev == model.StatusDone && cur.Status != model.StatusDone {
				rt.Fatalf("status left terminal done state: %v", cur.Status)
			}
			prev = cur.Status
		}
	})
}
