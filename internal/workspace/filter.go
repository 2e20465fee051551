package workspace

import "github.com/kalistajoy/crm-workspace/internal/model"

// VisibleTasks computes the inbox subset of tasks: done tasks are always
// excluded, and when an assignee filter is set only tasks assigned to that
// user (by name) remain. Input order is preserved. Callers re-derive on
// every change; the result is never cached.
func VisibleTasks(tasks []model.Task, assignee *model.User) []model.Task {
	visible := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == model.StatusDone {
			continue
		}
		if assignee != nil {
			if t.AssignedTo == nil || t.AssignedTo.Name != assignee.Name {
				continue
			}
		}
		visible = append(visible, t)
	}
	return visible
}
