package workspace

import "github.com/kalistajoy/crm-workspace/internal/model"

// PanelPolicy is the workflow-panel decision for a task status: whether
// selecting the task auto-opens the panel, and which mode and run status
// the panel shows once open.
type PanelPolicy struct {
	AutoOpen bool
	Mode     WorkflowMode
	Status   WorkflowStatus
}

// PolicyFor maps a task status to its panel policy. Statuses outside the
// workflow (to-do or untriaged) never auto-open; an explicit open treats
// them as input mode and the store promotes to-do to in-progress.
func PolicyFor(status model.TaskStatus) PanelPolicy {
	switch status {
	case model.StatusInReview:
		return PanelPolicy{AutoOpen: true, Mode: ModeReview, Status: RunRunning}
	case model.StatusInProgress:
		return PanelPolicy{AutoOpen: true, Mode: ModeInput, Status: RunRunning}
	case model.StatusDone:
		return PanelPolicy{AutoOpen: true, Mode: ModeOverview, Status: RunCompleted}
	default:
		return PanelPolicy{AutoOpen: false, Mode: ModeInput, Status: RunRunning}
	}
}
