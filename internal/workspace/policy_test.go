package workspace

import (
	"testing"

	"github.com/kalistajoy/crm-workspace/internal/model"
)

func TestPolicyFor(t *testing.T) {
	cases := []struct {
		name   string
		status model.TaskStatus
		want   PanelPolicy
	}{
		{"in review", model.StatusInReview, PanelPolicy{AutoOpen: true, Mode: ModeReview, Status: RunRunning}},
		{"in progress", model.StatusInProgress, PanelPolicy{AutoOpen: true, Mode: ModeInput, Status: RunRunning}},
		{"done", model.StatusDone, PanelPolicy{AutoOpen: true, Mode: ModeOverview, Status: RunCompleted}},
		{"to do", model.StatusToDo, PanelPolicy{AutoOpen: false, Mode: ModeInput, Status: RunRunning}},
		{"none", model.StatusNone, PanelPolicy{AutoOpen: false, Mode: ModeInput, Status: RunRunning}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PolicyFor(tc.status); got != tc.want {
				t.Fatalf("PolicyFor(%v) = %+v, want %+v", tc.status, got, tc.want)
			}
		})
	}
}
