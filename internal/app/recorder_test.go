package app

import (
	"context"
	"testing"

	"github.com/kalistajoy/crm-workspace/internal/fixtures"
	"github.com/kalistajoy/crm-workspace/internal/model"
	"github.com/kalistajoy/crm-workspace/internal/workspace"
	"github.com/kalistajoy/crm-workspace/tests/testutil"
)

// Drives a full review/approval pass through the coordinator and checks
// that every mutation landed in the backing store.
func TestRecorderWritesThroughReviewFlow(t *testing.T) {
	db := testutil.NewSeededStore(t)
	ctx := context.Background()

	kalista, _ := fixtures.UserByName(fixtures.UserKalista)
	alex, _ := fixtures.UserByName(fixtures.UserAlex)

	ws := workspace.NewStore(workspace.Options{
		CurrentUser: kalista,
		Tasks:       fixtures.SeedTasks(),
		Reviewer:    alex,
		Recorder:    storeRecorder{s: db},
	})

	ws.SelectTask(fixtures.InboxTaskID)
	ws.OpenWorkflow()

	stored, err := db.GetTaskByID(ctx, fixtures.InboxTaskID)
	if err != nil {
		t.Fatalf("GetTaskByID: %v", err)
	}
	if stored.Status != model.StatusInProgress {
		t.Errorf("status after open = %v, want %v", stored.Status, model.StatusInProgress)
	}

	ws.RequestReview()

	stored, err = db.GetTaskByID(ctx, fixtures.InboxTaskID)
	if err != nil {
		t.Fatalf("GetTaskByID: %v", err)
	}
	if stored.Status != model.StatusInReview {
		t.Errorf("status after review = %v, want %v", stored.Status, model.StatusInReview)
	}
	if stored.AssigneeName() != fixtures.UserAlex {
		t.Errorf("assignee = %q, want %q", stored.AssigneeName(), fixtures.UserAlex)
	}
	if by, ok := stored.AssignedBy.User(); !ok || by.Name != fixtures.UserKalista {
		t.Errorf("assigned by = %q, want %q", stored.AssignedBy.DisplayName(), fixtures.UserKalista)
	}

	ws.Approve()

	stored, err = db.GetTaskByID(ctx, fixtures.InboxTaskID)
	if err != nil {
		t.Fatalf("GetTaskByID: %v", err)
	}
	if stored.Status != model.StatusDone {
		t.Errorf("status after approve = %v, want %v", stored.Status, model.StatusDone)
	}

	notifications, err := db.GetUnreadNotifications(ctx)
	if err != nil {
		t.Fatalf("GetUnreadNotifications: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("got %d notifications, want 2 (review + approval)", len(notifications))
	}
	for _, n := range notifications {
		if n.TaskID != fixtures.InboxTaskID {
			t.Errorf("notification task = %q, want %q", n.TaskID, fixtures.InboxTaskID)
		}
	}
}

func TestRecorderSkipsBannerlessEdits(t *testing.T) {
	db := testutil.NewSeededStore(t)
	ctx := context.Background()

	kalista, _ := fixtures.UserByName(fixtures.UserKalista)
	alex, _ := fixtures.UserByName(fixtures.UserAlex)

	ws := workspace.NewStore(workspace.Options{
		CurrentUser: kalista,
		Tasks:       fixtures.SeedTasks(),
		Reviewer:    alex,
		Recorder:    storeRecorder{s: db},
	})

	ws.UpdateTitle(fixtures.InboxTaskID, "Confirm Q1 pricing")

	stored, err := db.GetTaskByID(ctx, fixtures.InboxTaskID)
	if err != nil {
		t.Fatalf("GetTaskByID: %v", err)
	}
	if stored.Title != "Confirm Q1 pricing" {
		t.Errorf("title = %q, want the rename", stored.Title)
	}

	notifications, err := db.GetUnreadNotifications(ctx)
	if err != nil {
		t.Fatalf("GetUnreadNotifications: %v", err)
	}
	if len(notifications) != 0 {
		t.Errorf("got %d notifications for a title edit, want 0", len(notifications))
	}
}
