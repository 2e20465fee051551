package workspace

import (
	"strings"
	"testing"

	"github.com/kalistajoy/crm-workspace/internal/model"
)

var (
	alex  = model.User{Name: "Alex Schiller", Avatar: "a"}
	sofia = model.User{Name: "Sofia Martinez", Avatar: "s"}
)

func testStore(tasks ...model.Task) *Store {
	return NewStore(Options{
		CurrentUser: alex,
		Tasks:       tasks,
		Reviewer:    alex,
	})
}

func todoTask(id string, assignee model.User) model.Task {
	return model.Task{
		ID:         id,
		Title:      "Send pricing confirmation",
		Status:     model.StatusToDo,
		AssignedTo: &assignee,
		Type:       model.TypeEmail,
	}
}

func TestNavigateToNotifications(t *testing.T) {
	s := testStore(todoTask("t1", alex))

	s.Navigate(ViewNotifications)

	if s.View() != ViewNotifications {
		t.Fatalf("view = %v, want notifications", s.View())
	}
	if !s.InboxOpen() {
		t.Fatal("inbox panel should open on notifications view")
	}
	filter, ok := s.FilterAssignee()
	if !ok || filter.Name != alex.Name {
		t.Fatalf("filter assignee = %v %v, want current user", filter, ok)
	}
	if _, ok := s.ActiveTask(); ok {
		t.Fatal("navigate must clear the active task")
	}
}

func TestNavigateAwayClosesInbox(t *testing.T) {
	s := testStore(todoTask("t1", alex))
	s.Navigate(ViewNotifications)

	s.Navigate(ViewCompanies)

	if s.InboxOpen() {
		t.Fatal("inbox panel should close when leaving notifications")
	}
}

func TestSelectTaskUnknownIDIsNoop(t *testing.T) {
	s := testStore(todoTask("t1", alex))

	s.SelectTask("missing")

	if s.View() != ViewCompanies {
		t.Fatalf("view = %v, want companies (no-op)", s.View())
	}
	if _, ok := s.ActiveTask(); ok {
		t.Fatal("no task should be active after unknown-id select")
	}
}

func TestSelectToDoTaskKeepsWorkflowClosed(t *testing.T) {
	s := testStore(todoTask("t1", alex))

	s.SelectTask("t1")

	if s.View() != ViewRecord {
		t.Fatalf("view = %v, want record", s.View())
	}
	if s.WorkflowOpen() {
		t.Fatal("workflow panel should not auto-open for a to-do task")
	}
	task, ok := s.ActiveTask()
	if !ok || task.ID != "t1" {
		t.Fatalf("active task = %v %v, want t1", task, ok)
	}
}

func TestSelectDoneTaskOpensOverviewCompleted(t *testing.T) {
	done := todoTask("t1", alex)
	done.Status = model.StatusDone
	s := testStore(done)

	s.SelectTask("t1")

	if !s.WorkflowOpen() {
		t.Fatal("workflow panel should auto-open for a done task")
	}
	if s.WorkflowMode() != ModeOverview {
		t.Fatalf("mode = %v, want overview", s.WorkflowMode())
	}
	if s.WorkflowStatus() != RunCompleted {
		t.Fatalf("run status = %v, want completed", s.WorkflowStatus())
	}
	task, _ := s.ActiveTask()
	if task.Status != model.StatusDone {
		t.Fatalf("status = %v, selecting must never change it", task.Status)
	}
}

func TestOpenWorkflowPromotesToDoOnce(t *testing.T) {
	s := testStore(todoTask("t1", alex))
	s.SelectTask("t1")

	s.OpenWorkflow()

	task, _ := s.ActiveTask()
	if task.Status != model.StatusInProgress {
		t.Fatalf("status = %v, want in progress", task.Status)
	}
	if !s.WorkflowOpen() || s.WorkflowMode() != ModeInput {
		t.Fatalf("panel open=%v mode=%v, want open input", s.WorkflowOpen(), s.WorkflowMode())
	}

	// A second open must not bump the status again.
	s.OpenWorkflow()
	task, _ = s.ActiveTask()
	if task.Status != model.StatusInProgress {
		t.Fatalf("status = %v after repeat open, want in progress", task.Status)
	}
}

func TestOpenWorkflowWithoutActiveTaskIsNoop(t *testing.T) {
	s := testStore(todoTask("t1", alex))

	s.OpenWorkflow()

	if s.WorkflowOpen() {
		t.Fatal("workflow panel must stay closed with no active task")
	}
	if s.Tasks()[0].Status != model.StatusToDo {
		t.Fatal("no task status may change with no active task")
	}
}

func TestCloseWorkflowKeepsStatus(t *testing.T) {
	s := testStore(todoTask("t1", alex))
	s.SelectTask("t1")
	s.OpenWorkflow()

	s.CloseWorkflow()

	if s.WorkflowOpen() {
		t.Fatal("panel should be closed")
	}
	task, _ := s.ActiveTask()
	if task.Status != model.StatusInProgress {
		t.Fatalf("status = %v, close must not alter it", task.Status)
	}
}

func TestRequestReviewReassignsToReviewer(t *testing.T) {
	s := testStore(todoTask("t1", sofia))
	s.SelectTask("t1")
	s.OpenWorkflow()

	s.RequestReview()

	task, _ := s.ActiveTask()
	if task.Status != model.StatusInReview {
		t.Fatalf("status = %v, want in review", task.Status)
	}
	if task.AssigneeName() != "Alex Schiller" {
		t.Fatalf("assignee = %q, want reviewer", task.AssigneeName())
	}
	if task.Type != model.TypeApproval {
		t.Fatalf("type = %v, want approval", task.Type)
	}
	by, ok := task.AssignedBy.User()
	if !ok || by.Name != alex.Name {
		t.Fatalf("assigned by = %v %v, want current user", by, ok)
	}
	if s.WorkflowMode() != ModeOverview || s.WorkflowStatus() != RunRunning {
		t.Fatalf("panel = %v/%v, want overview running", s.WorkflowMode(), s.WorkflowStatus())
	}
	if _, ok := s.Banner(); !ok {
		t.Fatal("request review should raise a banner")
	}
}

func TestReviewThenApproveDrivesMonotonicTransitions(t *testing.T) {
	s := testStore(todoTask("t1", alex))
	s.SelectTask("t1")

	s.OpenWorkflow()
	if task, _ := s.ActiveTask(); task.Status != model.StatusInProgress {
		t.Fatalf("after open: status = %v, want in progress", task.Status)
	}

	s.RequestReview()
	if task, _ := s.ActiveTask(); task.Status != model.StatusInReview {
		t.Fatalf("after review request: status = %v, want in review", task.Status)
	}

	s.Approve()
	task, _ := s.ActiveTask()
	if task.Status != model.StatusDone {
		t.Fatalf("after approve: status = %v, want done", task.Status)
	}
	if s.WorkflowMode() != ModeOverview || s.WorkflowStatus() != RunCompleted {
		t.Fatalf("panel = %v/%v, want overview completed", s.WorkflowMode(), s.WorkflowStatus())
	}

	// Done is terminal: re-opening never moves the status anywhere else.
	s.OpenWorkflow()
	if task, _ := s.ActiveTask(); task.Status != model.StatusDone {
		t.Fatalf("status = %v after re-open, done is terminal", task.Status)
	}
}

func TestAssignToOtherUserRaisesBanner(t *testing.T) {
	s := testStore(todoTask("t1", alex))

	updated := todoTask("t1", sofia)
	s.AssignTask(updated)

	banner, ok := s.Banner()
	if !ok {
		t.Fatal("reassignment away from current user should raise a banner")
	}
	if want := "Sofia Martinez"; !strings.Contains(banner.Message, want) {
		t.Fatalf("banner %q should mention %q", banner.Message, want)
	}
	if banner.TTL != DefaultAssignBannerTTL {
		t.Fatalf("banner ttl = %v, want %v", banner.TTL, DefaultAssignBannerTTL)
	}

	s.ExpireBanner(banner.Gen)
	if _, ok := s.Banner(); ok {
		t.Fatal("banner should be gone after expiry")
	}
}

func TestAssignToSelfRaisesNoBanner(t *testing.T) {
	s := testStore(todoTask("t1", sofia))

	s.AssignTask(todoTask("t1", alex))

	if _, ok := s.Banner(); ok {
		t.Fatal("assigning to the current user should not raise a banner")
	}
}

func TestStaleBannerExpiryIsIgnored(t *testing.T) {
	s := testStore(todoTask("t1", alex), todoTask("t2", alex))

	s.AssignTask(todoTask("t1", sofia))
	stale, _ := s.Banner()

	s.AssignTask(todoTask("t2", sofia))
	current, _ := s.Banner()
	if current.Gen == stale.Gen {
		t.Fatal("each banner needs a distinct generation")
	}

	s.ExpireBanner(stale.Gen)
	if _, ok := s.Banner(); !ok {
		t.Fatal("stale expiry must not dismiss the newer banner")
	}

	s.ExpireBanner(current.Gen)
	if _, ok := s.Banner(); ok {
		t.Fatal("current expiry should dismiss the banner")
	}
}

func TestSwitchUserResetsSession(t *testing.T) {
	s := testStore(todoTask("t1", alex))
	s.Navigate(ViewNotifications)
	s.SelectTask("t1")
	s.AssignTask(todoTask("t1", sofia))

	s.SwitchUser(sofia)

	if s.CurrentUser().Name != sofia.Name {
		t.Fatalf("current user = %q, want sofia", s.CurrentUser().Name)
	}
	if s.View() != ViewCompanies {
		t.Fatalf("view = %v, want companies", s.View())
	}
	if s.InboxOpen() || s.WorkflowOpen() {
		t.Fatal("both panels should be closed after a user switch")
	}
	if s.WorkflowStatus() != RunRunning {
		t.Fatalf("run status = %v, want running", s.WorkflowStatus())
	}
	filter, ok := s.FilterAssignee()
	if !ok || filter.Name != sofia.Name {
		t.Fatalf("filter = %v %v, want new user", filter, ok)
	}
	if _, ok := s.ActiveTask(); ok {
		t.Fatal("active task should be cleared")
	}
	if _, ok := s.Banner(); ok {
		t.Fatal("banner should be cleared")
	}
}

func TestBackToNotifications(t *testing.T) {
	s := testStore(todoTask("t1", alex))
	s.SelectTask("t1")

	s.BackToNotifications()

	if s.View() != ViewNotifications {
		t.Fatalf("view = %v, want notifications", s.View())
	}
	if !s.InboxOpen() {
		t.Fatal("inbox should open on back navigation")
	}
	if _, ok := s.ActiveTask(); ok {
		t.Fatal("active task should be cleared")
	}
}

func TestUpdateTitleRejectsBlank(t *testing.T) {
	s := testStore(todoTask("t1", alex))

	s.UpdateTitle("t1", "   ")
	if got := s.Tasks()[0].Title; got != "Send pricing confirmation" {
		t.Fatalf("title = %q, blank edits must keep the previous title", got)
	}

	s.UpdateTitle("t1", "Confirm Q1 pricing")
	if got := s.Tasks()[0].Title; got != "Confirm Q1 pricing" {
		t.Fatalf("title = %q, want the new title", got)
	}
}
