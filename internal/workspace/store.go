// Package workspace holds the view-state coordinator for the CRM demo:
// which view is active, which task is selected, which panels are open, and
// the task status transitions driven by user intents. All mutations pass
// through the Store; presentation code only reads derived state and calls
// intent methods.
package workspace

import (
	"fmt"
	"strings"
	"time"

	"github.com/kalistajoy/crm-workspace/internal/model"
)

// Default banner lifetimes, used when Options leaves them zero.
const (
	DefaultNotifyBannerTTL = 5 * time.Second
	DefaultAssignBannerTTL = 3 * time.Second
)

// Recorder receives write-throughs from the store: full task replacements
// and banner notifications. Implementations are best-effort; a failing
// recorder must not affect the in-memory transition, so the interface
// returns nothing.
type Recorder interface {
	ReplaceTask(task model.Task)
	Notify(taskID, message string)
}

// Options configures a Store.
type Options struct {
	// CurrentUser is the acting user at startup.
	CurrentUser model.User

	// Tasks is the seed task list, kept in insertion order.
	Tasks []model.Task

	// Reviewer is the fixed identity review requests are assigned to.
	Reviewer model.User

	// NotifyBannerTTL is how long review/approval banners stay visible.
	NotifyBannerTTL time.Duration

	// AssignBannerTTL is how long reassignment banners stay visible.
	AssignBannerTTL time.Duration

	// Recorder, when non-nil, receives task replacements and notifications.
	Recorder Recorder
}

// Store owns all mutable view state. Every intent method is a synchronous,
// total transition: unknown task ids and unreachable inputs degrade to
// no-ops rather than failing.
type Store struct {
	currentUser    model.User
	view           View
	previousView   View
	tasks          []model.Task
	activeTaskID   string
	filterAssignee *model.User
	inboxOpen      bool
	workflowOpen   bool
	workflowMode   WorkflowMode
	workflowStatus WorkflowStatus
	banner         *Banner
	bannerGen      uint64

	reviewer        model.User
	notifyBannerTTL time.Duration
	assignBannerTTL time.Duration
	recorder        Recorder
}

// NewStore constructs a Store from the given options. The task slice is
// copied so the caller's fixture data stays untouched.
func NewStore(opts Options) *Store {
	notifyTTL := opts.NotifyBannerTTL
	if notifyTTL == 0 {
		notifyTTL = DefaultNotifyBannerTTL
	}
	assignTTL := opts.AssignBannerTTL
	if assignTTL == 0 {
		assignTTL = DefaultAssignBannerTTL
	}

	tasks := make([]model.Task, len(opts.Tasks))
	copy(tasks, opts.Tasks)

	return &Store{
		currentUser:     opts.CurrentUser,
		view:            ViewCompanies,
		tasks:           tasks,
		workflowMode:    ModeInput,
		workflowStatus:  RunRunning,
		reviewer:        opts.Reviewer,
		notifyBannerTTL: notifyTTL,
		assignBannerTTL: assignTTL,
		recorder:        opts.Recorder,
	}
}

// Navigate switches the top-level view. Navigating to the notifications
// view also scopes the inbox to the current user and opens the inbox
// panel; any other target closes it. The active task is always cleared.
func (s *Store) Navigate(target View) {
	s.previousView = s.view
	s.view = target
	s.activeTaskID = ""

	if target == ViewNotifications {
		u := s.currentUser
		s.filterAssignee = &u
		s.inboxOpen = true
	} else {
		s.inboxOpen = false
	}
}

// SelectTask makes the given task active and switches to the record view.
// The workflow panel opens only when the task's status calls for it; a
// to-do or untriaged task leaves the panel closed. Unknown ids are no-ops.
func (s *Store) SelectTask(taskID string) {
	task, ok := s.taskByID(taskID)
	if !ok {
		return
	}

	s.activeTaskID = taskID
	s.previousView = s.view
	s.view = ViewRecord
	s.inboxOpen = true

	policy := PolicyFor(task.Status)
	s.workflowOpen = policy.AutoOpen
	if policy.AutoOpen {
		s.workflowMode = policy.Mode
		s.workflowStatus = policy.Status
	}
}

// BackToNotifications clears the active task, returns from the record view
// to the notifications view, and opens the inbox panel.
func (s *Store) BackToNotifications() {
	s.activeTaskID = ""
	if s.view == ViewRecord {
		s.previousView = s.view
		s.view = ViewNotifications
	}
	s.inboxOpen = true
}

// OpenWorkflow opens the workflow panel for the active task. A to-do task
// is promoted to in-progress as a side effect; repeated opens are
// idempotent since the task is then no longer to-do. With no active task
// this is a no-op.
func (s *Store) OpenWorkflow() {
	task, ok := s.taskByID(s.activeTaskID)
	if !ok {
		return
	}

	if task.Status == model.StatusToDo {
		task.Status = model.StatusInProgress
		s.replaceTask(task)
	}

	policy := PolicyFor(task.Status)
	s.workflowOpen = true
	s.workflowMode = policy.Mode
	s.workflowStatus = policy.Status
}

// CloseWorkflow hides the workflow panel without touching task status.
func (s *Store) CloseWorkflow() {
	s.workflowOpen = false
}

// RequestReview moves the active task to in-review, hands it to the fixed
// reviewer as an approval item, and shows the run overview. With no
// active task, or once the task is done, this is a no-op.
func (s *Store) RequestReview() {
	task, ok := s.taskByID(s.activeTaskID)
	if !ok || task.Status == model.StatusDone {
		return
	}

	reviewer := s.reviewer
	task.Status = model.StatusInReview
	task.AssignedTo = &reviewer
	task.Type = model.TypeApproval
	task.AssignedBy = model.ByUser(s.currentUser)
	s.replaceTask(task)

	s.workflowOpen = true
	s.workflowMode = ModeOverview
	s.workflowStatus = RunRunning

	s.emitBanner(task.ID, fmt.Sprintf("Review requested — sent to %s", reviewer.Name), s.notifyBannerTTL)
}

// Approve completes the active task's workflow run: status becomes done
// and the overview shows the completed badge. With no active task this is
// a no-op.
func (s *Store) Approve() {
	task, ok := s.taskByID(s.activeTaskID)
	if !ok {
		return
	}

	s.workflowOpen = true
	s.workflowMode = ModeOverview
	s.workflowStatus = RunCompleted

	// Done is terminal: approving again only re-shows the overview.
	if task.Status == model.StatusDone {
		return
	}

	task.Status = model.StatusDone
	s.replaceTask(task)

	s.emitBanner(task.ID, fmt.Sprintf("Approved — %q completed", task.Title), s.notifyBannerTTL)
}

// AssignTask replaces the task matching updated.ID wholesale. Handing a
// task to someone other than the current user raises a short-lived
// banner naming the new assignee. Unknown ids are no-ops.
func (s *Store) AssignTask(updated model.Task) {
	if _, ok := s.taskByID(updated.ID); !ok {
		return
	}

	s.replaceTask(updated)

	if updated.AssignedTo != nil && updated.AssignedTo.Name != s.currentUser.Name {
		s.emitBanner(updated.ID, fmt.Sprintf("Assigned to %s", updated.AssignedTo.Name), s.assignBannerTTL)
	}
}

// UpdateTitle renames a task. An empty or blank title is rejected and the
// previous title stands.
func (s *Store) UpdateTitle(taskID, title string) {
	if strings.TrimSpace(title) == "" {
		return
	}
	task, ok := s.taskByID(taskID)
	if !ok {
		return
	}
	task.Title = title
	s.replaceTask(task)
}

// SwitchUser starts a fresh session as the given user: companies view,
// both panels closed, run state reset, inbox scoped to the new user, no
// active task, and any banner dropped.
func (s *Store) SwitchUser(u model.User) {
	s.currentUser = u
	s.previousView = s.view
	s.view = ViewCompanies
	s.inboxOpen = false
	s.workflowOpen = false
	s.workflowMode = ModeInput
	s.workflowStatus = RunRunning
	filter := u
	s.filterAssignee = &filter
	s.activeTaskID = ""
	s.banner = nil
}

// ExpireBanner clears the banner scheduled under the given generation.
// A stale generation (the banner has since changed or been cleared) is
// a no-op.
func (s *Store) ExpireBanner(gen uint64) {
	if s.banner != nil && s.banner.Gen == gen {
		s.banner = nil
	}
}

// --- derived reads ---

// CurrentUser returns the acting user.
func (s *Store) CurrentUser() model.User { return s.currentUser }

// View returns the active top-level view.
func (s *Store) View() View { return s.view }

// Tasks returns a copy of the full task list in insertion order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// VisibleTasks derives the filtered inbox list for the current state.
func (s *Store) VisibleTasks() []model.Task {
	return VisibleTasks(s.tasks, s.filterAssignee)
}

// BadgeCount is the number of tasks the inbox badge shows.
func (s *Store) BadgeCount() int {
	return len(s.VisibleTasks())
}

// ActiveTask returns the selected task, if any.
func (s *Store) ActiveTask() (model.Task, bool) {
	return s.taskByID(s.activeTaskID)
}

// FilterAssignee returns the inbox assignee filter, if set.
func (s *Store) FilterAssignee() (model.User, bool) {
	if s.filterAssignee == nil {
		return model.User{}, false
	}
	return *s.filterAssignee, true
}

// InboxOpen reports whether the inbox panel is open.
func (s *Store) InboxOpen() bool { return s.inboxOpen }

// WorkflowOpen reports whether the workflow panel is open.
func (s *Store) WorkflowOpen() bool { return s.workflowOpen }

// WorkflowMode returns the panel mode for the open workflow panel.
func (s *Store) WorkflowMode() WorkflowMode { return s.workflowMode }

// WorkflowStatus returns the run status shown in the overview badge.
func (s *Store) WorkflowStatus() WorkflowStatus { return s.workflowStatus }

// Banner returns the visible banner, if any.
func (s *Store) Banner() (Banner, bool) {
	if s.banner == nil {
		return Banner{}, false
	}
	return *s.banner, true
}

// Reviewer returns the fixed review identity.
func (s *Store) Reviewer() model.User { return s.reviewer }

// --- internals ---

func (s *Store) taskByID(id string) (model.Task, bool) {
	if id == "" {
		return model.Task{}, false
	}
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// replaceTask swaps the stored task matching updated.ID and writes the
// replacement through to the recorder.
func (s *Store) replaceTask(updated model.Task) {
	for i := range s.tasks {
		if s.tasks[i].ID == updated.ID {
			s.tasks[i] = updated
			break
		}
	}
	if s.recorder != nil {
		s.recorder.ReplaceTask(updated)
	}
}

func (s *Store) emitBanner(taskID, message string, ttl time.Duration) {
	s.bannerGen++
	s.banner = &Banner{Message: message, TTL: ttl, Gen: s.bannerGen}
	if s.recorder != nil {
		s.recorder.Notify(taskID, message)
	}
}
