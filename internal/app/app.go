// Package app wires the Bubble Tea program together: it routes messages
// between the view sub-models and translates user intents into calls on
// the workspace coordinator, re-deriving the rendered state after every
// transition.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kalistajoy/crm-workspace/internal/config"
	"github.com/kalistajoy/crm-workspace/internal/keys"
	"github.com/kalistajoy/crm-workspace/internal/model"
	"github.com/kalistajoy/crm-workspace/internal/store"
	"github.com/kalistajoy/crm-workspace/internal/ui"
	"github.com/kalistajoy/crm-workspace/internal/ui/command"
	"github.com/kalistajoy/crm-workspace/internal/ui/companies"
	helpview "github.com/kalistajoy/crm-workspace/internal/ui/help"
	"github.com/kalistajoy/crm-workspace/internal/ui/inbox"
	"github.com/kalistajoy/crm-workspace/internal/ui/pickers"
	"github.com/kalistajoy/crm-workspace/internal/ui/record"
	workflowview "github.com/kalistajoy/crm-workspace/internal/ui/workflow"
	"github.com/kalistajoy/crm-workspace/internal/workspace"
)

// bannerExpiredMsg fires when a banner's dismissal timer elapses. The
// generation it carries keeps a stale timer from touching a newer banner.
type bannerExpiredMsg struct {
	gen uint64
}

// overlay identifies a modal view drawn instead of the main content.
type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayCommand
	overlayPicker
)

// Model is the root Bubble Tea model.
type Model struct {
	ws    *workspace.Store
	store store.Store
	keys  *keys.KeyMap

	layout ui.Layout
	ready  bool

	companiesView companies.Model
	inboxView     inbox.Model
	recordView    record.Model
	workflowView  workflowview.Model
	pickerView    pickers.Model
	helpView      helpview.Model
	commandView   command.Model

	companyIndex    map[string]model.Company
	activeCompanyID string
	overlay         overlay
	scheduledGen    uint64
}

// New builds the root model from the seeded store and configuration.
func New(s store.Store, cfg *config.AppConfig) (Model, error) {
	ctx := context.Background()

	users, err := s.GetUsers(ctx)
	if err != nil {
		return Model{}, fmt.Errorf("loading users: %w", err)
	}
	companyList, err := s.GetCompanies(ctx)
	if err != nil {
		return Model{}, fmt.Errorf("loading companies: %w", err)
	}
	tasks, err := s.GetTasks(ctx, store.TaskFilter{})
	if err != nil {
		return Model{}, fmt.Errorf("loading tasks: %w", err)
	}

	currentUser := findUser(users, cfg.Display.DefaultUser)
	reviewer := findUser(users, cfg.Workflow.Reviewer)

	ws := workspace.NewStore(workspace.Options{
		CurrentUser:     currentUser,
		Tasks:           tasks,
		Reviewer:        reviewer,
		NotifyBannerTTL: time.Duration(cfg.Workflow.NotifyBannerSec) * time.Second,
		AssignBannerTTL: time.Duration(cfg.Workflow.AssignBannerSec) * time.Second,
		Recorder:        storeRecorder{s: s},
	})

	index := make(map[string]model.Company, len(companyList))
	for _, c := range companyList {
		index[c.ID] = c
	}

	k := keys.DefaultKeyMap()
	m := Model{
		ws:            ws,
		store:         s,
		keys:          k,
		companiesView: companies.New(companyList, k, 80, 24),
		inboxView:     inbox.New(k, 80, 24),
		recordView:    record.New(k, 80, 24),
		workflowView:  workflowview.New(reviewer.Name, currentUser.Name, k, 80, 24),
		pickerView:    pickers.New(users, 80, 24),
		helpView:      helpview.New(k, 80, 24),
		commandView:   command.New(80, 24),
		companyIndex:  index,
	}
	m.syncDerived()
	return m, nil
}

func findUser(users []model.User, name string) model.User {
	for _, u := range users {
		if u.Name == name {
			return u
		}
	}
	return model.User{Name: name}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		m.resize()
		// Forward to the active view so huh forms can lay themselves out.
		return m.updateActiveView(msg)

	case bannerExpiredMsg:
		m.ws.ExpireBanner(msg.gen)
		return m, nil

	case companies.SelectedCompanyMsg:
		m.ws.Navigate(workspace.ViewRecord)
		m.activeCompanyID = msg.CompanyID
		m.syncDerived()
		return m, nil

	case inbox.SelectedTaskMsg:
		m.ws.SelectTask(msg.TaskID)
		if task, ok := m.ws.ActiveTask(); ok {
			m.activeCompanyID = task.RelatedRecordID
		}
		m.syncDerived()
		return m, nil

	case record.BackMsg:
		m.ws.BackToNotifications()
		m.syncDerived()
		return m, nil

	case workflowview.RequestReviewMsg:
		m.ws.RequestReview()
		m.syncDerived()
		return m, m.scheduleBannerExpiry()

	case workflowview.ApproveMsg:
		m.ws.Approve()
		m.syncDerived()
		return m, m.scheduleBannerExpiry()

	case workflowview.CloseMsg:
		m.ws.CloseWorkflow()
		m.syncDerived()
		return m, nil

	case pickers.TaskEditedMsg:
		m.overlay = overlayNone
		m.pickerView.Reset()
		m.ws.AssignTask(msg.Task)
		m.syncDerived()
		return m, m.scheduleBannerExpiry()

	case pickers.TitleEditedMsg:
		m.overlay = overlayNone
		m.pickerView.Reset()
		m.ws.UpdateTitle(msg.TaskID, msg.Title)
		m.syncDerived()
		return m, nil

	case pickers.UserChosenMsg:
		m.overlay = overlayNone
		m.pickerView.Reset()
		m.ws.SwitchUser(msg.User)
		m.scheduledGen = 0
		m.syncDerived()
		return m, nil

	case pickers.CancelMsg:
		m.overlay = overlayNone
		m.pickerView.Reset()
		return m, nil

	case command.CommandMsg:
		m.overlay = overlayNone
		return m.executeCommand(string(msg))

	case command.CancelMsg:
		m.overlay = overlayNone
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveView(msg)
}

// handleKey processes global keys, then delegates to the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays with text input own the keyboard while open.
	if m.overlay == overlayPicker || m.overlay == overlayCommand {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateActiveView(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		if m.overlay == overlayHelp {
			m.overlay = overlayNone
		} else {
			m.overlay = overlayHelp
		}
		return m, nil

	case key.Matches(msg, m.keys.Command):
		m.overlay = overlayCommand
		return m, m.commandView.Focus()

	case key.Matches(msg, m.keys.GoCompanies):
		m.ws.Navigate(workspace.ViewCompanies)
		m.syncDerived()
		return m, nil

	case key.Matches(msg, m.keys.GoNotifications):
		m.ws.Navigate(workspace.ViewNotifications)
		m.syncDerived()
		return m, nil

	case key.Matches(msg, m.keys.OpenWorkflow):
		m.ws.OpenWorkflow()
		m.syncDerived()
		return m, nil

	case key.Matches(msg, m.keys.SwitchUser):
		m.overlay = overlayPicker
		return m, m.pickerView.StartSwitchUser(m.ws.CurrentUser())

	case key.Matches(msg, m.keys.Assign):
		if task, ok := m.ws.ActiveTask(); ok {
			m.overlay = overlayPicker
			return m, m.pickerView.StartAssign(task)
		}

	case key.Matches(msg, m.keys.SetStatus):
		if task, ok := m.ws.ActiveTask(); ok {
			m.overlay = overlayPicker
			return m, m.pickerView.StartStatus(task)
		}

	case key.Matches(msg, m.keys.SetDue):
		if task, ok := m.ws.ActiveTask(); ok {
			m.overlay = overlayPicker
			return m, m.pickerView.StartDue(task)
		}

	case key.Matches(msg, m.keys.EditTitle):
		if task, ok := m.ws.ActiveTask(); ok {
			m.overlay = overlayPicker
			return m, m.pickerView.StartTitle(task)
		}

	case key.Matches(msg, m.keys.Back):
		if m.overlay == overlayHelp {
			m.overlay = overlayNone
			return m, nil
		}
	}

	return m.updateActiveView(msg)
}

// executeCommand handles a command string from the command palette.
func (m Model) executeCommand(cmd string) (tea.Model, tea.Cmd) {
	switch cmd {
	case "companies":
		m.ws.Navigate(workspace.ViewCompanies)
	case "notifications", "inbox":
		m.ws.Navigate(workspace.ViewNotifications)
	case "workflow", "open":
		m.ws.OpenWorkflow()
	case "review", "request review":
		m.ws.RequestReview()
		m.syncDerived()
		return m, m.scheduleBannerExpiry()
	case "approve":
		m.ws.Approve()
		m.syncDerived()
		return m, m.scheduleBannerExpiry()
	case "close":
		m.ws.CloseWorkflow()
	case "quit", "q":
		return m, tea.Quit
	}
	m.syncDerived()
	return m, nil
}

// updateActiveView dispatches the message to the view that owns focus.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.overlay {
	case overlayPicker:
		m.pickerView, cmd = m.pickerView.Update(msg)
		return m, cmd
	case overlayCommand:
		m.commandView, cmd = m.commandView.Update(msg)
		return m, cmd
	case overlayHelp:
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	}

	// The workflow panel takes focus while open so its action keys work.
	if m.ws.WorkflowOpen() {
		m.workflowView, cmd = m.workflowView.Update(msg)
		if cmd != nil {
			return m, cmd
		}
	}

	switch m.ws.View() {
	case workspace.ViewCompanies:
		m.companiesView, cmd = m.companiesView.Update(msg)
	case workspace.ViewNotifications:
		m.inboxView, cmd = m.inboxView.Update(msg)
	case workspace.ViewRecord:
		m.recordView, cmd = m.recordView.Update(msg)
	}

	return m, cmd
}

// scheduleBannerExpiry arms a one-shot timer for the current banner, if
// one is up and not already scheduled.
func (m *Model) scheduleBannerExpiry() tea.Cmd {
	banner, ok := m.ws.Banner()
	if !ok || banner.Gen == m.scheduledGen {
		return nil
	}
	m.scheduledGen = banner.Gen
	gen := banner.Gen
	return tea.Tick(banner.TTL, func(time.Time) tea.Msg {
		return bannerExpiredMsg{gen: gen}
	})
}

// syncDerived pushes freshly derived coordinator state into the view
// sub-models. Called after every intent; nothing downstream caches.
func (m *Model) syncDerived() {
	m.inboxView.SetTasks(m.ws.VisibleTasks())
	if filter, ok := m.ws.FilterAssignee(); ok {
		m.inboxView.SetFilterLabel(filter.Name)
	} else {
		m.inboxView.SetFilterLabel("")
	}

	var companyPtr *model.Company
	var taskPtr *model.Task
	if task, ok := m.ws.ActiveTask(); ok {
		t := task
		taskPtr = &t
		if c, ok := m.companyIndex[task.RelatedRecordID]; ok {
			companyPtr = &c
		}
	} else if c, ok := m.companyIndex[m.activeCompanyID]; ok {
		companyPtr = &c
	}
	m.recordView.SetRecord(companyPtr, taskPtr)

	m.workflowView.SetState(m.ws.WorkflowMode(), m.ws.WorkflowStatus())
	m.workflowView.SetExecutor(m.ws.CurrentUser().Name)
	m.resize()
}

// resize distributes the content area across the visible panels.
func (m *Model) resize() {
	if !m.ready {
		return
	}

	w := m.layout.ContentWidth()
	h := m.layout.ContentHeight()
	if _, ok := m.ws.Banner(); ok {
		h--
	}

	mainWidth := w
	if m.ws.WorkflowOpen() {
		panelWidth := 2 * w / 5
		m.workflowView.SetSize(panelWidth, h)
		mainWidth = w - panelWidth
	}
	if m.ws.View() == workspace.ViewRecord && m.ws.InboxOpen() {
		inboxWidth := w / 4
		m.inboxView.SetSize(inboxWidth, h)
		mainWidth -= inboxWidth
	} else {
		m.inboxView.SetSize(mainWidth, h)
	}

	m.companiesView.SetSize(w, h)
	m.recordView.SetSize(mainWidth, h)
	m.pickerView.SetSize(w, h)
	m.helpView.SetSize(w, h)
	m.commandView.SetSize(w, h)
}

// View renders the full terminal UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(
		fmt.Sprintf("CRM Workspace — %s", m.ws.View()),
		fmt.Sprintf("Inbox %d · %s", m.ws.BadgeCount(), m.ws.CurrentUser().Name),
	)

	bannerRow := ""
	if banner, ok := m.ws.Banner(); ok {
		bannerRow = m.layout.RenderBanner(banner.Message)
	}

	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, bannerRow, m.renderContent(), statusBar)
}

// renderContent returns the composed content area for the current state.
func (m Model) renderContent() string {
	switch m.overlay {
	case overlayHelp:
		return m.helpView.View()
	case overlayCommand:
		return m.commandView.View()
	case overlayPicker:
		return m.pickerView.View()
	}

	var main string
	switch m.ws.View() {
	case workspace.ViewCompanies:
		main = m.companiesView.View()
	case workspace.ViewNotifications:
		main = m.inboxView.View()
	case workspace.ViewRecord:
		if m.ws.InboxOpen() {
			main = lipgloss.JoinHorizontal(lipgloss.Top, m.inboxView.View(), m.recordView.View())
		} else {
			main = m.recordView.View()
		}
	}

	if m.ws.WorkflowOpen() {
		return lipgloss.JoinHorizontal(lipgloss.Top, main, m.workflowView.View())
	}
	return main
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.overlay {
	case overlayHelp:
		return "? close help | esc back"
	case overlayCommand:
		return "enter execute | esc back"
	case overlayPicker:
		return "enter confirm | esc cancel"
	}

	if m.ws.WorkflowOpen() {
		switch m.ws.WorkflowMode() {
		case workspace.ModeInput:
			return "r request review | esc close | q quit"
		case workspace.ModeReview:
			return "p approve | esc close | q quit"
		default:
			return "esc close | q quit"
		}
	}

	switch m.ws.View() {
	case workspace.ViewRecord:
		return "esc back | w workflow | a assign | s status | d due | t title | q quit"
	case workspace.ViewNotifications:
		return "enter open | 1 companies | u switch user | ? help | q quit"
	default:
		return "enter open | 2 notifications | u switch user | ? help | q quit"
	}
}
