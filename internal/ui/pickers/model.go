// Package pickers renders the small huh-backed edit forms: the assignee,
// status, and due-date pickers, the title editor, and the user switcher.
package pickers

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/kalistajoy/crm-workspace/internal/model"
)

// TaskEditedMsg carries a full replacement task after an assignee,
// status, or due-date edit.
type TaskEditedMsg struct {
	Task model.Task
}

// TitleEditedMsg carries a title edit for the given task. An empty title
// is allowed here; the coordinator rejects it and keeps the old one.
type TitleEditedMsg struct {
	TaskID string
	Title  string
}

// UserChosenMsg carries the user picked in the switcher.
type UserChosenMsg struct {
	User model.User
}

// CancelMsg is sent when the user aborts the active picker.
type CancelMsg struct{}

type kind int

const (
	kindNone kind = iota
	kindAssign
	kindStatus
	kindDue
	kindTitle
	kindSwitchUser
)

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	assignee string
	status   model.TaskStatus
	dueDate  string
	title    string
	userName string
}

// Model is the Bubble Tea model for the picker forms.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	kind   kind
	task   model.Task
	users  []model.User
	width  int
	height int
}

// New creates a new pickers model over the user registry.
func New(users []model.User, width, height int) Model {
	return Model{
		fb:     &formBindings{},
		users:  users,
		width:  width,
		height: height,
	}
}

// StartAssign opens the assignee picker for the given task.
func (m *Model) StartAssign(task model.Task) tea.Cmd {
	m.kind = kindAssign
	m.task = task
	m.fb.assignee = task.AssigneeName()

	opts := []huh.Option[string]{huh.NewOption("Unassigned", "")}
	for _, u := range m.users {
		opts = append(opts, huh.NewOption(u.Name, u.Name))
	}

	m.form = m.wrap(huh.NewSelect[string]().
		Title("Assign to").
		Options(opts...).
		Value(&m.fb.assignee))
	return m.form.Init()
}

// StartStatus opens the status picker for the given task.
func (m *Model) StartStatus(task model.Task) tea.Cmd {
	m.kind = kindStatus
	m.task = task
	m.fb.status = task.Status

	m.form = m.wrap(huh.NewSelect[model.TaskStatus]().
		Title("Status").
		Options(
			huh.NewOption("To Do", model.StatusToDo),
			huh.NewOption("In Progress", model.StatusInProgress),
			huh.NewOption("In Review", model.StatusInReview),
			huh.NewOption("Done", model.StatusDone),
		).
		Value(&m.fb.status))
	return m.form.Init()
}

// StartDue opens the due-date editor for the given task.
func (m *Model) StartDue(task model.Task) tea.Cmd {
	m.kind = kindDue
	m.task = task
	m.fb.dueDate = task.DueDate

	m.form = m.wrap(huh.NewInput().
		Title("Due date").
		Placeholder("e.g. Mar 28 (empty clears)").
		Value(&m.fb.dueDate))
	return m.form.Init()
}

// StartTitle opens the title editor for the given task.
func (m *Model) StartTitle(task model.Task) tea.Cmd {
	m.kind = kindTitle
	m.task = task
	m.fb.title = task.Title

	m.form = m.wrap(huh.NewInput().
		Title("Title").
		Value(&m.fb.title))
	return m.form.Init()
}

// StartSwitchUser opens the user switcher.
func (m *Model) StartSwitchUser(current model.User) tea.Cmd {
	m.kind = kindSwitchUser
	m.fb.userName = current.Name

	opts := make([]huh.Option[string], len(m.users))
	for i, u := range m.users {
		opts[i] = huh.NewOption(u.Name, u.Name)
	}

	m.form = m.wrap(huh.NewSelect[string]().
		Title("Continue as").
		Options(opts...).
		Value(&m.fb.userName))
	return m.form.Init()
}

func (m *Model) wrap(field huh.Field) *huh.Form {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	return huh.NewForm(huh.NewGroup(field)).WithWidth(w)
}

// Update handles messages for the active picker.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

func (m Model) handleSubmit() tea.Cmd {
	switch m.kind {
	case kindAssign:
		task := m.task
		task.AssignedTo = nil
		if m.fb.assignee != "" {
			for _, u := range m.users {
				if u.Name == m.fb.assignee {
					assignee := u
					task.AssignedTo = &assignee
					break
				}
			}
		}
		return func() tea.Msg { return TaskEditedMsg{Task: task} }

	case kindStatus:
		task := m.task
		task.Status = m.fb.status
		return func() tea.Msg { return TaskEditedMsg{Task: task} }

	case kindDue:
		task := m.task
		task.DueDate = m.fb.dueDate
		return func() tea.Msg { return TaskEditedMsg{Task: task} }

	case kindTitle:
		id, title := m.task.ID, m.fb.title
		return func() tea.Msg { return TitleEditedMsg{TaskID: id, Title: title} }

	case kindSwitchUser:
		for _, u := range m.users {
			if u.Name == m.fb.userName {
				user := u
				return func() tea.Msg { return UserChosenMsg{User: user} }
			}
		}
		return func() tea.Msg { return CancelMsg{} }
	}

	return func() tea.Msg { return CancelMsg{} }
}

// View renders the active picker.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(m.form.View())
}

// SetSize updates the picker dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Active reports whether a picker form is in progress.
func (m Model) Active() bool {
	return m.form != nil && m.kind != kindNone &&
		m.form.State == huh.StateNormal
}

// Reset clears the active picker.
func (m *Model) Reset() {
	m.form = nil
	m.kind = kindNone
}

