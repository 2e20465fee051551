// Package record renders a single company record: the company's metadata
// panel plus the active task, when one is selected.
package record

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kalistajoy/crm-workspace/internal/keys"
	"github.com/kalistajoy/crm-workspace/internal/model"
	"github.com/kalistajoy/crm-workspace/internal/theme"
)

// BackMsg signals the parent to navigate back to the notifications view.
type BackMsg struct{}

// Model is the company record view.
type Model struct {
	company *model.Company
	task    *model.Task
	vp      viewport.Model
	keys    *keys.KeyMap
	width   int
	height  int
}

// New creates a new record view model.
func New(k *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		vp:     vp,
		keys:   k,
		width:  width,
		height: height,
	}
}

// SetRecord sets the company and optional active task shown in the view.
// Either argument may be nil.
func (m *Model) SetRecord(company *model.Company, task *model.Task) {
	m.company = company
	m.task = task
	m.vp.SetContent(m.renderContent())
	m.vp.GotoTop()
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the record view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Back) {
			return m, func() tea.Msg {
				return BackMsg{}
			}
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// View renders the record view.
func (m Model) View() string {
	return m.vp.View()
}

func (m Model) renderContent() string {
	if m.company == nil {
		return theme.HelpStyle.Render("No record selected.")
	}

	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	b.WriteString(title.Render(m.company.Name))
	b.WriteString("\n\n")

	b.WriteString(field("Domain", m.company.URL))
	b.WriteString(field("ARR", m.company.ARR))
	b.WriteString(field("Account owner", m.company.AccountOwner.Name))
	b.WriteString(field("Created by", createdByLabel(m.company.CreatedBy)))
	b.WriteString(field("Address", m.company.Address))
	b.WriteString(field("LinkedIn", m.company.Linkedin))
	icp := "No"
	if m.company.IsICP {
		icp = "Yes"
	}
	b.WriteString(field("ICP", icp))

	if m.task != nil {
		b.WriteString("\n")
		b.WriteString(title.Render("Active task"))
		b.WriteString("\n\n")
		taskTitle := m.task.Title
		if m.task.Type != model.TypeNone {
			taskTitle += "  " + theme.TypeStyle(m.task.Type).Render(m.task.Type.String())
		}
		b.WriteString(field("Title", taskTitle))
		if s := m.task.Status.String(); s != "" {
			b.WriteString(field("Status", theme.StatusStyle(m.task.Status).Render(s)))
		}
		if name := m.task.AssigneeName(); name != "" {
			b.WriteString(field("Assigned to", name))
		}
		b.WriteString(field("Assigned by", m.task.AssignedBy.DisplayName()))
		if m.task.DueDate != "" {
			b.WriteString(field("Due", m.task.DueDate))
		}
		b.WriteString("\n")
		b.WriteString(theme.ValueStyle.Render(m.task.Description))
		b.WriteString("\n")
	}

	return theme.PanelStyle.Width(m.width - 4).Render(b.String())
}

func field(label, value string) string {
	return fmt.Sprintf("%s %s\n",
		theme.LabelStyle.Width(15).Render(label),
		theme.ValueStyle.Render(value),
	)
}

func createdByLabel(u model.User) string {
	if u.Name == "" {
		return "System"
	}
	return u.Name
}

// SetSize updates the viewport dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.vp.Width = width
	m.vp.Height = height - 2
	m.vp.SetContent(m.renderContent())
}
