// Package workflow renders the workflow side panel in its three modes:
// the editable pricing form, the pre-filled review form, and the
// read-only run overview.
package workflow

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kalistajoy/crm-workspace/internal/keys"
	"github.com/kalistajoy/crm-workspace/internal/model"
	"github.com/kalistajoy/crm-workspace/internal/theme"
	"github.com/kalistajoy/crm-workspace/internal/workspace"
)

// RequestReviewMsg signals the parent to request review on the active task.
type RequestReviewMsg struct{}

// ApproveMsg signals the parent to approve the active task.
type ApproveMsg struct{}

// CloseMsg signals the parent to close the workflow panel.
type CloseMsg struct{}

// Pre-filled values shown in review mode, matching the demo's pricing
// inquiry scenario.
const (
	reviewRate     = "$125,000"
	reviewDiscount = "15"
	reviewTerm     = "2 Years"
	reviewNotes    = "This pricing reflects our standard enterprise terms and is valid through the end of Q1."
)

// Model is the workflow panel view.
type Model struct {
	mode     workspace.WorkflowMode
	status   workspace.WorkflowStatus
	reviewer string
	executor string
	keys     *keys.KeyMap
	width    int
	height   int
}

// New creates a new workflow panel model. The reviewer name feeds the
// "will not be sent until approved" hint; executor is shown in the
// overview context rows.
func New(reviewer, executor string, k *keys.KeyMap, width, height int) Model {
	return Model{
		reviewer: reviewer,
		executor: executor,
		keys:     k,
		width:    width,
		height:   height,
	}
}

// SetState updates the panel mode and run status before a render.
func (m *Model) SetState(mode workspace.WorkflowMode, status workspace.WorkflowStatus) {
	m.mode = mode
	m.status = status
}

// SetExecutor updates the name shown in the overview context rows,
// tracking the session user.
func (m *Model) SetExecutor(name string) {
	m.executor = name
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the workflow panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		return m, func() tea.Msg { return CloseMsg{} }

	case key.Matches(keyMsg, m.keys.RequestReview):
		if m.mode == workspace.ModeInput {
			return m, func() tea.Msg { return RequestReviewMsg{} }
		}

	case key.Matches(keyMsg, m.keys.Approve):
		if m.mode == workspace.ModeReview {
			return m, func() tea.Msg { return ApproveMsg{} }
		}
	}

	return m, nil
}

// View renders the workflow panel for the current mode.
func (m Model) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	b.WriteString(title.Render("Respond to Pricing Inquiry (Q1 Renewal)"))
	b.WriteString("\n\n")

	switch m.mode {
	case workspace.ModeOverview:
		b.WriteString(m.renderOverview())
	case workspace.ModeReview:
		b.WriteString(m.renderForm(true))
	default:
		b.WriteString(m.renderForm(false))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return theme.PanelStyle.Width(m.width - 4).Render(b.String())
}

// renderForm draws the pricing form; review mode pre-fills the values.
func (m Model) renderForm(review bool) string {
	rate, discount, term, notes := "", "", "1 Year", ""
	if review {
		rate = reviewRate
		discount = reviewDiscount
		term = reviewTerm
		notes = reviewNotes
	}

	var b strings.Builder
	b.WriteString(formField("Current Annual Rate", rate))
	b.WriteString(formField("Multi-Year Discount (%)", discount))
	b.WriteString(formField("Contract Term", term))
	b.WriteString(formField("Additional Notes", notes))
	return b.String()
}

func formField(label, value string) string {
	if value == "" {
		value = theme.HelpStyle.Render("—")
	} else {
		value = theme.ValueStyle.Render(value)
	}
	return fmt.Sprintf("%s\n  %s\n", theme.LabelStyle.Render(label), value)
}

// renderOverview draws the read-only run summary: context rows and the
// two-step visualizer.
func (m Model) renderOverview() string {
	completed := m.status == workspace.RunCompleted

	var b strings.Builder
	b.WriteString(theme.LabelStyle.Render("Context"))
	b.WriteString("\n\n")
	b.WriteString(contextRow("Executed by", m.executor))
	b.WriteString(contextRow("Run started", "Jan 23, 2026 9:02 PM"))
	b.WriteString(contextRow("Run status", theme.RunBadgeStyle(m.status).Render(m.status.String())))
	lastUpdate := "less than a minute ago"
	if completed {
		lastUpdate = "3 minutes ago"
	}
	b.WriteString(contextRow("Last update", lastUpdate))
	b.WriteString(contextRow("Updated by", "System"))

	b.WriteString("\n")
	b.WriteString(theme.LabelStyle.Render("Workflow"))
	b.WriteString("\n\n")

	stepBadge := theme.RunBadgeStyle(m.status).Render(m.status.String())
	b.WriteString(fmt.Sprintf("  %s %s  %s\n",
		theme.TypeStyle(model.TypeEmail).Render("Email"),
		theme.ValueStyle.Render("Approval Request"),
		stepBadge,
	))
	b.WriteString(fmt.Sprintf("  %s %s  %s\n",
		theme.LabelStyle.Render("TRIGGER"),
		theme.ValueStyle.Render("Launch manually"),
		lipgloss.NewStyle().Foreground(theme.ColorGreen).Render("✓"),
	))

	return b.String()
}

func contextRow(label, value string) string {
	return fmt.Sprintf("%s %s\n",
		theme.LabelStyle.Width(14).Render(label),
		theme.ValueStyle.Render(value),
	)
}

// renderFooter draws the mode-specific action hints.
func (m Model) renderFooter() string {
	switch m.mode {
	case workspace.ModeInput:
		hint := fmt.Sprintf("Email will not be sent until approved by %s", m.reviewer)
		return theme.HelpStyle.Render(hint) + "\n" +
			theme.HelpStyle.Render("r request review | esc close")
	case workspace.ModeReview:
		return theme.HelpStyle.Render("p approve and submit | esc close")
	default:
		return theme.HelpStyle.Render("esc close")
	}
}

// SetSize updates the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
