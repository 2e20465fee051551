package companies

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kalistajoy/crm-workspace/internal/keys"
	"github.com/kalistajoy/crm-workspace/internal/model"
	"github.com/kalistajoy/crm-workspace/internal/theme"
)

// SelectedCompanyMsg is sent when the user opens a company record.
type SelectedCompanyMsg struct {
	CompanyID string
}

// Model is the companies table view.
type Model struct {
	table     table.Model
	companies []model.Company
	keys      *keys.KeyMap
	width     int
	height    int
}

// New creates the companies table over the seeded company registry.
func New(companies []model.Company, k *keys.KeyMap, width, height int) Model {
	t := table.New(
		table.WithColumns(columns(width)),
		table.WithRows(rows(companies)),
		table.WithFocused(true),
		table.WithHeight(height-2),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(theme.ColorWhite).
		BorderForeground(theme.ColorBorder)
	styles.Selected = styles.Selected.
		Bold(true).
		Foreground(theme.ColorBlue)
	t.SetStyles(styles)

	return Model{
		table:     t,
		companies: companies,
		keys:      k,
		width:     width,
		height:    height,
	}
}

func columns(width int) []table.Column {
	name := width / 4
	if name < 12 {
		name = 12
	}
	return []table.Column{
		{Title: "Name", Width: name},
		{Title: "Domain", Width: 18},
		{Title: "Account Owner", Width: 18},
		{Title: "ARR", Width: 12},
		{Title: "ICP", Width: 4},
	}
}

func rows(companies []model.Company) []table.Row {
	out := make([]table.Row, len(companies))
	for i, c := range companies {
		icp := ""
		if c.IsICP {
			icp = "✓"
		}
		out[i] = table.Row{c.Name, c.URL, c.AccountOwner.Name, c.ARR, icp}
	}
	return out
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the companies table.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Select) {
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.companies) {
				id := m.companies[idx].ID
				return m, func() tea.Msg {
					return SelectedCompanyMsg{CompanyID: id}
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the companies table.
func (m Model) View() string {
	return m.table.View()
}

// SetSize updates the table dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetColumns(columns(width))
	m.table.SetHeight(height - 2)
}
