package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Selection
	Select key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// View switching
	GoCompanies     key.Binding
	GoNotifications key.Binding

	// Workflow panel
	OpenWorkflow  key.Binding
	RequestReview key.Binding
	Approve       key.Binding

	// Task edits
	Assign    key.Binding
	SetStatus key.Binding
	SetDue    key.Binding
	EditTitle key.Binding

	// Session
	SwitchUser key.Binding

	// Help toggle
	Help key.Binding

	// Command palette
	Command key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		GoCompanies: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "companies"),
		),
		GoNotifications: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "notifications"),
		),
		OpenWorkflow: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "workflow"),
		),
		RequestReview: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "request review"),
		),
		Approve: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "approve"),
		),
		Assign: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "assign"),
		),
		SetStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "status"),
		),
		SetDue: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "due date"),
		),
		EditTitle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "edit title"),
		),
		SwitchUser: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "switch user"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Select, k.Back,
		k.Quit, k.Help,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back, k.Quit},
		{k.GoCompanies, k.GoNotifications, k.Help, k.Command},
		{k.OpenWorkflow, k.RequestReview, k.Approve},
		{k.Assign, k.SetStatus, k.SetDue, k.EditTitle, k.SwitchUser},
	}
}
