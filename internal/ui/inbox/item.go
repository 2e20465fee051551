package inbox

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kalistajoy/crm-workspace/internal/model"
	"github.com/kalistajoy/crm-workspace/internal/theme"
)

// TaskItem wraps a model.Task so it can be used in a bubbles/list.
type TaskItem struct {
	Task model.Task
}

// FilterValue returns the string used for fuzzy filtering.
func (i TaskItem) FilterValue() string { return i.Task.Title }

// Title returns the task title for the list.
func (i TaskItem) Title() string { return i.Task.Title }

// Description returns a short summary line for the list.
func (i TaskItem) Description() string {
	parts := []string{i.Task.RelatedRecord}
	if s := i.Task.Status.String(); s != "" {
		parts = append(parts, s)
	}
	if i.Task.CreatedAtRelative != "" {
		parts = append(parts, i.Task.CreatedAtRelative)
	}
	return strings.Join(parts, " | ")
}

// ItemDelegate implements list.ItemDelegate for rendering inbox cards.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 2 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 1 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single inbox card: title line with type chip, then a
// summary line with record, status, assignee, and due date.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(TaskItem)
	if !ok {
		return
	}
	t := ti.Task

	titleLine := t.Title
	if t.Type != model.TypeNone {
		titleLine += "  " + theme.TypeStyle(t.Type).Render(t.Type.String())
	}

	var meta []string
	if t.RelatedRecord != "" {
		meta = append(meta, t.RelatedRecord)
	}
	if s := t.Status.String(); s != "" {
		meta = append(meta, s)
	}
	if name := t.AssigneeName(); name != "" {
		meta = append(meta, name)
	}
	if t.DueDate != "" {
		meta = append(meta, "due "+t.DueDate)
	}
	metaLine := theme.HelpStyle.Render(strings.Join(meta, " · "))

	if index == m.Index() {
		fmt.Fprint(w, theme.SelectedItemStyle.Render(titleLine)+"\n"+
			theme.SelectedItemStyle.Render(metaLine))
		return
	}
	fmt.Fprint(w, theme.ListItemStyle.Render(titleLine)+"\n"+
		theme.ListItemStyle.Render(metaLine))
}
