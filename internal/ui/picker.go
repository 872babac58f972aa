package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/rebound/internal/spring"
)

// configPickedMsg is sent when a config is chosen in the picker.
type configPickedMsg struct {
	name   string
	config spring.Config
}

// pickerClosedMsg is sent when the picker is dismissed.
type pickerClosedMsg struct{}

type configItem struct {
	name   string
	config spring.Config
}

func (i configItem) Title() string { return i.name }
func (i configItem) Description() string {
	ot, of := i.config.Origami()
	return fmt.Sprintf("tension %.1f  friction %.1f  origami %.0f/%.0f", i.config.Tension, i.config.Friction, ot, of)
}
func (i configItem) FilterValue() string { return i.name }

// pickerModel lists the configs of a registry.
type pickerModel struct {
	list list.Model
}

func newPicker(r *spring.ConfigRegistry, width, height int) pickerModel {
	all := r.All()
	items := make([]list.Item, 0, len(all))
	for _, name := range r.Names() {
		items = append(items, configItem{name: name, config: all[name]})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	if width < 20 {
		width = 80
	}
	if height < 5 {
		height = 20
	}
	l := list.New(items, delegate, width, height)
	l.Title = "spring configs"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = headerStyle

	return pickerModel{list: l}
}

func (m pickerModel) Update(msg tea.Msg) (pickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't intercept keys when filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(configItem); ok {
				return m, func() tea.Msg {
					return configPickedMsg{name: item.name, config: item.config}
				}
			}
		case "q", "esc", "ctrl+c":
			return m, func() tea.Msg { return pickerClosedMsg{} }
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}
