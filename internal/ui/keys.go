package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Left         key.Binding
	Right        key.Binding
	NextControl  key.Binding
	PrevControl  key.Binding
	Kick         key.Binding
	TensionUp    key.Binding
	TensionDown  key.Binding
	FrictionUp   key.Binding
	FrictionDown key.Binding
	Clamp        key.Binding
	Preset       key.Binding
	Wander       key.Binding
	Viz          key.Binding
	Save         key.Binding
	Open         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "move target")),
		Right:        key.NewBinding(key.WithKeys("right", "l")),
		NextControl:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		PrevControl:  key.NewBinding(key.WithKeys("shift+tab")),
		Kick:         key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "kick")),
		TensionUp:    key.NewBinding(key.WithKeys("T"), key.WithHelp("t/T", "tension")),
		TensionDown:  key.NewBinding(key.WithKeys("t")),
		FrictionUp:   key.NewBinding(key.WithKeys("F"), key.WithHelp("f/F", "friction")),
		FrictionDown: key.NewBinding(key.WithKeys("f")),
		Clamp:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clamp")),
		Preset:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "preset")),
		Wander:       key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wander")),
		Viz:          key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "viz")),
		Save:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Open:         key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:         key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.NextControl, k.Kick, k.Preset, k.Wander, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.NextControl, k.Kick},
		{k.TensionUp, k.FrictionUp, k.Clamp, k.Preset},
		{k.Wander, k.Viz, k.Save, k.Open},
		{k.Help, k.Quit},
	}
}

func isQuit(k keyMap, msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Quit)
}
