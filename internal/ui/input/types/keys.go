package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the input modes react to. It implements
// help.KeyMap so the footer and help overlay stay in sync with the modes.
type KeyMap struct {
	Submit    key.Binding
	Browse    key.Binding
	Edit      key.Binding
	Presets   key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Pager     key.Binding
	Dismiss   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Browse:    key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc/tab", "browse results")),
		Edit:      key.NewBinding(key.WithKeys("/", "i"), key.WithHelp("/", "edit query")),
		Presets:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "try a preset")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d", " "), key.WithHelp("pgdn", "page down")),
		Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first result")),
		End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last result")),
		Pager:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "open results in pager")),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss notice")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Browse, k.Edit, k.Presets, k.Pager, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Browse, k.Edit, k.Presets},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Pager, k.Dismiss, k.Help, k.Quit, k.ForceQuit},
	}
}
