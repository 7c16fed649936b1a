package types

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type QueryChangedAction struct {
	Text string
}

func (a QueryChangedAction) Type() string { return "query_changed" }

type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

type PresetAction struct {
	Index int // zero-based
}

func (a PresetAction) Type() string { return "preset" }

// Navigation actions
type ScrollAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a ScrollAction) Type() string { return "scroll" }

// Overlay actions
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type DismissNoticeAction struct{}

func (a DismissNoticeAction) Type() string { return "dismiss_notice" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
