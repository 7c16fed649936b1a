package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"empsearch/internal/ui/input/types"
)

// BrowseMode maps single keys to commands while the text input is blurred
type BrowseMode struct {
	keys types.KeyMap
}

func NewBrowseMode(keys types.KeyMap) *BrowseMode {
	return &BrowseMode{keys: keys}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Edit):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true

	case key.Matches(msg, m.keys.Presets):
		idx := int(msg.Runes[0] - '1')
		if idx >= ctx.PresetCount() {
			return nil, false
		}
		if ctx.Busy() {
			return nil, true
		}
		return []types.Action{types.PresetAction{Index: idx}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.ScrollAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.ScrollAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.ScrollAction{Direction: "pageup"}}, true

	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.ScrollAction{Direction: "pagedown"}}, true

	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.ScrollAction{Direction: "home"}}, true

	case key.Matches(msg, m.keys.End):
		return []types.Action{types.ScrollAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Pager):
		if ctx.ResultCount() == 0 {
			return nil, false
		}
		return []types.Action{types.OpenPagerAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.Dismiss):
		return []types.Action{types.DismissNoticeAction{}}, true
	}

	return nil, false
}
