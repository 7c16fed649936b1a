package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"empsearch/internal/ui/input/types"
)

// QueryMode edits the query text. Keys it does not consume go to the
// shared text input.
type QueryMode struct {
	keys      types.KeyMap
	textInput *textinput.Model
}

func NewQueryMode(keys types.KeyMap, ti *textinput.Model) *QueryMode {
	return &QueryMode{
		keys:      keys,
		textInput: ti,
	}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
		m.textInput.CursorEnd()
	}
	return nil
}

func (m *QueryMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Submit):
		// Swallow activation while a request is outstanding
		if ctx.Busy() {
			return nil, true
		}
		return []types.Action{types.SubmitAction{}}, true

	case key.Matches(msg, m.keys.Browse):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true

	default:
		return nil, false
	}
}
