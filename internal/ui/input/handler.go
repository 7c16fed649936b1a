package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"empsearch/internal/ui/input/modes"
	"empsearch/internal/ui/input/types"
)

const (
	placeholder = "Search employees... (e.g. 'Python developers with 5+ years')"
	charLimit   = 256
)

// Handler routes key messages to the active mode and owns the query text
// input widget. The widget only mirrors the controller's query; every edit
// is reported as a QueryChangedAction.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	keys        types.KeyMap
}

func New(keys types.KeyMap) *Handler {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Prompt = ""
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeQuery,
		textInput:   &ti,
		keys:        keys,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeQuery] = modes.NewQueryMode(keys, h.textInput)
	h.modes[types.ModeBrowse] = modes.NewBrowseMode(keys)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
			h.currentMode = changeMode.Mode
			allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
			if h.currentMode == types.ModeQuery {
				cmd = textinput.Blink
			}
			continue
		}
		allActions = append(allActions, action)
	}

	// Unconsumed keys in query mode edit the text
	if !consumed && h.currentMode == types.ModeQuery {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.QueryChangedAction{Text: after})
		}
	}

	return allActions, cmd
}

// Update handles non-keyboard messages for the text input (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeQuery {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// SetValue makes the widget show text, e.g. after a preset was chosen
func (h *Handler) SetValue(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

func (h *Handler) Value() string {
	return h.textInput.Value()
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// View renders the text input
func (h *Handler) View() string {
	return h.textInput.View()
}

func (h *Handler) Keys() types.KeyMap {
	return h.keys
}
