package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"empsearch/internal/config"
	"empsearch/internal/logging"
	"empsearch/internal/searchapi"
	"empsearch/internal/ui/commands"
	"empsearch/internal/ui/input"
	inputtypes "empsearch/internal/ui/input/types"
	"empsearch/internal/ui/search"
	"empsearch/internal/ui/views"
)

// pageStep is how many cards a page up/down moves
const pageStep = 5

// Options configures a Model beyond what the config file holds
type Options struct {
	// Ctx bounds every request the model starts; nil means Background
	Ctx context.Context
	// Endpoint is shown in the title bar and the failure notice
	Endpoint string
	// InitialQuery is submitted as soon as the program starts
	InitialQuery string
	Logger       *log.Logger
	// ShowReady appends views.ReadyMarker to the footer for the e2e harness
	ShowReady bool
}

// Model represents the UI state
type Model struct {
	config *config.Config
	logger *log.Logger

	// UI-specific state not held by the controller
	width        int
	height       int
	scrollOffset int
	showHelp     bool
	endpoint     string
	initialQuery string
	showReady    bool

	help    help.Model
	spinner spinner.Model

	// Handlers
	controller   *search.Controller // sole owner of request state
	cmdExecutor  *commands.Executor // runs searches off the update loop
	inputHandler *input.Handler     // key routing and query text input
	renderer     *views.Renderer    // view renderer
	helpRenderer *HelpRenderer      // help overlay content
}

// FailureNotice is the message shown when a search fails
func FailureNotice(endpoint string) string {
	if endpoint == "" {
		return "Search failed. Make sure the search service is reachable."
	}
	return fmt.Sprintf("Search failed. Make sure the search service is reachable at %s.", endpoint)
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, searcher searchapi.Searcher, opts Options) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Logger()
	}
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	return &Model{
		config:       cfg,
		logger:       logger,
		endpoint:     opts.Endpoint,
		initialQuery: opts.InitialQuery,
		showReady:    opts.ShowReady,
		help:         help.New(),
		spinner:      sp,
		controller:   search.NewController(FailureNotice(opts.Endpoint), logger),
		cmdExecutor:  commands.NewExecutor(ctx, searcher),
		inputHandler: input.New(inputtypes.DefaultKeyMap()),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.initialQuery != "" {
		m.inputHandler.SetValue(m.initialQuery)
		if ticket, ok := m.controller.SubmitWithQuery(m.initialQuery); ok {
			cmds = append(cmds, m.startSearch(ticket))
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		// Stop ticking once nothing is outstanding
		if !m.controller.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.SearchCompletedMsg:
		outcome := m.controller.Complete(msg.Seq, msg.Result, msg.Err)
		m.logger.Debug("search completed",
			"seq", msg.Seq,
			"query", msg.Query,
			"outcome", outcome,
			"elapsed", msg.Elapsed)
		if outcome == search.OutcomeSucceeded {
			m.scrollOffset = 0
		}
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			m.logger.Error("results pager failed", "err", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other text input messages
	return m, m.inputHandler.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The help overlay takes every key until it is closed
	if m.showHelp {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}

	actions, cmd := m.inputHandler.HandleKey(msg, m)
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return m, tea.Batch(cmds...)
}

// processAction executes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QueryChangedAction:
		m.controller.SetQuery(a.Text)

	case inputtypes.SubmitAction:
		if ticket, ok := m.controller.Submit(); ok {
			return m.startSearch(ticket)
		}

	case inputtypes.PresetAction:
		presets := m.config.UI.Presets
		if a.Index < 0 || a.Index >= len(presets) {
			return nil
		}
		text := presets[a.Index]
		m.inputHandler.SetValue(text)
		if ticket, ok := m.controller.SubmitWithQuery(text); ok {
			return m.startSearch(ticket)
		}

	case inputtypes.ScrollAction:
		m.scroll(a.Direction)

	case inputtypes.OpenPagerAction:
		if m.ResultCount() == 0 {
			return nil
		}
		return openPager(m.renderer.RenderPlain(m.viewState()))

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.DismissNoticeAction:
		m.controller.DismissNotice()

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// startSearch runs the request for ticket and keeps the spinner turning
// until it completes
func (m *Model) startSearch(ticket search.Ticket) tea.Cmd {
	return tea.Batch(m.cmdExecutor.ExecuteSearch(ticket), m.spinner.Tick)
}

func (m *Model) scroll(direction string) {
	total := m.ResultCount()
	switch direction {
	case "up":
		m.scrollOffset--
	case "down":
		m.scrollOffset++
	case "pageup":
		m.scrollOffset -= pageStep
	case "pagedown":
		m.scrollOffset += pageStep
	case "home":
		m.scrollOffset = 0
	case "end":
		m.scrollOffset = total - 1
	}
	m.scrollOffset = views.ClampOffset(m.scrollOffset, total)
}

// Busy implements inputtypes.Context
func (m *Model) Busy() bool {
	return m.controller.Pending()
}

// PresetCount implements inputtypes.Context
func (m *Model) PresetCount() int {
	return len(m.config.UI.Presets)
}

// ResultCount implements inputtypes.Context
func (m *Model) ResultCount() int {
	return len(m.controller.Results())
}

// Controller exposes the search controller, mainly for tests
func (m *Model) Controller() *search.Controller {
	return m.controller
}

func (m *Model) viewState() views.ViewState {
	keys := m.inputHandler.Keys()
	return views.ViewState{
		Width:        m.width,
		Height:       m.height,
		InputView:    m.inputHandler.View(),
		Editing:      m.inputHandler.CurrentMode() == inputtypes.ModeQuery,
		Busy:         m.controller.Pending(),
		Spinner:      m.spinner.View(),
		State:        m.controller.State(),
		Employees:    m.controller.Results(),
		Summary:      m.controller.Summary(),
		Notice:       m.controller.Notice(),
		LastQuery:    m.controller.LastQuery(),
		Presets:      m.config.UI.Presets,
		ScrollOffset: m.scrollOffset,
		Endpoint:     m.endpoint,
		ShowHelp:     m.showHelp,
		HelpView:     m.helpRenderer.Render(keys),
		ShortHelp:    m.help.ShortHelpView(keys.ShortHelp()),
		ShowReady:    m.showReady,
	}
}

// View renders the UI
func (m *Model) View() string {
	return m.renderer.Render(m.viewState())
}
