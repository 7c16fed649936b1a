package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"empsearch/internal/domain"
	"empsearch/internal/searchapi"
	"empsearch/internal/ui/search"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx      context.Context
	Searcher searchapi.Searcher
}

// SearchCompletedMsg carries the response for one ticket back to the
// update loop
type SearchCompletedMsg struct {
	Seq     uint64
	Query   string
	Result  domain.SearchResult
	Err     error
	Elapsed time.Duration
}

// SearchCommand performs the request for a single ticket
type SearchCommand struct {
	ctx    *CommandContext
	ticket search.Ticket
}

// NewSearchCommand creates a new search command
func NewSearchCommand(ctx *CommandContext, ticket search.Ticket) *SearchCommand {
	return &SearchCommand{
		ctx:    ctx,
		ticket: ticket,
	}
}

// Execute returns a tea.Cmd that runs off the update loop and reports back
// with a SearchCompletedMsg
func (c *SearchCommand) Execute() tea.Cmd {
	ctx := c.ctx.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	searcher := c.ctx.Searcher
	ticket := c.ticket

	return func() tea.Msg {
		start := time.Now()
		result, err := searcher.Search(ctx, ticket.Query)
		return SearchCompletedMsg{
			Seq:     ticket.Seq,
			Query:   ticket.Query,
			Result:  result,
			Err:     err,
			Elapsed: time.Since(start),
		}
	}
}
