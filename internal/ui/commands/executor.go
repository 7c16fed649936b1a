package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"empsearch/internal/searchapi"
	"empsearch/internal/ui/search"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx context.Context, searcher searchapi.Searcher) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Ctx:      ctx,
			Searcher: searcher,
		},
	}
}

// ExecuteSearch creates and executes a search command for ticket
func (e *Executor) ExecuteSearch(ticket search.Ticket) tea.Cmd {
	cmd := NewSearchCommand(e.ctx, ticket)
	return cmd.Execute()
}
