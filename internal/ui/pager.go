package ui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// resultsPager shows rendered results in ov. It implements tea.ExecCommand
// so Bubble Tea releases the terminal while ov runs and restores it after.
type resultsPager struct {
	content string
}

func (p *resultsPager) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the controlling terminal itself
func (p *resultsPager) SetStdin(io.Reader)  {}
func (p *resultsPager) SetStdout(io.Writer) {}
func (p *resultsPager) SetStderr(io.Writer) {}

// openPager returns a command that shows content in ov and reports back with
// a pagerClosedMsg
func openPager(content string) tea.Cmd {
	return tea.Exec(&resultsPager{content: content}, func(err error) tea.Msg {
		return pagerClosedMsg{err: err}
	})
}
