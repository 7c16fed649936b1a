package ui

// pagerClosedMsg is sent when the results pager exits and the program has
// the terminal back
type pagerClosedMsg struct {
	err error
}
