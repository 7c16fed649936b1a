// Package search holds the interaction state of the search screen: the
// query being edited, the status of the latest submission, and the results
// it committed. Controller is the only writer of that state.
//
// Submissions are tagged with a sequence number. Only the completion that
// carries the newest sequence number may commit, so a slow response to a
// superseded query can never overwrite the outcome of a later one.
package search

import (
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"empsearch/internal/domain"
)

// Ticket identifies one issued request. The caller sends exactly one
// request for it and reports back through Complete.
type Ticket struct {
	Seq   uint64
	Query string // trimmed
}

// Outcome says what Complete did with a response
type Outcome int

const (
	OutcomeDiscarded Outcome = iota
	OutcomeSucceeded
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "discarded"
	}
}

// Controller owns the query, request state, result set, summary and
// failure notice. It is not safe for concurrent use; the UI drives it from
// the Bubble Tea update loop.
type Controller struct {
	query     string
	state     domain.RequestState
	results   []domain.Employee
	summary   string
	notice    string
	lastQuery string

	seq      uint64 // newest issued ticket
	inflight string // query of the newest ticket

	failureNotice string
	logger        *log.Logger
}

// NewController creates a controller in the Idle state. failureNotice is
// the text shown to the user when a request fails.
func NewController(failureNotice string, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Controller{
		state:         domain.StateIdle,
		results:       []domain.Employee{},
		failureNotice: failureNotice,
		logger:        logger.WithPrefix("search"),
	}
}

// SetQuery replaces the current query verbatim
func (c *Controller) SetQuery(text string) {
	c.query = text
}

// Submit starts a search for the trimmed query. It returns false and
// changes nothing when the trimmed query is empty.
func (c *Controller) Submit() (Ticket, bool) {
	trimmed := strings.TrimSpace(c.query)
	if trimmed == "" {
		return Ticket{}, false
	}

	if c.state == domain.StatePending {
		c.logger.Debug("superseding outstanding request", "seq", c.seq, "query", c.inflight)
	}

	c.seq++
	c.inflight = trimmed
	c.state = domain.StatePending
	c.notice = ""

	c.logger.Info("search submitted", "seq", c.seq, "query", trimmed)
	return Ticket{Seq: c.seq, Query: trimmed}, true
}

// SubmitWithQuery is SetQuery followed by Submit
func (c *Controller) SubmitWithQuery(text string) (Ticket, bool) {
	c.SetQuery(text)
	return c.Submit()
}

// Complete records the response for ticket seq. Responses for any ticket
// other than the newest, or arriving when nothing is pending, are dropped.
// A failure leaves the previous results and summary in place.
func (c *Controller) Complete(seq uint64, result domain.SearchResult, err error) Outcome {
	if seq != c.seq || c.state != domain.StatePending {
		c.logger.Debug("dropping stale response", "seq", seq, "latest", c.seq, "state", c.state)
		return OutcomeDiscarded
	}

	if err != nil {
		c.state = domain.StateFailed
		c.notice = c.failureNotice
		c.logger.Error("search failed", "seq", seq, "query", c.inflight, "err", err)
		return OutcomeFailed
	}

	employees := result.Employees
	if employees == nil {
		employees = []domain.Employee{}
	}
	c.results = employees
	c.summary = result.Summary
	c.lastQuery = c.inflight
	c.state = domain.StateSucceeded

	c.logger.Info("search succeeded", "seq", seq, "query", c.inflight, "results", len(employees))
	return OutcomeSucceeded
}

// DismissNotice hides the failure notice without touching anything else
func (c *Controller) DismissNotice() {
	c.notice = ""
}

func (c *Controller) Query() string { return c.query }

func (c *Controller) State() domain.RequestState { return c.state }

func (c *Controller) Pending() bool { return c.state == domain.StatePending }

// Results returns a copy of the committed result set
func (c *Controller) Results() []domain.Employee { return slices.Clone(c.results) }

func (c *Controller) Summary() string { return c.summary }

func (c *Controller) Notice() string { return c.notice }

// LastQuery is the trimmed query that produced the committed results
func (c *Controller) LastQuery() string { return c.lastQuery }

// Seq is the sequence number of the newest issued ticket
func (c *Controller) Seq() uint64 { return c.seq }
