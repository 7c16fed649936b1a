package domain

// RequestState is the status of the most recent search submission
type RequestState int

const (
	StateIdle RequestState = iota
	StatePending
	StateSucceeded
	StateFailed
)

func (s RequestState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
