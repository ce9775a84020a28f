package valueobjects

import "fmt"

type Status string

const (
	StatusOpen    Status = "open"
	StatusPending Status = "pending"
	StatusClosed  Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusOpen:    true,
	StatusPending: true,
	StatusClosed:  true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// CanTransitionTo reports whether the transition is allowed. There is no
// terminal state: a closed request can always be reopened, so every
// transition between two distinct statuses is permitted.
func (s Status) CanTransitionTo(newStatus Status) bool {
	if !s.IsValid() || !newStatus.IsValid() {
		return false
	}
	return s != newStatus
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid request status: %s", s)
	}
	return st, nil
}
