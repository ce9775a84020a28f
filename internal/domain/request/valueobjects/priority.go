package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityNormal: true,
	PriorityHigh:   true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid request priority: %s", s)
	}
	return p, nil
}

// DefaultPriority is used when a request is created without one.
func DefaultPriority() Priority {
	return PriorityNormal
}
