package models

import "fmt"

// Status is the lifecycle state of a customer order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// validTransitions defines the one-way order lifecycle. There is no path out
// of completed.
var validTransitions = map[Status]map[Status]bool{
	StatusPending:   {StatusCompleted: true},
	StatusCompleted: {},
}

// CanTransition reports whether an order may move from s to target.
func (s Status) CanTransition(target Status) bool {
	return validTransitions[s][target]
}

// ParseStatus validates a status string from external input.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}
