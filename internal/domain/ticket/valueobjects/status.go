package valueobjects

import "fmt"

// Status is the lifecycle state of a ticket. The wire values are the
// Portuguese labels persisted and exposed by the API.
type Status string

const (
	StatusOpen       Status = "aberto"
	StatusInProgress Status = "em_andamento"
	StatusResolved   Status = "resolvido"
	StatusClosed     Status = "fechado"
)

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

// Any status may be set directly by a triager; the lifecycle is not a strict
// state machine, which keeps triage flexible.

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// IsActionable reports whether the ticket still needs technician attention.
func (s Status) IsActionable() bool {
	return s == StatusOpen || s == StatusInProgress
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}
