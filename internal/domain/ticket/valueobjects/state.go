package valueobjects

import "fmt"

type TicketState string

const (
	StateOpen   TicketState = "open"
	StateClosed TicketState = "close"
)

var validTicketStates = map[TicketState]bool{
	StateOpen:   true,
	StateClosed: true,
}

func (ts TicketState) String() string {
	return string(ts)
}

func (ts TicketState) IsValid() bool {
	return validTicketStates[ts]
}

func (ts TicketState) IsOpen() bool {
	return ts == StateOpen
}

func (ts TicketState) IsClosed() bool {
	return ts == StateClosed
}

// Toggled returns the opposite state. The state machine has exactly two
// states, so every transition is a toggle; who may perform it is decided by
// the ticket entity.
func (ts TicketState) Toggled() TicketState {
	if ts == StateOpen {
		return StateClosed
	}
	return StateOpen
}

func NewTicketState(s string) (TicketState, error) {
	ts := TicketState(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket state: %s", s)
	}
	return ts, nil
}
