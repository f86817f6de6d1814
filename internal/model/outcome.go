package model

import "strconv"

// OutcomeKind tells how a generated function terminates.
type OutcomeKind int

const (
	// OutcomeNone means no return or throw happened; the function yields undefined.
	OutcomeNone OutcomeKind = iota
	// OutcomeReturn means the function returns Value.
	OutcomeReturn
	// OutcomeThrow means the function throws Value.
	OutcomeThrow
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeReturn:
		return "return"
	case OutcomeThrow:
		return "throw"
	}

	return "unknown"
}

// Outcome is the predicted terminal effect of a generated function.
type Outcome struct {
	Kind  OutcomeKind
	Value int
}

// Return builds a return outcome.
func Return(value int) Outcome {
	return Outcome{Kind: OutcomeReturn, Value: value}
}

// Throw builds a throw outcome.
func Throw(value int) Outcome {
	return Outcome{Kind: OutcomeThrow, Value: value}
}

// IsSet reports whether a terminal action has been recorded.
func (o Outcome) IsSet() bool {
	return o.Kind != OutcomeNone
}

// IsThrow reports whether the outcome is a pending exception.
func (o Outcome) IsThrow() bool {
	return o.Kind == OutcomeThrow
}

func (o Outcome) String() string {
	if !o.IsSet() {
		return "undefined"
	}

	return o.Kind.String() + " " + strconv.Itoa(o.Value)
}

// InitialLocal is the value the generated `local` variable starts with.
const InitialLocal = 3

// State is the record threaded through a simulation run.
type State struct {
	Counter int
	Local   int
	Outcome Outcome
}

// NewState returns the state at function entry.
func NewState() State {
	return State{Local: InitialLocal}
}
