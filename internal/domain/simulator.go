package domain

import (
	"fmt"

	m "excgen.dev/pkg/excgen/internal/model"
)

// Values produced by the helpers of the generated test file.
const (
	returnedValue        = 15
	thrownValue          = 42
	catchOffset          = 2
	finallyThrownValue   = 25
	finallyReturnOffset  = 3
	finallyLocalIncrease = 2
	endReturnOffset      = 5
)

// Simulate predicts what the function generated for f returns or throws and
// the value of the global counter afterwards, walking the blocks in the order
// they are emitted. f must have been accepted by the validator.
//
// A block only records an outcome while none is pending, except that a catch
// block replaces a pending throw and a finally block replaces anything.
func Simulate(f m.Flags) m.State {
	s := m.NewState()

	simulateTry(f, &s)

	if f.Has(m.DoCatch) {
		simulateCatch(f, &s)
	}

	if f.Has(m.DoFinally) {
		simulateFinally(f, &s)
	}

	countIfPending(&s)

	if f.Has(m.EndReturnLocal) && !s.Outcome.IsSet() {
		s.Outcome = m.Return(endReturnOffset + s.Local)
	}

	return s
}

func simulateTry(f m.Flags, s *m.State) {
	s.Counter++

	returnsFirst := f.Has(m.TryReturns) && !(f.Has(m.TryThrows) && !f.Has(m.TryFirstReturns))
	returnsLast := f.Has(m.TryReturns) && f.Has(m.TryThrows) && !f.Has(m.TryFirstReturns)

	if returnsFirst {
		simulateReturn15(f, s)
	}

	if f.Has(m.TryThrows) && !s.Outcome.IsSet() {
		s.Counter++
		s.Outcome = m.Throw(thrownValue)
	}

	if returnsLast {
		simulateReturn15(f, s)
	}

	countIfPending(s)
}

func simulateReturn15(f m.Flags, s *m.State) {
	if s.Outcome.IsSet() {
		return
	}

	s.Counter++

	if f.Has(m.TryResultToLocal) {
		s.Local += returnedValue
	} else {
		s.Outcome = m.Return(returnedValue)
	}
}

func simulateCatch(f m.Flags, s *m.State) {
	if !s.Outcome.IsThrow() {
		return
	}

	s.Counter++

	ex := s.Outcome.Value

	switch {
	case f.Has(m.CatchThrows):
		s.Outcome = m.Throw(catchOffset + ex)
	case f.Has(m.CatchReturns) && f.Has(m.CatchWithLocal):
		s.Outcome = m.Return(catchOffset + s.Local)
	case f.Has(m.CatchReturns):
		s.Outcome = m.Return(catchOffset + ex)
	case f.Has(m.CatchWithLocal):
		s.Local += ex
		s.Outcome = m.Outcome{}
		s.Counter++
	default:
		s.Outcome = m.Outcome{}
		s.Counter++
	}
}

func simulateFinally(f m.Flags, s *m.State) {
	s.Counter++

	switch {
	case f.Has(m.FinallyThrows) && f.Has(m.FinallyReturns):
		panic(fmt.Sprintf("finally block of %s both returns and throws", f.FuncName()))
	case f.Has(m.FinallyThrows):
		s.Outcome = m.Throw(finallyThrownValue)
	case f.Has(m.FinallyReturns):
		s.Outcome = m.Return(finallyReturnOffset + s.Local)
	default:
		s.Local += finallyLocalIncrease
		s.Counter++
	}
}

// countIfPending accounts for a `counter++` statement that only runs when
// control reaches it, i.e. no return or throw is pending.
func countIfPending(s *m.State) {
	if !s.Outcome.IsSet() {
		s.Counter++
	}
}
