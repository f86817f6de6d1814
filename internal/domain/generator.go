package domain

import (
	"iter"

	m "excgen.dev/pkg/excgen/internal/model"
)

// Generate yields one test case per accepted flag vector, in enumeration
// order, numbering them from 1. Rejected vectors are skipped silently.
func Generate() iter.Seq[m.TestCase] {
	return func(yield func(m.TestCase) bool) {
		index := 0

		for flags := range AllFlags() {
			if !IsValid(flags) {
				continue
			}

			index++

			if !yield(NewTestCase(index, flags)) {
				return
			}
		}
	}
}

// NewTestCase simulates and renders a single accepted vector.
func NewTestCase(index int, flags m.Flags) m.TestCase {
	state := Simulate(flags)

	return m.TestCase{
		Index:  index,
		Flags:  flags,
		Source: Emit(flags, state),
		State:  state,
	}
}
