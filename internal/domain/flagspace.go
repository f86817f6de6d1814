package domain

import (
	"iter"

	m "excgen.dev/pkg/excgen/internal/model"
)

// FlagSpaceSize is the number of distinct flag vectors.
const FlagSpaceSize = 1 << m.NumFlags

// AllFlags yields every flag vector exactly once, counting upwards in binary
// from all-false with the first flag as the most significant bit.
// The sequence can be ranged over any number of times.
func AllFlags() iter.Seq[m.Flags] {
	return func(yield func(m.Flags) bool) {
		for bits := range uint32(FlagSpaceSize) {
			if !yield(m.FlagsFromBits(bits)) {
				return
			}
		}
	}
}
