// Package model defines the data structures shared by the test generator.
package model

import "strings"

// Flag identifies one of the boolean choices that shape a generated test.
// The declaration order is significant: it fixes the enumeration order and
// the letter positions in generated function names.
type Flag int

// The alternative flags come in reverse order so that counting upwards yields
// the default implementation first, then alternative 1, then 2, etc.
const (
	// AlternativeFn4 uses the getter/setter implementation.
	AlternativeFn4 Flag = iota
	// AlternativeFn3 uses the constructor implementation.
	AlternativeFn3
	// AlternativeFn2 uses the inverting wrapper implementation.
	AlternativeFn2
	// AlternativeFn1 uses the returnOrThrow wrapper implementation.
	AlternativeFn1
	// TryThrows calls the throwing function in the try block.
	TryThrows
	// TryReturns calls the returning function in the try block.
	TryReturns
	// TryFirstReturns places the returning call before the throwing one.
	TryFirstReturns
	// TryResultToLocal adds call results to the local variable instead of returning them.
	TryResultToLocal
	// DoCatch includes a catch block.
	DoCatch
	// CatchReturns returns from the catch block.
	CatchReturns
	// CatchWithLocal modifies or returns the local variable in the catch block.
	CatchWithLocal
	// CatchThrows throws from the catch block.
	CatchThrows
	// DoFinally includes a finally block.
	DoFinally
	// FinallyReturns returns the local variable from the finally block.
	FinallyReturns
	// FinallyThrows throws from the finally block.
	FinallyThrows
	// EndReturnLocal returns the local variable at the very end.
	EndReturnLocal
	// Deopt deoptimizes inside the inlined function.
	Deopt

	// NumFlags is the arity of a flag vector.
	NumFlags = int(Deopt) + 1
)

// FlagLetters holds the per-position letter used in generated function names.
const FlagLetters = "4321trflcrltfrtld"

var flagNames = [NumFlags]string{
	"alternativeFn4",
	"alternativeFn3",
	"alternativeFn2",
	"alternativeFn1",
	"tryThrows",
	"tryReturns",
	"tryFirstReturns",
	"tryResultToLocal",
	"doCatch",
	"catchReturns",
	"catchWithLocal",
	"catchThrows",
	"doFinally",
	"finallyReturns",
	"finallyThrows",
	"endReturnLocal",
	"deopt",
}

// String returns the flag name as it appears in generated comments.
func (f Flag) String() string {
	if f < 0 || int(f) >= NumFlags {
		return "unknown"
	}

	return flagNames[f]
}

// Letter returns the character that marks this flag in function names.
func (f Flag) Letter() byte {
	return FlagLetters[f]
}

// Alternative selects how a test invokes its "returns 15" / "throws 42" primitives.
type Alternative int

// Available alternatives.
const (
	AltDirect Alternative = iota
	AltReturnOrThrow
	AltInvert
	AltConstructor
	AltAccessor
)

func (a Alternative) String() string {
	switch a {
	case AltDirect:
		return "direct"
	case AltReturnOrThrow:
		return "returnOrThrow"
	case AltInvert:
		return "invertFunctionCall"
	case AltConstructor:
		return "constructor"
	case AltAccessor:
		return "accessor"
	}

	return "unknown"
}

// Flags is one immutable combination of the boolean test-shape choices.
type Flags [NumFlags]bool

// FlagsFromBits decodes a vector from its canonical number, where the first
// flag is the most significant bit.
func FlagsFromBits(bits uint32) Flags {
	var f Flags

	for i := range NumFlags {
		f[i] = bits&(1<<(NumFlags-1-i)) != 0
	}

	return f
}

// NewFlags returns a vector with exactly the given flags set.
func NewFlags(set ...Flag) Flags {
	return Flags{}.With(set...)
}

// Bits encodes the vector as its canonical number.
func (f Flags) Bits() uint32 {
	var bits uint32

	for i, b := range f {
		if b {
			bits |= 1 << (NumFlags - 1 - i)
		}
	}

	return bits
}

// Has reports whether flag is set.
func (f Flags) Has(flag Flag) bool {
	return f[flag]
}

// With returns a copy of f with the given flags set.
func (f Flags) With(set ...Flag) Flags {
	for _, flag := range set {
		f[flag] = true
	}

	return f
}

// Names returns the names of the set flags in declaration order.
func (f Flags) Names() []string {
	names := make([]string, 0, NumFlags)

	for i, b := range f {
		if b {
			names = append(names, Flag(i).String())
		}
	}

	return names
}

// FuncName encodes the vector as a JavaScript identifier, one letter per set
// flag and an underscore per unset one.
func (f Flags) FuncName() string {
	var b strings.Builder

	b.Grow(2 + NumFlags)
	b.WriteString("f_")

	for i, set := range f {
		if set {
			b.WriteByte(Flag(i).Letter())
		} else {
			b.WriteByte('_')
		}
	}

	return b.String()
}

// AnyAlternative reports whether any alternative implementation is selected.
func (f Flags) AnyAlternative() bool {
	return f[AlternativeFn1] || f[AlternativeFn2] || f[AlternativeFn3] || f[AlternativeFn4]
}

// Alternative returns the selected implementation. When several alternative
// flags are set the lowest-numbered one wins.
func (f Flags) Alternative() Alternative {
	switch {
	case f[AlternativeFn1]:
		return AltReturnOrThrow
	case f[AlternativeFn2]:
		return AltInvert
	case f[AlternativeFn3]:
		return AltConstructor
	case f[AlternativeFn4]:
		return AltAccessor
	}

	return AltDirect
}
