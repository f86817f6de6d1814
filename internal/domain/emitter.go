package domain

import (
	"fmt"
	"strings"

	m "excgen.dev/pkg/excgen/internal/model"
)

const (
	flagsCommentWidth  = 70
	flagsCommentIndent = "  //   "
)

// fragments holds the expressions a test uses for its primitives.
type fragments struct {
	return15 string
	throw42  string
}

var alternativeFragments = map[m.Alternative]fragments{
	m.AltDirect: {
		return15: "increaseAndReturn15()",
		throw42:  "increaseAndThrow42()",
	},
	m.AltReturnOrThrow: {
		return15: "returnOrThrow(true)",
		throw42:  "returnOrThrow(false)",
	},
	m.AltInvert: {
		return15: "invertFunctionCall(increaseAndThrow42)",
		throw42:  "invertFunctionCall(increaseAndReturn15)",
	},
	m.AltConstructor: {
		return15: "(new increaseAndStore15Constructor()).x",
		throw42:  "(new increaseAndThrow42Constructor()).x",
	},
	m.AltAccessor: {
		return15: "magic.prop /* returns 15 */",
		throw42:  "(magic.prop = 37 /* throws 42 */)",
	},
}

// Emit renders the test case for f. The assertions come from state alone;
// Emit never evaluates the control flow itself.
func Emit(f m.Flags, state m.State) string {
	e := &emitter{}

	e.flagsComment(f)
	e.function(f)
	e.assertions(state)

	return e.b.String()
}

type emitter struct {
	b strings.Builder
}

func (e *emitter) line(format string, args ...any) {
	fmt.Fprintf(&e.b, format, args...)
	e.b.WriteByte('\n')
}

func (e *emitter) flagsComment(f m.Flags) {
	comment := fmt.Sprintf("  // Variant flags: [%s]", strings.Join(f.Names(), ", "))

	e.line("%s", fillComment(comment, flagsCommentWidth, flagsCommentIndent))
	e.line("")
}

func (e *emitter) function(f m.Flags) {
	frag := alternativeFragments[f.Alternative()]

	e.line("  f = function %s () {", f.FuncName())
	e.line("    var local = %d;", m.InitialLocal)
	e.line("    deopt = %t;", f.Has(m.Deopt))

	e.tryBlock(f, frag)

	if f.Has(m.DoCatch) {
		e.catchBlock(f)
	}

	if f.Has(m.DoFinally) {
		e.finallyBlock(f)
	}

	e.line("    }")
	e.line("    counter++;")

	if f.Has(m.EndReturnLocal) {
		e.line("    return %d + local;", endReturnOffset)
	}

	e.line("  }")
}

func (e *emitter) tryBlock(f m.Flags, frag fragments) {
	resultTo := "return"
	if f.Has(m.TryResultToLocal) {
		resultTo = "local +="
	}

	throwsFirst := f.Has(m.TryThrows) && !f.Has(m.TryFirstReturns)

	e.line("    try {")
	e.line("      counter++;")

	if f.Has(m.TryReturns) && !throwsFirst {
		e.line("      %s %s;", resultTo, frag.return15)
	}

	if f.Has(m.TryThrows) {
		e.line("      %s %s;", resultTo, frag.throw42)
	}

	if f.Has(m.TryReturns) && throwsFirst {
		e.line("      %s %s;", resultTo, frag.return15)
	}

	e.line("      counter++;")
}

func (e *emitter) catchBlock(f m.Flags) {
	e.line("    } catch (ex) {")
	e.line("      counter++;")

	switch {
	case f.Has(m.CatchThrows):
		e.line("      throw %d + ex;", catchOffset)
	case f.Has(m.CatchReturns) && f.Has(m.CatchWithLocal):
		e.line("      return %d + local;", catchOffset)
	case f.Has(m.CatchReturns):
		e.line("      return %d + ex;", catchOffset)
	case f.Has(m.CatchWithLocal):
		e.line("      local += ex;")
	}

	e.line("      counter++;")
}

func (e *emitter) finallyBlock(f m.Flags) {
	e.line("    } finally {")
	e.line("      counter++;")

	switch {
	case f.Has(m.FinallyThrows):
		e.line("      throw %d;", finallyThrownValue)
	case f.Has(m.FinallyReturns):
		e.line("      return %d + local;", finallyReturnOffset)
	default:
		e.line("      local += %d;", finallyLocalIncrease)
	}

	e.line("      counter++;")
}

func (e *emitter) assertions(state m.State) {
	switch state.Outcome.Kind {
	case m.OutcomeNone:
		e.line("  resetOptAndAssertResultEquals(undefined, f);")
	case m.OutcomeReturn:
		e.line("  resetOptAndAssertResultEquals(%d, f);", state.Outcome.Value)
	case m.OutcomeThrow:
		e.line("  resetOptAndAssertThrowsWith(%d, f);", state.Outcome.Value)
	}

	e.line("  assertEquals(%d, counter);", state.Counter)
	e.line("")
}
