package domain

import (
	m "excgen.dev/pkg/excgen/internal/model"
)

// Rule names a reason for dropping a flag vector. Rules are checked in
// declaration order and the first violated one is reported.
type Rule int

// Rejection rules. The first group keeps programs structurally sensible, the
// second prunes combinations whose coverage is redundant with other vectors.
const (
	RuleNone Rule = iota
	RuleSingleAlternative
	RuleTryReturnsOrThrows
	RuleCatchOrFinally
	RuleCatchFlagsNeedCatch
	RuleFinallyFlagsNeedFinally
	RuleFirstReturnsNeedsBoth
	RuleReturnXorThrow
	RuleEndLocalNeedsWrite
	RuleReturnAndThrowPruning
	RuleFinallyNoAlternative
	RuleLocalNeedsAlternative2
	RuleFinallyNoDeopt
)

// Rules lists every rejection rule in evaluation order.
var Rules = []Rule{
	RuleSingleAlternative,
	RuleTryReturnsOrThrows,
	RuleCatchOrFinally,
	RuleCatchFlagsNeedCatch,
	RuleFinallyFlagsNeedFinally,
	RuleFirstReturnsNeedsBoth,
	RuleReturnXorThrow,
	RuleEndLocalNeedsWrite,
	RuleReturnAndThrowPruning,
	RuleFinallyNoAlternative,
	RuleLocalNeedsAlternative2,
	RuleFinallyNoDeopt,
}

func (r Rule) String() string {
	switch r {
	case RuleNone:
		return "accepted"
	case RuleSingleAlternative:
		return "single-alternative"
	case RuleTryReturnsOrThrows:
		return "try-returns-or-throws"
	case RuleCatchOrFinally:
		return "catch-or-finally"
	case RuleCatchFlagsNeedCatch:
		return "catch-flags-need-catch"
	case RuleFinallyFlagsNeedFinally:
		return "finally-flags-need-finally"
	case RuleFirstReturnsNeedsBoth:
		return "first-returns-needs-both"
	case RuleReturnXorThrow:
		return "return-xor-throw"
	case RuleEndLocalNeedsWrite:
		return "end-local-needs-write"
	case RuleReturnAndThrowPruning:
		return "return-and-throw-pruning"
	case RuleFinallyNoAlternative:
		return "finally-no-alternative"
	case RuleLocalNeedsAlternative2:
		return "local-needs-alternative2"
	case RuleFinallyNoDeopt:
		return "finally-no-deopt"
	}

	return "unknown"
}

// IsValid reports whether f describes a program worth generating.
func IsValid(f m.Flags) bool {
	return Validate(f) == RuleNone
}

// Validate returns the first rule f violates, or RuleNone.
func Validate(f m.Flags) Rule {
	for _, rule := range Rules {
		if violates(rule, f) {
			return rule
		}
	}

	return RuleNone
}

func violates(rule Rule, f m.Flags) bool {
	var (
		tryReturns     = f.Has(m.TryReturns)
		tryThrows      = f.Has(m.TryThrows)
		doCatch        = f.Has(m.DoCatch)
		doFinally      = f.Has(m.DoFinally)
		catchReturns   = f.Has(m.CatchReturns)
		catchWithLocal = f.Has(m.CatchWithLocal)
		catchThrows    = f.Has(m.CatchThrows)
		finallyReturns = f.Has(m.FinallyReturns)
		finallyThrows  = f.Has(m.FinallyThrows)
		resultToLocal  = f.Has(m.TryResultToLocal)
		endReturnLocal = f.Has(m.EndReturnLocal)
		deopt          = f.Has(m.Deopt)
	)

	switch rule {
	case RuleSingleAlternative:
		return alternativeCount(f) > 1
	case RuleTryReturnsOrThrows:
		return !tryReturns && !tryThrows
	case RuleCatchOrFinally:
		return !doCatch && !doFinally
	case RuleCatchFlagsNeedCatch:
		return !doCatch && (catchReturns || catchWithLocal || catchThrows)
	case RuleFinallyFlagsNeedFinally:
		return !doFinally && (finallyReturns || finallyThrows)
	case RuleFirstReturnsNeedsBoth:
		return f.Has(m.TryFirstReturns) && !(tryReturns && tryThrows)
	case RuleReturnXorThrow:
		return (catchReturns && catchThrows) || (finallyReturns && finallyThrows)
	case RuleEndLocalNeedsWrite:
		return endReturnLocal && !(resultToLocal || catchWithLocal)
	case RuleReturnAndThrowPruning:
		return tryReturns && tryThrows && (catchWithLocal || endReturnLocal || deopt || f.AnyAlternative())
	case RuleFinallyNoAlternative:
		return doFinally && f.AnyAlternative()
	case RuleLocalNeedsAlternative2:
		return (resultToLocal || catchWithLocal || endReturnLocal) && !f.Has(m.AlternativeFn2)
	case RuleFinallyNoDeopt:
		return doFinally && deopt
	}

	return false
}

func alternativeCount(f m.Flags) int {
	n := 0

	for _, flag := range []m.Flag{m.AlternativeFn1, m.AlternativeFn2, m.AlternativeFn3, m.AlternativeFn4} {
		if f.Has(flag) {
			n++
		}
	}

	return n
}
