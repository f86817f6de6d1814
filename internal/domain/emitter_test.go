package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"excgen.dev/pkg/excgen/internal/domain"
	m "excgen.dev/pkg/excgen/internal/model"
)

func TestEmit_WrappedFlagsComment(t *testing.T) {
	flags := flagsFromFuncName(t, "f___2__r_lc_l____l_")

	want := `  // Variant flags: [alternativeFn2, tryReturns, tryResultToLocal,
  //   doCatch, catchWithLocal, endReturnLocal]

  f = function f___2__r_lc_l____l_ () {
    var local = 3;
    deopt = false;
    try {
      counter++;
      local += invertFunctionCall(increaseAndThrow42);
      counter++;
    } catch (ex) {
      counter++;
      local += ex;
      counter++;
    }
    counter++;
    return 5 + local;
  }
  resetOptAndAssertResultEquals(23, f);
  assertEquals(4, counter);

`

	got := domain.Emit(flags, domain.Simulate(flags))

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Emit() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmit_FinallyThrows(t *testing.T) {
	flags := m.NewFlags(m.TryReturns, m.DoFinally, m.FinallyThrows)

	want := `  // Variant flags: [tryReturns, doFinally, finallyThrows]

  f = function f______r______f_t__ () {
    var local = 3;
    deopt = false;
    try {
      counter++;
      return increaseAndReturn15();
      counter++;
    } finally {
      counter++;
      throw 25;
      counter++;
    }
    counter++;
  }
  resetOptAndAssertThrowsWith(25, f);
  assertEquals(3, counter);

`

	got := domain.Emit(flags, domain.Simulate(flags))

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Emit() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmit_AlternativeFragments(t *testing.T) {
	tests := []struct {
		name     string
		flags    m.Flags
		return15 string
		throw42  string
	}{
		{
			name:     "returnOrThrow",
			flags:    m.NewFlags(m.AlternativeFn1, m.TryReturns, m.DoCatch),
			return15: "return returnOrThrow(true);",
		},
		{
			name:    "invert",
			flags:   m.NewFlags(m.AlternativeFn2, m.TryThrows, m.DoCatch),
			throw42: "return invertFunctionCall(increaseAndReturn15);",
		},
		{
			name:     "constructor",
			flags:    m.NewFlags(m.AlternativeFn3, m.TryReturns, m.DoCatch),
			return15: "return (new increaseAndStore15Constructor()).x;",
		},
		{
			name:    "accessor",
			flags:   m.NewFlags(m.AlternativeFn4, m.TryThrows, m.DoCatch),
			throw42: "return (magic.prop = 37 /* throws 42 */);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Emit(tt.flags, domain.Simulate(tt.flags))

			if tt.return15 != "" {
				assert.Contains(t, got, tt.return15)
			}

			if tt.throw42 != "" {
				assert.Contains(t, got, tt.throw42)
			}
		})
	}
}

func TestEmit_ThrowsBeforeReturnUnlessFirstReturns(t *testing.T) {
	throwsFirst := domain.Emit(m.NewFlags(m.TryThrows, m.TryReturns, m.DoCatch), m.NewState())
	returnsFirst := domain.Emit(m.NewFlags(m.TryThrows, m.TryReturns, m.TryFirstReturns, m.DoCatch), m.NewState())

	assert.Contains(t, throwsFirst, "return increaseAndThrow42();\n      return increaseAndReturn15();")
	assert.Contains(t, returnsFirst, "return increaseAndReturn15();\n      return increaseAndThrow42();")
}

func TestEmit_AssertionsFollowState(t *testing.T) {
	flags := m.NewFlags(m.TryThrows, m.DoCatch, m.Deopt)

	got := domain.Emit(flags, m.State{Counter: 7, Outcome: m.Throw(99)})

	assert.Contains(t, got, "    deopt = true;\n")
	assert.Contains(t, got, "  resetOptAndAssertThrowsWith(99, f);\n  assertEquals(7, counter);\n")
}
