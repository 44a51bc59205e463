package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeSingleCall(t *testing.T) {
	chain, source := DecomposeChain("upper", []ArithmeticTerm{field("name")})

	require.Len(t, chain, 1)
	assert.Equal(t, "upper", chain[0].FunctionName)
	assert.Empty(t, chain[0].AdditionalArgs)
	assert.Equal(t, field("name"), source)
}

func TestDecomposeNestedCalls(t *testing.T) {
	// trim(upper(lower(name), "x"), 2) applied as lower → upper → trim.
	inner := &FunctionOperand{Name: "lower", Args: []ArithmeticTerm{field("name")}}
	middle := &FunctionOperand{Name: "upper", Args: []ArithmeticTerm{inner, literal(`"x"`)}}
	chain, source := DecomposeChain("trim", []ArithmeticTerm{middle, literal("2")})

	require.Len(t, chain, 3)
	assert.Equal(t, "lower", chain[0].FunctionName)
	assert.Equal(t, "upper", chain[1].FunctionName)
	assert.Equal(t, []ArithmeticTerm{literal(`"x"`)}, chain[1].AdditionalArgs)
	assert.Equal(t, "trim", chain[2].FunctionName)
	assert.Equal(t, []ArithmeticTerm{literal("2")}, chain[2].AdditionalArgs)
	assert.Equal(t, field("name"), source)
}

func TestComposeSingleEntry(t *testing.T) {
	result := ComposeChain([]ChainedFunction{{FunctionName: "upper"}}, field("name"))
	fn, ok := result.(*FunctionOperand)
	require.True(t, ok)
	assert.Equal(t, "upper", fn.Name)
	assert.Equal(t, []ArithmeticTerm{field("name")}, fn.Args)
}

func TestComposeFieldPassthrough(t *testing.T) {
	result := ComposeChain(nil, field("name"))
	assert.Equal(t, field("name"), result, "no functions means the field passes through bare")

	result = ComposeChain([]ChainedFunction{{FunctionName: ""}}, field("name"))
	assert.Equal(t, field("name"), result, "unnamed entries are skipped")
}

func TestChainRoundTrips(t *testing.T) {
	src := field("payload")
	calls := []struct {
		name string
		args []ArithmeticTerm
	}{
		{"a", nil},
		{"b", []ArithmeticTerm{literal("1")}},
		{"c", []ArithmeticTerm{literal("2"), literal("3")}},
		{"d", nil},
		{"e", []ArithmeticTerm{field("other")}},
	}

	// Build pipelines of length 1 through 5 and round-trip each.
	for n := 1; n <= len(calls); n++ {
		var outer ArithmeticTerm = src
		for _, call := range calls[:n] {
			outer = &FunctionOperand{
				Name: call.name,
				Args: append([]ArithmeticTerm{outer}, call.args...),
			}
		}
		fn := outer.(*FunctionOperand)

		chain, source := DecomposeChain(fn.Name, fn.Args)
		require.Len(t, chain, n)
		assert.Equal(t, src, source)
		for i, call := range calls[:n] {
			assert.Equal(t, call.name, chain[i].FunctionName, "chain is innermost-first")
		}

		recomposed := ComposeChain(chain, source)
		assert.Equal(t, outer, recomposed, "compose must invert decompose for %d calls", n)
	}
}

func TestBuildWaterfall(t *testing.T) {
	result := BuildWaterfall([]ArithmeticTerm{field("primary"), field("fallback"), literal(`"n/a"`)})
	fn, ok := result.(*FunctionOperand)
	require.True(t, ok)
	assert.Equal(t, "coalesce", fn.Name)
	assert.Len(t, fn.Args, 3)
	assert.Equal(t, `coalesce(primary, fallback, "n/a")`, termText(result))

	assert.Equal(t, field("only"), BuildWaterfall([]ArithmeticTerm{field("only"), field("")}),
		"a single populated slot passes through")
	assert.Nil(t, BuildWaterfall(nil))
	assert.Nil(t, BuildWaterfall([]ArithmeticTerm{field(""), nil}))
}

func TestBuildConcat(t *testing.T) {
	result := BuildConcat([]ArithmeticTerm{field("first"), literal(`" "`), field("last")}, nil)
	assert.Equal(t, `concat(first, " ", last)`, termText(result))

	post := []ChainedFunction{{FunctionName: "upper"}}
	result = BuildConcat([]ArithmeticTerm{field("first"), field("last")}, post)
	assert.Equal(t, "upper(concat(first, last))", termText(result))

	assert.Nil(t, BuildConcat(nil, post))
}
