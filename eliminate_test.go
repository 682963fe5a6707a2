package nfa2regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertWorkedExample(t *testing.T) {
	// n1 -cds-> n2, n2 -e-> n1: every accepted string is one or more cds.
	result, err := Convert(validAutomaton())
	assert.Nil(t, err)
	assert.Equal(t, "one-or-more(cds)", result.String())
}

func TestConvertNoAcceptingPath(t *testing.T) {
	a := &Automaton{
		States:  []string{"n1", "n2"},
		Initial: "n1",
		Accepts: []string{"n2"},
		Transitions: map[string]map[string]string{
			"n2": {"n1": "x"},
		},
	}

	result, err := Convert(a)
	assert.Nil(t, err)
	assert.True(t, IsEmptyLanguage(result))
	assert.Equal(t, EXP_NO_EDGE, result.Kind())
}

func TestConvertRejectsInvalidInput(t *testing.T) {
	a := validAutomaton()
	a.Accepts = nil
	_, err := Convert(a)
	assert.ErrorIs(t, err, ErrInvalidAutomaton)

	a = validAutomaton()
	a.Transitions["n1"]["missing"] = "x"
	_, err = Convert(a)
	assert.ErrorIs(t, err, ErrMalformedTransition)
}

func TestConvertSelfLoopTieBreak(t *testing.T) {
	// b's self-loop and its incoming edge carry the same symbol: the walk
	// repeats a single labeled step and must come out as one-or-more, not
	// as the symbol followed by zero-or-more of it.
	a := &Automaton{
		States:  []string{"a", "b"},
		Initial: "a",
		Accepts: []string{"b"},
		Transitions: map[string]map[string]string{
			"a": {"b": "X"},
			"b": {"b": "X"},
		},
	}

	result, err := Convert(a)
	assert.Nil(t, err)
	assert.Equal(t, "one-or-more(X)", result.String())
	assert.NotContains(t, result.String(), "then")
}

func TestConvertMultipleAccepts(t *testing.T) {
	a := &Automaton{
		States:  []string{"s", "a1", "a2"},
		Initial: "s",
		Accepts: []string{"a1", "a2"},
		Transitions: map[string]map[string]string{
			"s": {"a1": "x", "a2": "y"},
		},
	}

	result, err := Convert(a)
	assert.Nil(t, err)
	assert.Equal(t, "or(x,y)", result.String())
}

func TestConvertSkipsUnreachableAccept(t *testing.T) {
	a := &Automaton{
		States:  []string{"s", "a1", "island"},
		Initial: "s",
		Accepts: []string{"a1", "island"},
		Transitions: map[string]map[string]string{
			"s": {"a1": "x"},
		},
	}

	result, err := Convert(a)
	assert.Nil(t, err)
	assert.Equal(t, "x", result.String())
}

func TestEliminateMergeAtSelfSlot(t *testing.T) {
	// Eliminating x folds the p -> x -> p walk back into p's self-slot,
	// which already holds c. The pre-existing entry must survive wrapped
	// in zero-or-more inside the choice, never bare.
	a := &Automaton{
		States:  []string{"p", "x"},
		Initial: "p",
		Accepts: []string{"p"},
		Transitions: map[string]map[string]string{
			"p": {"p": "c", "x": "a"},
			"x": {"p": "b"},
		},
	}
	assert.Nil(t, a.Validate())

	tab := newTable(a)
	tab.eliminate("x")

	merged := tab.edges["p"]["p"]
	assert.Equal(t, EXP_CHOICE, merged.Kind())
	assert.Equal(t, "zero-or-more(c)", merged.exps[0].String())
	assert.Equal(t, "then(zero-or-more(c),a,b)", merged.exps[1].String())
}

func TestEliminateRemovesRowAndColumn(t *testing.T) {
	a := validAutomaton()
	tab := augment(a, "n2")
	assert.Len(t, tab.order, 4)

	tab.eliminate("n1")

	assert.NotContains(t, tab.order, "n1")
	_, hasRow := tab.edges["n1"]
	assert.False(t, hasRow)
	for _, row := range tab.edges {
		_, hasCol := row["n1"]
		assert.False(t, hasCol)
	}
	// The key set stays the Cartesian square of the live states.
	for _, src := range tab.order {
		for _, dst := range tab.order {
			assert.NotNil(t, tab.edges[src][dst])
		}
	}
}

func TestAugment(t *testing.T) {
	a := validAutomaton()
	tab := augment(a, "n2")

	assert.Equal(t, "e", tab.edges[StateStart]["n1"].String())
	assert.Equal(t, "_", tab.edges[StateStart]["n2"].String())
	assert.Equal(t, "e", tab.edges["n2"][StateFinal].String())
	assert.Equal(t, "_", tab.edges["n1"][StateFinal].String())
	assert.Equal(t, "_", tab.edges[StateStart][StateStart].String())
	assert.Equal(t, "_", tab.edges[StateFinal][StateFinal].String())
	assert.Equal(t, "_", tab.edges[StateFinal][StateStart].String())
}

func TestConvertOrderIndependence(t *testing.T) {
	// Two permutations of the declared states give two elimination orders
	// and, in general, two tree shapes. The denoted languages must agree;
	// shape is deliberately not compared.
	transitions := map[string]map[string]string{
		"q0": {"q1": "a", "q2": "d"},
		"q1": {"q1": "b", "q3": "c"},
		"q2": {"q3": "f"},
	}

	first := &Automaton{
		States:      []string{"q0", "q1", "q2", "q3"},
		Initial:     "q0",
		Accepts:     []string{"q3"},
		Transitions: transitions,
	}
	second := &Automaton{
		States:      []string{"q2", "q3", "q0", "q1"},
		Initial:     "q0",
		Accepts:     []string{"q3"},
		Transitions: transitions,
	}

	r1, err := Convert(first)
	assert.Nil(t, err)
	r2, err := Convert(second)
	assert.Nil(t, err)

	alphabet := []string{"a", "b", "c", "d", "f"}
	assert.True(t, sameLanguage(t, r1, r2, alphabet, 4))

	// Spot-check the language itself: a b* c | d f.
	assert.True(t, matchExp(r1, []string{"a", "c"}))
	assert.True(t, matchExp(r1, []string{"a", "b", "b", "c"}))
	assert.True(t, matchExp(r1, []string{"d", "f"}))
	assert.False(t, matchExp(r1, []string{"a", "f"}))
	assert.False(t, matchExp(r1, nil))
}
