package nfa2regex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const (
	// StateStart and StateFinal are the synthetic labels added by
	// augmentation. They are reserved and may not appear in a caller's
	// state set.
	StateStart = "START"
	StateFinal = "FINAL"

	// EpsilonMark and NoEdgeMark are the raw-table markers for a
	// zero-width transition and for the absence of a transition.
	EpsilonMark = "e"
	NoEdgeMark  = "_"
)

var (
	// ErrInvalidAutomaton reports a structurally unusable automaton: an
	// empty accept list, an initial or accept state that is not declared,
	// or a declared state colliding with a reserved label.
	ErrInvalidAutomaton = errors.New("invalid automaton")

	// ErrMalformedTransition reports a raw transition table that names an
	// undeclared state or carries an unparseable label.
	ErrMalformedTransition = errors.New("malformed transition")
)

// Automaton is a finite automaton as decoded from an input document:
// declared states, one initial state, one or more accept states and a raw
// transition table. A raw label is the no-edge marker "_", the epsilon
// marker "e", or a comma-separated list of symbol names. Absent entries
// default to no-edge.
type Automaton struct {
	States      []string                     `json:"states" yaml:"states"`
	Initial     string                       `json:"root" yaml:"root"`
	Accepts     []string                     `json:"accepts" yaml:"accepts"`
	Transitions map[string]map[string]string `json:"transition" yaml:"transition"`
}

// Validate checks the automaton eagerly, before any table is built. The
// elimination engine assumes a validated input and performs no checking of
// its own.
func (a *Automaton) Validate() error {
	declared := make(map[string]bool, len(a.States))
	for _, state := range a.States {
		if state == StateStart || state == StateFinal {
			return fmt.Errorf("%w: state %q collides with a reserved label", ErrInvalidAutomaton, state)
		}
		declared[state] = true
	}

	if !declared[a.Initial] {
		return fmt.Errorf("%w: initial state %q is not declared", ErrInvalidAutomaton, a.Initial)
	}
	if len(a.Accepts) == 0 {
		return fmt.Errorf("%w: no accept states", ErrInvalidAutomaton)
	}
	for _, accept := range a.Accepts {
		if !declared[accept] {
			return fmt.Errorf("%w: accept state %q is not declared", ErrInvalidAutomaton, accept)
		}
	}

	for src, row := range a.Transitions {
		if !declared[src] {
			return fmt.Errorf("%w: source state %q is not declared", ErrMalformedTransition, src)
		}
		for dst, label := range row {
			if !declared[dst] {
				return fmt.Errorf("%w: destination state %q is not declared", ErrMalformedTransition, dst)
			}
			if _, err := parseLabel(label); err != nil {
				return fmt.Errorf("%s -> %s: %w", src, dst, err)
			}
		}
	}
	return nil
}

// parseLabel turns one raw label into an expression: the no-edge marker,
// the epsilon marker, a single symbol, or a choice over a comma-separated
// symbol list. Symbol names may not be empty, so a stray comma is a
// malformed label rather than a silent parse.
func parseLabel(label string) (*Exp, error) {
	switch label {
	case NoEdgeMark:
		return noEdge, nil
	case EpsilonMark:
		return epsilon, nil
	}

	tokens := strings.Split(label, ",")
	exps := make([]*Exp, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, fmt.Errorf("%w: empty symbol in label %q", ErrMalformedTransition, label)
		}
		exps = append(exps, makeSymbol(token))
	}
	return makeChoice(exps...), nil
}

// table is a dense adjacency mapping of expressions between every pair of
// live states, together with the elimination order. Its key set is always
// the Cartesian product of the live state set with itself; eliminating a
// state removes its entire row and column. One table belongs to exactly
// one conversion run and is never shared.
type table struct {
	order []string
	edges map[string]map[string]*Exp
}

// newTable builds the dense adjacency mapping for the declared state set,
// defaulting every absent raw entry to no-edge. The automaton must already
// be validated.
func newTable(a *Automaton) *table {
	t := &table{
		order: append([]string(nil), a.States...),
		edges: make(map[string]map[string]*Exp, len(a.States)+2),
	}
	for _, src := range a.States {
		row := make(map[string]*Exp, len(a.States)+2)
		for _, dst := range a.States {
			exp := noEdge
			if label, ok := a.Transitions[src][dst]; ok {
				parsed, err := parseLabel(label)
				if err == nil {
					// Validate has already rejected bad labels.
					exp = parsed
				}
			}
			row[dst] = exp
		}
		t.edges[src] = row
	}
	return t
}

// stateIndex returns the position of a state in the declared state slice,
// or -1 if it is not declared.
func (a *Automaton) stateIndex(state string) int {
	for i, s := range a.States {
		if s == state {
			return i
		}
	}
	return -1
}

// reachable computes the set of states reachable from the initial state
// over the raw table, as a bitset indexed by position in States. An accept
// state outside this set can only ever yield the no-edge sentinel.
func (a *Automaton) reachable() *bitset.BitSet {
	seen := bitset.New(uint(len(a.States)))

	start := a.stateIndex(a.Initial)
	if start < 0 {
		return seen
	}
	seen.Set(uint(start))

	queue := []string{a.Initial}
	for len(queue) > 0 {
		src := queue[0]
		queue = queue[1:]
		for _, dst := range a.States {
			label, ok := a.Transitions[src][dst]
			if !ok || label == NoEdgeMark {
				continue
			}
			i := uint(a.stateIndex(dst))
			if !seen.Test(i) {
				seen.Set(i)
				queue = append(queue, dst)
			}
		}
	}
	return seen
}
