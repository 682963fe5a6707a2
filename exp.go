package nfa2regex

import "strings"

type Kind int

const (
	EXP_SYMBOL       = Kind(iota) // An atomic named transition
	EXP_EPSILON                   // The zero-width match
	EXP_NO_EDGE                   // The absence of a transition
	EXP_CHOICE                    // A union of alternatives
	EXP_SEQUENCE                  // An ordered concatenation
	EXP_ZERO_OR_MORE              // An expression repeated zero or more times
	EXP_ONE_OR_MORE               // An expression repeated one or more times
	EXP_OPTIONAL                  // An expression matched zero or one times
)

// Exp is a node of a regular expression tree. Nodes are never mutated after
// construction; every rewrite builds new nodes over shared children.
type Exp struct {
	kind Kind
	name string // symbol name, EXP_SYMBOL only
	exps []*Exp // children, EXP_CHOICE and EXP_SEQUENCE only
	exp  *Exp   // child, repetition and optional kinds only
}

// The two sentinels are shared; they carry no per-node data.
var (
	epsilon = &Exp{kind: EXP_EPSILON}
	noEdge  = &Exp{kind: EXP_NO_EDGE}
)

func makeSymbol(name string) *Exp {
	return &Exp{kind: EXP_SYMBOL, name: name}
}

func makeChoice(exps ...*Exp) *Exp {
	if len(exps) == 1 {
		return exps[0]
	}
	return &Exp{kind: EXP_CHOICE, exps: exps}
}

// makeZeroOrMore wraps exp unless it is empty; repeating nothing is still
// nothing, so sentinels pass through unchanged.
func makeZeroOrMore(exp *Exp) *Exp {
	if exp.IsEmpty() {
		return exp
	}
	return &Exp{kind: EXP_ZERO_OR_MORE, exp: exp}
}

func makeOneOrMore(exp *Exp) *Exp {
	if exp.IsEmpty() {
		return exp
	}
	return &Exp{kind: EXP_ONE_OR_MORE, exp: exp}
}

func makeOptional(exp *Exp) *Exp {
	if exp.IsEmpty() {
		return exp
	}
	return &Exp{kind: EXP_OPTIONAL, exp: exp}
}

// concat concatenates parts into a single expression. Empty parts are
// dropped, nested sequences are spliced in rather than nested, zero
// remaining parts collapse to epsilon and a single remaining part is
// returned unwrapped.
func concat(parts ...*Exp) *Exp {
	kept := make([]*Exp, 0, len(parts))
	for _, part := range parts {
		if part == nil || part.IsEmpty() {
			continue
		}
		if part.kind == EXP_SEQUENCE {
			kept = append(kept, part.exps...)
		} else {
			kept = append(kept, part)
		}
	}

	switch len(kept) {
	case 0:
		return epsilon
	case 1:
		return kept[0]
	default:
		return &Exp{kind: EXP_SEQUENCE, exps: kept}
	}
}

// Kind reports the variant of this node.
func (e *Exp) Kind() Kind {
	return e.kind
}

// Name returns the symbol name for EXP_SYMBOL nodes and "" otherwise.
func (e *Exp) Name() string {
	return e.name
}

// IsEmpty reports whether this node is one of the two zero-content
// sentinels, epsilon or no-edge.
func (e *Exp) IsEmpty() bool {
	return e.kind == EXP_EPSILON || e.kind == EXP_NO_EDGE
}

// String renders the canonical textual form of the tree; it is the basis
// of Equals.
func (e *Exp) String() string {
	switch e.kind {
	case EXP_SYMBOL:
		return e.name
	case EXP_EPSILON:
		return EpsilonMark
	case EXP_NO_EDGE:
		return NoEdgeMark
	case EXP_CHOICE:
		return e.renderList("or")
	case EXP_SEQUENCE:
		return e.renderList("then")
	case EXP_ZERO_OR_MORE:
		return "zero-or-more(" + e.exp.String() + ")"
	case EXP_ONE_OR_MORE:
		return "one-or-more(" + e.exp.String() + ")"
	case EXP_OPTIONAL:
		return "zero-or-one(" + e.exp.String() + ")"
	default:
		return ""
	}
}

func (e *Exp) renderList(op string) string {
	b := new(strings.Builder)
	b.WriteString(op)
	b.WriteByte('(')
	for i, sub := range e.exps {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(sub.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Equals reports whether two trees have the same canonical rendering. This
// is a contract, not a convenience: Choice(a,b) and Choice(b,a) are NOT
// equal, and the elimination engine's repetition tie-break depends on
// exactly this definition. Structural equality up to reordering is not
// what this method computes.
func (e *Exp) Equals(other *Exp) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.String() == other.String()
}
