package nfa2regex

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyLanguage reports an attempt to serialize the no-edge sentinel.
// The sentinel means "no accepting path" and has no GOLDBAR rendering;
// callers are expected to detect it with IsEmptyLanguage first.
var ErrEmptyLanguage = errors.New("empty language")

// ToGoldbar renders an expression tree in GOLDBAR operator notation:
// named symbols, infix "then" and "or" with compound operands
// parenthesized, and the one-or-more / zero-or-more / zero-or-one
// wrappers. Epsilon renders as the empty string.
func ToGoldbar(root *Exp) (string, error) {
	if IsEmptyLanguage(root) {
		return "", ErrEmptyLanguage
	}
	return render(root)
}

func render(e *Exp) (string, error) {
	switch e.kind {
	case EXP_SYMBOL:
		return e.name, nil
	case EXP_EPSILON:
		return "", nil
	case EXP_NO_EDGE:
		return "", fmt.Errorf("%w: no-edge sentinel in expression tree", ErrEmptyLanguage)
	case EXP_ONE_OR_MORE:
		return renderWrapper("one-or-more", e.exp)
	case EXP_ZERO_OR_MORE:
		return renderWrapper("zero-or-more", e.exp)
	case EXP_OPTIONAL:
		return renderWrapper("zero-or-one", e.exp)
	case EXP_SEQUENCE:
		return renderInfix("then", e.exps)
	case EXP_CHOICE:
		return renderInfix("or", e.exps)
	default:
		return "", fmt.Errorf("unknown expression kind %d", e.kind)
	}
}

func renderWrapper(op string, sub *Exp) (string, error) {
	inner, err := render(sub)
	if err != nil {
		return "", err
	}
	return op + "(" + inner + ")", nil
}

// renderInfix joins operands with an infix operator, parenthesizing every
// operand that is not an atomic symbol.
func renderInfix(op string, exps []*Exp) (string, error) {
	b := new(strings.Builder)
	for i, sub := range exps {
		if i > 0 {
			b.WriteString(" " + op + " ")
		}
		part, err := render(sub)
		if err != nil {
			return "", err
		}
		if sub.kind == EXP_SYMBOL || sub.kind == EXP_EPSILON {
			b.WriteString(part)
		} else {
			b.WriteString("(" + part + ")")
		}
	}
	return b.String(), nil
}
