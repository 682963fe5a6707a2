package nfa2regex

// Simplify rewrites an expression tree into a language-equivalent tree
// with redundant structure reduced. Rewriting runs bottom-up and repeats
// until a pass changes nothing. Every rule preserves the denoted language;
// no claim of minimality is made.
func Simplify(root *Exp) *Exp {
	if root == nil {
		return nil
	}
	cur := root
	for {
		next := simplifyNode(cur)
		if next.Equals(cur) {
			return next
		}
		cur = next
	}
}

func simplifyNode(e *Exp) *Exp {
	switch e.kind {
	case EXP_CHOICE:
		return simplifyChoice(e)
	case EXP_SEQUENCE:
		return simplifySequence(e)
	case EXP_ZERO_OR_MORE:
		return reduceZeroOrMore(simplifyNode(e.exp))
	case EXP_ONE_OR_MORE:
		return reduceOneOrMore(simplifyNode(e.exp))
	case EXP_OPTIONAL:
		return reduceOptional(simplifyNode(e.exp))
	default:
		return e
	}
}

// reduceOneOrMore collapses one-or-more over an already-simplified child:
// (x+)+ = x+, (x*)+ = x*, (x?)+ = x*.
func reduceOneOrMore(child *Exp) *Exp {
	switch child.kind {
	case EXP_ONE_OR_MORE, EXP_ZERO_OR_MORE:
		return child
	case EXP_OPTIONAL:
		return makeZeroOrMore(child.exp)
	default:
		return makeOneOrMore(child)
	}
}

// reduceZeroOrMore collapses zero-or-more over an already-simplified
// child: any repetition or optional under zero-or-more is zero-or-more of
// the inner expression.
func reduceZeroOrMore(child *Exp) *Exp {
	switch child.kind {
	case EXP_ONE_OR_MORE, EXP_ZERO_OR_MORE, EXP_OPTIONAL:
		return makeZeroOrMore(child.exp)
	default:
		return makeZeroOrMore(child)
	}
}

// reduceOptional collapses optional over an already-simplified child:
// (x+)? = x*, (x*)? = x*, (x?)? = x?.
func reduceOptional(child *Exp) *Exp {
	switch child.kind {
	case EXP_ZERO_OR_MORE, EXP_OPTIONAL:
		return child
	case EXP_ONE_OR_MORE:
		return makeZeroOrMore(child.exp)
	default:
		return makeOptional(child)
	}
}

// simplifySequence simplifies each element, re-flattens, then fuses
// adjacent pairs left to right.
func simplifySequence(e *Exp) *Exp {
	parts := make([]*Exp, len(e.exps))
	for i, sub := range e.exps {
		parts[i] = simplifyNode(sub)
	}
	seq := concat(parts...)
	if seq.kind != EXP_SEQUENCE {
		return seq
	}

	fused := []*Exp{seq.exps[0]}
	for _, next := range seq.exps[1:] {
		last := fused[len(fused)-1]
		if combined, ok := fuseThen(last, next); ok {
			fused[len(fused)-1] = combined
		} else {
			fused = append(fused, next)
		}
	}
	return concat(fused...)
}

// fuseThen reduces a concatenated pair to a smaller equivalent, or reports
// that no rule applies. All rules require the repeated sub-expressions to
// match under the rendering-equality contract.
func fuseThen(a, b *Exp) (*Exp, bool) {
	switch a.kind {
	case EXP_ONE_OR_MORE:
		if b.kind == EXP_ZERO_OR_MORE && a.exp.Equals(b.exp) {
			return a, true // x+ x* = x+
		}
		if b.kind == EXP_OPTIONAL && a.exp.Equals(b.exp) {
			return a, true // x+ x? = x+
		}
		if b.kind == EXP_ONE_OR_MORE && a.exp.Equals(b.exp) {
			return concat(a.exp, b), true // x+ x+ = x x+
		}
	case EXP_ZERO_OR_MORE:
		if b.kind == EXP_ZERO_OR_MORE && a.exp.Equals(b.exp) {
			return a, true // x* x* = x*
		}
		if b.kind == EXP_OPTIONAL && a.exp.Equals(b.exp) {
			return a, true // x* x? = x*
		}
		if b.kind == EXP_ONE_OR_MORE && a.exp.Equals(b.exp) {
			return b, true // x* x+ = x+
		}
		if b.Equals(a.exp) {
			return makeOneOrMore(b), true // x* x = x+
		}
	case EXP_OPTIONAL:
		if (b.kind == EXP_ZERO_OR_MORE || b.kind == EXP_ONE_OR_MORE) && a.exp.Equals(b.exp) {
			return b, true // x? x* = x*, x? x+ = x+
		}
	default:
		if b.kind == EXP_ZERO_OR_MORE && b.exp.Equals(a) {
			return makeOneOrMore(a), true // x x* = x+
		}
	}
	return nil, false
}

// simplifyChoice simplifies each alternative, flattens nested choices,
// then reduces alternatives pairwise until no pair fuses.
func simplifyChoice(e *Exp) *Exp {
	parts := make([]*Exp, 0, len(e.exps))
	for _, sub := range e.exps {
		sub = simplifyNode(sub)
		if sub.kind == EXP_CHOICE {
			parts = append(parts, sub.exps...)
		} else if sub.kind != EXP_NO_EDGE {
			parts = append(parts, sub)
		}
	}

	for {
		combined := false
		for i := 0; i < len(parts) && !combined; i++ {
			for j := i + 1; j < len(parts) && !combined; j++ {
				res, ok := fuseOr(parts[i], parts[j])
				if !ok {
					res, ok = fuseOr(parts[j], parts[i])
				}
				if ok {
					parts[i] = res
					parts = append(parts[:j], parts[j+1:]...)
					combined = true
				}
			}
		}
		if !combined {
			break
		}
	}

	switch len(parts) {
	case 0:
		return epsilon
	case 1:
		return parts[0]
	default:
		return makeChoice(parts...)
	}
}

// fuseOr reduces one ordered pair of alternatives to a smaller equivalent,
// or reports that no rule applies. Callers try both orders.
func fuseOr(a, b *Exp) (*Exp, bool) {
	if a.Equals(b) {
		return a, true
	}

	switch a.kind {
	case EXP_EPSILON:
		switch b.kind {
		case EXP_ONE_OR_MORE:
			return makeZeroOrMore(b.exp), true // e | x+ = x*
		case EXP_ZERO_OR_MORE, EXP_OPTIONAL:
			return b, true
		default:
			return makeOptional(b), true // e | x = x?
		}
	case EXP_ZERO_OR_MORE:
		if (b.kind == EXP_ONE_OR_MORE || b.kind == EXP_OPTIONAL) && a.exp.Equals(b.exp) {
			return a, true // x* | x+ = x*, x* | x? = x*
		}
		if b.Equals(a.exp) {
			return a, true // x* | x = x*
		}
	case EXP_ONE_OR_MORE:
		if b.kind == EXP_OPTIONAL && a.exp.Equals(b.exp) {
			return makeZeroOrMore(a.exp), true // x+ | x? = x*
		}
		if b.Equals(a.exp) {
			return a, true // x+ | x = x+
		}
		// x+ | x+ y = x+ y?
		if b.kind == EXP_SEQUENCE && len(b.exps) == 2 && b.exps[0].Equals(a) {
			return concat(a, makeOptional(b.exps[1])), true
		}
	case EXP_OPTIONAL:
		if b.Equals(a.exp) {
			return a, true // x? | x = x?
		}
	case EXP_SEQUENCE:
		// x y | x z = x (y | z)
		if b.kind == EXP_SEQUENCE && len(a.exps) == 2 && len(b.exps) == 2 &&
			a.exps[0].Equals(b.exps[0]) {
			return concat(a.exps[0], makeChoice(a.exps[1], b.exps[1])), true
		}
	}
	return nil, false
}
