package nfa2regex

// Convert turns a validated automaton into an expression tree denoting the
// same language, via state elimination. Each accept state gets its own
// elimination run over a freshly augmented table; the per-accept results
// are combined with a choice. If no accept state is reachable the result
// is the no-edge sentinel, which denotes the empty language — a meaningful
// result, not an error, but one the serializer will refuse (see ToGoldbar).
//
// The elimination order is the declared state order. Different orders give
// differently shaped trees that denote the same language.
func Convert(a *Automaton) (*Exp, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	reach := a.reachable()
	results := make([]*Exp, 0, len(a.Accepts))
	for _, accept := range a.Accepts {
		if !reach.Test(uint(a.stateIndex(accept))) {
			// No path from the initial state; the run could only
			// produce the sentinel.
			continue
		}
		t := augment(a, accept)
		for _, state := range a.States {
			t.eliminate(state)
		}
		if result := t.edges[StateStart][StateFinal]; result.kind != EXP_NO_EDGE {
			results = append(results, result)
		}
	}

	if len(results) == 0 {
		return noEdge, nil
	}
	return makeChoice(results...), nil
}

// IsEmptyLanguage reports whether a conversion result denotes the empty
// language. Callers must check this before serializing.
func IsEmptyLanguage(e *Exp) bool {
	return e == nil || e.kind == EXP_NO_EDGE
}

// augment builds the adjacency table for one elimination run, normalized
// to a single start and a single accept state: START reaches the original
// initial state over epsilon, and the active accept state reaches FINAL
// over epsilon. Every other synthetic entry is no-edge. The wiring depends
// on which accept state is active, so each run augments afresh.
func augment(a *Automaton, accept string) *table {
	t := newTable(a)

	startRow := make(map[string]*Exp, len(t.order)+2)
	for _, state := range t.order {
		startRow[state] = noEdge
		t.edges[state][StateStart] = noEdge
		t.edges[state][StateFinal] = noEdge
	}
	startRow[a.Initial] = epsilon
	startRow[StateStart] = noEdge
	startRow[StateFinal] = noEdge
	t.edges[StateStart] = startRow

	finalRow := make(map[string]*Exp, len(t.order)+2)
	for _, state := range t.order {
		finalRow[state] = noEdge
	}
	finalRow[StateStart] = noEdge
	finalRow[StateFinal] = noEdge
	t.edges[StateFinal] = finalRow

	t.edges[accept][StateFinal] = epsilon
	t.order = append(t.order, StateStart, StateFinal)
	return t
}

// predecessors returns the states with an edge into x, excluding x itself,
// in table order.
func (t *table) predecessors(x string) []string {
	preds := make([]string, 0, len(t.order))
	for _, p := range t.order {
		if p != x && t.edges[p][x].kind != EXP_NO_EDGE {
			preds = append(preds, p)
		}
	}
	return preds
}

// successors returns the states x has an edge into, excluding x itself, in
// table order.
func (t *table) successors(x string) []string {
	succs := make([]string, 0, len(t.order))
	for _, s := range t.order {
		if s != x && t.edges[x][s].kind != EXP_NO_EDGE {
			succs = append(succs, s)
		}
	}
	return succs
}

// selfLoop returns the non-trivial self-loop of x, or the no-edge sentinel
// when x loops over nothing or only over epsilon. An epsilon loop adds no
// string to any walk through x.
func (t *table) selfLoop(x string) *Exp {
	if loop := t.edges[x][x]; !loop.IsEmpty() {
		return loop
	}
	return noEdge
}

// eliminate removes state x from the table, rewriting every predecessor ->
// successor pair to carry the language of the walks that used to pass
// through x, then deletes x's row and column. Elimination is irreversible:
// x is never consulted again.
func (t *table) eliminate(x string) {
	preds := t.predecessors(x)
	succs := t.successors(x)

	for _, p := range preds {
		for _, s := range succs {
			loop := t.selfLoop(x)
			predLoop := makeZeroOrMore(t.selfLoop(p))
			toX := t.edges[p][x]
			fromX := t.edges[x][s]

			// Walks p -> x -> x -> ... -> s where the entry edge and the
			// self-loop carry the same expression repeat a single labeled
			// step, so the loop becomes one-or-more and subsumes the
			// entry edge. The comparison is rendering equality, per the
			// Exp.Equals contract.
			var path *Exp
			if toX.Equals(loop) {
				path = concat(predLoop, makeOneOrMore(loop), fromX)
			} else {
				path = concat(predLoop, toX, makeZeroOrMore(loop), fromX)
			}
			t.merge(p, s, path)
		}
	}

	t.remove(x)
}

// merge folds a rewritten path into the surviving p -> s entry. A no-edge
// slot is replaced outright; an occupied slot becomes a choice. When the
// slot is a self-loop (p == s) the pre-existing entry must account for
// repeated traversal, so it is wrapped in zero-or-more before choosing.
func (t *table) merge(p, s string, path *Exp) {
	existing := t.edges[p][s]
	if existing.kind == EXP_NO_EDGE {
		t.edges[p][s] = path
		return
	}
	if p == s {
		t.edges[p][s] = makeChoice(makeZeroOrMore(existing), path)
		return
	}
	t.edges[p][s] = makeChoice(existing, path)
}

// remove deletes x's row and column atomically, restoring the invariant
// that the key set is the Cartesian square of the live state set.
func (t *table) remove(x string) {
	delete(t.edges, x)
	for _, row := range t.edges {
		delete(row, x)
	}
	live := t.order[:0:0]
	for _, state := range t.order {
		if state != x {
			live = append(live, state)
		}
	}
	t.order = live
}
