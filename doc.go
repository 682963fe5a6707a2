// Package nfa2regex converts a finite-state automaton into an equivalent
// regular expression tree using the classical state-elimination
// construction, then optionally simplifies the tree and serializes it in
// GOLDBAR operator notation.
//
// A conversion call owns a private adjacency table for its whole duration,
// performs no I/O and shares no mutable state; separate calls may run in
// parallel with no coordination.
package nfa2regex
