package nfa2regex

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseJSON decodes an automaton document from JSON. The document carries
// the states, the initial state under "root", the accept states and the
// raw transition table:
//
//	{"states": ["n1", "n2"],
//	 "root": "n1",
//	 "accepts": ["n2"],
//	 "transition": {"n1": {"n2": "cds"}, "n2": {"n1": "e"}}}
//
// The decoded automaton is validated before it is returned.
func ParseJSON(r io.Reader) (*Automaton, error) {
	var a Automaton
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("decode automaton: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// ParseYAML decodes an automaton document from YAML, with the same keys
// and validation as ParseJSON.
func ParseYAML(r io.Reader) (*Automaton, error) {
	var a Automaton
	if err := yaml.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("decode automaton: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}
