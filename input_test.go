package nfa2regex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const exampleJSON = `{
	"states": ["n1", "n2"],
	"root": "n1",
	"accepts": ["n2"],
	"transition": {
		"n1": {"n1": "_", "n2": "cds"},
		"n2": {"n1": "e", "n2": "_"}
	}
}`

const exampleYAML = `
states: [n1, n2]
root: n1
accepts: [n2]
transition:
  n1: {n1: "_", n2: cds}
  n2: {n1: e, n2: "_"}
`

func TestParseJSON(t *testing.T) {
	a, err := ParseJSON(strings.NewReader(exampleJSON))
	assert.Nil(t, err)
	assert.Equal(t, validAutomaton(), a)
}

func TestParseYAML(t *testing.T) {
	a, err := ParseYAML(strings.NewReader(exampleYAML))
	assert.Nil(t, err)
	assert.Equal(t, validAutomaton(), a)
}

func TestParseJSONValidates(t *testing.T) {
	doc := `{"states": ["n1"], "root": "n1", "accepts": [], "transition": {}}`
	_, err := ParseJSON(strings.NewReader(doc))
	assert.ErrorIs(t, err, ErrInvalidAutomaton)
}

func TestParseJSONRejectsGarbage(t *testing.T) {
	_, err := ParseJSON(strings.NewReader("not json"))
	assert.NotNil(t, err)
}
