package cyk

import (
	"testing"

	"github.com/npillmayer/langrec/grammar"
	"github.com/npillmayer/langrec/recognizer"
	"github.com/npillmayer/langrec/symbol"
)

// dyckOne returns a grammar for the language of balanced single-bracket
// strings: S -> ( S ) S | epsilon.
func dyckOne() (*grammar.Grammar, *symbol.Symbol, *symbol.Symbol) {
	s := symbol.NewNonTerminal()
	open := symbol.NewTerminal()
	closeP := symbol.NewTerminal()
	rules := []*grammar.Rule{
		grammar.NewRule(s, open, s, closeP, s),
		grammar.NewRule(s),
	}
	g := grammar.New([]*symbol.Symbol{s}, []*symbol.Symbol{open, closeP}, s, rules)
	return g, open, closeP
}

func TestPredictBeforeFit(t *testing.T) {
	r := New()
	_, err := r.Predict(nil)
	if err != recognizer.ErrNotFit {
		t.Errorf("expected ErrNotFit, got %v", err)
	}
}

func TestDyckOneAcceptsBalancedStrings(t *testing.T) {
	g, open, closeP := dyckOne()
	r := New()
	if err := r.Fit(g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		word   []*symbol.Symbol
		accept bool
	}{
		{nil, true},
		{[]*symbol.Symbol{open, closeP}, true},
		{[]*symbol.Symbol{open, open, closeP, closeP}, true},
		{[]*symbol.Symbol{open, closeP, open, closeP}, true},
		{[]*symbol.Symbol{open}, false},
		{[]*symbol.Symbol{closeP}, false},
		{[]*symbol.Symbol{open, open, closeP}, false},
	}
	for _, c := range cases {
		got, err := r.Predict(c.word)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", c.word, err)
		}
		if got != c.accept {
			t.Errorf("Predict(%v) = %v, want %v", c.word, got, c.accept)
		}
	}
}

func TestClassIsContextFree(t *testing.T) {
	r := New()
	if r.Class() != recognizer.ClassContextFree {
		t.Errorf("expected ClassContextFree, got %v", r.Class())
	}
}

func TestFitDoesNotMutateCallersGrammar(t *testing.T) {
	g, _, _ := dyckOne()
	before := g.RuleList()
	r := New()
	if err := r.Fit(g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := g.RuleList()
	if len(before) != len(after) {
		t.Errorf("Fit mutated the caller's grammar: rule count changed from %d to %d", len(before), len(after))
	}
}
