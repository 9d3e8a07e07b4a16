package grammar

import (
	"testing"

	"github.com/npillmayer/langrec/symbol"
)

func TestRuleEquality(t *testing.T) {
	left := symbol.NewNonTerminal()
	a := symbol.NewTerminal()
	b := symbol.NewNonTerminal()

	r1 := NewRule(left, a, b)
	r2 := NewRule(left, a, b)
	r3 := NewRule(left, b, a)

	if !r1.Equal(r2) {
		t.Errorf("rules with identical left/right should be equal")
	}
	if r1.Equal(r3) {
		t.Errorf("rules with different right order should not be equal")
	}
}

func TestEpsilonRule(t *testing.T) {
	start := symbol.NewNonTerminal()
	r := NewRule(start)
	if !r.IsEpsilon() {
		t.Errorf("rule with empty right side should report IsEpsilon")
	}
}

func TestGrammarRuleSetDedupesByValue(t *testing.T) {
	start := symbol.NewNonTerminal()
	a := symbol.NewTerminal()

	r1 := NewRule(start, a)
	r2 := NewRule(start, a) // distinct Rule pointer, same value

	g := New([]*symbol.Symbol{start}, []*symbol.Symbol{a}, start, []*Rule{r1, r2})
	if g.Rules.Size() != 1 {
		t.Errorf("expected duplicate-by-value rules to collapse to one entry, got %d", g.Rules.Size())
	}
	if !g.HasRule(NewRule(start, a)) {
		t.Errorf("expected an equal-by-value rule to be found via HasRule")
	}
}

func TestGrammarRuleOrderIsDeterministic(t *testing.T) {
	start := symbol.NewNonTerminal()
	a := symbol.NewTerminal()
	b := symbol.NewTerminal()

	rules := []*Rule{NewRule(start, b), NewRule(start, a)}
	g1 := New([]*symbol.Symbol{start}, []*symbol.Symbol{a, b}, start, rules)
	g2 := New([]*symbol.Symbol{start}, []*symbol.Symbol{a, b}, start, rules)

	l1 := g1.RuleList()
	l2 := g2.RuleList()
	if len(l1) != len(l2) {
		t.Fatalf("expected equal length rule lists")
	}
	for i := range l1 {
		if !l1[i].Equal(l2[i]) {
			t.Errorf("expected deterministic rule ordering at index %d", i)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	start := symbol.NewNonTerminal()
	a := symbol.NewTerminal()
	g := New([]*symbol.Symbol{start}, []*symbol.Symbol{a}, start, []*Rule{NewRule(start, a)})

	clone := g.Clone()
	clone.Rules.Add(NewRule(start))

	if g.Rules.Size() == clone.Rules.Size() {
		t.Errorf("mutating a clone should not affect the original grammar")
	}
}
