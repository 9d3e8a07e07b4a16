package langrec_test

import (
	"testing"

	"github.com/npillmayer/langrec/cnf"
	"github.com/npillmayer/langrec/cyk"
	"github.com/npillmayer/langrec/earley"
	"github.com/npillmayer/langrec/grammar"
	"github.com/npillmayer/langrec/recognizer"
	"github.com/npillmayer/langrec/symbol"
)

// This file exercises cross-package properties of the recognition core:
// recogniser equivalence, CNF preservation, and an end-to-end scenario
// table, run against both recognisers at once so any divergence between
// them shows up as a single failing case rather than two
// separately-passing test suites that quietly disagree.

type scenario struct {
	name    string
	grammar func() (*grammar.Grammar, map[rune]*symbol.Symbol)
	cases   []struct {
		word   string
		accept bool
	}
}

// dyckOne builds S -> ( S ) S | epsilon, over the alphabet {'(' , ')'}.
func dyckOne() (*grammar.Grammar, map[rune]*symbol.Symbol) {
	s := symbol.NewNonTerminal()
	open := symbol.NewTerminal()
	closeP := symbol.NewTerminal()
	rules := []*grammar.Rule{
		grammar.NewRule(s, open, s, closeP, s),
		grammar.NewRule(s),
	}
	g := grammar.New([]*symbol.Symbol{s}, []*symbol.Symbol{open, closeP}, s, rules)
	return g, map[rune]*symbol.Symbol{'(': open, ')': closeP}
}

// scenarioFive builds a grammar with interacting unit, epsilon, and
// ambiguous-length derivations:
// S -> S A T | T, T -> U B T | U, U -> U U | c | epsilon,
// A -> epsilon | a, B -> b.
func scenarioFive() (*grammar.Grammar, map[rune]*symbol.Symbol) {
	s := symbol.NewNonTerminal()
	t := symbol.NewNonTerminal()
	u := symbol.NewNonTerminal()
	a := symbol.NewNonTerminal()
	b := symbol.NewNonTerminal()
	aT := symbol.NewTerminal()
	bT := symbol.NewTerminal()
	cT := symbol.NewTerminal()
	rules := []*grammar.Rule{
		grammar.NewRule(s, s, a, t),
		grammar.NewRule(s, t),
		grammar.NewRule(t, u, b, t),
		grammar.NewRule(t, u),
		grammar.NewRule(u, u, u),
		grammar.NewRule(u, cT),
		grammar.NewRule(u),
		grammar.NewRule(a),
		grammar.NewRule(a, aT),
		grammar.NewRule(b, bT),
	}
	g := grammar.New([]*symbol.Symbol{s, t, u, a, b}, []*symbol.Symbol{aT, bT, cT}, s, rules)
	return g, map[rune]*symbol.Symbol{'a': aT, 'b': bT, 'c': cT}
}

// scenarioSix builds S -> S ( S ) , S -> epsilon, which cannot produce a
// lone "(" because every non-epsilon expansion contributes a matched
// pair of parentheses.
func scenarioSix() (*grammar.Grammar, map[rune]*symbol.Symbol) {
	s := symbol.NewNonTerminal()
	open := symbol.NewTerminal()
	closeP := symbol.NewTerminal()
	rules := []*grammar.Rule{
		grammar.NewRule(s, s, open, s, closeP),
		grammar.NewRule(s),
	}
	g := grammar.New([]*symbol.Symbol{s}, []*symbol.Symbol{open, closeP}, s, rules)
	return g, map[rune]*symbol.Symbol{'(': open, ')': closeP}
}

func wordOf(alphabet map[rune]*symbol.Symbol, s string) []*symbol.Symbol {
	word := make([]*symbol.Symbol, 0, len(s))
	for _, ch := range s {
		sym, ok := alphabet[ch]
		if !ok {
			panic("conformance_test: character not in alphabet: " + string(ch))
		}
		word = append(word, sym)
	}
	return word
}

func scenarios() []scenario {
	return []scenario{
		{
			name:    "dyck-one",
			grammar: dyckOne,
			cases: []struct {
				word   string
				accept bool
			}{
				{"()(())", true},
				{"", true},
				{")", false},
				{"()(", false},
			},
		},
		{
			name:    "scenario-five",
			grammar: scenarioFive,
			cases: []struct {
				word   string
				accept bool
			}{
				{"cbc", true},
			},
		},
		{
			name:    "scenario-six",
			grammar: scenarioSix,
			cases: []struct {
				word   string
				accept bool
			}{
				{"(", false},
			},
		},
	}
}

// TestEquivalenceOfRecognisers checks that Earley and CYK agree on every
// scenario word below.
func TestEquivalenceOfRecognisers(t *testing.T) {
	for _, sc := range scenarios() {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			g, alphabet := sc.grammar()
			e := earley.New()
			if err := e.Fit(g); err != nil {
				t.Fatalf("earley Fit: %v", err)
			}
			c := cyk.New()
			if err := c.Fit(g); err != nil {
				t.Fatalf("cyk Fit: %v", err)
			}
			for _, tc := range sc.cases {
				word := wordOf(alphabet, tc.word)
				gotE, err := e.Predict(word)
				if err != nil {
					t.Fatalf("earley Predict(%q): %v", tc.word, err)
				}
				gotC, err := c.Predict(word)
				if err != nil {
					t.Fatalf("cyk Predict(%q): %v", tc.word, err)
				}
				if gotE != gotC {
					t.Errorf("%q: earley=%v cyk=%v disagree", tc.word, gotE, gotC)
				}
				if gotE != tc.accept {
					t.Errorf("%q: got %v, want %v", tc.word, gotE, tc.accept)
				}
			}
		})
	}
}

// TestEmptyStringLaw checks that predict(epsilon) = true iff S derives
// epsilon.
func TestEmptyStringLaw(t *testing.T) {
	g, _ := dyckOne()
	for _, rec := range []recognizer.Recognizer{earley.New(), cyk.New()} {
		if err := rec.Fit(g); err != nil {
			t.Fatalf("Fit: %v", err)
		}
		got, err := rec.Predict(nil)
		if err != nil {
			t.Fatalf("Predict(epsilon): %v", err)
		}
		if !got {
			t.Errorf("%T: expected epsilon to be accepted (S -> epsilon is a rule)", rec)
		}
	}
}

// TestCNFPreservation checks that every rule of the normalised grammar
// has a CNF shape, the start never appears on a right-hand side, and
// CYK (driven by the normaliser) still agrees with Earley (which never
// normalises) on the same words.
func TestCNFPreservation(t *testing.T) {
	g, alphabet := scenarioFive()
	normalised := cnf.Normalize(g.Clone())

	for _, rule := range normalised.RuleList() {
		switch len(rule.Right) {
		case 0:
			if rule.Left != normalised.Start {
				t.Errorf("epsilon rule %v: only the start symbol may derive epsilon", rule)
			}
		case 1:
			if !rule.Right[0].IsTerminal() {
				t.Errorf("unit rule %v: right-hand side must be a single terminal", rule)
			}
		case 2:
			for _, s := range rule.Right {
				if !s.IsNonTerminal() || s == normalised.Start {
					t.Errorf("binary rule %v: right-hand side must be two non-start non-terminals", rule)
				}
			}
		default:
			t.Errorf("rule %v: right-hand side length %d is not a CNF shape", rule, len(rule.Right))
		}
	}
	for _, rule := range normalised.RuleList() {
		for _, s := range rule.Right {
			if s == normalised.Start {
				t.Errorf("start symbol appears on a right-hand side: %v", rule)
			}
		}
	}

	e := earley.New()
	if err := e.Fit(g); err != nil {
		t.Fatalf("earley Fit: %v", err)
	}
	c := cyk.New()
	if err := c.Fit(g); err != nil {
		t.Fatalf("cyk Fit: %v", err)
	}
	for _, w := range []string{"", "c", "cbc", "bc", "abc", "aabc"} {
		word := wordOf(alphabet, w)
		gotE, err := e.Predict(word)
		if err != nil {
			t.Fatalf("earley Predict(%q): %v", w, err)
		}
		gotC, err := c.Predict(word)
		if err != nil {
			t.Fatalf("cyk Predict(%q): %v", w, err)
		}
		if gotE != gotC {
			t.Errorf("%q: earley=%v cyk=%v (CNF changed the language)", w, gotE, gotC)
		}
	}
}

// TestNormaliserIdempotence checks that normalising an
// already-normalised grammar yields the same rule set.
func TestNormaliserIdempotence(t *testing.T) {
	g, _ := scenarioFive()
	once := cnf.Normalize(g.Clone())
	twice := cnf.Normalize(once.Clone())
	if once.Rules.Size() != twice.Rules.Size() {
		t.Fatalf("rule count changed: %d -> %d", once.Rules.Size(), twice.Rules.Size())
	}
	for _, r := range once.RuleList() {
		if !twice.HasRule(r) {
			t.Errorf("rule %v present after one normalisation, missing after two", r)
		}
	}
}

// TestRecognizerFitIdempotence checks that Fit called twice on the
// same grammar yields a recogniser with the same Predict behaviour as
// Fit called once.
func TestRecognizerFitIdempotence(t *testing.T) {
	g, alphabet := dyckOne()
	for _, rec := range []recognizer.Recognizer{earley.New(), cyk.New()} {
		if err := rec.Fit(g); err != nil {
			t.Fatalf("first Fit: %v", err)
		}
		before, err := rec.Predict(wordOf(alphabet, "()(())"))
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if err := rec.Fit(g); err != nil {
			t.Fatalf("second Fit: %v", err)
		}
		after, err := rec.Predict(wordOf(alphabet, "()(())"))
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if before != after {
			t.Errorf("%T: second Fit changed Predict's answer: %v -> %v", rec, before, after)
		}
	}
}

// TestDeterminism checks that repeated Predict calls on a fixed
// grammar/word return the same Boolean every time.
func TestDeterminism(t *testing.T) {
	g, alphabet := scenarioFive()
	word := wordOf(alphabet, "cbc")
	for _, rec := range []recognizer.Recognizer{earley.New(), cyk.New()} {
		if err := rec.Fit(g); err != nil {
			t.Fatalf("Fit: %v", err)
		}
		var first bool
		for i := 0; i < 5; i++ {
			got, err := rec.Predict(word)
			if err != nil {
				t.Fatalf("Predict: %v", err)
			}
			if i == 0 {
				first = got
			} else if got != first {
				t.Errorf("%T: Predict is non-deterministic across repeated calls", rec)
			}
		}
	}
}

// TestEmptyLanguage checks that if the start cannot reach any
// all-terminal derivation, Predict is false for every non-empty word.
func TestEmptyLanguage(t *testing.T) {
	s := symbol.NewNonTerminal()
	left := symbol.NewNonTerminal() // never productive: only derives itself
	a := symbol.NewTerminal()
	rules := []*grammar.Rule{
		grammar.NewRule(s, left),
		grammar.NewRule(left, left, a),
	}
	g := grammar.New([]*symbol.Symbol{s, left}, []*symbol.Symbol{a}, s, rules)
	alphabet := map[rune]*symbol.Symbol{'a': a}

	for _, rec := range []recognizer.Recognizer{earley.New(), cyk.New()} {
		if err := rec.Fit(g); err != nil {
			t.Fatalf("Fit: %v", err)
		}
		for _, w := range []string{"a", "aa", "aaa"} {
			got, err := rec.Predict(wordOf(alphabet, w))
			if err != nil {
				t.Fatalf("Predict(%q): %v", w, err)
			}
			if got {
				t.Errorf("%T: expected %q to be rejected (empty language)", rec, w)
			}
		}
		gotEmpty, err := rec.Predict(nil)
		if err != nil {
			t.Fatalf("Predict(epsilon): %v", err)
		}
		if gotEmpty {
			t.Errorf("%T: expected epsilon to be rejected too (no S -> epsilon rule)", rec)
		}
	}
}
