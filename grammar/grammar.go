/*
Package grammar implements the context-free grammar data model: rules,
grammars, and the value-equality/ordering they need to live in sets and
as map keys.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/npillmayer/langrec/symbol"
)

// Rule is an ordered pair (Left, Right) where Left is a non-terminal and
// Right is an immutable, possibly empty, ordered sequence of symbols. An
// empty Right denotes an epsilon-production. Two rules are equal iff
// their lefts are the same symbol and their rights are element-wise
// equal sequences of symbols.
type Rule struct {
	Left  *symbol.Symbol
	Right []*symbol.Symbol
}

// NewRule builds a rule. The right-hand side is copied, so later mutation
// of the caller's slice cannot change the rule — rules are value objects.
func NewRule(left *symbol.Symbol, right ...*symbol.Symbol) *Rule {
	cp := make([]*symbol.Symbol, len(right))
	copy(cp, right)
	return &Rule{Left: left, Right: cp}
}

// IsEpsilon reports whether r is an epsilon-production (empty right side).
func (r *Rule) IsEpsilon() bool {
	return len(r.Right) == 0
}

// Equal reports whether r and other are the same rule by value.
func (r *Rule) Equal(other *Rule) bool {
	return Compare(r, other) == 0
}

// Compare gives rules a total order: first by Left's serial, then
// lexicographically by Right's symbols' serials, then by length. It
// doubles as rule-set equality (Compare == 0) for the treeset backing
// Grammar.Rules, which is how rule sets stay deterministic to iterate
// regardless of the order rules were inserted in.
func Compare(a, b *Rule) int {
	if c := symbol.Compare(a.Left, b.Left); c != 0 {
		return c
	}
	n := len(a.Right)
	if len(b.Right) < n {
		n = len(b.Right)
	}
	for i := 0; i < n; i++ {
		if c := symbol.Compare(a.Right[i], b.Right[i]); c != 0 {
			return c
		}
	}
	return len(a.Right) - len(b.Right)
}

// String renders r using symbols' generic debug form (serial numbers);
// the grammar core never resolves a printable character for a symbol —
// that lives at the registry boundary.
func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Left.String())
	b.WriteString(" -> ")
	if len(r.Right) == 0 {
		b.WriteString("ε")
	}
	for i, sym := range r.Right {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sym.String())
	}
	return b.String()
}

func ruleComparator(a, b interface{}) int {
	return Compare(a.(*Rule), b.(*Rule))
}

func symbolComparator(a, b interface{}) int {
	return symbol.Compare(a.(*symbol.Symbol), b.(*symbol.Symbol))
}

// Grammar is a context-free grammar: non-terminals, terminals, a start
// symbol (which must be among the non-terminals), and rules. The three
// collections are kept as gods treesets ordered by symbol/rule serial so
// that iterating a Grammar's rules or symbols is deterministic across
// runs, independent of Go's randomized map iteration order.
type Grammar struct {
	NonTerminals *treeset.Set
	Terminals    *treeset.Set
	Start        *symbol.Symbol
	Rules        *treeset.Set
}

// New builds a Grammar from the given collections. Slices are copied into
// fresh ordered sets; the caller's slices may be reused afterwards.
func New(nonTerminals, terminals []*symbol.Symbol, start *symbol.Symbol, rules []*Rule) *Grammar {
	g := &Grammar{
		NonTerminals: treeset.NewWith(symbolComparator),
		Terminals:    treeset.NewWith(symbolComparator),
		Start:        start,
		Rules:        treeset.NewWith(ruleComparator),
	}
	for _, n := range nonTerminals {
		g.NonTerminals.Add(n)
	}
	for _, t := range terminals {
		g.Terminals.Add(t)
	}
	for _, r := range rules {
		g.Rules.Add(r)
	}
	return g
}

// Clone returns a deep copy of the collections (fresh treesets) sharing
// the same underlying symbol/rule values, which are themselves immutable.
// The CNF normaliser takes exclusive ownership of the grammar handed to
// it and mutates in place; callers who want to keep their original must
// Clone first (the CYK recogniser does this in Fit; the Earley recogniser
// instead builds a fresh augmented grammar from g's contents).
func (g *Grammar) Clone() *Grammar {
	clone := &Grammar{
		NonTerminals: treeset.NewWith(symbolComparator),
		Terminals:    treeset.NewWith(symbolComparator),
		Start:        g.Start,
		Rules:        treeset.NewWith(ruleComparator),
	}
	for _, v := range g.NonTerminals.Values() {
		clone.NonTerminals.Add(v)
	}
	for _, v := range g.Terminals.Values() {
		clone.Terminals.Add(v)
	}
	for _, v := range g.Rules.Values() {
		clone.Rules.Add(v)
	}
	return clone
}

// RuleList returns the rules as a plain, deterministically ordered slice.
func (g *Grammar) RuleList() []*Rule {
	values := g.Rules.Values()
	rules := make([]*Rule, len(values))
	for i, v := range values {
		rules[i] = v.(*Rule)
	}
	return rules
}

// NonTerminalList returns the non-terminals as a plain, deterministically
// ordered slice.
func (g *Grammar) NonTerminalList() []*symbol.Symbol {
	values := g.NonTerminals.Values()
	syms := make([]*symbol.Symbol, len(values))
	for i, v := range values {
		syms[i] = v.(*symbol.Symbol)
	}
	return syms
}

// TerminalList returns the terminals as a plain, deterministically
// ordered slice.
func (g *Grammar) TerminalList() []*symbol.Symbol {
	values := g.Terminals.Values()
	syms := make([]*symbol.Symbol, len(values))
	for i, v := range values {
		syms[i] = v.(*symbol.Symbol)
	}
	return syms
}

// RulesWithLeft returns every rule of g whose left side is non.
func (g *Grammar) RulesWithLeft(non *symbol.Symbol) []*Rule {
	var out []*Rule
	for _, v := range g.Rules.Values() {
		r := v.(*Rule)
		if r.Left == non {
			out = append(out, r)
		}
	}
	return out
}

// HasRule reports whether r (compared by value) is present in g.
func (g *Grammar) HasRule(r *Rule) bool {
	return g.Rules.Contains(r)
}

// String renders g using symbols' generic debug form, one rule per line.
// Used by the CNF normaliser's debug trace and by tests; never used to
// produce caller-facing output (that is the registry/naive boundary's
// job).
func (g *Grammar) String() string {
	var b strings.Builder
	b.WriteString("start: ")
	b.WriteString(g.Start.String())
	b.WriteString("\n")
	for _, r := range g.RuleList() {
		b.WriteString("  ")
		b.WriteString(r.String())
		b.WriteString("\n")
	}
	return b.String()
}
