/*
Package earley implements the Earley recognition algorithm: chart
construction with interleaved PREDICT/SCAN/COMPLETE, answering membership
queries against any context-free grammar without requiring CNF.

Fit mints a fresh start symbol S′ and an augmentation rule S′ → S, so
that acceptance can be checked uniformly as "does chart[n] contain a
completed S′ → S ·, 0" regardless of whether the original start symbol
appears elsewhere on a right-hand side.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package earley

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/langrec/grammar"
	"github.com/npillmayer/langrec/internal/itemset"
	"github.com/npillmayer/langrec/recognizer"
	"github.com/npillmayer/langrec/symbol"
)

// tracer traces with key 'langrec.earley'.
func tracer() tracing.Trace {
	return tracing.Select("langrec.earley")
}

var _ recognizer.Recognizer = (*Recognizer)(nil)

// Recognizer answers membership queries by building an Earley chart over
// the fitted grammar. Fit augments a logical copy of the grammar handed
// to it; the caller's original grammar is never mutated.
type Recognizer struct {
	augStart      *symbol.Symbol
	augRule       *grammar.Rule
	ruleIndex     map[*grammar.Rule]int
	byNonTerminal map[*symbol.Symbol]*arraylist.List
	trace         tracing.Trace
}

// Option configures a Recognizer.
type Option func(*Recognizer)

// WithTrace overrides the default logging sink.
func WithTrace(t tracing.Trace) Option {
	return func(r *Recognizer) { r.trace = t }
}

// New returns an unfit Earley recognizer.
func New(opts ...Option) *Recognizer {
	r := &Recognizer{trace: tracer()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Class reports the broadest grammar class Earley accepts: any
// context-free grammar, directly, with no rewriting required.
func (r *Recognizer) Class() recognizer.GrammarClass {
	return recognizer.ClassContextFree
}

// Fit augments a logical copy of g with a fresh start S′ and the rule
// S′ → S, then indexes every rule by its left-hand non-terminal for
// O(1) PREDICT lookups. The caller's g is left untouched.
func (r *Recognizer) Fit(g *grammar.Grammar) error {
	augStart := symbol.NewNonTerminal()
	augRule := grammar.NewRule(augStart, g.Start)

	nonTerminals := append(g.NonTerminalList(), augStart)
	rules := append(g.RuleList(), augRule)
	augmented := grammar.New(nonTerminals, g.TerminalList(), augStart, rules)

	ruleIndex := make(map[*grammar.Rule]int, len(rules))
	byNonTerminal := make(map[*symbol.Symbol]*arraylist.List, len(nonTerminals))
	for i, rule := range augmented.RuleList() {
		ruleIndex[rule] = i
		list, ok := byNonTerminal[rule.Left]
		if !ok {
			list = arraylist.New()
			byNonTerminal[rule.Left] = list
		}
		list.Add(rule)
	}

	r.augStart = augStart
	r.augRule = nil
	for _, rule := range augmented.RuleList() {
		if rule.Left == augStart {
			r.augRule = rule
			break
		}
	}
	r.ruleIndex = ruleIndex
	r.byNonTerminal = byNonTerminal
	r.trace.Debugf("fit: augmented grammar with S'=%s, S'->S rule %s", augStart, r.augRule)
	return nil
}

// Predict reports whether word is a member of the language of the
// grammar most recently passed to Fit.
func (r *Recognizer) Predict(word []*symbol.Symbol) (bool, error) {
	if r.augRule == nil {
		return false, recognizer.ErrNotFit
	}
	n := len(word)
	chart := make([]*itemset.Set, n+1)
	for i := range chart {
		chart[i] = itemset.New()
	}

	start := Item{rule: r.augRule, ruleIdx: r.ruleIndex[r.augRule], dot: 0, origin: 0, current: 0}
	chart[0].Add(start)
	r.closure(chart, 0)
	for i := 0; i < n; i++ {
		r.scan(chart, i, word[i])
		r.closure(chart, i+1)
	}

	accept := Item{rule: r.augRule, ruleIdx: r.ruleIndex[r.augRule], dot: 1, origin: 0, current: n}
	return chart[n].Contains(accept), nil
}

// scan advances every item in chart[i] whose next symbol is the
// terminal a, placing the results into chart[i+1].
func (r *Recognizer) scan(chart []*itemset.Set, i int, a *symbol.Symbol) {
	cell := chart[i]
	for idx := 0; idx < cell.Len(); idx++ {
		it := cell.At(idx).(Item)
		if sym := it.nextSymbol(); sym != nil && sym.IsTerminal() && sym == a {
			chart[i+1].Add(it.advance(i + 1))
		}
	}
}

// closure is the fixed point of PREDICT and COMPLETE applied within
// chart[i] (and, for COMPLETE, against the origin cells it reaches
// back to). Because Set.Len() is reevaluated on every loop condition
// check, an item appended during a pass (a PREDICT landing an
// instantly-complete epsilon item, say) is itself visited in that pass.
// One pass alone can still miss work: a parent item appended after a
// nullable non-terminal's completion was processed in this cell is not
// advanced over it. Passes therefore repeat until one adds no item.
func (r *Recognizer) closure(chart []*itemset.Set, i int) {
	cell := chart[i]
	for {
		before := cell.Len()
		for idx := 0; idx < cell.Len(); idx++ {
			it := cell.At(idx).(Item)
			if it.complete() {
				r.complete(chart, cell, it, i)
				continue
			}
			if sym := it.nextSymbol(); sym != nil && sym.IsNonTerminal() {
				r.predict(cell, sym, i)
			}
		}
		if cell.Len() == before {
			return
		}
	}
}

// predict adds (B → ·γ, i, i) to cell for every rule B → γ.
func (r *Recognizer) predict(cell *itemset.Set, b *symbol.Symbol, i int) {
	list, ok := r.byNonTerminal[b]
	if !ok {
		return
	}
	for _, v := range list.Values() {
		rule := v.(*grammar.Rule)
		cell.Add(Item{rule: rule, ruleIdx: r.ruleIndex[rule], dot: 0, origin: i, current: i})
	}
}

// complete advances every parent item in chart[completed.origin] whose
// next symbol is completed.rule.Left, landing the advanced items in
// cell (chart[i]). completed.origin may equal i (an item completed in
// the same cell it was predicted in, e.g. after an epsilon production);
// Set.Len()'s fresh evaluation on every loop iteration makes that safe
// even when the origin cell and cell are the same object.
func (r *Recognizer) complete(chart []*itemset.Set, cell *itemset.Set, completed Item, i int) {
	origin := chart[completed.origin]
	for idx := 0; idx < origin.Len(); idx++ {
		parent := origin.At(idx).(Item)
		if sym := parent.nextSymbol(); sym != nil && sym == completed.rule.Left {
			cell.Add(parent.advance(i))
		}
	}
}
