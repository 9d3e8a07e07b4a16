/*
Package cnf implements the Chomsky Normal Form normaliser: a fixed,
seven-stage pipeline that rewrites any context-free grammar in place into
a language-equivalent grammar where every rule has one of three shapes:

  A → BC   (B, C non-terminals, neither the start symbol)
  A → a    (a a terminal)
  S → ε    (only for the start symbol, only if ε is in the language)

and the start symbol never appears on any right-hand side.

The pipeline order is fixed and matters: start-isolation must precede
epsilon elimination (so epsilon-closure sees an isolated start);
mixed-rule fixing must precede long-rule decomposition (so decomposition
only ever sees all-non-terminal right sides); decomposition must precede
epsilon/chain elimination (those passes would otherwise have to deal with
rules of arbitrary length); epsilon elimination must precede chain
elimination (it synthesises new rules that may themselves be unit
rules); chain elimination must precede the productivity/reachability
passes (eliminating units can expose non-productive or unreachable
symbols).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cnf

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/langrec/grammar"
	"github.com/npillmayer/langrec/symbol"
)

// tracer traces with key 'langrec.cnf'.
func tracer() tracing.Trace {
	return tracing.Select("langrec.cnf")
}

type pass struct {
	name string
	run  func(g *grammar.Grammar)
}

var pipeline = []pass{
	{"start-isolation", isolateStart},
	{"mixed-rules-fix", fixMixedRules},
	{"long-rule-decomposition", decomposeLongRules},
	{"epsilon-elimination", eliminateEpsilon},
	{"chain-rule-elimination", eliminateChains},
	{"non-productive-elimination", eliminateNonProductive},
	{"unreachable-elimination", eliminateUnreachable},
}

// Normalizer runs the seven-stage pipeline over a grammar. Constructing
// one is cheap; a Normalizer carries no state between calls to Normalize
// other than its logging sink.
type Normalizer struct {
	trace tracing.Trace
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithTrace overrides the default logging sink (tracer(), the
// process-wide 'langrec.cnf' tracer) with an explicit one. Passing a
// sink whose trace level is below Debug costs nothing extra — the
// Debugf calls after each pass are no-ops there, same as disabling the
// global switch.
func WithTrace(t tracing.Trace) Option {
	return func(n *Normalizer) { n.trace = t }
}

// NewNormalizer builds a Normalizer. Without options it logs to the
// process-wide 'langrec.cnf' tracer.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{trace: tracer()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize takes exclusive ownership of g for the duration of
// normalisation and mutates it in place, pass by pass, returning it once
// every pass has run. Every pass is total on a well-formed grammar; there
// is no failure mode here short of a bug.
func (n *Normalizer) Normalize(g *grammar.Grammar) *grammar.Grammar {
	for _, p := range pipeline {
		p.run(g)
		n.trace.Debugf("after %s:\n%s", p.name, g)
	}
	return g
}

// Normalize is a convenience wrapper around NewNormalizer().Normalize(g).
func Normalize(g *grammar.Grammar) *grammar.Grammar {
	return NewNormalizer().Normalize(g)
}

// --- Pass 1: start-isolation -------------------------------------------

func isolateStart(g *grammar.Grammar) {
	start := g.Start
	onRight := false
	for _, r := range g.RuleList() {
		for _, s := range r.Right {
			if s == start {
				onRight = true
				break
			}
		}
		if onRight {
			break
		}
	}
	if !onRight {
		return
	}
	fresh := symbol.NewNonTerminal()
	rewrite := func(s *symbol.Symbol) *symbol.Symbol {
		if s == start {
			return fresh
		}
		return s
	}
	newRules := []*grammar.Rule{grammar.NewRule(start, fresh)}
	for _, r := range g.RuleList() {
		right := make([]*symbol.Symbol, len(r.Right))
		for i, s := range r.Right {
			right[i] = rewrite(s)
		}
		newRules = append(newRules, grammar.NewRule(rewrite(r.Left), right...))
	}
	g.NonTerminals.Add(fresh)
	replaceRules(g, newRules)
}

// --- Pass 2: mixed-rules fix --------------------------------------------

func fixMixedRules(g *grammar.Grammar) {
	useful := map[*symbol.Symbol]bool{}
	for _, r := range g.RuleList() {
		for _, s := range r.Right {
			if s.IsTerminal() {
				useful[s] = true
			}
		}
	}
	if len(useful) == 0 {
		return
	}
	clones := make(map[*symbol.Symbol]*symbol.Symbol, len(useful))
	var added []*grammar.Rule
	for term := range useful {
		non := symbol.NewNonTerminal()
		clones[term] = non
		added = append(added, grammar.NewRule(non, term))
		g.NonTerminals.Add(non)
	}
	newRules := append([]*grammar.Rule{}, added...)
	for _, r := range g.RuleList() {
		right := make([]*symbol.Symbol, len(r.Right))
		changed := false
		for i, s := range r.Right {
			if s.IsTerminal() {
				right[i] = clones[s]
				changed = true
			} else {
				right[i] = s
			}
		}
		if changed {
			newRules = append(newRules, grammar.NewRule(r.Left, right...))
		} else {
			newRules = append(newRules, r)
		}
	}
	replaceRules(g, newRules)
}

// --- Pass 3: long-rule decomposition -------------------------------------

func decomposeLongRules(g *grammar.Grammar) {
	var newRules []*grammar.Rule
	for _, r := range g.RuleList() {
		if len(r.Right) <= 2 {
			newRules = append(newRules, r)
			continue
		}
		right := append([]*symbol.Symbol(nil), r.Right...)
		tail := right[len(right)-1]
		right = right[:len(right)-1]
		for len(right) > 1 {
			fresh := symbol.NewNonTerminal()
			g.NonTerminals.Add(fresh)
			newRules = append(newRules, grammar.NewRule(fresh, right[len(right)-1], tail))
			tail = fresh
			right = right[:len(right)-1]
		}
		newRules = append(newRules, grammar.NewRule(r.Left, right[0], tail))
	}
	replaceRules(g, newRules)
}

// --- Pass 4: epsilon-production elimination ------------------------------

func eliminateEpsilon(g *grammar.Grammar) {
	rules := g.RuleList()
	derivesEpsilon := map[*symbol.Symbol]bool{}
	for _, n := range g.NonTerminalList() {
		derivesEpsilon[n] = false
	}
	for changed := true; changed; {
		changed = false
		for _, r := range rules {
			if derivesEpsilon[r.Left] {
				continue
			}
			all := true
			for _, s := range r.Right {
				if !derivesEpsilon[s] {
					all = false
					break
				}
			}
			if all {
				derivesEpsilon[r.Left] = true
				changed = true
			}
		}
	}

	var produced []*grammar.Rule
	for _, r := range rules {
		if len(r.Right) == 0 {
			continue // epsilon rules are regenerated below, only for the start
		}
		var epsPositions []int
		for i, s := range r.Right {
			if s.IsNonTerminal() && derivesEpsilon[s] {
				epsPositions = append(epsPositions, i)
			}
		}
		if len(epsPositions) == 0 {
			produced = append(produced, r)
			continue
		}
		k := uint(len(epsPositions))
		for mask := uint(0); mask < (uint(1) << k); mask++ {
			drop := make(map[int]bool, k)
			for bit := uint(0); bit < k; bit++ {
				if mask&(1<<bit) != 0 {
					drop[epsPositions[bit]] = true
				}
			}
			var right []*symbol.Symbol
			for i, s := range r.Right {
				if drop[i] {
					continue
				}
				right = append(right, s)
			}
			if len(right) == 0 {
				continue
			}
			produced = append(produced, grammar.NewRule(r.Left, right...))
		}
	}
	if derivesEpsilon[g.Start] {
		produced = append(produced, grammar.NewRule(g.Start))
	}
	replaceRules(g, produced)
}

// --- Pass 5: chain-rule elimination ---------------------------------------

func eliminateChains(g *grammar.Grammar) {
	unitTo := map[*symbol.Symbol][]*symbol.Symbol{}
	nonUnit := map[*symbol.Symbol][]*grammar.Rule{}
	for _, r := range g.RuleList() {
		if len(r.Right) == 1 && r.Right[0].IsNonTerminal() {
			unitTo[r.Left] = append(unitTo[r.Left], r.Right[0])
		} else {
			nonUnit[r.Left] = append(nonUnit[r.Left], r)
		}
	}

	var produced []*grammar.Rule
	for _, a := range g.NonTerminalList() {
		visited := map[*symbol.Symbol]bool{a: true}
		queue := []*symbol.Symbol{a}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, b := range unitTo[cur] {
				if !visited[b] {
					visited[b] = true
					queue = append(queue, b)
				}
			}
		}
		for b := range visited {
			for _, r := range nonUnit[b] {
				produced = append(produced, grammar.NewRule(a, r.Right...))
			}
		}
	}
	replaceRules(g, produced)
}

// --- Pass 6: non-productive elimination -----------------------------------

func eliminateNonProductive(g *grammar.Grammar) {
	rules := g.RuleList()
	productive := map[*symbol.Symbol]bool{}
	for changed := true; changed; {
		changed = false
		for _, r := range rules {
			if productive[r.Left] {
				continue
			}
			ok := true
			for _, s := range r.Right {
				if s.IsNonTerminal() && !productive[s] {
					ok = false
					break
				}
			}
			if ok {
				productive[r.Left] = true
				changed = true
			}
		}
	}

	var keptNon []*symbol.Symbol
	for _, n := range g.NonTerminalList() {
		if productive[n] || n == g.Start {
			keptNon = append(keptNon, n)
		}
	}
	var keptRules []*grammar.Rule
	for _, r := range rules {
		if !productive[r.Left] {
			continue
		}
		ok := true
		for _, s := range r.Right {
			if s.IsNonTerminal() && !productive[s] {
				ok = false
				break
			}
		}
		if ok {
			keptRules = append(keptRules, r)
		}
	}
	replaceNonTerminals(g, keptNon)
	replaceRules(g, keptRules)
}

// --- Pass 7: unreachable elimination ---------------------------------------

func eliminateUnreachable(g *grammar.Grammar) {
	byLeft := map[*symbol.Symbol][]*grammar.Rule{}
	for _, r := range g.RuleList() {
		byLeft[r.Left] = append(byLeft[r.Left], r)
	}
	reachable := map[*symbol.Symbol]bool{}
	var visit func(n *symbol.Symbol)
	visit = func(n *symbol.Symbol) {
		if reachable[n] {
			return
		}
		reachable[n] = true
		for _, r := range byLeft[n] {
			for _, s := range r.Right {
				if s.IsNonTerminal() {
					visit(s)
				}
			}
		}
	}
	visit(g.Start)

	var keptNon []*symbol.Symbol
	for _, n := range g.NonTerminalList() {
		if reachable[n] {
			keptNon = append(keptNon, n)
		}
	}
	var keptRules []*grammar.Rule
	for _, r := range g.RuleList() {
		if reachable[r.Left] {
			keptRules = append(keptRules, r)
		}
	}
	replaceNonTerminals(g, keptNon)
	replaceRules(g, keptRules)
}

// --- shared helpers --------------------------------------------------------

func replaceRules(g *grammar.Grammar, rules []*grammar.Rule) {
	g.Rules.Clear()
	for _, r := range rules {
		g.Rules.Add(r)
	}
}

func replaceNonTerminals(g *grammar.Grammar, nonTerminals []*symbol.Symbol) {
	g.NonTerminals.Clear()
	for _, n := range nonTerminals {
		g.NonTerminals.Add(n)
	}
}
