/*
Package cyk implements the Cocke-Younger-Kasami recognition algorithm: a
bottom-up dynamic-programming membership test for context-free grammars
in Chomsky Normal Form.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cyk

import (
	"github.com/npillmayer/langrec/cnf"
	"github.com/npillmayer/langrec/grammar"
	"github.com/npillmayer/langrec/recognizer"
	"github.com/npillmayer/langrec/symbol"
)

var _ recognizer.Recognizer = (*Recognizer)(nil)

// Recognizer answers membership queries by filling a triangular table
// P[A][i][j], true iff non-terminal A derives word[i..j] inclusive. Fit
// normalises its own clone of the grammar into CNF once; Predict then
// runs the O(|rules|·n³) table fill for each query word.
type Recognizer struct {
	grammar *grammar.Grammar
}

// New returns an unfit CYK recognizer.
func New() *Recognizer {
	return &Recognizer{}
}

// Class reports the broadest grammar class CYK accepts: any context-free
// grammar, since cnf.Normalize handles the CNF conversion internally.
func (r *Recognizer) Class() recognizer.GrammarClass {
	return recognizer.ClassContextFree
}

// Fit normalises a clone of g into Chomsky Normal Form and retains it.
// The caller's g is left untouched.
func (r *Recognizer) Fit(g *grammar.Grammar) error {
	r.grammar = cnf.Normalize(g.Clone())
	return nil
}

// Predict reports whether word is a member of the fitted grammar's
// language.
func (r *Recognizer) Predict(word []*symbol.Symbol) (bool, error) {
	if r.grammar == nil {
		return false, recognizer.ErrNotFit
	}
	if len(word) == 0 {
		return r.grammar.Rules.Contains(grammar.NewRule(r.grammar.Start)), nil
	}

	n := len(word)
	table := make(map[*symbol.Symbol][][]bool, r.grammar.NonTerminals.Size())
	for _, non := range r.grammar.NonTerminalList() {
		rows := make([][]bool, n)
		for i := range rows {
			rows[i] = make([]bool, n)
		}
		table[non] = rows
	}

	derivesTerminal := map[*symbol.Symbol][]*symbol.Symbol{}
	var binary []*grammar.Rule
	for _, rule := range r.grammar.RuleList() {
		switch len(rule.Right) {
		case 1:
			if rule.Right[0].IsTerminal() {
				derivesTerminal[rule.Right[0]] = append(derivesTerminal[rule.Right[0]], rule.Left)
			}
		case 2:
			binary = append(binary, rule)
		}
	}

	// Base of the induction: single-symbol spans.
	for i, w := range word {
		for _, non := range derivesTerminal[w] {
			table[non][i][i] = true
		}
	}

	// Step of the induction: spans of increasing length, split at every
	// interior point. Neither B nor C in a rule A -> BC can derive epsilon
	// once the grammar is in CNF, so mid always leaves both halves
	// non-empty.
	for length := 2; length <= n; length++ {
		for start := 0; start+length-1 < n; start++ {
			end := start + length - 1
			for mid := start; mid < end; mid++ {
				for _, rule := range binary {
					if table[rule.Right[0]][start][mid] && table[rule.Right[1]][mid+1][end] {
						table[rule.Left][start][end] = true
					}
				}
			}
		}
	}

	return table[r.grammar.Start][0][n-1], nil
}
