/*
Package naive implements the boundary facade: it accepts "naive" grammars
and words — plain strings of characters — interns their characters
through a registry into opaque symbol identities, and delegates
membership queries to a chosen recognizer.Recognizer. Nothing outside
this package (and package registry, which it wraps) ever looks at a
symbol's printable form.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package naive

import (
	"fmt"
	"strings"

	"github.com/npillmayer/langrec/grammar"
	"github.com/npillmayer/langrec/recognizer"
	"github.com/npillmayer/langrec/registry"
	"github.com/npillmayer/langrec/symbol"
)

// Rule is a naive production X -> α, both sides spelled as characters.
// Right may be empty, denoting an epsilon-production.
type Rule struct {
	Left  rune
	Right string
}

// Grammar is a naive context-free grammar: character sets for
// non-terminals and terminals, a start character, and a list of naive
// rules. It mirrors grammar.Grammar one level up, before interning.
type Grammar struct {
	NonTerminals string
	Terminals    string
	Start        rune
	Rules        []Rule
}

// Facade owns a registry and a recognizer, translating between naive
// (character) grammars/words and the opaque-symbol grammars/words the
// core operates on.
type Facade struct {
	registry   *registry.Registry
	recognizer recognizer.Recognizer
	grammar    *grammar.Grammar // retained only so -echo/tests can render it back
}

// New wraps rec in a Facade with a fresh, empty registry.
func New(rec recognizer.Recognizer) *Facade {
	return &Facade{registry: registry.New(), recognizer: rec}
}

// Class forwards the fitted recognizer's grammar-class tag. Present even
// before Fit, reporting whatever the wrapped recognizer reports for an
// unfit instance.
func (f *Facade) Class() recognizer.GrammarClass {
	return f.recognizer.Class()
}

// Fit translates g's characters into opaque symbols via f's registry
// and forwards the resulting grammar to the wrapped recognizer.
func (f *Facade) Fit(g Grammar) error {
	nonTerminals := make([]*symbol.Symbol, 0, len(g.NonTerminals))
	for _, ch := range g.NonTerminals {
		sym, err := f.registry.NonTerminal(ch)
		if err != nil {
			return err
		}
		nonTerminals = append(nonTerminals, sym)
	}
	terminals := make([]*symbol.Symbol, 0, len(g.Terminals))
	for _, ch := range g.Terminals {
		sym, err := f.registry.Terminal(ch)
		if err != nil {
			return err
		}
		terminals = append(terminals, sym)
	}
	start, err := f.registry.NonTerminal(g.Start)
	if err != nil {
		return err
	}

	rules := make([]*grammar.Rule, 0, len(g.Rules))
	for _, nr := range g.Rules {
		left, err := f.registry.NonTerminal(nr.Left)
		if err != nil {
			return fmt.Errorf("rule %q -> %q: %w", string(nr.Left), nr.Right, err)
		}
		var right []*symbol.Symbol
		for _, ch := range nr.Right {
			sym, err := f.registry.Symbol(ch)
			if err != nil {
				return fmt.Errorf("rule %q -> %q: %w", string(nr.Left), nr.Right, err)
			}
			right = append(right, sym)
		}
		rules = append(rules, grammar.NewRule(left, right...))
	}

	interned := grammar.New(nonTerminals, terminals, start, rules)
	if err := f.recognizer.Fit(interned); err != nil {
		return err
	}
	f.grammar = interned
	return nil
}

// Predict translates word's characters into opaque symbols — minting a
// fresh terminal on demand for any character not yet known to the
// registry, since an unknown terminal can still yield a meaningful
// "false" answer, the fitted recognizer simply never matches it — and
// forwards the translated word to the wrapped recognizer. A character
// outside the terminal class (an uppercase letter, say) is not minted:
// Predict returns registry.ErrInvalidSymbol for it.
func (f *Facade) Predict(word string) (bool, error) {
	syms := make([]*symbol.Symbol, 0, len(word))
	for _, ch := range word {
		sym, err := f.registry.Terminal(ch)
		if err != nil {
			return false, err
		}
		syms = append(syms, sym)
	}
	return f.recognizer.Predict(syms)
}

// String renders the fitted grammar back to naive form via the facade's
// registry, one rule per line. Used by the CLI's -echo mode. Before Fit
// has been called it reports only the recognizer's class.
func (f *Facade) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("class: %s\n", f.Class()))
	if f.grammar == nil {
		return b.String()
	}
	rendered, err := f.registry.RenderGrammar(f.grammar)
	if err != nil {
		b.WriteString(fmt.Sprintf("<unrenderable: %v>\n", err))
		return b.String()
	}
	b.WriteString(rendered)
	b.WriteString("\n")
	return b.String()
}
