/*
Package registry implements the symbol registry: a bidirectional map
between printable characters and symbol identities. It is the only place
in this module where a grammar symbol is given — or asked for — a
printable form; the recognition core (grammar, cnf, cyk, earley) never
imports this package and never inspects a symbol's printable name.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package registry

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/exp/slices"

	"github.com/npillmayer/langrec/grammar"
	"github.com/npillmayer/langrec/symbol"
)

// ErrInvalidSymbol is returned when a character falls outside the
// recognised terminal/non-terminal classes.
var ErrInvalidSymbol = errors.New("invalid grammar symbol")

// ErrUnknownIdentity is returned when the registry is asked to render a
// symbol it never minted.
var ErrUnknownIdentity = errors.New("registry does not own this identity")

// terminalPunctuation is the set of non-alphanumeric characters allowed
// as terminals.
const terminalPunctuation = "()+-*/"

// IsTerminalChar reports whether ch belongs to the terminal character
// class: lowercase letters, digits, and the characters ()+-*/.
func IsTerminalChar(ch rune) bool {
	return unicode.IsLower(ch) || unicode.IsDigit(ch) || strings.ContainsRune(terminalPunctuation, ch)
}

// IsNonTerminalChar reports whether ch belongs to the non-terminal
// character class: uppercase letters.
func IsNonTerminalChar(ch rune) bool {
	return unicode.IsUpper(ch)
}

// Registry is a bidirectional map between characters and symbol
// identities. Once a character is seen, subsequent occurrences resolve
// to the same symbol — minting is idempotent per character.
type Registry struct {
	charToSymbol map[rune]*symbol.Symbol
	symbolToChar map[*symbol.Symbol]rune
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		charToSymbol: make(map[rune]*symbol.Symbol),
		symbolToChar: make(map[*symbol.Symbol]rune),
	}
}

func (r *Registry) add(ch rune, sym *symbol.Symbol) {
	r.charToSymbol[ch] = sym
	r.symbolToChar[sym] = ch
}

// Terminal resolves ch to a Terminal symbol, minting one on first sight.
// It is a usage error (ErrInvalidSymbol) to ask for a character outside
// the terminal class.
func (r *Registry) Terminal(ch rune) (*symbol.Symbol, error) {
	if !IsTerminalChar(ch) {
		return nil, fmt.Errorf("%q is not a valid terminal character: %w", ch, ErrInvalidSymbol)
	}
	if sym, ok := r.charToSymbol[ch]; ok {
		return sym, nil
	}
	sym := symbol.NewTerminal()
	r.add(ch, sym)
	return sym, nil
}

// NonTerminal resolves ch to a NonTerminal symbol, minting one on first
// sight. It is a usage error (ErrInvalidSymbol) to ask for a character
// outside the non-terminal class.
func (r *Registry) NonTerminal(ch rune) (*symbol.Symbol, error) {
	if !IsNonTerminalChar(ch) {
		return nil, fmt.Errorf("%q is not a valid non-terminal character: %w", ch, ErrInvalidSymbol)
	}
	if sym, ok := r.charToSymbol[ch]; ok {
		return sym, nil
	}
	sym := symbol.NewNonTerminal()
	r.add(ch, sym)
	return sym, nil
}

// Symbol resolves ch to whichever kind of symbol its character class
// implies, minting one on first sight.
func (r *Registry) Symbol(ch rune) (*symbol.Symbol, error) {
	switch {
	case IsTerminalChar(ch):
		return r.Terminal(ch)
	case IsNonTerminalChar(ch):
		return r.NonTerminal(ch)
	default:
		return nil, fmt.Errorf("%q is not a recognised grammar symbol: %w", ch, ErrInvalidSymbol)
	}
}

// IsKnown reports whether ch has already been resolved to a symbol.
func (r *Registry) IsKnown(ch rune) bool {
	_, ok := r.charToSymbol[ch]
	return ok
}

// CharOf returns the character a symbol was minted for. It fails with
// ErrUnknownIdentity if the registry never minted sym.
func (r *Registry) CharOf(sym *symbol.Symbol) (rune, error) {
	ch, ok := r.symbolToChar[sym]
	if !ok {
		return 0, fmt.Errorf("symbol %v: %w", sym, ErrUnknownIdentity)
	}
	return ch, nil
}

// RenderRule renders a single rule back to naive ("X -> α") form. Every
// symbol in rule must have been minted by r.
func (r *Registry) RenderRule(rule *grammar.Rule) (string, error) {
	left, err := r.CharOf(rule.Left)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteRune(left)
	b.WriteString(" -> ")
	for _, sym := range rule.Right {
		ch, err := r.CharOf(sym)
		if err != nil {
			return "", err
		}
		b.WriteRune(ch)
	}
	return b.String(), nil
}

// RenderGrammar renders every rule of g back to naive form, one per line,
// sorted for stable output. This backs the facade's pretty-printing (the
// CLI's -echo mode); it is the only place a grammar's
// rules are ever shown with their original characters instead of opaque
// symbol serials.
func (r *Registry) RenderGrammar(g *grammar.Grammar) (string, error) {
	rules := g.RuleList()
	rendered := make([]string, 0, len(rules))
	for _, rule := range rules {
		s, err := r.RenderRule(rule)
		if err != nil {
			return "", err
		}
		rendered = append(rendered, s)
	}
	slices.Sort(rendered)
	return strings.Join(rendered, "\n"), nil
}
