/*
Package recognizer defines the common contract every membership
recogniser in this module implements, plus the shared error taxonomy and
grammar-class tag.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package recognizer

import (
	"errors"

	"github.com/npillmayer/langrec/grammar"
	"github.com/npillmayer/langrec/symbol"
)

// ErrNotFit is returned by Predict when called before Fit.
var ErrNotFit = errors.New("recognizer: Predict called before Fit")

// ErrGrammarClassMismatch is reserved for recognisers that refuse a
// grammar outside the class they accept. Neither Earley nor CYK use it —
// both accept any context-free grammar — but the taxonomy is fixed here
// for future LR recognisers that would.
var ErrGrammarClassMismatch = errors.New("recognizer: grammar outside accepted class")

// GrammarClass names the broadest grammar class a recogniser accepts,
// ordered CF ≥ LR(k) ≥ LR(1) ≥ LR(0). The tag is informational: it does
// not restrict what Fit accepts.
type GrammarClass int

const (
	// ClassUnknown is the zero value, used before a class is known.
	ClassUnknown GrammarClass = iota
	// ClassLR0 names LR(0) grammars.
	ClassLR0
	// ClassLR1 names LR(1) grammars.
	ClassLR1
	// ClassLRk names LR(k) grammars for some fixed k.
	ClassLRk
	// ClassContextFree names the full class of context-free grammars.
	ClassContextFree
)

func (c GrammarClass) String() string {
	switch c {
	case ClassLR0:
		return "LR(0)"
	case ClassLR1:
		return "LR(1)"
	case ClassLRk:
		return "LR(k)"
	case ClassContextFree:
		return "Context-free"
	default:
		return "Unknown"
	}
}

// AtLeast reports whether c accepts at least as broad a class as other
// (c ≥ other in the CF ≥ LR(k) ≥ LR(1) ≥ LR(0) ordering).
func (c GrammarClass) AtLeast(other GrammarClass) bool {
	return c >= other
}

// Recognizer is the common contract: fit a grammar, then answer
// membership queries against it. Fit and Predict must not be called
// concurrently on the same instance — callers sharing a recogniser
// across goroutines must serialise externally.
type Recognizer interface {
	// Fit prepares the recogniser for the given grammar. The recogniser
	// takes a logical copy for its own purposes; the caller's grammar is
	// left untouched once Fit returns (even though some recognisers, like
	// cnf.Normalize, mutate a grammar in place internally — that mutation
	// never reaches the caller's original, only the recogniser's copy).
	Fit(g *grammar.Grammar) error

	// Predict reports whether word is a member of the language of the
	// grammar most recently passed to Fit. Calling Predict before Fit
	// returns ErrNotFit.
	Predict(word []*symbol.Symbol) (bool, error)

	// Class names the broadest grammar class this recogniser accepts.
	Class() GrammarClass
}
