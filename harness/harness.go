/*
Package harness loads a persisted JSON test-corpus format —
{ name → { grammar, grammar_class, tests } } — and runs each named
suite's word list against a recognizer reached through a naive.Facade,
reporting pass/fail counts. It consumes the recognition core through
package naive, never through the recognition packages directly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package harness

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/npillmayer/langrec/naive"
	"github.com/npillmayer/langrec/recognizer"
)

// GrammarSpec is the JSON shape of one suite's grammar.
type GrammarSpec struct {
	NonTerminals string     `json:"non_terminals"`
	Terminals    string     `json:"terminals"`
	Start        string     `json:"start"`
	Rules        []RuleSpec `json:"rules"`
}

// RuleSpec is the JSON shape of one naive rule.
type RuleSpec struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// TestCase is one query word and its expected membership answer.
type TestCase struct {
	Word   string `json:"word"`
	Result bool   `json:"result"`
}

// Suite is one named entry of the JSON corpus: a grammar, an optional
// grammar-class tag, and a list of test cases.
type Suite struct {
	Grammar      GrammarSpec `json:"grammar"`
	GrammarClass *string     `json:"grammar_class"`
	Tests        []TestCase  `json:"tests"`
}

// Corpus is the whole file: suite name to Suite.
type Corpus map[string]Suite

// Load decodes a Corpus from r.
func Load(r io.Reader) (Corpus, error) {
	var c Corpus
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("harness: decoding corpus: %w", err)
	}
	return c, nil
}

// naiveGrammar converts a GrammarSpec to the naive.Grammar package shape.
func (gs GrammarSpec) naiveGrammar() naive.Grammar {
	rules := make([]naive.Rule, 0, len(gs.Rules))
	for _, rs := range gs.Rules {
		var left rune
		for _, ch := range rs.Left {
			left = ch
			break
		}
		rules = append(rules, naive.Rule{Left: left, Right: rs.Right})
	}
	var start rune
	for _, ch := range gs.Start {
		start = ch
		break
	}
	return naive.Grammar{
		NonTerminals: gs.NonTerminals,
		Terminals:    gs.Terminals,
		Start:        start,
		Rules:        rules,
	}
}

// CaseResult is one test case's actual outcome, for reporting.
type CaseResult struct {
	Word     string
	Expected bool
	Got      bool
}

// Passed reports whether the actual result matched expectation.
func (c CaseResult) Passed() bool {
	return c.Expected == c.Got
}

// SuiteResult is the outcome of running one Suite against a recognizer.
type SuiteResult struct {
	Name    string
	Results []CaseResult
}

// Passed counts how many of the suite's test cases matched expectation.
func (sr SuiteResult) Passed() int {
	n := 0
	for _, c := range sr.Results {
		if c.Passed() {
			n++
		}
	}
	return n
}

// Failed returns the test cases that did not match expectation.
func (sr SuiteResult) Failed() []CaseResult {
	var out []CaseResult
	for _, c := range sr.Results {
		if !c.Passed() {
			out = append(out, c)
		}
	}
	return out
}

// Run fits newRecognizer() to suite's grammar and checks every test
// case's word against it, accumulating a SuiteResult. newRecognizer is
// called once per suite so that suites never share recognizer state.
func Run(name string, suite Suite, newRecognizer func() recognizer.Recognizer) (SuiteResult, error) {
	facade := naive.New(newRecognizer())
	if err := facade.Fit(suite.Grammar.naiveGrammar()); err != nil {
		return SuiteResult{}, fmt.Errorf("harness: suite %q: fit: %w", name, err)
	}
	res := SuiteResult{Name: name}
	for _, tc := range suite.Tests {
		got, err := facade.Predict(tc.Word)
		if err != nil {
			return SuiteResult{}, fmt.Errorf("harness: suite %q: predict(%q): %w", name, tc.Word, err)
		}
		res.Results = append(res.Results, CaseResult{Word: tc.Word, Expected: tc.Result, Got: got})
	}
	return res, nil
}

// RunAll runs every suite in c, in map order (callers wanting a stable
// report order should sort corpus.Names() themselves).
func RunAll(c Corpus, newRecognizer func() recognizer.Recognizer) ([]SuiteResult, error) {
	var out []SuiteResult
	for name, suite := range c {
		res, err := Run(name, suite, newRecognizer)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// Names returns the suite names of c.
func (c Corpus) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	return names
}
