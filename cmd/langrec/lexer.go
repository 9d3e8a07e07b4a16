package main

import (
	"fmt"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token kinds produced while tokenizing a single "X -> α" rule-production
// line at the CLI boundary: an arrow token vs. a symbol-run, not a
// hand-rolled string split.
const (
	tokArrow = iota
	tokSymbol
)

// ruleLexer compiles a lexmachine DFA recognising an arrow token ("->")
// and single-character symbol tokens, skipping spaces between them.
// Maximal-munch resolves the only ambiguity that matters here: the
// terminal alphabet includes '-' but never '>', so "->" only ever
// tokenizes as the arrow.
func newRuleLexer() (*lexmachine.Lexer, error) {
	lex := lexmachine.NewLexer()
	lex.Add([]byte(`\-\>`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(tokArrow, string(m.Bytes), m), nil
	})
	lex.Add([]byte(` `), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return nil, nil // skip whitespace between tokens
	})
	lex.Add([]byte(`.`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(tokSymbol, string(m.Bytes), m), nil
	})
	if err := lex.Compile(); err != nil {
		return nil, fmt.Errorf("compiling rule lexer: %w", err)
	}
	return lex, nil
}

// parseRuleLine tokenizes "X -> α" into the left-hand character and the
// right-hand side string. α may be empty (an epsilon-production).
func parseRuleLine(lex *lexmachine.Lexer, line string) (left rune, right string, err error) {
	scan, err := lex.Scanner([]byte(line))
	if err != nil {
		return 0, "", fmt.Errorf("scanning rule line %q: %w", line, err)
	}
	var toks []*lexmachine.Token
	for {
		tok, err, eof := scan.Next()
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				scan.TC = ui.FailTC
				continue
			}
			return 0, "", fmt.Errorf("tokenizing rule line %q: %w", line, err)
		}
		if eof {
			break
		}
		toks = append(toks, tok.(*lexmachine.Token))
	}
	if len(toks) < 2 || toks[0].Type != tokSymbol || toks[1].Type != tokArrow {
		return 0, "", fmt.Errorf("malformed rule line %q, want \"X -> α\"", line)
	}
	leftRunes := []rune(string(toks[0].Lexeme))
	if len(leftRunes) != 1 {
		return 0, "", fmt.Errorf("malformed rule line %q: left-hand side must be a single character", line)
	}
	var b strings.Builder
	for _, t := range toks[2:] {
		if t.Type != tokSymbol {
			return 0, "", fmt.Errorf("malformed rule line %q", line)
		}
		b.WriteString(string(t.Lexeme))
	}
	return leftRunes[0], b.String(), nil
}
