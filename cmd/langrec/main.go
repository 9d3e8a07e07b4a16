/*
Command langrec is a stdin-driven interactive recognizer loop: one test
per round, `Yes`/`No` printed per query word, with an -infinite flag
that simply repeats rounds until input is exhausted.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/timtadh/lexmachine"

	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/langrec/cyk"
	"github.com/npillmayer/langrec/earley"
	"github.com/npillmayer/langrec/naive"
	"github.com/npillmayer/langrec/recognizer"
)

func tracer() tracing.Trace {
	return tracing.Select("langrec.cli")
}

// errEOF signals that the input stream is exhausted between rounds; it
// is not reported as an error to the user, just a stop condition.
var errEOF = errors.New("langrec: input exhausted")

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	which := flag.String("recognizer", "earley", "recognizer to use: earley|cyk")
	tlevel := flag.String("trace", "Info", "trace level [Debug|Info|Error]")
	infinite := flag.Bool("infinite", false, "repeat rounds until input is exhausted")
	echo := flag.Bool("echo", false, "echo the parsed grammar and label each prediction, to stderr")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	newRecognizer, err := recognizerFactory(*which)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}

	lex, err := newRuleLexer()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	rl, err := readline.New("")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	defer rl.Close()
	in := &lineReader{rl: rl}

	for {
		if err := runRound(in, lex, newRecognizer, *echo); err != nil {
			if errors.Is(err, errEOF) {
				break
			}
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		if !*infinite {
			break
		}
	}
}

// runRound reads and answers exactly one round of the line protocol:
// sizes, non-terminal/terminal alphabets, rule lines, start symbol, word
// count, and that many query words, printing "Yes"/"No" per word to
// stdout. Diagnostic chrome (the echoed grammar, prediction labels under
// -echo) goes to stderr only, so stdout stays pure protocol output.
// Malformed input is a programmer error in this tool — it is not caught
// and reported gracefully mid-round.
func runRound(in *lineReader, lex *lexmachine.Lexer, newRecognizer func() recognizer.Recognizer, echo bool) error {
	sizes, err := in.next()
	if err != nil {
		return err
	}
	fields := strings.Fields(sizes)
	if len(fields) != 3 {
		return fmt.Errorf("langrec: line 1 must be \"|N| |T| |R|\", got %q", sizes)
	}
	numRules, err := strconv.Atoi(fields[2])
	if err != nil {
		return fmt.Errorf("langrec: invalid rule count %q: %w", fields[2], err)
	}

	nonTerminals, err := in.next()
	if err != nil {
		return err
	}
	terminals, err := in.next()
	if err != nil {
		return err
	}

	g := naive.Grammar{NonTerminals: nonTerminals, Terminals: terminals}
	for i := 0; i < numRules; i++ {
		line, err := in.next()
		if err != nil {
			return err
		}
		left, right, err := parseRuleLine(lex, line)
		if err != nil {
			return err
		}
		g.Rules = append(g.Rules, naive.Rule{Left: left, Right: right})
	}

	startLine, err := in.next()
	if err != nil {
		return err
	}
	startRunes := []rune(strings.TrimSpace(startLine))
	if len(startRunes) != 1 {
		return fmt.Errorf("langrec: start symbol line must be a single character, got %q", startLine)
	}
	g.Start = startRunes[0]

	facade := naive.New(newRecognizer())
	if err := facade.Fit(g); err != nil {
		return fmt.Errorf("langrec: fitting grammar: %w", err)
	}
	if echo {
		pterm.Info.Println(facade.String())
	}

	wordsLine, err := in.next()
	if err != nil {
		return err
	}
	numWords, err := strconv.Atoi(strings.TrimSpace(wordsLine))
	if err != nil {
		return fmt.Errorf("langrec: invalid word count %q: %w", wordsLine, err)
	}

	for i := 0; i < numWords; i++ {
		word, err := in.next()
		if err != nil {
			return err
		}
		accept, err := facade.Predict(word)
		if err != nil {
			return fmt.Errorf("langrec: predicting %q: %w", word, err)
		}
		if echo {
			pterm.Info.Printf("%q -> %v\n", word, accept)
		}
		if accept {
			fmt.Println("Yes")
		} else {
			fmt.Println("No")
		}
	}
	return nil
}

// lineReader wraps a readline.Instance, translating any read error from
// it (io.EOF included) into the package's errEOF sentinel so runRound's
// callers can tell "stop
// looping" apart from "input malformed mid-round".
type lineReader struct {
	rl *readline.Instance
}

func (l *lineReader) next() (string, error) {
	line, err := l.rl.Readline()
	if err != nil {
		return "", errEOF
	}
	return line, nil
}

func recognizerFactory(which string) (func() recognizer.Recognizer, error) {
	switch which {
	case "earley":
		return func() recognizer.Recognizer { return earley.New() }, nil
	case "cyk":
		return func() recognizer.Recognizer { return cyk.New() }, nil
	default:
		return nil, fmt.Errorf("unknown recognizer %q (want earley|cyk)", which)
	}
}

func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
