/*
Command langrec-harness runs a JSON test-corpus file against a
selectable recognizer and reports pass/fail counts per suite.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/langrec/cyk"
	"github.com/npillmayer/langrec/earley"
	"github.com/npillmayer/langrec/harness"
	"github.com/npillmayer/langrec/recognizer"
)

func tracer() tracing.Trace {
	return tracing.Select("langrec.harness")
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	path := flag.String("json", "", "path to a JSON test corpus file")
	which := flag.String("recognizer", "earley", "recognizer to exercise: earley|cyk")
	tlevel := flag.String("trace", "Info", "trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	if *path == "" {
		pterm.Error.Println("missing -json <corpus file>")
		os.Exit(2)
	}
	f, err := os.Open(*path)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	defer f.Close()

	corpus, err := harness.Load(f)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	newRecognizer, err := recognizerFactory(*which)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}

	names := corpus.Names()
	sort.Strings(names)

	tableData := pterm.TableData{{"suite", "passed", "total", "status"}}
	allPassed := true
	for _, name := range names {
		result, err := harness.Run(name, corpus[name], newRecognizer)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		status := "OK"
		if failed := result.Failed(); len(failed) > 0 {
			status = fmt.Sprintf("FAIL (%d)", len(failed))
			allPassed = false
			for _, c := range failed {
				tracer().Errorf("suite %q: word %q: expected %v, got %v", name, c.Word, c.Expected, c.Got)
			}
		}
		tableData = append(tableData, []string{
			name,
			fmt.Sprintf("%d", result.Passed()),
			fmt.Sprintf("%d", len(result.Results)),
			status,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()

	if !allPassed {
		os.Exit(1)
	}
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
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
