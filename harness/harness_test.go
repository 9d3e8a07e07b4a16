package harness

import (
	"strings"
	"testing"

	"github.com/npillmayer/langrec/cyk"
	"github.com/npillmayer/langrec/recognizer"
)

const dyckCorpus = `{
  "dyck-one": {
    "grammar": {
      "non_terminals": "S",
      "terminals": "()",
      "start": "S",
      "rules": [
        {"left": "S", "right": "(S)S"},
        {"left": "S", "right": ""}
      ]
    },
    "grammar_class": null,
    "tests": [
      {"word": "()(())", "result": true},
      {"word": "", "result": true},
      {"word": ")", "result": false},
      {"word": "()(", "result": false}
    ]
  }
}`

func TestLoadAndRunCorpus(t *testing.T) {
	corpus, err := Load(strings.NewReader(dyckCorpus))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	suite, ok := corpus["dyck-one"]
	if !ok {
		t.Fatalf("corpus missing suite 'dyck-one'")
	}
	result, err := Run("dyck-one", suite, func() recognizer.Recognizer { return cyk.New() })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Failed()) != 0 {
		t.Errorf("expected all cases to pass, failed: %+v", result.Failed())
	}
	if result.Passed() != len(suite.Tests) {
		t.Errorf("Passed() = %d, want %d", result.Passed(), len(suite.Tests))
	}
}
