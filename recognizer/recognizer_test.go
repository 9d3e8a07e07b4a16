package recognizer

import "testing"

func TestGrammarClassString(t *testing.T) {
	cases := map[GrammarClass]string{
		ClassUnknown:     "Unknown",
		ClassLR0:         "LR(0)",
		ClassLR1:         "LR(1)",
		ClassLRk:         "LR(k)",
		ClassContextFree: "Context-free",
	}
	for class, want := range cases {
		if got := class.String(); got != want {
			t.Errorf("GrammarClass(%d).String() = %q, want %q", class, got, want)
		}
	}
}

func TestGrammarClassAtLeast(t *testing.T) {
	if !ClassContextFree.AtLeast(ClassLR0) {
		t.Errorf("ClassContextFree should be at least as broad as ClassLR0")
	}
	if ClassLR0.AtLeast(ClassContextFree) {
		t.Errorf("ClassLR0 should not be at least as broad as ClassContextFree")
	}
	if !ClassLR1.AtLeast(ClassLR1) {
		t.Errorf("a class should be at least as broad as itself")
	}
}
