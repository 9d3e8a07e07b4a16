package registry

import (
	"errors"
	"testing"

	"github.com/npillmayer/langrec/grammar"
)

func TestStableIdentityPerCharacter(t *testing.T) {
	r := New()
	a1, err := r.Terminal('a')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a2, err := r.Terminal('a')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a1 != a2 {
		t.Errorf("expected repeated resolution of 'a' to return the same symbol")
	}
}

func TestInvalidCharacterClass(t *testing.T) {
	r := New()
	if _, err := r.Symbol('!'); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("expected ErrInvalidSymbol for '!', got %v", err)
	}
	if _, err := r.Terminal('A'); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("expected ErrInvalidSymbol asking for 'A' as a terminal")
	}
}

func TestCharOfUnknownIdentity(t *testing.T) {
	r := New()
	other := New()
	sym, err := other.NonTerminal('S')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.CharOf(sym); !errors.Is(err, ErrUnknownIdentity) {
		t.Errorf("expected ErrUnknownIdentity for a symbol from a different registry")
	}
}

func TestRenderRuleRoundTrip(t *testing.T) {
	r := New()
	s, _ := r.NonTerminal('S')
	a, _ := r.Terminal('a')
	rule := grammar.NewRule(s, s, a)
	out, err := r.RenderRule(rule)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "S -> Sa" {
		t.Errorf("expected %q, got %q", "S -> Sa", out)
	}
}
