package earley

import (
	"github.com/cnf/structhash"

	"github.com/npillmayer/langrec/grammar"
	"github.com/npillmayer/langrec/symbol"
)

// Item is an Earley situation (rule, dot, origin, current): rule's
// right-hand side prefix up to dot has matched input[origin..current].
// Items are value objects with structural equality, realised here as a
// stable string Key so they can live in package itemset's hashset-backed
// deduplication.
type Item struct {
	rule    *grammar.Rule
	ruleIdx int
	dot     int
	origin  int
	current int
}

// nextSymbol returns the grammar symbol immediately after the dot, or
// nil if the item is complete (the dot has passed the last symbol).
func (it Item) nextSymbol() *symbol.Symbol {
	if it.dot >= len(it.rule.Right) {
		return nil
	}
	return it.rule.Right[it.dot]
}

// complete reports whether the dot has passed the last symbol of rule.
func (it Item) complete() bool {
	return it.dot >= len(it.rule.Right)
}

// advance returns a new item with the dot moved one position to the
// right and current set to pos. It never mutates it.
func (it Item) advance(pos int) Item {
	return Item{rule: it.rule, ruleIdx: it.ruleIdx, dot: it.dot + 1, origin: it.origin, current: pos}
}

// Key gives it a stable, value-based identity: (rule index within the
// fitted grammar, dot, origin, current). Two items with equal fields
// hash to the same key regardless of when or how they were constructed,
// which is what makes package itemset's membership test correct.
func (it Item) Key() string {
	h, err := structhash.Hash(struct {
		Rule    int
		Dot     int
		Origin  int
		Current int
	}{it.ruleIdx, it.dot, it.origin, it.current}, 1)
	if err != nil { // structhash only fails on unhashable types; our struct is plain ints
		panic(err)
	}
	return h
}
