/*
Package langrec recognises whether a finite string over a terminal
alphabet belongs to the language of a user-supplied context-free
grammar. It offers two independent recognisers selectable per instance:
an Earley recogniser that accepts any CFG directly, and a CYK recogniser
that first rewrites the grammar into Chomsky Normal Form and then fills
a membership table. Both return a single Boolean per query string.

Package structure is as follows:

■ symbol: nominal identity for grammar symbols (Terminal/NonTerminal).

■ grammar: the CFG data model — Rule and Grammar, with the
value-equality and deterministic ordering needed to use them as map/set
keys.

■ cnf: the Chomsky Normal Form normaliser, a fixed seven-stage pipeline.

■ cyk: the CYK recogniser, built on top of cnf.

■ earley: the Earley recogniser, working directly on any CFG.

■ recognizer: the common Fit/Predict/Class contract both recognisers
implement, plus the shared error taxonomy and grammar-class tag.

■ registry: the bidirectional character↔symbol map, the only place a
symbol is ever given a printable form.

■ naive: the boundary facade accepting string grammars/words, used by
cmd/langrec and cmd/langrec-harness.

■ harness: the JSON test-corpus loader and runner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package langrec
