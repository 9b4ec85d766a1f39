/*
Package table holds the compiled facts of a grammar: an alphabet of
terminal and non-terminal symbols, the numbered productions, and the
ACTION and GOTO tables of an LR parser.

Tables are not computed from a grammar here; clients supply them, usually
through package loader. Tables are populated once with a Builder and are
read-only afterwards, so one table may serve any number of parse runs
concurrently.

Example:

    b := table.NewBuilder("parens")
    b.Terminals('(', ')', 'a', '#')
    b.NonTerminals('S')
    b.Production("S->(S)")                            // 1
    b.Production("S->a")                              // 2
    b.MaxState(5)
    b.SetAction(0, '(', table.Shift(2))
    b.SetAction(0, 'a', table.Shift(3))
    b.SetGoto(0, 'S', 1)
    …
    t, err := b.Table()

Symbols are interned to dense 1-based indices per kind. All lookups are
bounds-checked and report a *RangeError for indices outside of the table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package table

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrtab.table'.
func tracer() tracing.Trace {
	return tracing.Select("lrtab.table")
}
