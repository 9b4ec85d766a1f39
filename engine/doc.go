/*
Package engine provides a table-driven shift-reduce parser. Clients supply a
grammar table (see package table) holding the productions and the ACTION and
GOTO tables; the parser does not construct tables itself.

The parser analyses a sequence of terminals and decides whether it is a
sentence of the grammar. Every step of the analysis is reported to a Sink as
a Record: the state stack, the symbol stack, the production applied (if
any), and the remaining input.

Usage

    t, err := loader.LoadFile("parens.toml")
    p := engine.New(t)
    input := engine.WithEndMarker(terminals, t)
    result := p.Run(input, sink.NewText(os.Stdout))
    if result.Verdict == engine.Accepted { … }

A run ends in one of three ways: Accepted, Rejected (the ACTION table
returned an error entry, i.e. the input is not in the language), or Fatal.
Fatal runs are caused by defects of a table, such as an undefined GOTO entry
reached by a reduce, or a lookup outside of the table. Rejection is a normal
outcome and is not reported as an error.

Runs are synchronous. Each run owns its parser stack, so one Parser (and
one table) may be used by several goroutines at once.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrtab.engine'.
func tracer() tracing.Trace {
	return tracing.Select("lrtab.engine")
}
