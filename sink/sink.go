/*
Package sink provides receivers for the trace records of parse runs.

Sinks own all rendering of a trace; the parse engine only reports records.
Available sinks are:

■ Recorder collects records in memory.

■ Text writes a table of plain text to an io.Writer, one line per step.

■ PTerm collects rows and renders them as a pterm table on the terminal.

■ Tracer writes records to the tracing key 'lrtab.engine'.

Tee fans out records to several sinks.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sink

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/lrtab/engine"
	"github.com/npillmayer/lrtab/table"
)

// Recorder is a sink collecting all records of a run.
type Recorder struct {
	records []engine.Record
}

var _ engine.Sink = (*Recorder)(nil)

// Emit is part of the engine.Sink interface.
func (r *Recorder) Emit(rec engine.Record) {
	r.records = append(r.records, rec)
}

// Records returns the records collected so far.
func (r *Recorder) Records() []engine.Record {
	return r.records
}

// Reset drops all records, so the recorder may be used for another run.
// Slices returned by Records before stay untouched.
func (r *Recorder) Reset() {
	r.records = nil
}

// Tee returns a sink which emits each record to all of sinks, in order.
func Tee(sinks ...engine.Sink) engine.Sink {
	return engine.SinkFunc(func(rec engine.Record) {
		for _, s := range sinks {
			if s != nil {
				s.Emit(rec)
			}
		}
	})
}

// Tracer returns a sink which traces records with level Info.
func Tracer() engine.Sink {
	return engine.SinkFunc(func(rec engine.Record) {
		tracing.Select("lrtab.engine").Infof("%3d | %-12s | %-12s | %-8s | %s", rec.Step,
			StateStack(rec.States), Symbols(rec.Symbols), ProductionText(rec.Production),
			Symbols(rec.Remaining))
	})
}

// --- Formatting ------------------------------------------------------------

// StateStack formats a state stack, bottom first, by concatenating the
// states. States with more than one digit are put in parentheses to keep
// them apart: [0 10 3] becomes "0(10)3".
func StateStack(states []int) string {
	var b strings.Builder
	for _, s := range states {
		if s > 9 || s < 0 {
			fmt.Fprintf(&b, "(%d)", s)
		} else {
			fmt.Fprintf(&b, "%d", s)
		}
	}
	return b.String()
}

// Symbols formats a sequence of symbols by concatenating their characters.
func Symbols(syms []table.Symbol) string {
	var b strings.Builder
	for _, sym := range syms {
		b.WriteRune(sym.Char)
	}
	return b.String()
}

// ProductionText returns the text of a production, or "" for nil.
func ProductionText(p *table.Production) string {
	if p == nil {
		return ""
	}
	return p.Text
}

// Verdict returns a user-facing message for the outcome of a run.
func Verdict(res engine.Result) string {
	switch res.Verdict {
	case engine.Accepted:
		return "grammar accepts the input"
	case engine.Rejected:
		if res.Terminal.IsNull() {
			return fmt.Sprintf("grammar rejects the input: input exhausted in state %d", res.State)
		}
		return fmt.Sprintf("grammar rejects the input: no action for state %d and terminal %q",
			res.State, res.Terminal.Char)
	case engine.Fatal:
		return fmt.Sprintf("table defect: %v", res.Err)
	}
	return "parse run did not finish"
}
