package engine

import (
	"fmt"

	"github.com/npillmayer/lrtab/table"
)

// Record is a snapshot of one step of a parse run. Slices are copies and
// remain valid after the run.
type Record struct {
	Step       int               // 1-based, increasing
	States     []int             // state stack, bottom first
	Symbols    []table.Symbol    // symbol stack, bottom first
	Production *table.Production // the production reduced in this step, nil for shift and initial steps
	Remaining  []table.Symbol    // unconsumed input, including the end marker
	Action     table.Action      // action of this step; the error action for the initial record
}

// Sink receives the records of a parse run, one per step and in order.
type Sink interface {
	Emit(Record)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Record)

// Emit calls f(r).
func (f SinkFunc) Emit(r Record) {
	f(r)
}

// discard is used in place of a nil sink.
type discard struct{}

func (discard) Emit(Record) {}

// Verdict is the state of a parse run.
type Verdict int

// A run starts as Running and ends as Accepted, Rejected or Fatal.
const (
	Running Verdict = iota
	Accepted
	Rejected
	Fatal
)

func (v Verdict) String() string {
	switch v {
	case Running:
		return "running"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	}
	return "fatal"
}

// Result is the outcome of a parse run.
type Result struct {
	Verdict    Verdict
	Steps      int          // number of records emitted
	Shifts     int          // shift actions performed, equals the input cursor
	Reductions int          // reduce actions performed
	State      int          // state on top of the stack when the run ended
	Terminal   table.Symbol // current terminal when the run ended; null if the input is exhausted
	Last       Record       // the last record emitted
	Err        error        // a *FatalError for fatal runs, nil otherwise
}

// Accepted is true if the input has been accepted.
func (r Result) Accepted() bool {
	return r.Verdict == Accepted
}

func (r Result) String() string {
	switch r.Verdict {
	case Accepted:
		return fmt.Sprintf("accepted after %d steps", r.Steps)
	case Rejected:
		if r.Terminal.IsNull() {
			return fmt.Sprintf("rejected: input exhausted in state %d", r.State)
		}
		return fmt.Sprintf("rejected: no action for (state %d, terminal %q)", r.State, r.Terminal.Char)
	case Fatal:
		return fmt.Sprintf("fatal: %v", r.Err)
	}
	return "running"
}
