package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/lrtab/table"
)

var (
	// ErrGotoUndefined is reported when a reduce step hits a GOTO cell
	// without a transition.
	ErrGotoUndefined = errors.New("goto undefined")

	// ErrStepLimit is reported when a run exceeds the step limit of a parser.
	ErrStepLimit = errors.New("step limit exceeded")

	// ErrNotInitialized is reported by parsers without a table.
	ErrNotInitialized = errors.New("parser not initialized")
)

// FatalError describes a table defect which aborted a parse run. The stacks
// are those of the last valid step.
type FatalError struct {
	Err         error          // ErrGotoUndefined, ErrStepLimit or a *table.RangeError
	Step        int            // step that failed
	States      []int          // state stack, bottom first
	Symbols     []table.Symbol // symbol stack, bottom first
	Terminal    table.Symbol   // current terminal
	NonTerminal table.Symbol   // LHS of the failing GOTO lookup, if any
	GotoState   int            // state of the failing GOTO lookup, if any
}

func (e *FatalError) Error() string {
	var b strings.Builder
	if errors.Is(e.Err, ErrGotoUndefined) {
		fmt.Fprintf(&b, "GOTO(%d, %s) undefined", e.GotoState, e.NonTerminal)
	} else {
		b.WriteString(e.Err.Error())
	}
	fmt.Fprintf(&b, " at step %d, stack %v", e.Step, e.States)
	if !e.Terminal.IsNull() {
		fmt.Fprintf(&b, ", terminal %q", e.Terminal.Char)
	}
	return b.String()
}

// Unwrap makes FatalError match its cause.
func (e *FatalError) Unwrap() error {
	return e.Err
}
