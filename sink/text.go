package sink

import (
	"fmt"
	"io"

	"github.com/npillmayer/lrtab/engine"
)

// DefaultColumnWidth is the width of the columns of a Text sink.
const DefaultColumnWidth = 20

// Columns of a trace table.
var headers = []string{"Step", "State stack", "Symbol stack", "Production", "Input"}

// Text is a sink writing a plain text table, one line per step. Columns are
// left aligned. The header is written with the first record.
type Text struct {
	W      io.Writer
	Width  int
	header bool
	err    error
}

var _ engine.Sink = (*Text)(nil)

// NewText creates a text sink writing to w.
func NewText(w io.Writer) *Text {
	return &Text{W: w, Width: DefaultColumnWidth}
}

// Emit is part of the engine.Sink interface.
func (t *Text) Emit(rec engine.Record) {
	if !t.header {
		t.header = true
		t.line(headers)
	}
	t.line(Row(rec))
}

// Verdict writes the result of a run as a last line.
func (t *Text) Verdict(res engine.Result) {
	t.printf("%s\n", Verdict(res))
}

// Err returns the first write error, if any.
func (t *Text) Err() error {
	return t.err
}

func (t *Text) line(cols []string) {
	w := t.Width
	if w <= 0 {
		w = DefaultColumnWidth
	}
	last := len(cols) - 1
	for _, col := range cols[:last] {
		t.printf("%-*s", w, col)
	}
	t.printf("%s\n", cols[last])
}

func (t *Text) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.W, format, args...)
}

// Row returns the columns of a record as strings.
func Row(rec engine.Record) []string {
	return []string{
		fmt.Sprintf("%d", rec.Step),
		StateStack(rec.States),
		Symbols(rec.Symbols),
		ProductionText(rec.Production),
		Symbols(rec.Remaining),
	}
}
