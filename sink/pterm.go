package sink

import (
	"github.com/pterm/pterm"

	"github.com/npillmayer/lrtab/engine"
)

// PTerm is a sink collecting rows for a terminal table. Call Render after
// the run.
type PTerm struct {
	data pterm.TableData
}

var _ engine.Sink = (*PTerm)(nil)

// NewPTerm creates an empty pterm sink.
func NewPTerm() *PTerm {
	p := &PTerm{}
	p.Reset()
	return p
}

// Emit is part of the engine.Sink interface.
func (p *PTerm) Emit(rec engine.Record) {
	p.data = append(p.data, Row(rec))
}

// Data returns the table rows, header first.
func (p *PTerm) Data() pterm.TableData {
	return p.data
}

// Reset drops all rows except the header.
func (p *PTerm) Reset() {
	p.data = pterm.TableData{headers}
}

// Render prints the table and the verdict of a run to the terminal.
func (p *PTerm) Render(res engine.Result) {
	pterm.DefaultTable.WithHasHeader().WithData(p.data).Render()
	switch res.Verdict {
	case engine.Accepted:
		pterm.Success.Println(Verdict(res))
	case engine.Rejected:
		pterm.Warning.Println(Verdict(res))
	default:
		pterm.Error.Println(Verdict(res))
	}
}
