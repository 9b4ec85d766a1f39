package engine

import (
	"fmt"

	"github.com/npillmayer/lrtab/table"
)

// Parser is a table-driven shift-reduce parser. Create one with engine.New(...).
// A Parser holds no state of its own between runs.
type Parser struct {
	T       *table.Table // grammar table
	limit   int          // maximum number of steps, 0 = unlimited
	panicky bool         // panic on table defects
}

// Option configures a parser.
type Option func(p *Parser)

// StepLimit limits the number of trace records of a run, the initial record
// included. A run which would emit more ends as Fatal with ErrStepLimit. A
// limit of 0 means no limit, which is the default. A well-formed table emits
// at most 1 + #shifts + #reductions records.
func StepLimit(n int) Option {
	return func(p *Parser) {
		if n < 0 {
			n = 0
		}
		p.limit = n
	}
}

// PanicOnDefect lets a parser panic on table defects instead of returning a
// fatal result. This helps with a post-mortem when debugging tables.
func PanicOnDefect(b bool) Option {
	return func(p *Parser) {
		p.panicky = b
	}
}

// New creates a parser for a grammar table.
func New(t *table.Table, opts ...Option) *Parser {
	p := &Parser{T: t}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithEndMarker returns tokens with the end marker of t appended, if it is not
// already the last token.
func WithEndMarker(tokens []table.Symbol, t *table.Table) []table.Symbol {
	end := t.EndMarker()
	if len(tokens) > 0 && tokens[len(tokens)-1] == end {
		return tokens
	}
	r := make([]table.Symbol, len(tokens), len(tokens)+1)
	copy(r, tokens)
	return append(r, end)
}

// run is the state of one parse run.
type run struct {
	p       *Parser
	stack   stack
	input   []table.Symbol
	cursor  int // only moves forward
	step    int
	shifts  int
	reduces int
	sink    Sink
	last    Record
	emitted int
}

// Run analyses a sequence of terminals. The input should end with the
// grammar's end marker (see WithEndMarker); the parser does not add it.
// Every step is reported to sink, starting with the initial configuration;
// sink may be nil. The run ends when the ACTION table says accept or error,
// when the input is exhausted, or on a table defect.
//
// This is an implementation of Algorithm 4.44, "LR-parsing algorithm", from
// the purple dragon book.
func (p *Parser) Run(tokens []table.Symbol, sink Sink) Result {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p == nil || p.T == nil {
		tracer().Errorf("parser not initialized")
		return Result{Verdict: Fatal, Err: &FatalError{Err: ErrNotInitialized}}
	}
	if sink == nil {
		sink = discard{}
	}
	r := &run{
		p:     p,
		stack: newStack(p.T.EndMarker()),
		input: tokens,
		sink:  sink,
		step:  1,
	}
	r.emit(nil, table.NoAction)
	for {
		r.step++
		state := r.stack.tos().state
		if r.cursor >= len(r.input) {
			tracer().Infof("input exhausted in state %d", state)
			return r.result(Rejected, table.Symbol{})
		}
		terminal := r.input[r.cursor]
		action, err := p.T.Action(state, terminal)
		if err != nil {
			return r.fatal(err, nil)
		}
		tracer().Debugf("action(%d,%s)=%s", state, terminal, action)
		switch action.Kind {
		case table.ShiftAction:
			if r.exhausted() {
				return r.fatal(ErrStepLimit, nil)
			}
			r.stack.push(action.Operand, terminal)
			r.cursor++
			r.shifts++
			r.emit(nil, action)
		case table.ReduceAction:
			if r.exhausted() {
				return r.fatal(ErrStepLimit, nil)
			}
			if res, failed := r.reduce(action); failed {
				return res
			}
		case table.AcceptAction:
			tracer().Infof("accept after %d steps", r.emitted)
			return r.result(Accepted, terminal)
		default:
			tracer().Infof("error entry for (state %d, terminal %s)", state, terminal)
			return r.result(Rejected, terminal)
		}
	}
}

// reduce performs a reduce action for a production
//
//    LHS --> X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn are represented on the stack as
//
//    [TOS]  (Sn, Xn) ... (S1, X1)  ...
//
// The GOTO lookup is done before the stack is modified, so the stack remains
// valid if it fails. Epsilon productions pop nothing.
func (r *run) reduce(action table.Action) (Result, bool) {
	prod, err := r.p.T.Production(action.Operand)
	if err != nil {
		return r.fatal(err, nil), true
	}
	tracer().Infof("reduce %v", prod)
	if prod.RHSLen > r.stack.depth()-1 {
		err := fmt.Errorf("reduce %s: stack depth %d: %w", prod, r.stack.depth()-1,
			&table.RangeError{Dimension: "stack depth", Index: prod.RHSLen, Min: 0, Max: r.stack.depth() - 1})
		return r.fatal(err, nil), true
	}
	exposed := r.stack.below(prod.RHSLen).state
	next, err := r.p.T.Goto(exposed, prod.LHS)
	if err != nil {
		return r.fatal(err, &prod), true
	}
	if next == table.NoTransition {
		return r.fatal(ErrGotoUndefined, &prod), true
	}
	if next < 0 || next > r.p.T.MaxState() {
		err := fmt.Errorf("GOTO(%d, %s) = %d: %w", exposed, prod.LHS, next,
			&table.RangeError{Dimension: "state", Index: next, Min: 0, Max: r.p.T.MaxState()})
		return r.fatal(err, &prod), true
	}
	r.stack.pop(prod.RHSLen)
	r.stack.push(next, prod.LHS)
	r.reduces++
	tracer().Debugf("reduced to next state = %d", next)
	r.emit(&prod, action)
	return Result{}, false
}

// exhausted is true if the step limit forbids another record.
func (r *run) exhausted() bool {
	return r.p.limit > 0 && r.emitted >= r.p.limit
}

func (r *run) emit(prod *table.Production, action table.Action) {
	rec := Record{
		Step:       r.step,
		States:     r.stack.states(),
		Symbols:    r.stack.symbols(),
		Production: prod,
		Remaining:  r.remaining(),
		Action:     action,
	}
	r.last = rec
	r.emitted++
	r.sink.Emit(rec)
}

func (r *run) remaining() []table.Symbol {
	if r.cursor >= len(r.input) {
		return []table.Symbol{}
	}
	rest := make([]table.Symbol, len(r.input)-r.cursor)
	copy(rest, r.input[r.cursor:])
	return rest
}

func (r *run) result(v Verdict, terminal table.Symbol) Result {
	return Result{
		Verdict:    v,
		Steps:      r.emitted,
		Shifts:     r.shifts,
		Reductions: r.reduces,
		State:      r.stack.tos().state,
		Terminal:   terminal,
		Last:       r.last,
	}
}

func (r *run) fatal(err error, prod *table.Production) Result {
	var terminal table.Symbol
	if r.cursor < len(r.input) {
		terminal = r.input[r.cursor]
	}
	ferr := &FatalError{
		Err:      err,
		Step:     r.step,
		States:   r.stack.states(),
		Symbols:  r.stack.symbols(),
		Terminal: terminal,
	}
	if prod != nil {
		ferr.NonTerminal = prod.LHS
		ferr.GotoState = r.stack.below(prod.RHSLen).state
	}
	tracer().Errorf("table defect: %v", ferr)
	if r.p.panicky {
		panic(fmt.Sprintf(`parser found a table defect.

Option PanicOnDefect is set to true. It is aimed at helping to debug
a grammar table and do a post-mortem of the parse run. If you did not expect
this to panic, please unset the option.

%v`, ferr))
	}
	res := r.result(Fatal, terminal)
	res.Err = ferr
	return res
}

// Recognize runs the parser without a sink. It returns true if the input has
// been accepted, and an error for table defects.
func (p *Parser) Recognize(tokens []table.Symbol) (bool, error) {
	res := p.Run(tokens, nil)
	return res.Accepted(), res.Err
}
