package table

import (
	"errors"
	"fmt"

	"github.com/npillmayer/lrtab/table/sparse"
)

// Builder collects the parts of a grammar table. Symbols, productions and
// table cells may be given in any order; they are resolved when Table() is
// called. Errors are collected and reported by Table(), so calls may be
// chained.
type Builder struct {
	name         string
	terminals    []rune
	nonterminals []rune
	productions  []productionDef
	maxState     int
	actions      []actionCell
	gotos        []gotoCell
	end          rune
	epsilon      rune
	errs         []error
}

type actionCell struct {
	state  int
	symbol rune
	action Action
}

type gotoCell struct {
	state  int
	symbol rune
	target int
}

// NewBuilder creates a builder for a table named name, with the default end
// and epsilon markers.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:     name,
		end:      DefaultEndMarker,
		epsilon:  DefaultEpsilonMarker,
		maxState: -1,
	}
}

// EndMarker sets the end-of-input character. It has to be one of the terminals.
func (b *Builder) EndMarker(c rune) *Builder {
	b.end = c
	return b
}

// EpsilonMarker sets the character which denotes an empty RHS in production texts.
func (b *Builder) EpsilonMarker(c rune) *Builder {
	b.epsilon = c
	return b
}

// Terminals appends terminal characters, in table column order.
func (b *Builder) Terminals(chars ...rune) *Builder {
	b.terminals = append(b.terminals, chars...)
	return b
}

// NonTerminals appends non-terminal characters, in table column order.
func (b *Builder) NonTerminals(chars ...rune) *Builder {
	b.nonterminals = append(b.nonterminals, chars...)
	return b
}

// Production appends a production given as decorated text, e.g. "S->(S)" or
// "A->@" for an epsilon production. Productions are numbered from 1.
func (b *Builder) Production(text string) *Builder {
	def, err := parseProductionText(text, b.epsilon)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("production %d: %w", len(b.productions)+1, err))
		def = productionDef{text: text}
	}
	b.productions = append(b.productions, def)
	return b
}

// Rule appends a production with LHS lhs and RHS rhs. An empty rhs is an
// epsilon production.
func (b *Builder) Rule(lhs rune, rhs string) *Builder {
	b.productions = append(b.productions, ruleDef(lhs, rhs, b.epsilon))
	return b
}

// MaxState sets the highest state number. States are numbered from 0.
func (b *Builder) MaxState(n int) *Builder {
	b.maxState = n
	return b
}

// SetAction sets ACTION(state, terminal). Setting an error action clears the cell.
func (b *Builder) SetAction(state int, terminal rune, a Action) *Builder {
	b.actions = append(b.actions, actionCell{state: state, symbol: terminal, action: a})
	return b
}

// SetGoto sets GOTO(state, nonterminal). A target of NoTransition clears the cell.
func (b *Builder) SetGoto(state int, nonterminal rune, target int) *Builder {
	b.gotos = append(b.gotos, gotoCell{state: state, symbol: nonterminal, target: target})
	return b
}

// Table resolves all parts and returns the grammar table. All problems found
// are reported as one error.
func (b *Builder) Table() (*Table, error) {
	errs := append([]error(nil), b.errs...)
	fail := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format, args...))
	}
	if b.maxState < 0 {
		fail("%w: no states (maximum state number not set)", ErrMalformed)
	} else if b.maxState > MaxOperand {
		fail("maximum state number: %w", rangeError("state", b.maxState, 0, MaxOperand))
	}
	if len(b.productions) > MaxOperand {
		fail("number of productions: %w", rangeError("production", len(b.productions), 1, MaxOperand))
	}
	t := &Table{
		Name:     b.name,
		alpha:    NewAlphabet(),
		maxState: b.maxState,
		epsilon:  b.epsilon,
	}
	for _, c := range b.terminals {
		if _, err := t.alpha.Define(Terminal, c); err != nil {
			fail("terminal: %w", err)
		}
	}
	for _, c := range b.nonterminals {
		if _, err := t.alpha.Define(NonTerminal, c); err != nil {
			fail("non-terminal: %w", err)
		}
	}
	if end, ok := t.alpha.Terminal(b.end); ok {
		t.end = end
	} else {
		fail("%w: end marker %q is not a terminal", ErrMalformed, b.end)
	}
	for i, def := range b.productions {
		if def.lhs == 0 { // text could not be parsed, already reported
			continue
		}
		lhs, ok := t.alpha.NonTerminal(def.lhs)
		if !ok {
			fail("%w: LHS %q of production %d (%s) is not a non-terminal", ErrMalformed,
				def.lhs, i+1, def.text)
		}
		t.productions = append(t.productions, Production{
			Number:  i + 1,
			LHS:     lhs,
			RHSLen:  len(def.rhs),
			Epsilon: def.epsilon,
			Text:    def.text,
		})
	}
	if len(errs) > 0 {
		return nil, joinErrors(b.name, errs)
	}
	rows := t.maxState + 1
	t.actions = sparse.NewIntMatrix(rows, t.alpha.Size(Terminal), sparse.DefaultNullValue)
	t.gotos = sparse.NewIntMatrix(rows, t.alpha.Size(NonTerminal), NoTransition)
	for _, cell := range b.actions {
		sym, ok := t.alpha.Terminal(cell.symbol)
		if !ok {
			fail("%w: ACTION(%d, %q): not a terminal", ErrMalformed, cell.state, cell.symbol)
			continue
		}
		if cell.state < 0 || cell.state > t.maxState {
			fail("ACTION(%d, %q): %w", cell.state, cell.symbol, rangeError("state", cell.state, 0, t.maxState))
			continue
		}
		if cell.action.Kind == ShiftAction && (cell.action.Operand < 0 || cell.action.Operand > t.maxState) {
			fail("ACTION(%d, %q): shift %w", cell.state, cell.symbol,
				rangeError("state", cell.action.Operand, 0, t.maxState))
			continue
		}
		if cell.action.Kind == ReduceAction && (cell.action.Operand < 1 || cell.action.Operand > len(t.productions)) {
			fail("ACTION(%d, %q): reduce %w", cell.state, cell.symbol,
				rangeError("production", cell.action.Operand, 1, len(t.productions)))
			continue
		}
		if cell.action.Kind == ErrorAction {
			t.actions.Set(cell.state, sym.Index-1, t.actions.NullValue())
		} else {
			t.actions.Set(cell.state, sym.Index-1, cell.action.encode())
		}
	}
	for _, cell := range b.gotos {
		sym, ok := t.alpha.NonTerminal(cell.symbol)
		if !ok {
			fail("%w: GOTO(%d, %q): not a non-terminal", ErrMalformed, cell.state, cell.symbol)
			continue
		}
		if cell.state < 0 || cell.state > t.maxState {
			fail("GOTO(%d, %q): %w", cell.state, cell.symbol, rangeError("state", cell.state, 0, t.maxState))
			continue
		}
		// GOTO cells pointing beyond the last state are kept: the table is
		// trusted, and an engine will report them when it gets there.
		target := cell.target
		if target < 0 {
			target = NoTransition
		}
		t.gotos.Set(cell.state, sym.Index-1, int32(target))
	}
	if len(errs) > 0 {
		return nil, joinErrors(b.name, errs)
	}
	tracer().Infof("table %s: %d productions, %d states, %s", t.Name, len(t.productions),
		t.maxState+1, t.alpha)
	return t, nil
}

// BuildError collects all errors found by a Builder.
type BuildError struct {
	Table  string
	Errors []error
}

func (e *BuildError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("table %s: %v", e.Table, e.Errors[0])
	}
	return fmt.Sprintf("table %s: %v (and %d more errors)", e.Table, e.Errors[0], len(e.Errors)-1)
}

// Is matches any of the collected errors.
func (e *BuildError) Is(target error) bool {
	for _, err := range e.Errors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func joinErrors(name string, errs []error) error {
	for _, err := range errs {
		tracer().Errorf("table %s: %v", name, err)
	}
	return &BuildError{Table: name, Errors: errs}
}
