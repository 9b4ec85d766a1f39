package table

import (
	"github.com/npillmayer/lrtab/table/sparse"
)

// NoTransition is returned by Goto for cells without a transition.
const NoTransition = -1

// Table is a grammar table: alphabet, productions, ACTION and GOTO tables.
// Create one with a Builder. Tables are never modified after construction.
type Table struct {
	Name        string
	alpha       *Alphabet
	productions []Production      // production i at index i-1
	maxState    int               // states are 0…maxState
	actions     *sparse.IntMatrix // state × (terminal.Index-1)
	gotos       *sparse.IntMatrix // state × (nonterminal.Index-1)
	end         Symbol            // end of input marker
	epsilon     rune              // marker for empty RHS in production texts
}

// Alphabet returns the table's symbols.
func (t *Table) Alphabet() *Alphabet {
	return t.alpha
}

// EndMarker returns the end-of-input terminal.
func (t *Table) EndMarker() Symbol {
	return t.end
}

// EpsilonMarker returns the character denoting an empty RHS.
func (t *Table) EpsilonMarker() rune {
	return t.epsilon
}

// ProductionCount returns N, the number of productions.
func (t *Table) ProductionCount() int {
	return len(t.productions)
}

// MaxState returns the highest state number. State numbers start at 0.
func (t *Table) MaxState() int {
	return t.maxState
}

// Production returns production i, with i in [1,N].
func (t *Table) Production(i int) (Production, error) {
	if i < 1 || i > len(t.productions) {
		return Production{}, rangeError("production", i, 1, len(t.productions))
	}
	return t.productions[i-1], nil
}

// Action returns the ACTION entry for a state and a terminal. Cells without an
// action return an error action, which is not a failure. A failure is a state or
// symbol outside of the table.
func (t *Table) Action(state int, terminal Symbol) (Action, error) {
	if err := t.checkState(state); err != nil {
		return NoAction, err
	}
	if err := t.checkSymbol(terminal, Terminal); err != nil {
		return NoAction, err
	}
	v := t.actions.Value(state, terminal.Index-1)
	if v == t.actions.NullValue() {
		return NoAction, nil
	}
	return decodeAction(v), nil
}

// Goto returns the GOTO entry for a state and a non-terminal, or NoTransition.
// Bounds are checked as for Action.
func (t *Table) Goto(state int, nonterminal Symbol) (int, error) {
	if err := t.checkState(state); err != nil {
		return NoTransition, err
	}
	if err := t.checkSymbol(nonterminal, NonTerminal); err != nil {
		return NoTransition, err
	}
	return int(t.gotos.Value(state, nonterminal.Index-1)), nil
}

func (t *Table) checkState(state int) error {
	if state < 0 || state > t.maxState {
		return rangeError("state", state, 0, t.maxState)
	}
	return nil
}

func (t *Table) checkSymbol(sym Symbol, k Kind) error {
	size := t.alpha.Size(k)
	if sym.Kind != k || sym.Index < 1 || sym.Index > size || !t.alpha.Contains(sym) {
		err := rangeError(k.String(), sym.Index, 1, size)
		err.Symbol = sym
		return err
	}
	return nil
}

// Dump is a debugging helper. It traces the table with level Debug.
func (t *Table) Dump() {
	tracer().Debugf("--- table %s, %s ----------", t.Name, t.alpha)
	for _, p := range t.productions {
		tracer().Debugf("%3d: %-12s |rhs|=%d", p.Number, p.Text, p.RHSLen)
	}
	t.actions.Each(func(i, j int, v int32) {
		T, _ := t.alpha.At(Terminal, j+1)
		tracer().Debugf("ACTION(%d, %s) = %s", i, T, decodeAction(v))
	})
	t.gotos.Each(func(i, j int, v int32) {
		N, _ := t.alpha.At(NonTerminal, j+1)
		tracer().Debugf("GOTO(%d, %s) = %d", i, N, v)
	})
	tracer().Debugf("-------------------------")
}
