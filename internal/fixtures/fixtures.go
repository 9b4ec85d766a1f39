// Package fixtures provides small grammar tables for tests.
package fixtures

import (
	"github.com/npillmayer/lrtab/table"
)

// ParensBuilder prepares the SLR(1) table for
//
//     1: S -> ( S )
//     2: S -> a
//
// with states
//
//     0: S'->.S  S->.(S)  S->.a     1: S'->S.
//     2: S->(.S) S->.(S)  S->.a     3: S->a.
//     4: S->(S.)                    5: S->(S).
//
func ParensBuilder() *table.Builder {
	b := table.NewBuilder("parens")
	b.Terminals('(', ')', 'a', '#')
	b.NonTerminals('S')
	b.Production("S->(S)")
	b.Production("S->a")
	b.MaxState(5)
	b.SetAction(0, '(', table.Shift(2)).SetAction(0, 'a', table.Shift(3))
	b.SetAction(1, '#', table.Accept())
	b.SetAction(2, '(', table.Shift(2)).SetAction(2, 'a', table.Shift(3))
	b.SetAction(3, ')', table.Reduce(2)).SetAction(3, '#', table.Reduce(2))
	b.SetAction(4, ')', table.Shift(5))
	b.SetAction(5, ')', table.Reduce(1)).SetAction(5, '#', table.Reduce(1))
	b.SetGoto(0, 'S', 1)
	b.SetGoto(2, 'S', 4)
	return b
}

// Parens returns the table of ParensBuilder.
func Parens() *table.Table {
	return mustBuild(ParensBuilder())
}

// BrokenParens is Parens with GOTO(2,S) undefined. Reducing 'a' inside of
// parentheses runs into the undefined cell.
func BrokenParens() *table.Table {
	b := ParensBuilder()
	b.SetGoto(2, 'S', table.NoTransition)
	return mustBuild(b)
}

// Trivial is a two-state table for the parens grammar, with an additional
// terminal 'b' that no production uses. It shifts 'a' and accepts.
func Trivial() *table.Table {
	b := table.NewBuilder("trivial")
	b.Terminals('(', ')', 'a', 'b', '#')
	b.NonTerminals('S')
	b.Production("S->(S)")
	b.Production("S->a")
	b.MaxState(1)
	b.SetAction(0, 'a', table.Shift(1))
	b.SetAction(1, '#', table.Accept())
	return mustBuild(b)
}

// Epsilon is the SLR(1) table for
//
//     1: S -> A a
//     2: A -> ε
//
func Epsilon() *table.Table {
	b := table.NewBuilder("epsilon")
	b.Terminals('a', '#')
	b.NonTerminals('S', 'A')
	b.Production("S->Aa")
	b.Production("A->@")
	b.MaxState(3)
	b.SetAction(0, 'a', table.Reduce(2))
	b.SetAction(1, '#', table.Accept())
	b.SetAction(2, 'a', table.Shift(3))
	b.SetAction(3, '#', table.Reduce(1))
	b.SetGoto(0, 'S', 1)
	b.SetGoto(0, 'A', 2)
	return mustBuild(b)
}

// Loop is a malformed table which reduces an epsilon production forever.
func Loop() *table.Table {
	b := table.NewBuilder("loop")
	b.Terminals('a', '#')
	b.NonTerminals('A')
	b.Rule('A', "")
	b.MaxState(0)
	b.SetAction(0, '#', table.Reduce(1))
	b.SetGoto(0, 'A', 0)
	return mustBuild(b)
}

// Input converts a string to terminals of t. It panics for characters which
// are not terminals of t.
func Input(t *table.Table, s string) []table.Symbol {
	syms := make([]table.Symbol, 0, len(s))
	for _, c := range s {
		sym, ok := t.Alphabet().Terminal(c)
		if !ok {
			panic("fixtures.Input: not a terminal: " + string(c))
		}
		syms = append(syms, sym)
	}
	return syms
}

func mustBuild(b *table.Builder) *table.Table {
	t, err := b.Table()
	if err != nil {
		panic(err)
	}
	return t
}
