package engine

import (
	"github.com/npillmayer/lrtab/table"
)

// We store pairs of states and symbols on the parse stack. The bottom item
// (state 0, end marker) is never popped.
type stackitem struct {
	state  int          // parser state
	symbol table.Symbol // grammar symbol (terminal or non-terminal)
}

type stack []stackitem

func newStack(end table.Symbol) stack {
	s := make(stack, 1, 64)
	s[0] = stackitem{state: 0, symbol: end}
	return s
}

func (s stack) tos() stackitem {
	return s[len(s)-1]
}

func (s *stack) push(state int, sym table.Symbol) {
	*s = append(*s, stackitem{state: state, symbol: sym})
}

// pop removes n items. It never removes the bottom item; callers check the
// depth beforehand.
func (s *stack) pop(n int) {
	*s = (*s)[:len(*s)-n]
}

// below returns the item which will be on top after popping n items.
func (s stack) below(n int) stackitem {
	return s[len(s)-1-n]
}

func (s stack) depth() int {
	return len(s)
}

// states returns a copy of the states, bottom first.
func (s stack) states() []int {
	r := make([]int, len(s))
	for i, item := range s {
		r[i] = item.state
	}
	return r
}

// symbols returns a copy of the symbols, bottom first.
func (s stack) symbols() []table.Symbol {
	r := make([]table.Symbol, len(s))
	for i, item := range s {
		r[i] = item.symbol
	}
	return r
}
