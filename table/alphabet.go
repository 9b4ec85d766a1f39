package table

import (
	"fmt"
	"strings"
)

// --- Symbols ----------------------------------------------------------

// Kind tells terminals from non-terminals.
type Kind uint8

// Symbol kinds. The zero Kind is not a valid symbol.
const (
	Terminal Kind = iota + 1
	NonTerminal
)

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case NonTerminal:
		return "non-terminal"
	}
	return "<no symbol>"
}

// Symbol is a grammar symbol, interned by an Alphabet. Index is 1-based and
// dense within its kind. The zero Symbol is not a member of any alphabet.
type Symbol struct {
	Kind  Kind
	Index int
	Char  rune
}

// IsTerminal is true for terminal symbols.
func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal
}

// IsNull is true for the zero Symbol.
func (s Symbol) IsNull() bool {
	return s == Symbol{}
}

func (s Symbol) String() string {
	if s.IsNull() {
		return "<none>"
	}
	return string(s.Char)
}

// --- Alphabets ----------------------------------------------------------

// Alphabet interns symbol characters. A character is either exactly one
// terminal or exactly one non-terminal. Positions of symbols are given by the
// order of definition.
type Alphabet struct {
	chars        map[rune]Symbol
	terminals    []Symbol
	nonterminals []Symbol
}

// NewAlphabet creates an empty alphabet.
func NewAlphabet() *Alphabet {
	return &Alphabet{
		chars: make(map[rune]Symbol),
	}
}

// Define interns a character as a symbol of kind k. Defining a character
// twice is an error, even for the same kind, as it would shift the positions
// of all subsequent symbols.
func (a *Alphabet) Define(k Kind, c rune) (Symbol, error) {
	if k != Terminal && k != NonTerminal {
		return Symbol{}, fmt.Errorf("cannot define symbol %q with invalid kind", c)
	}
	if old, found := a.chars[c]; found {
		return old, fmt.Errorf("%w: %q already defined as %s #%d", ErrDuplicateSymbol, c, old.Kind, old.Index)
	}
	sym := Symbol{Kind: k, Char: c}
	if k == Terminal {
		sym.Index = len(a.terminals) + 1
		a.terminals = append(a.terminals, sym)
	} else {
		sym.Index = len(a.nonterminals) + 1
		a.nonterminals = append(a.nonterminals, sym)
	}
	a.chars[c] = sym
	return sym, nil
}

// Lookup finds the symbol for a character, regardless of kind.
func (a *Alphabet) Lookup(c rune) (Symbol, bool) {
	sym, found := a.chars[c]
	return sym, found
}

// Terminal finds a terminal symbol for a character.
func (a *Alphabet) Terminal(c rune) (Symbol, bool) {
	sym, found := a.chars[c]
	return sym, found && sym.Kind == Terminal
}

// NonTerminal finds a non-terminal symbol for a character.
func (a *Alphabet) NonTerminal(c rune) (Symbol, bool) {
	sym, found := a.chars[c]
	return sym, found && sym.Kind == NonTerminal
}

// Contains checks that sym is a member of the alphabet, i.e. it is not just
// a symbol with the same character.
func (a *Alphabet) Contains(sym Symbol) bool {
	s, found := a.chars[sym.Char]
	return found && s == sym
}

// Size counts the symbols of a kind.
func (a *Alphabet) Size(k Kind) int {
	switch k {
	case Terminal:
		return len(a.terminals)
	case NonTerminal:
		return len(a.nonterminals)
	}
	return 0
}

// At returns the symbol of kind k at 1-based position i.
func (a *Alphabet) At(k Kind, i int) (Symbol, bool) {
	syms := a.symbols(k)
	if i < 1 || i > len(syms) {
		return Symbol{}, false
	}
	return syms[i-1], true
}

// Each iterates over the symbols of kind k in order of definition.
func (a *Alphabet) Each(k Kind, mapper func(Symbol)) {
	for _, sym := range a.symbols(k) {
		mapper(sym)
	}
}

func (a *Alphabet) symbols(k Kind) []Symbol {
	switch k {
	case Terminal:
		return a.terminals
	case NonTerminal:
		return a.nonterminals
	}
	return nil
}

// String returns the characters of all terminals, then all non-terminals.
func (a *Alphabet) String() string {
	var b strings.Builder
	b.WriteString("T={")
	for _, sym := range a.terminals {
		b.WriteRune(sym.Char)
	}
	b.WriteString("} N={")
	for _, sym := range a.nonterminals {
		b.WriteRune(sym.Char)
	}
	b.WriteString("}")
	return b.String()
}
