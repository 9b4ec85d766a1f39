package lrtab

import "fmt"

// --- Tokens handed from a scanner to the parse engine ---------------------

// TokType is a category type for a Token. For scanners of this module it is
// the 1-based index of a terminal within a table's terminal alphabet.
type TokType int

// Token represents an input token. Tokens are produced by a scanner and
// reflect terminals of a grammar table.
//
// An example would be a token for the terminal 'a' at input position 3:
//
//    TokType = 3          // index of 'a' in the terminal alphabet
//    Lexeme  = "a"        // lexeme as it appeared in the input
//    Value   = table.Symbol{…}
//    Span    = 3…4
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span captures a run of input positions. A span denotes a start position
// and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
