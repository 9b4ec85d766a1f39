/*
Package scanner defines an interface for scanners which feed the parse engine,
and provides a scanner for the terminal alphabet of a grammar table.

The alphabet scanner is an adapter for lexmachine. Every terminal character
of a table becomes a literal pattern; whitespace which is not a terminal is
skipped.

    sc, err := scanner.NewAlphabetScanner(tab.Alphabet())
    …
    syms, err := sc.Terminals("(a)")   // → [( a )]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/lrtab"
)

// tracer traces with key 'lrtab.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lrtab.scanner")
}

// EOF is the token type of the end-of-input token.
const EOF lrtab.TokType = -1

// ErrUnknownCharacter is reported for input characters which are not terminals.
var ErrUnknownCharacter = errors.New("character is not a terminal")

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() lrtab.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type. The alphabet scanner
// puts the terminal symbol of a token into Val.
type DefaultToken struct {
	kind   lrtab.TokType
	lexeme string
	Val    interface{}
	span   lrtab.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ lrtab.TokType, lexeme string, span lrtab.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() lrtab.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() lrtab.Span {
	return t.span
}
