package scanner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/lrtab"
	"github.com/npillmayer/lrtab/table"
)

// lexmachine adapter

// AlphabetScanner is a lexmachine adapter which recognizes the terminals of
// an alphabet. It is safe to create scanners for different inputs concurrently.
type AlphabetScanner struct {
	Lexer *lexmachine.Lexer
	alpha *table.Alphabet
}

// NewAlphabetScanner creates a lexer for the terminals of alpha. Token types
// are the indices of the terminals.
//
// NewAlphabetScanner will return an error if compiling the DFA failed.
func NewAlphabetScanner(alpha *table.Alphabet) (*AlphabetScanner, error) {
	adapter := &AlphabetScanner{alpha: alpha, Lexer: lexmachine.NewLexer()}
	if alpha.Size(table.Terminal) == 0 {
		return nil, fmt.Errorf("%w: alphabet has no terminals", table.ErrMalformed)
	}
	alpha.Each(table.Terminal, func(sym table.Symbol) {
		lit := string(sym.Char)
		adapter.Lexer.Add([]byte(literal(sym.Char)), MakeToken(lit, sym.Index))
	})
	var blanks []string
	for _, c := range " \t\r\n" {
		if _, ok := alpha.Lookup(c); !ok {
			blanks = append(blanks, string(c))
		}
	}
	if len(blanks) > 0 {
		adapter.Lexer.Add([]byte("("+strings.Join(blanks, "|")+")+"), Skip)
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// literal is the pattern for a single character. ASCII characters other than
// letters and digits may be regex operators and are escaped.
func literal(c rune) string {
	if c < utf8.RuneSelf && !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
		return "\\" + string(c)
	}
	return string(c)
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *AlphabetScanner) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, alpha: lm.alpha, input: input, Error: logError}, nil
}

// Terminals classifies all characters of input as terminals. The first
// character which is not a terminal is reported as an error wrapping
// ErrUnknownCharacter.
func (lm *AlphabetScanner) Terminals(input string) ([]table.Symbol, error) {
	s, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	var first error
	s.SetErrorHandler(func(e error) {
		if first == nil {
			first = e
		}
	})
	syms := make([]table.Symbol, 0, len(input))
	for tok := s.NextToken(); tok.TokType() != EOF; tok = s.NextToken() {
		syms = append(syms, tok.Value().(table.Symbol))
	}
	if first != nil {
		return nil, first
	}
	tracer().Debugf("input %q scanned as %d terminals", input, len(syms))
	return syms, nil
}

// Terminals classifies all characters of input as terminals of t.
func Terminals(t *table.Table, input string) ([]table.Symbol, error) {
	sc, err := NewAlphabetScanner(t.Alphabet())
	if err != nil {
		return nil, err
	}
	return sc.Terminals(input)
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	alpha   *table.Alphabet
	input   string
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface. Characters which are not
// terminals are reported to the error handler and skipped.
func (lms *LMScanner) NextToken() lrtab.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			width := lms.unknown(ui)
			lms.scanner.TC = ui.StartTC + width // patterns are single characters
		} else {
			lms.Error(err)
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		end := uint64(len(lms.input))
		return MakeDefaultToken(EOF, "", lrtab.Span{end, end})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d = %q at %d", token.Type, token.Lexeme, token.TC)
	dt := MakeDefaultToken(
		lrtab.TokType(token.Type),
		string(token.Lexeme),
		lrtab.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
	dt.Val, _ = lms.alpha.At(table.Terminal, token.Type)
	return dt
}

// unknown reports the character at which scanning failed and returns its width.
func (lms *LMScanner) unknown(ui *machines.UnconsumedInput) int {
	pos := ui.StartTC
	if pos >= len(lms.input) {
		lms.Error(fmt.Errorf("%w: unexpected end of input", ErrUnknownCharacter))
		return 1
	}
	c, width := utf8.DecodeRuneInString(lms.input[pos:])
	lms.Error(fmt.Errorf("%w: %q at position %d", ErrUnknownCharacter, c, pos))
	return width
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, name, m), nil
	}
}
