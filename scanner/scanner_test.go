package scanner

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/lrtab/internal/fixtures"
	"github.com/npillmayer/lrtab/table"
)

func chars(syms []table.Symbol) string {
	r := make([]rune, len(syms))
	for i, sym := range syms {
		r[i] = sym.Char
	}
	return string(r)
}

func TestScanTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.scanner")
	defer teardown()
	//
	tab := fixtures.Parens()
	for input, expected := range map[string]string{
		"(a)":     "(a)",
		"((a))#":  "((a))#",
		" ( a ) ": "(a)",
		"":        "",
	} {
		syms, err := Terminals(tab, input)
		if err != nil {
			t.Fatalf("input %q: %v", input, err)
		}
		assert.Equal(t, expected, chars(syms), "input %q", input)
		for _, sym := range syms {
			assert.True(t, sym.IsTerminal(), "%v is not a terminal", sym)
		}
	}
}

func TestScanUnknown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.scanner")
	defer teardown()
	//
	tab := fixtures.Parens()
	_, err := Terminals(tab, "(b)")
	assert.True(t, errors.Is(err, ErrUnknownCharacter), "error is %v", err)
	assert.Contains(t, err.Error(), "position 1")
	_, err = Terminals(tab, "(S)") // non-terminals are not input
	assert.True(t, errors.Is(err, ErrUnknownCharacter), "error is %v", err)
}

func TestTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.scanner")
	defer teardown()
	//
	tab := fixtures.Parens()
	sc, err := NewAlphabetScanner(tab.Alphabet())
	if err != nil {
		t.Fatal(err)
	}
	s, err := sc.Scanner("( x a")
	if err != nil {
		t.Fatal(err)
	}
	var errs []error
	s.SetErrorHandler(func(e error) { errs = append(errs, e) })
	tok := s.NextToken()
	assert.Equal(t, "(", tok.Lexeme())
	paren, _ := tab.Alphabet().Terminal('(')
	assert.Equal(t, paren.Index, int(tok.TokType()))
	assert.Equal(t, paren, tok.Value())
	tok = s.NextToken() // skips 'x'
	assert.Equal(t, "a", tok.Lexeme())
	assert.Equal(t, uint64(4), tok.Span().From())
	assert.Equal(t, uint64(1), tok.Span().Len())
	assert.Len(t, errs, 1)
	tok = s.NextToken()
	assert.Equal(t, EOF, tok.TokType())
}

func TestEscapedTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.scanner")
	defer teardown()
	//
	b := table.NewBuilder("ops")
	b.Terminals('+', '*', '(', ')', '|', '.', 'x', '#').NonTerminals('E')
	b.Rule('E', "x").MaxState(0)
	tab, err := b.Table()
	if err != nil {
		t.Fatal(err)
	}
	syms, err := Terminals(tab, "x+x*(x|x).#")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "x+x*(x|x).#", chars(syms))
}
