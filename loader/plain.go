package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/npillmayer/lrtab/table"
)

// ReadPlain reads a grammar table in plain format (see package doc).
func ReadPlain(r io.Reader) (*table.Table, error) {
	pr := &plainReader{scanner: bufio.NewScanner(r)}
	pr.scanner.Split(bufio.ScanWords)
	b := table.NewBuilder("")
	n, err := pr.count("number of productions")
	if err != nil {
		return nil, err
	}
	for i := 1; i <= n; i++ {
		text, err := pr.word(fmt.Sprintf("production %d", i))
		if err != nil {
			return nil, err
		}
		b.Production(text)
	}
	terminals, err := pr.symbols("terminal")
	if err != nil {
		return nil, err
	}
	b.Terminals(terminals...)
	nonterminals, err := pr.symbols("non-terminal")
	if err != nil {
		return nil, err
	}
	b.NonTerminals(nonterminals...)
	maxState, err := pr.number("last state number")
	if err != nil {
		return nil, err
	}
	if maxState < 0 {
		return nil, fmt.Errorf("%w: last state number %d", table.ErrMalformed, maxState)
	}
	b.MaxState(maxState)
	for s := 0; s <= maxState; s++ {
		for _, N := range nonterminals {
			to, err := pr.number(fmt.Sprintf("GOTO(%d, %c)", s, N))
			if err != nil {
				return nil, err
			}
			b.SetGoto(s, N, to)
		}
	}
	for s := 0; s <= maxState; s++ {
		for _, T := range terminals {
			a, err := pr.action(fmt.Sprintf("ACTION(%d, %c)", s, T))
			if err != nil {
				return nil, err
			}
			b.SetAction(s, T, a)
		}
	}
	tracer().Debugf("read %d items of plain table", pr.items)
	return b.Table()
}

type plainReader struct {
	scanner *bufio.Scanner
	items   int
}

func (pr *plainReader) word(what string) (string, error) {
	if !pr.scanner.Scan() {
		if err := pr.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", what, err)
		}
		return "", fmt.Errorf("reading %s: %w", what, io.ErrUnexpectedEOF)
	}
	pr.items++
	return pr.scanner.Text(), nil
}

func (pr *plainReader) number(what string) (int, error) {
	w, err := pr.word(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(w)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", table.ErrMalformed, what, w)
	}
	return n, nil
}

func (pr *plainReader) count(what string) (int, error) {
	n, err := pr.number(what)
	if err == nil && n < 0 {
		err = fmt.Errorf("%w: %s is negative: %d", table.ErrMalformed, what, n)
	}
	return n, err
}

func (pr *plainReader) symbols(what string) ([]rune, error) {
	n, err := pr.count("number of " + what + "s")
	if err != nil {
		return nil, err
	}
	syms := make([]rune, 0, n)
	for i := 1; i <= n; i++ {
		w, err := pr.word(fmt.Sprintf("%s %d", what, i))
		if err != nil {
			return nil, err
		}
		c, err := singleChar(w, what)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", table.ErrMalformed, err)
		}
		syms = append(syms, c)
	}
	return syms, nil
}

// action reads an ACTION cell: a kind character followed by an operand,
// either in the same word or in the next one.
func (pr *plainReader) action(what string) (table.Action, error) {
	w, err := pr.word(what)
	if err != nil {
		return table.NoAction, err
	}
	kind, size := utf8.DecodeRuneInString(w)
	var operand int
	if size == len(w) {
		if operand, err = pr.number(what + " operand"); err != nil {
			return table.NoAction, err
		}
	} else if operand, err = strconv.Atoi(w[size:]); err != nil {
		return table.NoAction, fmt.Errorf("%w: %s: bad operand in %q", table.ErrMalformed, what, w)
	}
	a, err := table.ParseAction(kind, operand)
	if err != nil {
		return table.NoAction, fmt.Errorf("%s: %w", what, err)
	}
	return a, nil
}
