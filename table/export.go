package table

import (
	"fmt"
	"html"
	"io"

	"github.com/cnf/structhash"
)

// ActionTableAsHTML exports the ACTION table in HTML-format.
func (t *Table) ActionTableAsHTML(w io.Writer) error {
	return t.tableAsHTML(w, "ACTION", Terminal, func(state int, sym Symbol) string {
		a, _ := t.Action(state, sym)
		if a.Kind == ErrorAction {
			return "&nbsp;"
		}
		return a.Code()
	})
}

// GotoTableAsHTML exports the GOTO table in HTML-format.
func (t *Table) GotoTableAsHTML(w io.Writer) error {
	return t.tableAsHTML(w, "GOTO", NonTerminal, func(state int, sym Symbol) string {
		to, _ := t.Goto(state, sym)
		if to == NoTransition {
			return "&nbsp;"
		}
		return fmt.Sprintf("%d", to)
	})
}

func (t *Table) tableAsHTML(w io.Writer, tname string, k Kind, cell func(int, Symbol) string) error {
	ew := &errWriter{w: w}
	ew.printf("<html><body>\n")
	ew.printf("<p>%s table %s, %d states</p>\n", tname, html.EscapeString(t.Name), t.maxState+1)
	ew.printf("<table border=1 cellspacing=0 cellpadding=5>\n")
	ew.printf("<tr bgcolor=#cccccc><td></td>\n")
	t.alpha.Each(k, func(sym Symbol) {
		ew.printf("<td>%s</td>", html.EscapeString(sym.String()))
	})
	ew.printf("</tr>\n")
	for state := 0; state <= t.maxState; state++ {
		ew.printf("<tr><td>state %d</td>\n", state)
		t.alpha.Each(k, func(sym Symbol) {
			ew.printf("<td>%s</td>\n", cell(state, sym))
		})
		ew.printf("</tr>\n")
	}
	ew.printf("</table></body></html>\n")
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// --- Fingerprints ----------------------------------------------------------

// fingerprint is the hashed view of a table. The table name is not part of it.
type fingerprint struct {
	Terminals    string
	NonTerminals string
	End          string
	Productions  []fingerprintRule
	States       int
	Actions      []fingerprintCell
	Gotos        []fingerprintCell
}

type fingerprintRule struct {
	LHS    string
	RHSLen int
}

type fingerprintCell struct {
	Row, Col int
	Value    int32
}

// Fingerprint returns a hash of the structure of a table: two tables with
// equal alphabets, productions and cells have equal fingerprints.
func (t *Table) Fingerprint() (string, error) {
	fp := fingerprint{States: t.maxState + 1, End: t.end.String()}
	t.alpha.Each(Terminal, func(sym Symbol) { fp.Terminals += sym.String() })
	t.alpha.Each(NonTerminal, func(sym Symbol) { fp.NonTerminals += sym.String() })
	for _, p := range t.productions {
		fp.Productions = append(fp.Productions, fingerprintRule{LHS: p.LHS.String(), RHSLen: p.RHSLen})
	}
	t.actions.Each(func(i, j int, v int32) {
		fp.Actions = append(fp.Actions, fingerprintCell{Row: i, Col: j, Value: v})
	})
	t.gotos.Each(func(i, j int, v int32) {
		fp.Gotos = append(fp.Gotos, fingerprintCell{Row: i, Col: j, Value: v})
	})
	return structhash.Hash(fp, 1)
}
