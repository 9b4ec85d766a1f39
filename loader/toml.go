package loader

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/npillmayer/lrtab/table"
)

// tomlTable is the TOML form of a grammar table:
//
//     name         = "parens"
//     end          = "#"            # optional, default '#'
//     epsilon      = "@"            # optional, default '@'
//     terminals    = ["(", ")", "a", "#"]
//     nonterminals = ["S"]
//     productions  = ["S->(S)", "S->a"]
//     states       = 5              # last state number
//     action = [
//         "S2 E  S3 E",             # state 0, one cell per terminal
//         …
//     ]
//     goto = [
//         [1],                      # state 0, one cell per non-terminal
//         …
//     ]
//
type tomlTable struct {
	Name         string   `toml:"name"`
	End          string   `toml:"end"`
	Epsilon      string   `toml:"epsilon"`
	Terminals    []string `toml:"terminals"`
	NonTerminals []string `toml:"nonterminals"`
	Productions  []string `toml:"productions"`
	States       *int     `toml:"states"`
	Action       []string `toml:"action"`
	Goto         [][]int  `toml:"goto"`
}

// ReadTOML reads a grammar table in TOML format. Unknown keys are errors.
func ReadTOML(r io.Reader) (*table.Table, error) {
	var tt tomlTable
	md, err := toml.NewDecoder(r).Decode(&tt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", table.ErrMalformed, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", table.ErrMalformed, strings.Join(keys, ", "))
	}
	if tt.States == nil {
		return nil, fmt.Errorf("%w: missing key 'states'", table.ErrMalformed)
	}
	b := table.NewBuilder(tt.Name)
	if tt.End != "" {
		c, err := singleChar(tt.End, "end marker")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", table.ErrMalformed, err)
		}
		b.EndMarker(c)
	}
	if tt.Epsilon != "" {
		c, err := singleChar(tt.Epsilon, "epsilon marker")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", table.ErrMalformed, err)
		}
		b.EpsilonMarker(c)
	}
	terminals, err := chars(tt.Terminals, "terminal")
	if err != nil {
		return nil, err
	}
	nonterminals, err := chars(tt.NonTerminals, "non-terminal")
	if err != nil {
		return nil, err
	}
	b.Terminals(terminals...).NonTerminals(nonterminals...)
	for _, p := range tt.Productions {
		b.Production(p)
	}
	maxState := *tt.States
	b.MaxState(maxState)
	if len(tt.Action) != maxState+1 {
		return nil, fmt.Errorf("%w: %d ACTION rows for %d states", table.ErrMalformed, len(tt.Action), maxState+1)
	}
	for s, row := range tt.Action {
		cells := strings.Fields(row)
		if len(cells) != len(terminals) {
			return nil, fmt.Errorf("%w: ACTION row %d has %d cells for %d terminals", table.ErrMalformed,
				s, len(cells), len(terminals))
		}
		for j, cell := range cells {
			a, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("ACTION(%d, %c): %w", s, terminals[j], err)
			}
			b.SetAction(s, terminals[j], a)
		}
	}
	if len(tt.Goto) > maxState+1 {
		return nil, fmt.Errorf("%w: %d GOTO rows for %d states", table.ErrMalformed, len(tt.Goto), maxState+1)
	}
	for s, row := range tt.Goto { // missing rows have no transitions
		if len(row) != len(nonterminals) {
			return nil, fmt.Errorf("%w: GOTO row %d has %d cells for %d non-terminals", table.ErrMalformed,
				s, len(row), len(nonterminals))
		}
		for j, to := range row {
			b.SetGoto(s, nonterminals[j], to)
		}
	}
	return b.Table()
}

func chars(words []string, what string) ([]rune, error) {
	r := make([]rune, len(words))
	for i, w := range words {
		c, err := singleChar(w, what)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", table.ErrMalformed, err)
		}
		r[i] = c
	}
	return r, nil
}

// parseCell parses "S2", "R1", "A", "E", "E-1" or "-" (no action).
func parseCell(cell string) (table.Action, error) {
	if cell == "-" {
		return table.NoAction, nil
	}
	kind, size := utf8.DecodeRuneInString(cell)
	operand := -1
	if size < len(cell) {
		n, err := strconv.Atoi(cell[size:])
		if err != nil {
			return table.NoAction, fmt.Errorf("%w: bad operand in %q", table.ErrMalformed, cell)
		}
		operand = n
	}
	return table.ParseAction(kind, operand)
}
