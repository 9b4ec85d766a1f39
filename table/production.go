package table

import (
	"fmt"
	"strings"
)

// Default markers, as used by the textual table format.
const (
	DefaultEndMarker     = '#'
	DefaultEpsilonMarker = '@'
)

// decoration is the number of characters of a production text in front of
// its right hand side, i.e. the LHS and the arrow in "S->(S)".
const decoration = 3

// Production is a numbered grammar rule. RHSLen is fixed at table construction
// and is the only length information the parser uses; Text is for display.
type Production struct {
	Number  int    // 1…N in order of declaration
	LHS     Symbol // left hand side non-terminal
	RHSLen  int    // count of RHS symbols, 0 for epsilon
	Epsilon bool   // RHS is the empty string
	Text    string // e.g. "S->(S)"
}

func (p Production) String() string {
	if p.Text != "" {
		return p.Text
	}
	return fmt.Sprintf("(%d) %s -> …%d", p.Number, p.LHS, p.RHSLen)
}

// productionDef is a production before its LHS is resolved against the
// alphabet.
type productionDef struct {
	lhs     rune
	rhs     []rune
	epsilon bool
	text    string
}

// parseProductionText splits a decorated production text like "S->(S)".
// The first character is the LHS, the RHS follows the 3-character decoration.
// An RHS consisting of the epsilon marker only (or an empty RHS) denotes
// the empty string.
func parseProductionText(text string, epsilon rune) (productionDef, error) {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) < decoration {
		return productionDef{}, fmt.Errorf("%w: production text %q shorter than %d characters",
			ErrMalformed, text, decoration)
	}
	def := productionDef{
		lhs:  runes[0],
		rhs:  runes[decoration:],
		text: text,
	}
	if len(def.rhs) == 0 || len(def.rhs) == 1 && def.rhs[0] == epsilon {
		def.rhs = nil
		def.epsilon = true
	}
	return def, nil
}

func ruleDef(lhs rune, rhs string, epsilon rune) productionDef {
	def := productionDef{lhs: lhs, rhs: []rune(rhs)}
	if len(def.rhs) == 0 {
		def.rhs = nil
		def.epsilon = true
		def.text = string(lhs) + "->" + string(epsilon)
	} else {
		def.text = string(lhs) + "->" + rhs
	}
	return def
}
