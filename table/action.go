package table

import "fmt"

// ActionKind is the kind of an ACTION table entry.
type ActionKind uint8

// Kinds of parser actions. Error is the zero kind: empty cells of an ACTION
// table are error entries.
const (
	ErrorAction ActionKind = iota
	ShiftAction
	ReduceAction
	AcceptAction
)

func (k ActionKind) String() string {
	switch k {
	case ShiftAction:
		return "shift"
	case ReduceAction:
		return "reduce"
	case AcceptAction:
		return "accept"
	}
	return "error"
}

// Action is an entry of an ACTION table. Shift actions carry a target state,
// reduce actions a production number. Accept and Error carry no operand.
type Action struct {
	Kind    ActionKind
	Operand int
}

// Shift creates a shift action to state s.
func Shift(s int) Action {
	return Action{Kind: ShiftAction, Operand: s}
}

// Reduce creates a reduce action for production number p.
func Reduce(p int) Action {
	return Action{Kind: ReduceAction, Operand: p}
}

// Accept creates an accept action.
func Accept() Action {
	return Action{Kind: AcceptAction}
}

// NoAction is the error action of empty table cells.
var NoAction = Action{Kind: ErrorAction}

// ParseAction creates an action from the notation of the table format:
// kind character 'S', 'R', 'A' or 'E' (case-insensitive) and an operand.
// Operands of 'A' and 'E' are ignored.
func ParseAction(kind rune, operand int) (Action, error) {
	switch kind {
	case 'S', 's':
		if operand < 0 {
			return NoAction, fmt.Errorf("%w: shift to negative state %d", ErrMalformed, operand)
		}
		return Shift(operand), nil
	case 'R', 'r':
		if operand < 1 {
			return NoAction, fmt.Errorf("%w: reduce with production %d", ErrMalformed, operand)
		}
		return Reduce(operand), nil
	case 'A', 'a':
		return Accept(), nil
	case 'E', 'e':
		return NoAction, nil
	}
	return NoAction, fmt.Errorf("%w: unknown action kind %q", ErrMalformed, kind)
}

// Code returns the short notation of an action, e.g. "S3", "R1", "A" or "E".
func (a Action) Code() string {
	switch a.Kind {
	case ShiftAction:
		return fmt.Sprintf("S%d", a.Operand)
	case ReduceAction:
		return fmt.Sprintf("R%d", a.Operand)
	case AcceptAction:
		return "A"
	}
	return "E"
}

func (a Action) String() string {
	switch a.Kind {
	case ShiftAction:
		return fmt.Sprintf("<shift %d>", a.Operand)
	case ReduceAction:
		return fmt.Sprintf("<reduce %d>", a.Operand)
	case AcceptAction:
		return "<accept>"
	}
	return "<none>"
}

// MaxOperand is the largest state or production number an Action can carry.
const MaxOperand = 1<<29 - 1

// Actions are stored in a sparse.IntMatrix as operand<<2 | kind. Error
// actions are not stored at all.
func (a Action) encode() int32 {
	return int32(a.Operand)<<2 | int32(a.Kind)
}

func decodeAction(v int32) Action {
	return Action{Kind: ActionKind(v & 3), Operand: int(v >> 2)}
}
