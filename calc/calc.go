// Package calc implements the calculator state machine: two text
// operand accumulators, one pending binary operator, and eager
// left-to-right chaining. It is pure state transition logic with no
// hardware dependencies.
package calc

import "strconv"

// maxDigits bounds an operand so it fits the display and never
// overflows float parsing.
const maxDigits = 10

// Op identifies a pending binary operation. OpNone means nothing is
// queued.
type Op uint8

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// Glyph returns the symbol shown next to the previous operand.
func (o Op) Glyph() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "x"
	case OpDiv:
		return "/"
	}
	return ""
}

// Key is one input symbol from the keypad. Digit keys are their ASCII
// rune; the named keys cover the rest of the legend.
type Key rune

const (
	KeyNone   Key = 0
	KeyAdd    Key = '+'
	KeySub    Key = '-'
	KeyMul    Key = '*'
	KeyDiv    Key = '/'
	KeyEquals Key = '='
	KeyClear  Key = 'C'
)

// State is the calculator's entire mutable state. The zero value is
// the initial empty state.
type State struct {
	current  string
	previous string
	op       Op
	fresh    bool // last action was a successful evaluation
}

func (s *State) Current() string  { return s.current }
func (s *State) Previous() string { return s.previous }
func (s *State) PendingOp() Op    { return s.op }

// AwaitingNewEntry reports whether the next digit starts a fresh
// calculation instead of extending the shown result.
func (s *State) AwaitingNewEntry() bool { return s.fresh }

// HandleKey applies one key to the state. Keys that make no sense in
// the current state are silently ignored; there is no error channel on
// a keypad.
func (s *State) HandleKey(k Key) {
	switch {
	case k >= '0' && k <= '9':
		s.pushDigit(k)
	case k == KeyAdd:
		s.setOperator(OpAdd)
	case k == KeySub:
		s.setOperator(OpSub)
	case k == KeyMul:
		s.setOperator(OpMul)
	case k == KeyDiv:
		s.setOperator(OpDiv)
	case k == KeyEquals:
		s.evaluate()
	case k == KeyClear:
		s.Reset()
	}
}

// Reset returns the state to the initial empty value.
func (s *State) Reset() {
	s.current = ""
	s.previous = ""
	s.op = OpNone
	s.fresh = false
}

func (s *State) pushDigit(k Key) {
	// A digit after '=' starts a fresh chain; the result can only be
	// built upon through an operator.
	if s.fresh {
		s.Reset()
	}
	if len(s.current) < maxDigits {
		s.current += string(k)
	}
}

func (s *State) setOperator(op Op) {
	if s.current == "" && s.previous == "" {
		return
	}
	if s.current != "" {
		if s.previous != "" && s.op != OpNone {
			// Chaining: "a op b op" evaluates the pending pair
			// eagerly, left to right.
			s.evaluate()
		}
		s.previous = s.current
		s.current = ""
	}
	// current empty with an operand parked in previous: the operator
	// is simply replaced, no evaluation.
	s.op = op
	s.fresh = false
}

func (s *State) evaluate() {
	if s.previous == "" || s.current == "" || s.op == OpNone {
		return
	}

	// Operands are built from digit keys only, so parsing cannot fail.
	a, _ := strconv.ParseFloat(s.previous, 64)
	b, _ := strconv.ParseFloat(s.current, 64)

	var result float64
	switch s.op {
	case OpAdd:
		result = a + b
	case OpSub:
		result = a - b
	case OpMul:
		result = a * b
	case OpDiv:
		// Known limitation: dividing by zero shows 0. The keypad
		// has no way to display an error state.
		if b != 0 {
			result = a / b
		}
	}

	s.current = formatResult(result)
	s.previous = ""
	s.op = OpNone
	s.fresh = true
}
