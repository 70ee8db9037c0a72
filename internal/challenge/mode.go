package challenge

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathtower/internal/equation"
)

// Mode restricts which operators a challenge may use.
type Mode int

const (
	Any Mode = iota
	Addition
	Subtraction
	Multiplication
	Division
)

var modeNames = map[Mode]string{
	Any:            "any",
	Addition:       "addition",
	Subtraction:    "subtraction",
	Multiplication: "multiplication",
	Division:       "division",
}

// AllModes returns every mode in declaration order.
func AllModes() []Mode {
	return []Mode{Any, Addition, Subtraction, Multiplication, Division}
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Operators returns the operator subset the mode permits. Any permits all
// four; unknown modes behave like Any.
func (m Mode) Operators() []equation.Operator {
	switch m {
	case Addition:
		return []equation.Operator{equation.Add}
	case Subtraction:
		return []equation.Operator{equation.Sub}
	case Multiplication:
		return []equation.Operator{equation.Mul}
	case Division:
		return []equation.Operator{equation.Div}
	default:
		return equation.AllOperators()
	}
}

// ParseMode accepts a mode name, its first letter, or its operator glyph.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "any", "all", "mixed", "":
		return Any, nil
	case "addition", "add", "a", "+":
		return Addition, nil
	case "subtraction", "sub", "s", "-":
		return Subtraction, nil
	case "multiplication", "mul", "m", "x", "*":
		return Multiplication, nil
	case "division", "div", "d", "/":
		return Division, nil
	}
	return Any, fmt.Errorf("invalid mode %q: must be one of any, addition, subtraction, multiplication, division", s)
}
