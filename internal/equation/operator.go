package equation

import "fmt"

// Operator is one of the four arithmetic operators a tile equation may use.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

// Canonical wire glyphs. Evaluate, Validate and Generate all read and write
// exactly these bytes; display symbols are a rendering concern.
const (
	GlyphAdd byte = '+'
	GlyphSub byte = '-'
	GlyphMul byte = 'x'
	GlyphDiv byte = '/'
)

var glyphs = [...]byte{Add: GlyphAdd, Sub: GlyphSub, Mul: GlyphMul, Div: GlyphDiv}

var symbols = [...]string{Add: "+", Sub: "−", Mul: "×", Div: "÷"}

var names = [...]string{Add: "add", Sub: "sub", Mul: "mul", Div: "div"}

// AllOperators returns the four operators in canonical order.
func AllOperators() []Operator {
	return []Operator{Add, Sub, Mul, Div}
}

// Glyph returns the canonical single-byte form used in equation strings.
func (o Operator) Glyph() byte {
	if !o.valid() {
		return '?'
	}
	return glyphs[o]
}

// Symbol returns the typographic form shown to players, e.g. "×".
func (o Operator) Symbol() string {
	if !o.valid() {
		return "?"
	}
	return symbols[o]
}

func (o Operator) String() string {
	if !o.valid() {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return names[o]
}

func (o Operator) valid() bool {
	return o >= Add && o <= Div
}

// ParseOperator maps a canonical glyph back to its Operator.
func ParseOperator(c byte) (Operator, bool) {
	switch c {
	case GlyphAdd:
		return Add, true
	case GlyphSub:
		return Sub, true
	case GlyphMul:
		return Mul, true
	case GlyphDiv:
		return Div, true
	}
	return 0, false
}

// IsOperator reports whether c is a canonical operator glyph.
func IsOperator(c byte) bool {
	_, ok := ParseOperator(c)
	return ok
}

// Display rewrites the canonical glyphs of an equation string into the
// player-facing symbols, e.g. "3x4/2" becomes "3 × 4 ÷ 2".
func Display(s string) string {
	out := make([]byte, 0, len(s)*3)
	for i := 0; i < len(s); i++ {
		if op, ok := ParseOperator(s[i]); ok {
			out = append(out, ' ')
			out = append(out, op.Symbol()...)
			out = append(out, ' ')
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
