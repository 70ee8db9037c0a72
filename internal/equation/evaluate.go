package equation

import "math"

// Evaluate computes the value of an equation string with flat left-to-right
// semantics: x and / combine with the term immediately before them rather
// than following standard precedence, so "3+2x2" is 7.
//
// Input is not validated. Division by zero yields ±Inf or NaN, an operator
// with no preceding term yields NaN, and bytes that are neither digits nor
// canonical glyphs close the current term without keeping it.
func Evaluate(s string) float64 {
	var stack []float64
	num := 0.0
	pending := GlyphAdd

	for i := 0; i <= len(s); i++ {
		if i < len(s) && isDigit(s[i]) {
			num = num*10 + float64(s[i]-'0')
			continue
		}

		switch pending {
		case GlyphAdd:
			stack = append(stack, num)
		case GlyphSub:
			stack = append(stack, -num)
		case GlyphMul:
			var top float64
			stack, top = pop(stack)
			stack = append(stack, top*num)
		case GlyphDiv:
			var top float64
			stack, top = pop(stack)
			stack = append(stack, top/num)
		}

		if i < len(s) {
			pending = s[i]
			num = 0
		}
	}

	sum := 0.0
	for _, v := range stack {
		sum += v
	}
	return sum
}

// pop removes the top term. An empty stack yields NaN so the malformed
// expression poisons the result instead of panicking.
func pop(stack []float64) ([]float64, float64) {
	if len(stack) == 0 {
		return stack, math.NaN()
	}
	return stack[:len(stack)-1], stack[len(stack)-1]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
