package equation

// Validate reports whether s is a well-formed tile equation: single-digit
// operands alternating with canonical operator glyphs, starting and ending
// on a digit, with no whitespace or other bytes.
//
// Validate is stricter than Evaluate, which also accepts multi-digit
// operands. Tiles are single digits; typed answers are not.
func Validate(s string) bool {
	if len(s) <= 2 {
		return false
	}
	if !isDigit(s[0]) || !isDigit(s[len(s)-1]) {
		return false
	}

	for i := 1; i < len(s); i++ {
		curr, prev := s[i], s[i-1]
		if !isDigit(curr) && !IsOperator(curr) {
			return false
		}
		if isDigit(curr) == isDigit(prev) {
			return false
		}
	}
	return true
}
