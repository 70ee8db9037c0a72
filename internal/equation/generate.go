package equation

import "strconv"

// Default digit range for tile equations.
const (
	MinDigit = 1
	MaxDigit = 9
)

type genOptions struct {
	lo, hi  int
	shuffle Rand
}

// Option configures Generate.
type Option func(*genOptions)

// WithDigitRange widens or narrows the operand pool, e.g. 1..99 for the
// speed round. Ranges with lo < 1 are clamped to 1 so division never sees
// a zero divisor.
func WithDigitRange(lo, hi int) Option {
	return func(o *genOptions) {
		if lo < 1 {
			lo = 1
		}
		o.lo, o.hi = lo, hi
	}
}

// WithShuffle shuffles the operand pool once per call so that different
// equations surface first under the count cap. Without it operands are
// tried in ascending order and the result is deterministic.
func WithShuffle(r Rand) Option {
	return func(o *genOptions) {
		o.shuffle = r
	}
}

// Generate searches for equations of exactly length tokens (operands and
// operators alternating, starting and ending on an operand) that evaluate
// to target under the given operators. At most count equations are
// returned; the search stops as soon as the cap is reached.
//
// Division only proceeds when it divides the running term exactly, so every
// intermediate term of a returned equation is a whole number.
//
// count <= 0, length <= 2, an even length, or no operators yield an empty
// result.
func Generate(target, length, count int, ops []Operator, opts ...Option) []string {
	if count <= 0 || length <= 2 || length%2 == 0 || len(ops) == 0 {
		return []string{}
	}

	o := genOptions{lo: MinDigit, hi: MaxDigit}
	for _, opt := range opts {
		opt(&o)
	}
	if o.hi < o.lo {
		return []string{}
	}

	pool := make([]int, 0, o.hi-o.lo+1)
	for d := o.lo; d <= o.hi; d++ {
		pool = append(pool, d)
	}
	if o.shuffle != nil {
		o.shuffle.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	}

	s := &search{
		target: target,
		length: length,
		count:  count,
		ops:    ops,
		pool:   pool,
		buf:    make([]byte, 0, length*2),
		result: []string{},
	}
	s.operand(0, 0, 0, Add)
	return s.result
}

// search holds the backtracking state. Tokens are appended to buf and
// truncated on the way back up.
type search struct {
	target int
	length int
	count  int
	ops    []Operator
	pool   []int
	buf    []byte
	result []string
}

func (s *search) full() bool {
	return len(s.result) >= s.count
}

// operand places an operand at token position idx. value is the running
// left-to-right total and prev the signed last term, exactly as Evaluate
// keeps them on its stack.
func (s *search) operand(idx, value, prev int, last Operator) {
	for _, d := range s.pool {
		if s.full() {
			return
		}

		nextValue, nextPrev := d, d
		if idx > 0 {
			switch last {
			case Add:
				nextValue, nextPrev = value+d, d
			case Sub:
				nextValue, nextPrev = value-d, -d
			case Mul:
				nextValue, nextPrev = value-prev+prev*d, prev*d
			case Div:
				if prev%d != 0 {
					continue
				}
				nextValue, nextPrev = value-prev+prev/d, prev/d
			}
		}

		mark := len(s.buf)
		s.buf = strconv.AppendInt(s.buf, int64(d), 10)
		s.operator(idx+1, nextValue, nextPrev)
		s.buf = s.buf[:mark]
	}
}

func (s *search) operator(idx, value, prev int) {
	if s.full() {
		return
	}
	if idx == s.length {
		if value == s.target {
			s.result = append(s.result, string(s.buf))
		}
		return
	}

	for _, op := range s.ops {
		if s.full() {
			return
		}
		s.buf = append(s.buf, op.Glyph())
		s.operand(idx+1, value, prev, op)
		s.buf = s.buf[:len(s.buf)-1]
	}
}
