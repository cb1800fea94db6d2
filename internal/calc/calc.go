// Package calc provides the arithmetic helpers exposed by the calc command.
package calc

import (
	"fmt"
	"strconv"
)

// Number is any integer or floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add returns x + y.
func Add[T Number](x, y T) T {
	return x + y
}

// Multiply returns a * b.
func Multiply[T Number](a, b T) T {
	return a * b
}

// ParseOperands parses two decimal operands.
func ParseOperands(x, y string) (float64, float64, error) {
	a, err := strconv.ParseFloat(x, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid operand %q: not a number", x)
	}
	b, err := strconv.ParseFloat(y, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid operand %q: not a number", y)
	}
	return a, b, nil
}

// Format renders a result without a trailing ".0" for whole numbers.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
