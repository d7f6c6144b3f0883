package foo

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// ErrOverflow reports a square that does not fit in an int64.
var ErrOverflow = errors.New("square overflows int64")

// MaxSquareInput is the largest magnitude whose square fits in an int64.
const MaxSquareInput = 3037000499

// OverflowError carries the input that overflowed.
type OverflowError struct {
	N int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("square of %d overflows int64", e.N)
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}

// Square returns n*n, or an error wrapping ErrOverflow when the product does
// not fit in an int64.
func Square(n int64) (int64, error) {
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	hi, lo := bits.Mul64(u, u)
	if hi != 0 || lo > math.MaxInt64 {
		return 0, &OverflowError{N: n}
	}
	return int64(lo), nil
}

// SquareWrap returns n*n with two's complement wraparound.
func SquareWrap(n int64) int64 {
	return n * n
}

// SquareBig returns n*n at arbitrary precision. n is not modified.
func SquareBig(n *big.Int) *big.Int {
	return new(big.Int).Mul(n, n)
}
