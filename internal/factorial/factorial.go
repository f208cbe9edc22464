package factorial

import (
	"errors"
	"fmt"
	"math/big"
)

// MaxN bounds the recursion depth.
const MaxN = 20000

var (
	ErrNegative = errors.New("factorial is undefined for negative numbers")
	ErrTooLarge = fmt.Errorf("factorial input exceeds %d", MaxN)
)

// Factorial computes n! recursively.
func Factorial(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	if n > MaxN {
		return nil, ErrTooLarge
	}
	return factorial(n), nil
}

func factorial(n int64) *big.Int {
	if n == 0 {
		return big.NewInt(1)
	}
	f := factorial(n - 1)
	return f.Mul(f, big.NewInt(n))
}
