package ledger

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a sum of money in cents.
type Amount int64

// MaxAmount keeps every balance well inside float64's exact integer range.
const MaxAmount Amount = 1 << 50

var ErrInvalidAmount = errors.New("invalid amount")

func Dollars(d int64) Amount {
	return Amount(d * 100)
}

// ParseAmount accepts non-negative numbers with an optional leading $
// and thousands separators, e.g. "12.34" or "$1,234.56". Fractions of a
// cent are rounded. Any negative input, however small, is rejected with
// ErrNegativeAmount.
func ParseAmount(s string) (Amount, error) {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(strings.TrimSpace(s), "$", ""), ",", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidAmount, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v*100) > float64(MaxAmount) {
		return 0, fmt.Errorf("%w %q", ErrInvalidAmount, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNegativeAmount, s)
	}
	return Amount(math.Round(v * 100)), nil
}

func (a Amount) String() string {
	sign := ""
	if a < 0 {
		sign, a = "-", -a
	}
	return fmt.Sprintf("%s$%d.%02d", sign, a/100, a%100)
}
