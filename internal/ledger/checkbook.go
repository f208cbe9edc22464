package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeAmount    = errors.New("amount must be non-negative")
	ErrInsufficientFunds = errors.New("insufficient funds to complete the withdrawal")
	ErrBalanceOverflow   = errors.New("balance limit exceeded")
)

// Checkbook keeps a running balance that never goes below zero.
type Checkbook struct {
	balance Amount
}

func (c *Checkbook) Balance() Amount {
	return c.balance
}

func (c *Checkbook) Deposit(a Amount) error {
	if a < 0 {
		return ErrNegativeAmount
	}
	if c.balance+a > MaxAmount {
		return fmt.Errorf("%w: %s", ErrBalanceOverflow, MaxAmount)
	}
	c.balance += a
	return nil
}

func (c *Checkbook) Withdraw(a Amount) error {
	if a < 0 {
		return ErrNegativeAmount
	}
	if a > c.balance {
		return ErrInsufficientFunds
	}
	c.balance -= a
	return nil
}
