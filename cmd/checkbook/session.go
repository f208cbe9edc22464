package main

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/console-games/internal/console"
	"github.com/vancomm/console-games/internal/ledger"
)

const menuPrompt = "What would you like to do? (deposit, withdraw, balance, exit): "

type session struct {
	con  *console.Console
	book *ledger.Checkbook
	log  logrus.FieldLogger
}

func (s *session) printBalance() {
	s.con.Printf("Current Balance: %s\n", s.book.Balance())
}

// readAmount prompts until a non-negative amount is entered. ok is false
// when the prompt was interrupted or the input closed, which sends the
// player back to the menu.
func (s *session) readAmount(ctx context.Context, prompt string) (ledger.Amount, bool, error) {
	for {
		line, err := s.con.Prompt(ctx, prompt)
		if err != nil {
			if console.Interrupted(err) {
				s.con.Println()
				return 0, false, nil
			}
			return 0, false, err
		}
		a, err := ledger.ParseAmount(line)
		switch {
		case errors.Is(err, ledger.ErrNegativeAmount):
			s.con.Println("Amount must be non-negative. Try again.")
		case err != nil:
			s.con.Println("Invalid amount. Please enter a number (e.g., 12.34).")
		default:
			return a, true, nil
		}
	}
}

func (s *session) deposit(ctx context.Context) error {
	a, ok, err := s.readAmount(ctx, "Enter the amount to deposit: $")
	if err != nil || !ok {
		return err
	}
	if err := s.book.Deposit(a); err != nil {
		s.con.Println(capitalize(err.Error()) + ".")
		return nil
	}
	s.con.Printf("Deposited %s\n", a)
	s.printBalance()
	s.log.WithFields(logrus.Fields{"amount": int64(a), "balance": int64(s.book.Balance())}).Debug("deposit")
	return nil
}

func (s *session) withdraw(ctx context.Context) error {
	a, ok, err := s.readAmount(ctx, "Enter the amount to withdraw: $")
	if err != nil || !ok {
		return err
	}
	if err := s.book.Withdraw(a); err != nil {
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			s.log.WithField("amount", int64(a)).Info("withdrawal rejected")
		}
		s.con.Println(capitalize(err.Error()) + ".")
		return nil
	}
	s.con.Printf("Withdrew %s\n", a)
	s.printBalance()
	s.log.WithFields(logrus.Fields{"amount": int64(a), "balance": int64(s.book.Balance())}).Debug("withdraw")
	return nil
}

func (s *session) run(ctx context.Context) error {
	for {
		line, err := s.con.Prompt(ctx, menuPrompt)
		if err != nil {
			if console.Interrupted(err) {
				s.con.Println()
				return nil
			}
			return err
		}

		switch strings.ToLower(line) {
		case "exit":
			return nil
		case "deposit":
			err = s.deposit(ctx)
		case "withdraw":
			err = s.withdraw(ctx)
		case "balance":
			s.printBalance()
		default:
			s.con.Println("Invalid command. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
