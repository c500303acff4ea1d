// Package encash computes earned-leave (EL) year-end encashment.
//
// Balances are decimals because half-day leave is common and float rounding
// would leak into the encashable amount.
package encash

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultMaxCarryForward is the EL cap carried into the next fiscal year.
var DefaultMaxCarryForward = decimal.NewFromInt(300)

// Input is one fiscal year's EL ledger.
type Input struct {
	Opening         decimal.Decimal `json:"opening"`
	Earned          decimal.Decimal `json:"earned"`
	Availed         decimal.Decimal `json:"availed"`
	MaxCarryForward decimal.Decimal `json:"max_carry_forward"`
}

// Result is the year-end split of the closing balance.
type Result struct {
	ClosingBalance  decimal.Decimal `json:"closing_balance"`
	Encashable      decimal.Decimal `json:"encashable"`
	CarryForward    decimal.Decimal `json:"carry_forward"`
	MaxCarryForward decimal.Decimal `json:"max_carry_forward"`
}

// ValidationError lists every problem found in an Input.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid EL input: " + strings.Join(e.Errors, "; ")
}

// ClosingBalance is opening + earned - availed.
func ClosingBalance(opening, earned, availed decimal.Decimal) decimal.Decimal {
	return opening.Add(earned).Sub(availed)
}

// Encashable is the part of closing above the carry-forward cap, never negative.
// A zero cap means the default cap.
func Encashable(closing, maxCarry decimal.Decimal) decimal.Decimal {
	if maxCarry.IsZero() {
		maxCarry = DefaultMaxCarryForward
	}
	excess := closing.Sub(maxCarry)
	if excess.IsPositive() {
		return excess
	}
	return decimal.Zero
}

// Validate reports negative inputs and a negative closing balance.
func Validate(in Input) error {
	var errs []string
	if in.Opening.IsNegative() {
		errs = append(errs, "opening balance cannot be negative")
	}
	if in.Earned.IsNegative() {
		errs = append(errs, "earned EL cannot be negative")
	}
	if in.Availed.IsNegative() {
		errs = append(errs, "availed EL cannot be negative")
	}
	if in.MaxCarryForward.IsNegative() {
		errs = append(errs, "max carry forward cannot be negative")
	}
	if ClosingBalance(in.Opening, in.Earned, in.Availed).IsNegative() {
		errs = append(errs, "closing balance cannot be negative (availed EL exceeds available EL)")
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Calculate validates the ledger and splits the closing balance into the
// encashable part and the part carried forward.
func Calculate(in Input) (*Result, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	maxCarry := in.MaxCarryForward
	if maxCarry.IsZero() {
		maxCarry = DefaultMaxCarryForward
	}

	closing := ClosingBalance(in.Opening, in.Earned, in.Availed)
	encashable := Encashable(closing, maxCarry)

	return &Result{
		ClosingBalance:  closing,
		Encashable:      encashable,
		CarryForward:    closing.Sub(encashable),
		MaxCarryForward: maxCarry,
	}, nil
}

// ParseDays reads a day count such as "12" or "7.5". Empty input is zero.
func ParseDays(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid day count %q: %w", s, err)
	}
	return d, nil
}
