package domain

import (
	"fmt"
	"math"

	"github.com/sake/strichliste/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	ReasonBalanceOutOfBounds = "Requested balance is out of the allowed boundary."
	ReasonAmountOutOfBounds  = "Requested amount is out of the allowed boundary."
)

var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// Boundary is an inclusive range of minor currency units.
type Boundary struct {
	Lower int64 `json:"lower"`
	Upper int64 `json:"upper"`
}

// Contains reports whether v lies within [Lower, Upper].
func (b Boundary) Contains(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(decimal.NewFromInt(b.Lower)) && v.LessThanOrEqual(decimal.NewFromInt(b.Upper))
}

// Validate rejects inverted ranges.
func (b Boundary) Validate() error {
	if b.Lower > b.Upper {
		return fmt.Errorf("%w: lower bound %d exceeds upper bound %d", apperrors.ErrValidation, b.Lower, b.Upper)
	}
	return nil
}

// Limits are the two independent ranges gating every balance change: the
// resulting account balance and the signed amount of the entry itself.
type Limits struct {
	Account     Boundary `json:"account"`
	Transaction Boundary `json:"payment"`
}

// Validate checks both ranges.
func (l Limits) Validate() error {
	if err := l.Account.Validate(); err != nil {
		return fmt.Errorf("account boundary: %w", err)
	}
	if err := l.Transaction.Validate(); err != nil {
		return fmt.Errorf("payment boundary: %w", err)
	}
	return nil
}

// Check applies amount to balance and verifies the result against the
// account boundary, then the amount against the transaction boundary.
func (l Limits) Check(balance, amount int64) error {
	if !l.Account.Contains(ResultingBalance(balance, amount)) {
		return apperrors.NewValidationFailedError(ReasonBalanceOutOfBounds)
	}
	if !l.Transaction.Contains(decimal.NewFromInt(amount)) {
		return apperrors.NewValidationFailedError(ReasonAmountOutOfBounds)
	}
	return nil
}

// ResultingBalance is balance + amount without int64 wrap-around.
func ResultingBalance(balance, amount int64) decimal.Decimal {
	return decimal.NewFromInt(balance).Add(decimal.NewFromInt(amount))
}

// ArticleAmount is the signed amount of buying quantity units at unit each.
// The sign is always derived here, never taken from the caller.
func ArticleAmount(unit, quantity int64) (int64, error) {
	if quantity < 1 {
		return 0, apperrors.NewValidationFailedError("Quantity must be at least 1.")
	}
	total := decimal.NewFromInt(unit).Mul(decimal.NewFromInt(quantity)).Neg()
	if total.LessThan(minInt64) || total.GreaterThan(maxInt64) {
		return 0, apperrors.NewValidationFailedError(ReasonAmountOutOfBounds)
	}
	return total.IntPart(), nil
}
