package domain_test

import (
	"math"
	"testing"

	"github.com/sake/strichliste/internal/apperrors"
	"github.com/sake/strichliste/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLimits = domain.Limits{
	Account:     domain.Boundary{Lower: -2000, Upper: 20000},
	Transaction: domain.Boundary{Lower: -2000, Upper: 15000},
}

func TestLimits_Check(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		amount  int64
		reason  string
	}{
		{name: "within both boundaries", balance: 100, amount: -750},
		{name: "balance lands on lower bound", balance: 0, amount: -2000},
		{name: "balance lands on upper bound", balance: 5000, amount: 15000},
		{name: "balance below lower bound", balance: -1500, amount: -501, reason: domain.ReasonBalanceOutOfBounds},
		{name: "balance above upper bound", balance: 19000, amount: 1001, reason: domain.ReasonBalanceOutOfBounds},
		{name: "amount above payment bound", balance: 0, amount: 15001, reason: domain.ReasonAmountOutOfBounds},
		{name: "amount below payment bound", balance: 10000, amount: -2001, reason: domain.ReasonAmountOutOfBounds},
		{name: "balance checked before amount", balance: 20000, amount: 15001, reason: domain.ReasonBalanceOutOfBounds},
		{name: "no overflow near int64 max", balance: math.MaxInt64, amount: 1, reason: domain.ReasonBalanceOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := testLimits.Check(tt.balance, tt.amount)
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Equal(t, tt.reason, apperrors.Reason(err))
		})
	}
}

func TestArticleAmount(t *testing.T) {
	amount, err := domain.ArticleAmount(250, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(-750), amount)

	// negative prices (deposit returns) credit the account
	amount, err = domain.ArticleAmount(-150, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(300), amount)

	_, err = domain.ArticleAmount(250, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.ArticleAmount(math.MaxInt64, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLimits_Validate(t *testing.T) {
	assert.NoError(t, testLimits.Validate())

	inverted := testLimits
	inverted.Transaction = domain.Boundary{Lower: 10, Upper: -10}
	assert.ErrorIs(t, inverted.Validate(), apperrors.ErrValidation)
}
