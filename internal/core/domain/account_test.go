package domain_test

import (
	"testing"
	"time"

	"github.com/sake/strichliste/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAccount_IsActive(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-48 * time.Hour)
	old := now.Add(-11 * 24 * time.Hour)

	assert.True(t, domain.Account{LastUpdated: &recent}.IsActive(now, domain.DefaultStalePeriod))
	assert.False(t, domain.Account{LastUpdated: &old}.IsActive(now, domain.DefaultStalePeriod))
	assert.False(t, domain.Account{}.IsActive(now, domain.DefaultStalePeriod))
}
