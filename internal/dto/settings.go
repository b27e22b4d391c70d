package dto

import "github.com/sake/strichliste/internal/core/domain"

// CurrencyResponse describes the single currency amounts are kept in.
type CurrencyResponse struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Alpha3 string `json:"alpha3"`
}

// SettingsResponse is the subset of settings clients need to render forms
// and pre-validate input.
type SettingsResponse struct {
	Boundaries          domain.Limits     `json:"boundaries"`
	BoundariesFormatted map[string]string `json:"boundariesFormatted"`
	Currency            CurrencyResponse  `json:"currency"`
	StalePeriod         string            `json:"stalePeriod"`
	ArticlesEnabled     bool              `json:"articlesEnabled"`
	TransactionsEnabled bool              `json:"transactionsEnabled"`
	IdleTimeoutMillis   int64             `json:"idleTimeout"`
}
