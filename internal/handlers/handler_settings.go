package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sake/strichliste/internal/dto"
	"github.com/sake/strichliste/internal/platform/config"
	"github.com/sake/strichliste/internal/utils"
)

type settingsHandler struct {
	settings config.Settings
}

// RegisterSettingsRoutes registers the read-only settings endpoint.
func RegisterSettingsRoutes(rg *gin.RouterGroup, settings config.Settings) {
	h := &settingsHandler{settings: settings}
	rg.GET("/settings", h.getSettings)
}

// getSettings godoc
// @Summary Get client settings
// @Description Returns boundaries, currency and feature switches clients need to pre-validate input
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	s := h.settings
	symbol := s.Currency.Symbol
	c.JSON(http.StatusOK, dto.SettingsResponse{
		Boundaries: s.Limits,
		BoundariesFormatted: map[string]string{
			"accountLower": utils.FormatWithSymbol(s.Limits.Account.Lower, symbol),
			"accountUpper": utils.FormatWithSymbol(s.Limits.Account.Upper, symbol),
			"paymentLower": utils.FormatWithSymbol(s.Limits.Transaction.Lower, symbol),
			"paymentUpper": utils.FormatWithSymbol(s.Limits.Transaction.Upper, symbol),
		},
		Currency: dto.CurrencyResponse{
			Name:   s.Currency.Name,
			Symbol: s.Currency.Symbol,
			Alpha3: s.Currency.Alpha3,
		},
		StalePeriod:         s.StalePeriodRaw,
		ArticlesEnabled:     s.ArticlesEnabled,
		TransactionsEnabled: s.TransactionsEnabled,
		IdleTimeoutMillis:   s.IdleTimeout.Milliseconds(),
	})
}
