package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sake/strichliste/internal/apperrors"
	portssvc "github.com/sake/strichliste/internal/core/ports/services"
	"github.com/sake/strichliste/internal/dto"
	"github.com/sake/strichliste/internal/platform/config"
)

// transactionHandler handles HTTP requests against the ledger.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	settings           config.Settings
}

// RegisterTransactionRoutes registers the ledger routes below /user/:id.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, settings config.Settings) {
	h := &transactionHandler{transactionService: transactionService, settings: settings}

	transactions := rg.Group("/user/:id/transaction")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.GET("/:transactionId", h.getTransaction)
	}
}

// createTransaction godoc
// @Summary Book a transaction
// @Description The kind follows from the fields set: amount alone books a deposit or withdrawal, articleId buys an article, recipientId with a negative amount transfers money.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid shape or boundary violation"
// @Failure 404 {object} map[string]string "Account, recipient or article not found"
// @Failure 503 {object} map[string]string "Storage busy"
// @Router /user/{id}/transaction [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if !h.settings.TransactionsEnabled {
		respondError(c, apperrors.NewValidationFailedError("Transactions are disabled."), "Transaction rejected")
		return
	}
	if req.ArticleID != nil && !h.settings.ArticlesEnabled {
		respondError(c, apperrors.NewValidationFailedError("Articles are disabled."), "Transaction rejected")
		return
	}

	result, err := h.transactionService.AddTransaction(c.Request.Context(), accountID, req, h.settings.Limits)
	if err != nil {
		respondError(c, err, "Failed to book transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(result, time.Now(), h.settings.StalePeriod))
}

// listTransactions godoc
// @Summary List transactions of an account
// @Description Newest first. Pass nextToken from the previous page to continue.
// @Tags transactions
// @Produce json
// @Param id path int true "Account ID"
// @Param limit query int false "Page size (default 5)"
// @Param offset query int false "Page offset, ignored with nextToken"
// @Param nextToken query string false "Continuation token"
// @Success 200 {object} dto.TransactionsResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /user/{id}/transaction [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.transactionService.ListTransactions(c.Request.Context(), accountID, params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}

	now := time.Now()
	out := make([]dto.TransactionResponse, len(page.Transactions))
	for i := range page.Transactions {
		out[i] = dto.ToTransactionResponse(&page.Transactions[i], now, h.settings.StalePeriod)
	}
	c.JSON(http.StatusOK, dto.TransactionsResponse{Transactions: out, Count: page.Count, NextToken: page.NextToken})
}

// getTransaction godoc
// @Summary Get one transaction of an account
// @Tags transactions
// @Produce json
// @Param id path int true "Account ID"
// @Param transactionId path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /user/{id}/transaction/{transactionId} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	entryID, ok := int64Param(c, "transactionId")
	if !ok {
		return
	}

	result, err := h.transactionService.GetTransaction(c.Request.Context(), accountID, entryID)
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(result, time.Now(), h.settings.StalePeriod))
}
