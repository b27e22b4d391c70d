package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sake/strichliste/internal/core/ports/services"
	"github.com/sake/strichliste/internal/dto"
	"github.com/sake/strichliste/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	stalePeriod    time.Duration
}

// RegisterAccountRoutes registers routes related to accounts. Updates pass
// through adminOnly.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, stalePeriod time.Duration, adminOnly gin.HandlerFunc) {
	h := &accountHandler{accountService: accountService, stalePeriod: stalePeriod}

	users := rg.Group("/user")
	{
		users.GET("", h.listAccounts)
		users.POST("", h.createAccount)
		users.GET("/search", h.searchAccounts)
		users.GET("/:id", h.getAccount)
		users.POST("/:id", adminOnly, h.updateAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an account with a zero balance
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Name already taken"
// @Router /user [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account created", slog.Int64("account_id", account.ID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account, time.Now(), h.stalePeriod))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /user/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account, time.Now(), h.stalePeriod))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists accounts ordered by name, optionally only recently active ones
// @Tags accounts
// @Produce json
// @Param disabled query bool false "List disabled accounts instead of enabled ones"
// @Param active query bool false "Only accounts with (true) or without (false) a recent transaction"
// @Success 200 {object} dto.AccountsResponse
// @Router /user [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountsResponse(accounts, time.Now(), h.stalePeriod))
}

// searchAccounts godoc
// @Summary Search accounts by name
// @Tags accounts
// @Produce json
// @Param query query string true "Part of the name"
// @Param limit query int false "Maximum number of results"
// @Success 200 {object} dto.AccountsResponse
// @Router /user/search [get]
func (h *accountHandler) searchAccounts(c *gin.Context) {
	var params dto.SearchAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	accounts, err := h.accountService.SearchAccounts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to search accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountsResponse(accounts, time.Now(), h.stalePeriod))
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates name, email and disabled flag. The balance cannot be changed here.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param account body dto.UpdateAccountRequest true "New account details"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Name already taken"
// @Security BearerAuth
// @Router /user/{id} [post]
func (h *accountHandler) updateAccount(c *gin.Context) {
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account, time.Now(), h.stalePeriod))
}
