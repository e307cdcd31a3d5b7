package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sgdesh/bank-api/internal/cqrs"
	"github.com/sgdesh/bank-api/internal/middleware"
	"github.com/sgdesh/bank-api/internal/models"
)

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	CreateAccount(context.Context, cqrs.CreateAccountCommand) (*models.BankAccount, error)
	UpdateAccount(context.Context, cqrs.UpdateAccountCommand) (*models.BankAccount, error)
	DeleteAccount(context.Context, cqrs.DeleteAccountCommand) error
}

// AccountQuerier defines the read-side operations used by AccountHandler.
type AccountQuerier interface {
	GetAccount(context.Context, cqrs.GetAccountQuery) (*models.BankAccount, error)
	ListAccounts(context.Context, cqrs.ListAccountsQuery) ([]models.BankAccount, error)
}

// AccountHandler handles bank account HTTP requests.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
}

type CreateAccountRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
}

type UpdateAccountRequest struct {
	Balance *decimal.Decimal `json:"balance"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	account, err := h.commands.CreateAccount(c.Request.Context(), cqrs.CreateAccountCommand{
		CustomerID: req.CustomerID,
	})
	if err != nil {
		middleware.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.queries.ListAccounts(c.Request.Context(), cqrs.ListAccountsQuery{
		CustomerID: c.Param("customerId"),
	})
	if err != nil {
		middleware.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID, ok := idParam(c, "accountId")
	if !ok {
		middleware.RespondWithServiceError(c, models.ErrAccountNotFound)
		return
	}

	account, err := h.queries.GetAccount(c.Request.Context(), cqrs.GetAccountQuery{AccountID: accountID})
	if err != nil {
		middleware.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	accountID, ok := idParam(c, "accountId")
	if !ok {
		middleware.RespondWithServiceError(c, models.ErrAccountNotFound)
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Balance == nil {
		middleware.RespondWithValidationError(c, []middleware.ValidationError{{
			Field:   "Balance",
			Message: "This field is required",
			Type:    "required",
		}})
		return
	}

	account, err := h.commands.UpdateAccount(c.Request.Context(), cqrs.UpdateAccountCommand{
		AccountID: accountID,
		Balance:   *req.Balance,
	})
	if err != nil {
		middleware.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	accountID, ok := idParam(c, "accountId")
	if !ok {
		middleware.RespondWithServiceError(c, models.ErrAccountNotFound)
		return
	}

	if err := h.commands.DeleteAccount(c.Request.Context(), cqrs.DeleteAccountCommand{AccountID: accountID}); err != nil {
		middleware.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bank account deleted successfully"})
}
