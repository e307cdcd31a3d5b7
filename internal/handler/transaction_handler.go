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

// TransactionCommander defines the write-side operations used by TransactionHandler.
type TransactionCommander interface {
	CreateTransaction(context.Context, cqrs.CreateTransactionCommand) (*models.Transaction, error)
}

// TransactionQuerier defines the read-side operations used by TransactionHandler.
type TransactionQuerier interface {
	ListTransactions(context.Context, cqrs.ListTransactionsQuery) ([]models.Transaction, error)
}

type TransactionHandler struct {
	commands TransactionCommander
	queries  TransactionQuerier
}

type CreateTransactionRequest struct {
	BankAccountID   uint            `json:"bankAccountId" validate:"required"`
	Amount          decimal.Decimal `json:"amount" validate:"gt=0"`
	Description     string          `json:"description"`
	TransactionType string          `json:"transactionType" validate:"required,oneof=CREDIT DEBIT"`
}

func NewTransactionHandler(commands TransactionCommander, queries TransactionQuerier) *TransactionHandler {
	return &TransactionHandler{commands: commands, queries: queries}
}

// CreateTransaction answers 200 for both SUCCESSFUL and FAILED outcomes; the
// status field of the returned record tells them apart.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	transaction, err := h.commands.CreateTransaction(c.Request.Context(), cqrs.CreateTransactionCommand{
		BankAccountID:   req.BankAccountID,
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionType: models.TransactionType(req.TransactionType),
	})
	if err != nil {
		middleware.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	accountID, ok := idParam(c, "bankAccountId")
	if !ok {
		c.JSON(http.StatusOK, []models.Transaction{})
		return
	}

	transactions, err := h.queries.ListTransactions(c.Request.Context(), cqrs.ListTransactionsQuery{
		BankAccountID: accountID,
	})
	if err != nil {
		middleware.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}
