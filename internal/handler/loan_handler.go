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

// LoanCommander defines the write-side operations used by LoanHandler.
type LoanCommander interface {
	ApplyLoan(context.Context, cqrs.ApplyLoanCommand) (*models.LoanDecision, error)
	PaybackLoan(context.Context, cqrs.PaybackLoanCommand) (string, error)
}

// LoanQuerier defines the read-side operations used by LoanHandler.
type LoanQuerier interface {
	GetLoan(context.Context, cqrs.GetLoanQuery) (*models.LoanAccount, error)
}

type LoanHandler struct {
	commands LoanCommander
	queries  LoanQuerier
}

type ApplyLoanRequest struct {
	BankAccountID uint            `json:"bankAccountId" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"gt=0"`
	Interest      decimal.Decimal `json:"interest" validate:"gte=0"`
}

func NewLoanHandler(commands LoanCommander, queries LoanQuerier) *LoanHandler {
	return &LoanHandler{commands: commands, queries: queries}
}

// ApplyLoan answers 200 whether the application was approved or rejected.
func (h *LoanHandler) ApplyLoan(c *gin.Context) {
	var req ApplyLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	decision, err := h.commands.ApplyLoan(c.Request.Context(), cqrs.ApplyLoanCommand{
		BankAccountID: req.BankAccountID,
		Amount:        req.Amount,
		Interest:      req.Interest,
	})
	if err != nil {
		middleware.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}

func (h *LoanHandler) GetLoan(c *gin.Context) {
	loanAccountID, ok := idParam(c, "loanAccountId")
	if !ok {
		middleware.RespondWithServiceError(c, models.ErrLoanNotFound)
		return
	}

	loan, err := h.queries.GetLoan(c.Request.Context(), cqrs.GetLoanQuery{LoanAccountID: loanAccountID})
	if err != nil {
		middleware.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, loan)
}

// PaybackLoan is a stub: it confirms the loan account exists and reports success.
func (h *LoanHandler) PaybackLoan(c *gin.Context) {
	loanAccountID, ok := idParam(c, "loanAccountId")
	if !ok {
		middleware.RespondWithServiceError(c, models.ErrLoanNotFound)
		return
	}

	message, err := h.commands.PaybackLoan(c.Request.Context(), cqrs.PaybackLoanCommand{LoanAccountID: loanAccountID})
	if err != nil {
		middleware.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
