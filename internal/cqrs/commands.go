package cqrs

import (
	"github.com/shopspring/decimal"

	"github.com/sgdesh/bank-api/internal/models"
)

type CreateCustomerCommand struct {
	FirstName    string
	LastName     string
	Email        string
	MobileNumber string
}

// UpdateCustomerCommand carries a partial update; nil fields are left as stored.
type UpdateCustomerCommand struct {
	CustomerID   string
	FirstName    *string
	LastName     *string
	Email        *string
	MobileNumber *string
}

type DeleteCustomerCommand struct {
	CustomerID string
}

type CreateAccountCommand struct {
	CustomerID string
}

type UpdateAccountCommand struct {
	AccountID uint
	Balance   decimal.Decimal
}

type DeleteAccountCommand struct {
	AccountID uint
}

type CreateTransactionCommand struct {
	BankAccountID   uint
	Amount          decimal.Decimal
	Description     string
	TransactionType models.TransactionType
}

type ApplyLoanCommand struct {
	BankAccountID uint
	Amount        decimal.Decimal
	Interest      decimal.Decimal
}

type PaybackLoanCommand struct {
	LoanAccountID uint
}
