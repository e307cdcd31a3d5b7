package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event types
const (
	CustomerCreated = "customer.created"
	CustomerUpdated = "customer.updated"
	CustomerDeleted = "customer.deleted"

	AccountCreated = "account.created"
	AccountUpdated = "account.updated"
	AccountDeleted = "account.deleted"

	TransactionCreated = "transaction.created"
	BalanceUpdated     = "balance.updated"

	LoanApproved = "loan.approved"
	LoanRejected = "loan.rejected"
)

// Stream names
const (
	CustomerEventsStream = "customer.events"
	LedgerEventsStream   = "ledger.events"
	LoanEventsStream     = "loan.events"
)

// Streams lists every stream the service writes to.
var Streams = []string{CustomerEventsStream, LedgerEventsStream, LoanEventsStream}

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// Customer events
type CustomerCreatedEvent struct {
	CustomerID string `json:"customerId"`
	Email      string `json:"email"`
}

type CustomerUpdatedEvent struct {
	CustomerID string `json:"customerId"`
	Email      string `json:"email"`
}

type CustomerDeletedEvent struct {
	CustomerID string `json:"customerId"`
}

// Ledger events
type AccountCreatedEvent struct {
	AccountID  uint   `json:"accountId"`
	CustomerID string `json:"customerId"`
}

type AccountUpdatedEvent struct {
	AccountID uint            `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}

type AccountDeletedEvent struct {
	AccountID  uint   `json:"accountId"`
	CustomerID string `json:"customerId"`
}

type TransactionCreatedEvent struct {
	TransactionID   uint            `json:"transactionId"`
	BankAccountID   uint            `json:"bankAccountId"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"`
	Status          string          `json:"status"`
}

type BalanceUpdatedEvent struct {
	BankAccountID uint            `json:"bankAccountId"`
	NewBalance    decimal.Decimal `json:"newBalance"`
	Change        decimal.Decimal `json:"change"`
}

// Loan events
type LoanDecidedEvent struct {
	LoanRequestID uint            `json:"loanRequestId"`
	LoanAccountID uint            `json:"loanAccountId,omitempty"`
	BankAccountID uint            `json:"bankAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Interest      decimal.Decimal `json:"interest"`
}
