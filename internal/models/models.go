package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts and balances go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type TransactionType string

const (
	Credit TransactionType = "CREDIT"
	Debit  TransactionType = "DEBIT"
)

type TransactionStatus string

const (
	TransactionSuccessful TransactionStatus = "SUCCESSFUL"
	TransactionFailed     TransactionStatus = "FAILED"
)

type LoanStatus string

const (
	LoanApproved LoanStatus = "APPROVED"
	LoanRejected LoanStatus = "REJECTED"
)

type Customer struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FirstName    string    `json:"firstName" gorm:"not null"`
	LastName     string    `json:"lastName" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	MobileNumber string    `json:"mobileNumber" gorm:"uniqueIndex;size:10;not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type BankAccount struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Balance    decimal.Decimal `json:"balance" gorm:"type:numeric(18,2);not null;default:0"`
	CustomerID string          `json:"customerId" gorm:"index;not null;type:varchar(36)"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type Transaction struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	Amount          decimal.Decimal   `json:"amount" gorm:"type:numeric(18,2);not null"`
	Description     string            `json:"description"`
	TransactionType TransactionType   `json:"transactionType" gorm:"type:varchar(6);not null"`
	Status          TransactionStatus `json:"status" gorm:"type:varchar(10);not null"`
	BankAccountID   uint              `json:"bankAccountId" gorm:"index;not null"`
	CreatedAt       time.Time         `json:"createdAt"`
}

type LoanRequest struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(18,2);not null"`
	Interest      decimal.Decimal `json:"interest" gorm:"type:numeric(9,4);not null"`
	Status        LoanStatus      `json:"status" gorm:"type:varchar(8);not null"`
	BankAccountID uint            `json:"bankAccountId" gorm:"index;not null"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// LoanAccount is opened only for an approved LoanRequest and mirrors its terms.
type LoanAccount struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(18,2);not null"`
	Interest      decimal.Decimal `json:"interest" gorm:"type:numeric(9,4);not null"`
	BankAccountID uint            `json:"bankAccountId" gorm:"index;not null"`
	LoanRequestID uint            `json:"loanRequestId" gorm:"uniqueIndex;not null"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// LoanDecision is the outcome of a loan application. Exactly one of
// LoanAccount (approved) or LoanRequest (rejected) is set for the response.
type LoanDecision struct {
	Message     string       `json:"message"`
	LoanAccount *LoanAccount `json:"loanAccount,omitempty"`
	LoanRequest *LoanRequest `json:"loanRequest,omitempty"`
}

func (d *LoanDecision) Approved() bool {
	return d.LoanAccount != nil
}
