package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sgdesh/bank-api/internal/models"
)

// CustomerRepository persists customers. Create and Update report
// models.ErrDuplicateCustomer when the email or mobile number is taken.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	List(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
}

type AccountRepository interface {
	Create(ctx context.Context, account *models.BankAccount) error
	GetByID(ctx context.Context, id uint) (*models.BankAccount, error)
	// GetForUpdate loads the account and holds its row lock until the
	// enclosing Atomic unit ends.
	GetForUpdate(ctx context.Context, id uint) (*models.BankAccount, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]models.BankAccount, error)
	CountByCustomerID(ctx context.Context, customerID string) (int64, error)
	UpdateBalance(ctx context.Context, id uint, balance decimal.Decimal) error
	Delete(ctx context.Context, id uint) error
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	ListByAccountID(ctx context.Context, accountID uint) ([]models.Transaction, error)
	DeleteByAccountID(ctx context.Context, accountID uint) error
}

type LoanRepository interface {
	CreateRequest(ctx context.Context, request *models.LoanRequest) error
	ListRequestsByAccountID(ctx context.Context, accountID uint) ([]models.LoanRequest, error)
	DeleteRequestsByAccountID(ctx context.Context, accountID uint) error
	CreateAccount(ctx context.Context, account *models.LoanAccount) error
	GetAccount(ctx context.Context, id uint) (*models.LoanAccount, error)
	CountAccountsByAccountID(ctx context.Context, accountID uint) (int64, error)
}

// Store groups the repositories over one backing store. Atomic runs fn
// against a Store bound to a single database transaction: if fn returns an
// error every write made through that Store is rolled back.
type Store interface {
	Customers() CustomerRepository
	Accounts() AccountRepository
	Transactions() TransactionRepository
	Loans() LoanRepository
	Atomic(ctx context.Context, fn func(tx Store) error) error
}
