package repository

import (
	"context"
	"strconv"

	"github.com/sgdesh/bank-api/internal/models"
	"github.com/sgdesh/bank-api/internal/redis"
)

// Redis key prefixes for the cached read models.
const (
	CustomerViewKeyPrefix    = "customer:view:"
	LoanAccountViewKeyPrefix = "loan:view:"
)

func idKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// CustomerReadRepository serves customer reads from the Redis read model,
// falling back to the store and warming the cache on every cold read.
type CustomerReadRepository struct {
	store Store
	cache redis.Cache[models.Customer]
}

func NewCustomerReadRepository(store Store, cache redis.Cache[models.Customer]) *CustomerReadRepository {
	return &CustomerReadRepository{store: store, cache: cache}
}

func (r *CustomerReadRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	if customer, ok := r.cache.Get(ctx, id); ok {
		return customer, nil
	}
	customer, err := r.store.Customers().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, id, customer)
	return customer, nil
}

func (r *CustomerReadRepository) List(ctx context.Context) ([]models.Customer, error) {
	return r.store.Customers().List(ctx)
}

// InvalidateCustomer drops the cached view after a write; the next read
// reloads it from the store.
func (r *CustomerReadRepository) InvalidateCustomer(ctx context.Context, id string) {
	r.cache.Delete(ctx, id)
}

// AccountReadRepository serves bank account reads straight from the store.
// Balances change on every transaction, and a view cached after a commit can
// land behind a newer write, so account views are never cached.
type AccountReadRepository struct {
	store Store
}

func NewAccountReadRepository(store Store) *AccountReadRepository {
	return &AccountReadRepository{store: store}
}

func (r *AccountReadRepository) GetByID(ctx context.Context, id uint) (*models.BankAccount, error) {
	return r.store.Accounts().GetByID(ctx, id)
}

func (r *AccountReadRepository) ListByCustomerID(ctx context.Context, customerID string) ([]models.BankAccount, error) {
	return r.store.Accounts().ListByCustomerID(ctx, customerID)
}

func (r *AccountReadRepository) ListTransactions(ctx context.Context, accountID uint) ([]models.Transaction, error) {
	return r.store.Transactions().ListByAccountID(ctx, accountID)
}

// LoanReadRepository serves loan account reads. Loan accounts never change
// after creation, so a cached entry is never stale.
type LoanReadRepository struct {
	store Store
	cache redis.Cache[models.LoanAccount]
}

func NewLoanReadRepository(store Store, cache redis.Cache[models.LoanAccount]) *LoanReadRepository {
	return &LoanReadRepository{store: store, cache: cache}
}

func (r *LoanReadRepository) GetAccount(ctx context.Context, id uint) (*models.LoanAccount, error) {
	if account, ok := r.cache.Get(ctx, idKey(id)); ok {
		return account, nil
	}
	account, err := r.store.Loans().GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, idKey(id), account)
	return account, nil
}

func (r *LoanReadRepository) CacheLoanAccount(ctx context.Context, account *models.LoanAccount) {
	r.cache.Set(ctx, idKey(account.ID), account)
}
