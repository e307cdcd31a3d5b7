package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgdesh/bank-api/internal/models"
)

func newCustomer(id, email, mobile string) *models.Customer {
	return &models.Customer{ID: id, FirstName: "Ada", LastName: "Lovelace", Email: email, MobileNumber: mobile}
}

func TestMemoryCustomersUniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Customers().Create(ctx, newCustomer("c1", "ada@example.com", "0123456789")))

	err := store.Customers().Create(ctx, newCustomer("c2", "ada@example.com", "9999999999"))
	assert.ErrorIs(t, err, models.ErrDuplicateCustomer)

	err = store.Customers().Create(ctx, newCustomer("c3", "other@example.com", "0123456789"))
	assert.ErrorIs(t, err, models.ErrDuplicateCustomer)

	// Updating a customer with its own values is not a conflict.
	assert.NoError(t, store.Customers().Update(ctx, newCustomer("c1", "ada@example.com", "0123456789")))

	customers, err := store.Customers().List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestMemoryNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Customers().GetByID(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrCustomerNotFound)
	assert.ErrorIs(t, store.Customers().Delete(ctx, "missing"), models.ErrCustomerNotFound)
	assert.ErrorIs(t, store.Customers().Update(ctx, newCustomer("missing", "a@b.co", "0123456789")), models.ErrCustomerNotFound)

	_, err = store.Accounts().GetByID(ctx, 42)
	assert.ErrorIs(t, err, models.ErrAccountNotFound)
	assert.ErrorIs(t, store.Accounts().UpdateBalance(ctx, 42, decimal.NewFromInt(1)), models.ErrAccountNotFound)
	assert.ErrorIs(t, store.Accounts().Delete(ctx, 42), models.ErrAccountNotFound)

	_, err = store.Loans().GetAccount(ctx, 42)
	assert.ErrorIs(t, err, models.ErrLoanNotFound)
}

func TestMemoryAtomicRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	account := &models.BankAccount{CustomerID: "c1", Balance: decimal.NewFromInt(50)}
	require.NoError(t, store.Accounts().Create(ctx, account))

	boom := errors.New("boom")
	err := store.Atomic(ctx, func(tx Store) error {
		require.NoError(t, tx.Transactions().Create(ctx, &models.Transaction{BankAccountID: account.ID, Amount: decimal.NewFromInt(10)}))
		require.NoError(t, tx.Accounts().UpdateBalance(ctx, account.ID, decimal.NewFromInt(60)))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := store.Accounts().GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(50)))

	transactions, err := store.Transactions().ListByAccountID(ctx, account.ID)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestMemoryAtomicCommits(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	account := &models.BankAccount{CustomerID: "c1"}
	require.NoError(t, store.Accounts().Create(ctx, account))

	err := store.Atomic(ctx, func(tx Store) error {
		if err := tx.Transactions().Create(ctx, &models.Transaction{BankAccountID: account.ID, Amount: decimal.NewFromInt(5)}); err != nil {
			return err
		}
		// Nested units join the outer one.
		return tx.Atomic(ctx, func(inner Store) error {
			return inner.Accounts().UpdateBalance(ctx, account.ID, decimal.NewFromInt(5))
		})
	})
	require.NoError(t, err)

	got, err := store.Accounts().GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(5)))

	transactions, err := store.Transactions().ListByAccountID(ctx, account.ID)
	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}

func TestMemoryListsAreScopedAndOrdered(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, owner := range []string{"c1", "c2", "c1"} {
		require.NoError(t, store.Accounts().Create(ctx, &models.BankAccount{CustomerID: owner}))
	}

	accounts, err := store.Accounts().ListByCustomerID(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, uint(1), accounts[0].ID)
	assert.Equal(t, uint(3), accounts[1].ID)

	count, err := store.Accounts().CountByCustomerID(ctx, "c2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	none, err := store.Accounts().ListByCustomerID(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
