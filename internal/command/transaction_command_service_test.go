package command

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgdesh/bank-api/internal/cqrs"
	"github.com/sgdesh/bank-api/internal/events"
	"github.com/sgdesh/bank-api/internal/models"
)

func TestNextBalance(t *testing.T) {
	ten := decimal.NewFromInt(10)
	three := decimal.NewFromInt(3)
	assert.True(t, nextBalance(ten, three, models.Credit).Equal(decimal.NewFromInt(13)))
	assert.True(t, nextBalance(ten, three, models.Debit).Equal(decimal.NewFromInt(7)))
	assert.True(t, nextBalance(three, ten, models.Debit).IsNegative())
}

func TestCreateTransaction(t *testing.T) {
	tests := []struct {
		name            string
		opening         int64
		amount          string
		kind            models.TransactionType
		expectedStatus  models.TransactionStatus
		expectedBalance string
	}{
		{"credit adds to balance", 0, "50.25", models.Credit, models.TransactionSuccessful, "50.25"},
		{"debit within balance", 100, "40", models.Debit, models.TransactionSuccessful, "60"},
		{"debit to exactly zero", 100, "100", models.Debit, models.TransactionSuccessful, "0"},
		{"overdrawing debit fails", 100, "100.01", models.Debit, models.TransactionFailed, "100"},
		{"debit from empty account fails", 0, "1", models.Debit, models.TransactionFailed, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture()
			acc := f.account(t)
			_, err := f.accounts.UpdateAccount(ctx, cqrs.UpdateAccountCommand{AccountID: acc.ID, Balance: decimal.NewFromInt(tt.opening)})
			require.NoError(t, err)

			tx, err := f.transactions.CreateTransaction(ctx, cqrs.CreateTransactionCommand{
				BankAccountID:   acc.ID,
				Amount:          decimal.RequireFromString(tt.amount),
				Description:     tt.name,
				TransactionType: tt.kind,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, tx.Status)
			assert.NotZero(t, tx.ID)

			stored, err := f.store.Accounts().GetByID(ctx, acc.ID)
			require.NoError(t, err)
			assert.True(t, stored.Balance.Equal(decimal.RequireFromString(tt.expectedBalance)),
				"balance %s, want %s", stored.Balance, tt.expectedBalance)

			history, err := f.store.Transactions().ListByAccountID(ctx, acc.ID)
			require.NoError(t, err)
			assert.Len(t, history, 1)
		})
	}
}

func TestCreateTransactionEvents(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	acc := f.account(t)

	_, err := f.transactions.CreateTransaction(ctx, cqrs.CreateTransactionCommand{
		BankAccountID: acc.ID, Amount: decimal.NewFromInt(5), TransactionType: models.Credit,
	})
	require.NoError(t, err)
	_, err = f.transactions.CreateTransaction(ctx, cqrs.CreateTransactionCommand{
		BankAccountID: acc.ID, Amount: decimal.NewFromInt(50), TransactionType: models.Debit,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		events.CustomerCreated, events.AccountCreated,
		events.TransactionCreated, events.BalanceUpdated,
		events.TransactionCreated,
	}, f.publisher.types())
}

func TestCreateTransactionRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	acc := f.account(t)

	_, err := f.transactions.CreateTransaction(ctx, cqrs.CreateTransactionCommand{
		BankAccountID: acc.ID, Amount: decimal.Zero, TransactionType: models.Credit,
	})
	assert.Equal(t, models.KindValidation, models.KindOf(err))

	_, err = f.transactions.CreateTransaction(ctx, cqrs.CreateTransactionCommand{
		BankAccountID: acc.ID, Amount: decimal.NewFromInt(1), TransactionType: "REFUND",
	})
	assert.Equal(t, models.KindValidation, models.KindOf(err))

	_, err = f.transactions.CreateTransaction(ctx, cqrs.CreateTransactionCommand{
		BankAccountID: acc.ID + 1, Amount: decimal.NewFromInt(1), TransactionType: models.Credit,
	})
	assert.ErrorIs(t, err, models.ErrAccountNotFound)
}

func TestCreateTransactionRejectsAmountsTheLedgerCannotHold(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	acc := f.account(t)

	for _, amount := range []string{"0.004", "12.345", "10000000000000000"} {
		_, err := f.transactions.CreateTransaction(ctx, cqrs.CreateTransactionCommand{
			BankAccountID: acc.ID, Amount: decimal.RequireFromString(amount), TransactionType: models.Credit,
		})
		assert.Equal(t, models.KindValidation, models.KindOf(err), amount)
	}

	top := decimal.RequireFromString("9999999999999999.99")
	_, err := f.accounts.UpdateAccount(ctx, cqrs.UpdateAccountCommand{AccountID: acc.ID, Balance: top})
	require.NoError(t, err)
	_, err = f.transactions.CreateTransaction(ctx, cqrs.CreateTransactionCommand{
		BankAccountID: acc.ID, Amount: decimal.RequireFromString("0.01"), TransactionType: models.Credit,
	})
	assert.Equal(t, models.KindValidation, models.KindOf(err))

	stored, err := f.store.Accounts().GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.True(t, stored.Balance.Equal(top))
	history, err := f.store.Transactions().ListByAccountID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestConcurrentDebitsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	acc := f.account(t)
	_, err := f.accounts.UpdateAccount(ctx, cqrs.UpdateAccountCommand{AccountID: acc.ID, Balance: decimal.NewFromInt(100)})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.transactions.CreateTransaction(ctx, cqrs.CreateTransactionCommand{
				BankAccountID: acc.ID, Amount: decimal.NewFromInt(10), TransactionType: models.Debit,
			})
		}()
	}
	wg.Wait()

	stored, err := f.store.Accounts().GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.True(t, stored.Balance.IsZero())

	history, err := f.store.Transactions().ListByAccountID(ctx, acc.ID)
	require.NoError(t, err)
	var ok, failed int
	for _, tx := range history {
		if tx.Status == models.TransactionSuccessful {
			ok++
		} else {
			failed++
		}
	}
	assert.Equal(t, 10, ok)
	assert.Equal(t, 10, failed)
}
