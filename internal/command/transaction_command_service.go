package command

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"github.com/sgdesh/bank-api/internal/cqrs"
	"github.com/sgdesh/bank-api/internal/events"
	"github.com/sgdesh/bank-api/internal/models"
	"github.com/sgdesh/bank-api/internal/repository"
)

var (
	errNonPositiveAmount = models.Invalid("Amount must be greater than zero")
	errTransactionType   = models.Invalid("transactionType must be CREDIT or DEBIT")
)

// TransactionCommandService applies debits and credits to bank accounts.
//
// The transaction record and the balance it produces are written in one
// atomic unit under the account's row lock, so a returned SUCCESSFUL record
// always matches the stored balance and concurrent debits cannot both pass
// the overdraft check against the same starting balance.
type TransactionCommandService struct {
	store     repository.Store
	publisher EventPublisher
}

func NewTransactionCommandService(
	store repository.Store,
	publisher EventPublisher,
) *TransactionCommandService {
	return &TransactionCommandService{
		store:     store,
		publisher: publisher,
	}
}

// CreateTransaction records the attempt and, unless it is a debit that would
// overdraw the account, moves the balance. An overdrawing debit is stored
// with status FAILED and the balance is left alone; that is a normal result,
// not an error.
func (s *TransactionCommandService) CreateTransaction(ctx context.Context, cmd cqrs.CreateTransactionCommand) (*models.Transaction, error) {
	if !cmd.Amount.IsPositive() {
		return nil, errNonPositiveAmount
	}
	if err := models.CheckMoney("amount", cmd.Amount); err != nil {
		return nil, err
	}
	if cmd.TransactionType != models.Credit && cmd.TransactionType != models.Debit {
		return nil, errTransactionType
	}

	transaction := &models.Transaction{
		Amount:          cmd.Amount,
		Description:     cmd.Description,
		TransactionType: cmd.TransactionType,
		BankAccountID:   cmd.BankAccountID,
	}
	var newBalance decimal.Decimal
	err := s.store.Atomic(ctx, func(tx repository.Store) error {
		account, err := tx.Accounts().GetForUpdate(ctx, cmd.BankAccountID)
		if err != nil {
			return err
		}

		newBalance = nextBalance(account.Balance, cmd.Amount, cmd.TransactionType)
		if err := models.CheckMoney("balance", newBalance); err != nil {
			return err
		}
		if cmd.TransactionType == models.Debit && newBalance.IsNegative() {
			transaction.Status = models.TransactionFailed
			return tx.Transactions().Create(ctx, transaction)
		}

		transaction.Status = models.TransactionSuccessful
		if err := tx.Transactions().Create(ctx, transaction); err != nil {
			return err
		}
		return tx.Accounts().UpdateBalance(ctx, account.ID, newBalance)
	})
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.LedgerEventsStream, events.TransactionCreated, events.TransactionCreatedEvent{
		TransactionID:   transaction.ID,
		BankAccountID:   transaction.BankAccountID,
		Amount:          transaction.Amount,
		TransactionType: string(transaction.TransactionType),
		Status:          string(transaction.Status),
	}); err != nil {
		log.Printf("Failed to publish transaction.created event: %v", err)
	}
	if transaction.Status != models.TransactionSuccessful {
		log.Printf("Debit of %s rejected for account %d: insufficient balance", transaction.Amount, transaction.BankAccountID)
		return transaction, nil
	}

	change := transaction.Amount
	if transaction.TransactionType == models.Debit {
		change = change.Neg()
	}
	if err := s.publisher.Publish(ctx, events.LedgerEventsStream, events.BalanceUpdated, events.BalanceUpdatedEvent{
		BankAccountID: transaction.BankAccountID,
		NewBalance:    newBalance,
		Change:        change,
	}); err != nil {
		log.Printf("Failed to publish balance.updated event: %v", err)
	}
	return transaction, nil
}

func nextBalance(balance, amount decimal.Decimal, t models.TransactionType) decimal.Decimal {
	if t == models.Credit {
		return balance.Add(amount)
	}
	return balance.Sub(amount)
}
