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

// AccountCommandService writes bank account state.
type AccountCommandService struct {
	store     repository.Store
	publisher EventPublisher
}

func NewAccountCommandService(
	store repository.Store,
	publisher EventPublisher,
) *AccountCommandService {
	return &AccountCommandService{
		store:     store,
		publisher: publisher,
	}
}

func (s *AccountCommandService) CreateAccount(ctx context.Context, cmd cqrs.CreateAccountCommand) (*models.BankAccount, error) {
	account := &models.BankAccount{
		CustomerID: cmd.CustomerID,
		Balance:    decimal.Zero,
	}
	err := s.store.Atomic(ctx, func(tx repository.Store) error {
		if _, err := tx.Customers().GetByID(ctx, cmd.CustomerID); err != nil {
			return err
		}
		return tx.Accounts().Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}
	if err := s.publisher.Publish(ctx, events.LedgerEventsStream, events.AccountCreated, events.AccountCreatedEvent{
		AccountID:  account.ID,
		CustomerID: account.CustomerID,
	}); err != nil {
		log.Printf("Failed to publish account.created event: %v", err)
	}
	return account, nil
}

// UpdateAccount overwrites the stored balance.
func (s *AccountCommandService) UpdateAccount(ctx context.Context, cmd cqrs.UpdateAccountCommand) (*models.BankAccount, error) {
	if err := models.CheckMoney("balance", cmd.Balance); err != nil {
		return nil, err
	}
	var account *models.BankAccount
	err := s.store.Atomic(ctx, func(tx repository.Store) error {
		if err := tx.Accounts().UpdateBalance(ctx, cmd.AccountID, cmd.Balance); err != nil {
			return err
		}
		var err error
		account, err = tx.Accounts().GetByID(ctx, cmd.AccountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := s.publisher.Publish(ctx, events.LedgerEventsStream, events.AccountUpdated, events.AccountUpdatedEvent{
		AccountID: account.ID,
		Balance:   account.Balance,
	}); err != nil {
		log.Printf("Failed to publish account.updated event: %v", err)
	}
	return account, nil
}

// DeleteAccount removes the account together with its transactions and loan
// requests. Accounts that still hold loan accounts cannot be deleted.
func (s *AccountCommandService) DeleteAccount(ctx context.Context, cmd cqrs.DeleteAccountCommand) error {
	var account *models.BankAccount
	err := s.store.Atomic(ctx, func(tx repository.Store) error {
		var err error
		account, err = tx.Accounts().GetForUpdate(ctx, cmd.AccountID)
		if err != nil {
			return err
		}
		loans, err := tx.Loans().CountAccountsByAccountID(ctx, cmd.AccountID)
		if err != nil {
			return err
		}
		if loans > 0 {
			return models.ErrAccountHasLoans
		}
		if err := tx.Transactions().DeleteByAccountID(ctx, cmd.AccountID); err != nil {
			return err
		}
		if err := tx.Loans().DeleteRequestsByAccountID(ctx, cmd.AccountID); err != nil {
			return err
		}
		return tx.Accounts().Delete(ctx, cmd.AccountID)
	})
	if err != nil {
		return err
	}
	if err := s.publisher.Publish(ctx, events.LedgerEventsStream, events.AccountDeleted, events.AccountDeletedEvent{
		AccountID:  account.ID,
		CustomerID: account.CustomerID,
	}); err != nil {
		log.Printf("Failed to publish account.deleted event: %v", err)
	}
	return nil
}
