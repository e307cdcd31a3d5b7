package command

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sgdesh/bank-api/internal/cqrs"
	"github.com/sgdesh/bank-api/internal/events"
	"github.com/sgdesh/bank-api/internal/models"
	"github.com/sgdesh/bank-api/internal/repository"
)

// CustomerCommandService writes customer state and keeps the read model in sync.
type CustomerCommandService struct {
	store     repository.Store
	readRepo  *repository.CustomerReadRepository
	publisher EventPublisher
}

func NewCustomerCommandService(
	store repository.Store,
	readRepo *repository.CustomerReadRepository,
	publisher EventPublisher,
) *CustomerCommandService {
	return &CustomerCommandService{
		store:     store,
		readRepo:  readRepo,
		publisher: publisher,
	}
}

func (s *CustomerCommandService) CreateCustomer(ctx context.Context, cmd cqrs.CreateCustomerCommand) (*models.Customer, error) {
	if !models.ValidMobileNumber(cmd.MobileNumber) {
		return nil, models.ErrInvalidMobileNumber
	}
	now := time.Now().UTC()
	customer := &models.Customer{
		ID:           uuid.NewString(),
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		Email:        cmd.Email,
		MobileNumber: cmd.MobileNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Customers().Create(ctx, customer); err != nil {
		return nil, err
	}
	if err := s.publisher.Publish(ctx, events.CustomerEventsStream, events.CustomerCreated, events.CustomerCreatedEvent{
		CustomerID: customer.ID,
		Email:      customer.Email,
	}); err != nil {
		log.Printf("Failed to publish customer.created event: %v", err)
	}
	return customer, nil
}

// UpdateCustomer applies the fields present in cmd and leaves the rest as stored.
func (s *CustomerCommandService) UpdateCustomer(ctx context.Context, cmd cqrs.UpdateCustomerCommand) (*models.Customer, error) {
	customer, err := s.store.Customers().GetByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if cmd.FirstName != nil {
		customer.FirstName = *cmd.FirstName
	}
	if cmd.LastName != nil {
		customer.LastName = *cmd.LastName
	}
	if cmd.Email != nil {
		customer.Email = *cmd.Email
	}
	if cmd.MobileNumber != nil {
		if !models.ValidMobileNumber(*cmd.MobileNumber) {
			return nil, models.ErrInvalidMobileNumber
		}
		customer.MobileNumber = *cmd.MobileNumber
	}
	customer.UpdatedAt = time.Now().UTC()
	if err := s.store.Customers().Update(ctx, customer); err != nil {
		return nil, err
	}
	s.readRepo.InvalidateCustomer(ctx, customer.ID)
	if err := s.publisher.Publish(ctx, events.CustomerEventsStream, events.CustomerUpdated, events.CustomerUpdatedEvent{
		CustomerID: customer.ID,
		Email:      customer.Email,
	}); err != nil {
		log.Printf("Failed to publish customer.updated event: %v", err)
	}
	return customer, nil
}

// DeleteCustomer rejects the operation while the customer still owns bank accounts.
func (s *CustomerCommandService) DeleteCustomer(ctx context.Context, cmd cqrs.DeleteCustomerCommand) error {
	err := s.store.Atomic(ctx, func(tx repository.Store) error {
		if _, err := tx.Customers().GetByID(ctx, cmd.CustomerID); err != nil {
			return err
		}
		count, err := tx.Accounts().CountByCustomerID(ctx, cmd.CustomerID)
		if err != nil {
			return err
		}
		if count > 0 {
			return models.ErrCustomerHasAccounts
		}
		return tx.Customers().Delete(ctx, cmd.CustomerID)
	})
	if err != nil {
		return err
	}
	s.readRepo.InvalidateCustomer(ctx, cmd.CustomerID)
	if err := s.publisher.Publish(ctx, events.CustomerEventsStream, events.CustomerDeleted, events.CustomerDeletedEvent{
		CustomerID: cmd.CustomerID,
	}); err != nil {
		log.Printf("Failed to publish customer.deleted event: %v", err)
	}
	return nil
}
