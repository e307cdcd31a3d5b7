package command

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sgdesh/bank-api/internal/cqrs"
	"github.com/sgdesh/bank-api/internal/models"
	"github.com/sgdesh/bank-api/internal/redis"
	"github.com/sgdesh/bank-api/internal/repository"
)

type publishedEvent struct {
	stream    string
	eventType string
	data      any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, stream, eventType string, data any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{stream, eventType, data})
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.eventType)
	}
	return out
}

type fixture struct {
	store        *repository.MemoryStore
	publisher    *recordingPublisher
	customers    *CustomerCommandService
	accounts     *AccountCommandService
	transactions *TransactionCommandService
	accountRead  *repository.AccountReadRepository
}

func newFixture() *fixture {
	store := repository.NewMemoryStore()
	publisher := &recordingPublisher{}
	customerRead := repository.NewCustomerReadRepository(store, redis.NopCache[models.Customer]{})
	accountRead := repository.NewAccountReadRepository(store)
	return &fixture{
		store:        store,
		publisher:    publisher,
		customers:    NewCustomerCommandService(store, customerRead, publisher),
		accounts:     NewAccountCommandService(store, publisher),
		transactions: NewTransactionCommandService(store, publisher),
		accountRead:  accountRead,
	}
}

func (f *fixture) customer(t *testing.T, email, mobile string) *models.Customer {
	t.Helper()
	c, err := f.customers.CreateCustomer(context.Background(), cqrs.CreateCustomerCommand{
		FirstName: "Meera", LastName: "Nair", Email: email, MobileNumber: mobile,
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) account(t *testing.T) *models.BankAccount {
	t.Helper()
	c := f.customer(t, "meera@example.com", "9876500000")
	acc, err := f.accounts.CreateAccount(context.Background(), cqrs.CreateAccountCommand{CustomerID: c.ID})
	require.NoError(t, err)
	return acc
}
