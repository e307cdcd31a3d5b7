package query

import (
	"context"

	"github.com/sgdesh/bank-api/internal/cqrs"
	"github.com/sgdesh/bank-api/internal/models"
	"github.com/sgdesh/bank-api/internal/repository"
)

type AccountQueryService struct {
	readRepo *repository.AccountReadRepository
}

func NewAccountQueryService(readRepo *repository.AccountReadRepository) *AccountQueryService {
	return &AccountQueryService{readRepo: readRepo}
}

func (s *AccountQueryService) GetAccount(ctx context.Context, q cqrs.GetAccountQuery) (*models.BankAccount, error) {
	return s.readRepo.GetByID(ctx, q.AccountID)
}

// ListAccounts returns the customer's accounts; an unknown customer simply has none.
func (s *AccountQueryService) ListAccounts(ctx context.Context, q cqrs.ListAccountsQuery) ([]models.BankAccount, error) {
	return s.readRepo.ListByCustomerID(ctx, q.CustomerID)
}
