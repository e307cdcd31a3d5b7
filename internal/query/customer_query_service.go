package query

import (
	"context"

	"github.com/sgdesh/bank-api/internal/cqrs"
	"github.com/sgdesh/bank-api/internal/models"
	"github.com/sgdesh/bank-api/internal/repository"
)

type CustomerQueryService struct {
	readRepo *repository.CustomerReadRepository
}

func NewCustomerQueryService(readRepo *repository.CustomerReadRepository) *CustomerQueryService {
	return &CustomerQueryService{readRepo: readRepo}
}

func (s *CustomerQueryService) GetCustomer(ctx context.Context, q cqrs.GetCustomerQuery) (*models.Customer, error) {
	return s.readRepo.GetByID(ctx, q.CustomerID)
}

func (s *CustomerQueryService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.readRepo.List(ctx)
}
