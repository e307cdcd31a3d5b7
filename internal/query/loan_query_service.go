package query

import (
	"context"

	"github.com/sgdesh/bank-api/internal/cqrs"
	"github.com/sgdesh/bank-api/internal/models"
	"github.com/sgdesh/bank-api/internal/repository"
)

type LoanQueryService struct {
	readRepo *repository.LoanReadRepository
}

func NewLoanQueryService(readRepo *repository.LoanReadRepository) *LoanQueryService {
	return &LoanQueryService{readRepo: readRepo}
}

func (s *LoanQueryService) GetLoan(ctx context.Context, q cqrs.GetLoanQuery) (*models.LoanAccount, error) {
	return s.readRepo.GetAccount(ctx, q.LoanAccountID)
}
