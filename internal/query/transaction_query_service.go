package query

import (
	"context"

	"github.com/sgdesh/bank-api/internal/cqrs"
	"github.com/sgdesh/bank-api/internal/models"
	"github.com/sgdesh/bank-api/internal/repository"
)

type TransactionQueryService struct {
	readRepo *repository.AccountReadRepository
}

func NewTransactionQueryService(readRepo *repository.AccountReadRepository) *TransactionQueryService {
	return &TransactionQueryService{readRepo: readRepo}
}

// ListTransactions returns every recorded attempt against the account, oldest
// first. An unknown account has no transactions.
func (s *TransactionQueryService) ListTransactions(ctx context.Context, q cqrs.ListTransactionsQuery) ([]models.Transaction, error) {
	return s.readRepo.ListTransactions(ctx, q.BankAccountID)
}
