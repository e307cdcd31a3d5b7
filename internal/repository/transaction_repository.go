package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sgdesh/bank-api/internal/models"
)

type gormTransactionRepository struct {
	db *gorm.DB
}

func (r *gormTransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *gormTransactionRepository) ListByAccountID(ctx context.Context, accountID uint) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	err := r.db.WithContext(ctx).Where("bank_account_id = ?", accountID).Order("id").Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (r *gormTransactionRepository) DeleteByAccountID(ctx context.Context, accountID uint) error {
	if err := r.db.WithContext(ctx).Where("bank_account_id = ?", accountID).Delete(&models.Transaction{}).Error; err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	return nil
}
