package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sgdesh/bank-api/internal/models"
)

type gormLoanRepository struct {
	db *gorm.DB
}

func (r *gormLoanRepository) CreateRequest(ctx context.Context, request *models.LoanRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return fmt.Errorf("failed to create loan request: %w", err)
	}
	return nil
}

func (r *gormLoanRepository) ListRequestsByAccountID(ctx context.Context, accountID uint) ([]models.LoanRequest, error) {
	requests := []models.LoanRequest{}
	err := r.db.WithContext(ctx).Where("bank_account_id = ?", accountID).Order("id").Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list loan requests: %w", err)
	}
	return requests, nil
}

func (r *gormLoanRepository) DeleteRequestsByAccountID(ctx context.Context, accountID uint) error {
	if err := r.db.WithContext(ctx).Where("bank_account_id = ?", accountID).Delete(&models.LoanRequest{}).Error; err != nil {
		return fmt.Errorf("failed to delete loan requests: %w", err)
	}
	return nil
}

func (r *gormLoanRepository) CreateAccount(ctx context.Context, account *models.LoanAccount) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("failed to create loan account: %w", err)
	}
	return nil
}

func (r *gormLoanRepository) GetAccount(ctx context.Context, id uint) (*models.LoanAccount, error) {
	var account models.LoanAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrLoanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get loan account: %w", err)
	}
	return &account, nil
}

func (r *gormLoanRepository) CountAccountsByAccountID(ctx context.Context, accountID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.LoanAccount{}).Where("bank_account_id = ?", accountID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count loan accounts: %w", err)
	}
	return count, nil
}
