package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sgdesh/bank-api/internal/models"
)

type gormAccountRepository struct {
	db *gorm.DB
}

func (r *gormAccountRepository) Create(ctx context.Context, account *models.BankAccount) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("failed to create bank account: %w", err)
	}
	return nil
}

func (r *gormAccountRepository) GetByID(ctx context.Context, id uint) (*models.BankAccount, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *gormAccountRepository) GetForUpdate(ctx context.Context, id uint) (*models.BankAccount, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *gormAccountRepository) get(db *gorm.DB, id uint) (*models.BankAccount, error) {
	var account models.BankAccount
	err := db.Where("id = ?", id).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bank account: %w", err)
	}
	return &account, nil
}

func (r *gormAccountRepository) ListByCustomerID(ctx context.Context, customerID string) ([]models.BankAccount, error) {
	accounts := []models.BankAccount{}
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("id").Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	return accounts, nil
}

func (r *gormAccountRepository) CountByCustomerID(ctx context.Context, customerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BankAccount{}).Where("customer_id = ?", customerID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count bank accounts: %w", err)
	}
	return count, nil
}

func (r *gormAccountRepository) UpdateBalance(ctx context.Context, id uint, balance decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&models.BankAccount{}).
		Where("id = ?", id).
		Updates(map[string]any{"balance": balance, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return fmt.Errorf("failed to update balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrAccountNotFound
	}
	return nil
}

func (r *gormAccountRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.BankAccount{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete bank account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrAccountNotFound
	}
	return nil
}
