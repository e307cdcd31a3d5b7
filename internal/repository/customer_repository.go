package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sgdesh/bank-api/internal/models"
)

type gormCustomerRepository struct {
	db *gorm.DB
}

func (r *gormCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateCustomer
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *gormCustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := r.db.WithContext(ctx).Order("created_at").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (r *gormCustomerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

func (r *gormCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	result := r.db.WithContext(ctx).Model(&models.Customer{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"first_name":    customer.FirstName,
			"last_name":     customer.LastName,
			"email":         customer.Email,
			"mobile_number": customer.MobileNumber,
			"updated_at":    customer.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return models.ErrDuplicateCustomer
		}
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrCustomerNotFound
	}
	return nil
}

func (r *gormCustomerRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Customer{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrCustomerNotFound
	}
	return nil
}
