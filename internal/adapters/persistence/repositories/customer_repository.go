package repositories

import (
	"context"

	"swiftpay/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// customerRepository implements CustomerRepository
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// Create creates a new customer
func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// GetByID gets a customer by ID
func (r *customerRepository) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByEmailAndAccount gets the customer record matching both identifiers.
// Login requires email and account number to match the same record.
func (r *customerRepository) GetByEmailAndAccount(ctx context.Context, email, accountNumber string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("email = ? AND account_number = ?", email, accountNumber).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// ExistsByAny reports whether any record matches any of the given pairs.
func (r *customerRepository) ExistsByAny(ctx context.Context, pairs []FieldValue) (bool, error) {
	if len(pairs) == 0 {
		return false, nil
	}

	query := r.db.WithContext(ctx).Model(&models.Customer{})
	cond := r.db.Where(pairs[0].Field+" = ?", pairs[0].Value)
	for _, p := range pairs[1:] {
		cond = cond.Or(p.Field+" = ?", p.Value)
	}

	var count int64
	err := query.Where(cond).Count(&count).Error
	return count > 0, err
}
