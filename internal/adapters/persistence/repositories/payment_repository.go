package repositories

import (
	"context"
	"errors"

	"swiftpay/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// paymentRepository implements PaymentRepository
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create creates a new payment
func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// GetByID gets a payment by ID
func (r *paymentRepository) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// List lists payments, newest first, optionally filtered by status.
// An empty status means no filter. Ordering by creation time is a usability
// choice, not a contract.
func (r *paymentRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.Payment, int64, error) {
	var payments []*models.Payment
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Payment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&payments).Error

	return payments, total, err
}

// ListByCustomer lists a customer's own payments, newest first
func (r *paymentRepository) ListByCustomer(ctx context.Context, customerID uint, offset, limit int) ([]*models.Payment, int64, error) {
	var payments []*models.Payment
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Payment{}).Where("customer_id = ?", customerID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&payments).Error

	return payments, total, err
}

// GetAllByStatus fetches every payment in the given status, unpaginated.
// Used by the bulk SWIFT submission sweep.
func (r *paymentRepository) GetAllByStatus(ctx context.Context, status string) ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&payments).Error
	return payments, err
}

// UpdateStatus persists a status change for a single payment
func (r *paymentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus counts payments in the given status
func (r *paymentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// DeleteAll soft deletes every payment. Administrative escape hatch only.
func (r *paymentRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Payment{})
	return result.RowsAffected, result.Error
}

// counterRepository implements CounterRepository
type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new counter repository
func NewCounterRepository(db *gorm.DB) CounterRepository {
	return &counterRepository{db: db}
}

// Increment adds delta to a named counter, creating the row if absent
func (r *counterRepository) Increment(ctx context.Context, name string, delta int64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"value": gorm.Expr("value + ?", delta)}),
		}).
		Create(&models.Counter{Name: name, Value: delta}).Error
}

// Get returns the current value of a named counter, zero if absent
func (r *counterRepository) Get(ctx context.Context, name string) (int64, error) {
	var counter models.Counter
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&counter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return counter.Value, nil
}
