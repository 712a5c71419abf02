package repositories

import (
	"context"

	"swiftpay/internal/adapters/persistence/models"
)

// EmployeeRepository defines employee data access
type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uint) (*models.Employee, error)
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// CustomerRepository defines customer data access.
// ExistsByAny is the duplicate check at registration: it reports whether any
// record matches any of the given (column, value) pairs.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	GetByEmailAndAccount(ctx context.Context, email, accountNumber string) (*models.Customer, error)
	ExistsByAny(ctx context.Context, pairs []FieldValue) (bool, error)
}

// FieldValue is one (column, value) pair for an existence check.
type FieldValue struct {
	Field string
	Value string
}

// PaymentRepository defines payment data access
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id uint) (*models.Payment, error)
	List(ctx context.Context, status string, offset, limit int) ([]*models.Payment, int64, error)
	ListByCustomer(ctx context.Context, customerID uint, offset, limit int) ([]*models.Payment, int64, error)
	GetAllByStatus(ctx context.Context, status string) ([]*models.Payment, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// CounterRepository defines durable named running totals
type CounterRepository interface {
	Increment(ctx context.Context, name string, delta int64) error
	Get(ctx context.Context, name string) (int64, error)
}
