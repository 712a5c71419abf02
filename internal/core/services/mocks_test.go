package services

import (
	"context"
	"sort"
	"time"

	"swiftpay/internal/adapters/persistence/models"
	"swiftpay/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// In-memory fakes of the repository interfaces. Missing records surface as
// gorm.ErrRecordNotFound, matching the real implementations.

type fakeEmployeeRepo struct {
	employees []*models.Employee
	nextID    uint
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{nextID: 1}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, employee *models.Employee) error {
	employee.ID = r.nextID
	employee.CreatedAt = time.Now()
	r.nextID++
	r.employees = append(r.employees, employee)
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id uint) (*models.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*models.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEmployeeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeCustomerRepo struct {
	customers []*models.Customer
	nextID    uint
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{nextID: 1}
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *models.Customer) error {
	customer.ID = r.nextID
	customer.CreatedAt = time.Now()
	r.nextID++
	r.customers = append(r.customers, customer)
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uint) (*models.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) GetByEmailAndAccount(_ context.Context, email, accountNumber string) (*models.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email && c.AccountNumber == accountNumber {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) ExistsByAny(_ context.Context, pairs []repositories.FieldValue) (bool, error) {
	for _, c := range r.customers {
		for _, p := range pairs {
			var v string
			switch p.Field {
			case "email":
				v = c.Email
			case "id_number":
				v = c.IDNumber
			case "account_number":
				v = c.AccountNumber
			}
			if v == p.Value {
				return true, nil
			}
		}
	}
	return false, nil
}

type fakePaymentRepo struct {
	payments []*models.Payment
	nextID   uint
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{nextID: 1}
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	payment.ID = r.nextID
	payment.CreatedAt = time.Now()
	r.nextID++
	r.payments = append(r.payments, payment)
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id uint) (*models.Payment, error) {
	for _, p := range r.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePaymentRepo) List(_ context.Context, status string, offset, limit int) ([]*models.Payment, int64, error) {
	var matched []*models.Payment
	for _, p := range r.payments {
		if status == "" || p.Status == status {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return page(matched, offset, limit), int64(len(matched)), nil
}

func (r *fakePaymentRepo) ListByCustomer(_ context.Context, customerID uint, offset, limit int) ([]*models.Payment, int64, error) {
	var matched []*models.Payment
	for _, p := range r.payments {
		if p.CustomerID == customerID {
			matched = append(matched, p)
		}
	}
	return page(matched, offset, limit), int64(len(matched)), nil
}

func (r *fakePaymentRepo) GetAllByStatus(_ context.Context, status string) ([]*models.Payment, error) {
	var matched []*models.Payment
	for _, p := range r.payments {
		if p.Status == status {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (r *fakePaymentRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	for _, p := range r.payments {
		if p.ID == id {
			p.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakePaymentRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var count int64
	for _, p := range r.payments {
		if p.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakePaymentRepo) DeleteAll(_ context.Context) (int64, error) {
	deleted := int64(len(r.payments))
	r.payments = nil
	return deleted, nil
}

func page(payments []*models.Payment, offset, limit int) []*models.Payment {
	if offset >= len(payments) {
		return nil
	}
	end := len(payments)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return payments[offset:end]
}

type fakeCounterRepo struct {
	counters map[string]int64
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{counters: map[string]int64{}}
}

func (r *fakeCounterRepo) Increment(_ context.Context, name string, delta int64) error {
	r.counters[name] += delta
	return nil
}

func (r *fakeCounterRepo) Get(_ context.Context, name string) (int64, error) {
	return r.counters[name], nil
}
