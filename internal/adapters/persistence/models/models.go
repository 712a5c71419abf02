package models

import (
	"time"

	"gorm.io/gorm"
)

// Account roles
const (
	RoleEmployee = "employee"
	RoleCustomer = "customer"
)

// Employee represents the employees table. Employees verify and submit
// payments; they are provisioned by registration or the seeder.
type Employee struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FullName  string         `gorm:"size:100;not null" json:"full_name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'employee'" json:"role"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Employee) TableName() string {
	return "employees"
}

// Customer represents the customers table. The password is stored only as
// an Argon2id hash; the plaintext never reaches persistence.
type Customer struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	FullName      string         `gorm:"size:100;not null" json:"full_name"`
	IDNumber      string         `gorm:"uniqueIndex;size:13;not null" json:"id_number"`
	AccountNumber string         `gorm:"uniqueIndex;size:12;not null" json:"account_number"`
	Email         string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password      string         `gorm:"size:255;not null" json:"-"`
	Role          string         `gorm:"size:20;default:'customer'" json:"role"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}

// Payment represents the payments table. CustomerID is stamped at creation
// and never changes; Status moves only through the domain transition table.
type Payment struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Reference          string         `gorm:"uniqueIndex;size:36;not null" json:"reference"`
	CustomerID         uint           `gorm:"index;not null" json:"customer_id"`
	Amount             string         `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency           string         `gorm:"size:3;not null" json:"currency"`
	Provider           string         `gorm:"size:50;not null" json:"provider"`
	PayeeName          string         `gorm:"size:100;not null" json:"payee_name"`
	PayeeAccountNumber string         `gorm:"size:12;not null" json:"payee_account_number"`
	SwiftCode          string         `gorm:"size:11;not null" json:"swift_code"`
	Status             string         `gorm:"size:20;index;default:'Pending'" json:"status"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
	Customer           Customer       `gorm:"foreignKey:CustomerID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

// Counter is a named durable running total. The payments_verified_total row
// survives payments leaving the Verified state, so it is not derivable from
// live record counts.
type Counter struct {
	Name      string    `gorm:"primaryKey;size:50" json:"name"`
	Value     int64     `gorm:"not null;default:0" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Counter) TableName() string {
	return "counters"
}

// CounterVerifiedTotal is the cumulative count of payments ever verified.
const CounterVerifiedTotal = "payments_verified_total"

// AccountResponse DTO shared by both account variants
type AccountResponse struct {
	ID            uint      `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	AccountNumber string    `json:"account_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (e *Employee) ToResponse() *AccountResponse {
	return &AccountResponse{
		ID:        e.ID,
		FullName:  e.FullName,
		Email:     e.Email,
		Role:      e.Role,
		CreatedAt: e.CreatedAt,
	}
}

func (c *Customer) ToResponse() *AccountResponse {
	return &AccountResponse{
		ID:            c.ID,
		FullName:      c.FullName,
		Email:         c.Email,
		Role:          c.Role,
		AccountNumber: c.AccountNumber,
		CreatedAt:     c.CreatedAt,
	}
}

// PaymentResponse DTO
type PaymentResponse struct {
	ID                 uint      `json:"id"`
	Reference          string    `json:"reference"`
	CustomerID         uint      `json:"customer_id"`
	Amount             string    `json:"amount"`
	Currency           string    `json:"currency"`
	Provider           string    `json:"provider"`
	PayeeName          string    `json:"payee_name"`
	PayeeAccountNumber string    `json:"payee_account_number"`
	SwiftCode          string    `json:"swift_code"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

func (p *Payment) ToResponse() *PaymentResponse {
	return &PaymentResponse{
		ID:                 p.ID,
		Reference:          p.Reference,
		CustomerID:         p.CustomerID,
		Amount:             p.Amount,
		Currency:           p.Currency,
		Provider:           p.Provider,
		PayeeName:          p.PayeeName,
		PayeeAccountNumber: p.PayeeAccountNumber,
		SwiftCode:          p.SwiftCode,
		Status:             p.Status,
		CreatedAt:          p.CreatedAt,
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Employee{},
		&Customer{},
		&Payment{},
		&Counter{},
	)
}
