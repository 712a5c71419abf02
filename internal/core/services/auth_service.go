package services

import (
	"context"
	"errors"
	"log"

	"swiftpay/internal/adapters/persistence/models"
	"swiftpay/internal/adapters/persistence/repositories"
	"swiftpay/internal/config"
	"swiftpay/internal/core/domain"
	"swiftpay/internal/pkg/jwt"
	"swiftpay/internal/pkg/password"
	"swiftpay/internal/pkg/validator"

	"gorm.io/gorm"
)

// AuthService handles registration and login for both account variants.
// It is stateless beyond its collaborators: a successful login yields a
// signed, time-bounded token and nothing server-side.
type AuthService struct {
	employeeRepo repositories.EmployeeRepository
	customerRepo repositories.CustomerRepository
	cfg          *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	employeeRepo repositories.EmployeeRepository,
	customerRepo repositories.CustomerRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		customerRepo: customerRepo,
		cfg:          cfg,
	}
}

// RegisterEmployeeInput represents employee registration input
type RegisterEmployeeInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterCustomerInput represents customer registration input
type RegisterCustomerInput struct {
	FullName      string `json:"full_name"`
	IDNumber      string `json:"id_number"`
	AccountNumber string `json:"account_number"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

// AuthResponse represents a successful authentication
type AuthResponse struct {
	Account     *models.AccountResponse `json:"account"`
	Role        string                  `json:"role"`
	AccessToken string                  `json:"access_token"`
}

// RegisterEmployee registers a new employee account
func (s *AuthService) RegisterEmployee(ctx context.Context, input *RegisterEmployeeInput) (*models.AccountResponse, error) {
	if err := validator.Fields(
		[2]string{validator.FieldFullName, input.FullName},
		[2]string{validator.FieldEmail, input.Email},
		[2]string{validator.FieldPassword, input.Password},
	); err != nil {
		return nil, err
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEntry
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		FullName: input.FullName,
		Email:    input.Email,
		Password: hashed,
		Role:     models.RoleEmployee,
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	log.Printf("✅ Employee registered: %s", employee.Email)
	return employee.ToResponse(), nil
}

// RegisterCustomer registers a new customer account. Registration is
// rejected when any of email, ID number or account number already exists
// on any record.
func (s *AuthService) RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*models.AccountResponse, error) {
	if err := validator.Fields(
		[2]string{validator.FieldFullName, input.FullName},
		[2]string{validator.FieldIDNumber, input.IDNumber},
		[2]string{validator.FieldAccountNumber, input.AccountNumber},
		[2]string{validator.FieldEmail, input.Email},
		[2]string{validator.FieldPassword, input.Password},
	); err != nil {
		return nil, err
	}

	exists, err := s.customerRepo.ExistsByAny(ctx, []repositories.FieldValue{
		{Field: "email", Value: input.Email},
		{Field: "id_number", Value: input.IDNumber},
		{Field: "account_number", Value: input.AccountNumber},
	})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEntry
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		FullName:      input.FullName,
		IDNumber:      input.IDNumber,
		AccountNumber: input.AccountNumber,
		Email:         input.Email,
		Password:      hashed,
		Role:          models.RoleCustomer,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	log.Printf("✅ Customer registered: %s", customer.Email)
	return customer.ToResponse(), nil
}

// LoginEmployee authenticates an employee by email and password.
// A missing account and a wrong password fail identically: callers must not
// learn whether the email exists.
func (s *AuthService) LoginEmployee(ctx context.Context, email, secret string) (*AuthResponse, error) {
	employee, err := s.employeeRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(secret, employee.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateAccessToken(employee.ID, models.RoleEmployee, s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Employee logged in: %s", employee.Email)
	return &AuthResponse{
		Account:     employee.ToResponse(),
		Role:        models.RoleEmployee,
		AccessToken: token,
	}, nil
}

// LoginCustomer authenticates a customer. Email and account number must
// match the same record; failures are indistinguishable from a wrong
// password.
func (s *AuthService) LoginCustomer(ctx context.Context, email, accountNumber, secret string) (*AuthResponse, error) {
	customer, err := s.customerRepo.GetByEmailAndAccount(ctx, email, accountNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(secret, customer.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateAccessToken(customer.ID, models.RoleCustomer, s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Customer logged in: %s", customer.Email)
	return &AuthResponse{
		Account:     customer.ToResponse(),
		Role:        models.RoleCustomer,
		AccessToken: token,
	}, nil
}

// GetAccount returns the profile for an authenticated caller.
func (s *AuthService) GetAccount(ctx context.Context, userID uint, role string) (*models.AccountResponse, error) {
	switch role {
	case models.RoleEmployee:
		employee, err := s.employeeRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, err
		}
		return employee.ToResponse(), nil
	case models.RoleCustomer:
		customer, err := s.customerRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, err
		}
		return customer.ToResponse(), nil
	default:
		return nil, domain.ErrNotFound
	}
}
