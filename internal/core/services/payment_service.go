package services

import (
	"context"
	"errors"
	"log"

	"swiftpay/internal/adapters/persistence/models"
	"swiftpay/internal/adapters/persistence/repositories"
	"swiftpay/internal/core/domain"
	"swiftpay/internal/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService governs the payment lifecycle: creation invariants, the
// status transition table and the bulk SWIFT submission sweep.
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	counterRepo repositories.CounterRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repositories.PaymentRepository, counterRepo repositories.CounterRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		counterRepo: counterRepo,
	}
}

// CreatePaymentInput represents payment creation input
type CreatePaymentInput struct {
	Amount             string `json:"amount"`
	Currency           string `json:"currency"`
	Provider           string `json:"provider"`
	PayeeName          string `json:"payee_name"`
	PayeeAccountNumber string `json:"payee_account_number"`
	SwiftCode          string `json:"swift_code"`
}

// Create validates the fields, stamps the owning customer and persists the
// payment in Pending. The owner never changes afterwards.
func (s *PaymentService) Create(ctx context.Context, customerID uint, input *CreatePaymentInput) (*models.Payment, error) {
	if err := validator.Fields(
		[2]string{validator.FieldAmount, input.Amount},
		[2]string{validator.FieldCurrency, input.Currency},
		[2]string{validator.FieldProvider, input.Provider},
		[2]string{validator.FieldPayeeName, input.PayeeName},
		[2]string{validator.FieldPayeeAccountNumber, input.PayeeAccountNumber},
		[2]string{validator.FieldSwiftCode, input.SwiftCode},
	); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		Reference:          uuid.New().String(),
		CustomerID:         customerID,
		Amount:             input.Amount,
		Currency:           input.Currency,
		Provider:           input.Provider,
		PayeeName:          input.PayeeName,
		PayeeAccountNumber: input.PayeeAccountNumber,
		SwiftCode:          input.SwiftCode,
		Status:             domain.StatusPending.String(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	log.Printf("✅ Payment %s created by customer %d", payment.Reference, customerID)
	return payment, nil
}

// ListInput represents list input
type ListInput struct {
	Status string
	Offset int
	Limit  int
}

// ListAll is the explicit opt-out of the default Pending filter.
const ListAll = "all"

// List lists payments for the employee queue. An empty status filter
// deliberately narrows to Pending so employees see their work queue, not the
// full history; callers wanting everything pass "all".
func (s *PaymentService) List(ctx context.Context, input *ListInput) ([]*models.Payment, int64, error) {
	status := input.Status
	switch status {
	case "":
		status = domain.StatusPending.String()
	case ListAll:
		status = ""
	default:
		parsed, err := domain.ParseStatus(status)
		if err != nil {
			return nil, 0, err
		}
		status = parsed.String()
	}

	return s.paymentRepo.List(ctx, status, input.Offset, input.Limit)
}

// ListByCustomer lists the caller's own payments, any status.
func (s *PaymentService) ListByCustomer(ctx context.Context, customerID uint, offset, limit int) ([]*models.Payment, int64, error) {
	return s.paymentRepo.ListByCustomer(ctx, customerID, offset, limit)
}

// UpdateStatus applies one transition of the state machine to a payment.
// Illegal transitions are rejected, never silently applied. Entering
// Verified bumps the durable cumulative counter.
func (s *PaymentService) UpdateStatus(ctx context.Context, paymentID uint, newStatus string, actorID uint) (*models.Payment, error) {
	target, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}

	current := domain.PaymentStatus(payment.Status)
	if !current.CanTransitionTo(target) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, target.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	payment.Status = target.String()

	if target == domain.StatusVerified {
		if err := s.counterRepo.Increment(ctx, models.CounterVerifiedTotal, 1); err != nil {
			// The transition already took; the running total is reporting
			// only, so log and carry on.
			log.Printf("⚠️ Failed to bump verified counter: %v", err)
		}
	}

	log.Printf("✅ Payment %d: %s → %s (by employee %d)", payment.ID, current, target, actorID)
	return payment, nil
}

// SubmitVerifiedToSwift transitions every Verified payment to Submitted and
// returns the set actually transitioned. The sweep is best-effort, one
// document at a time; there is no cross-document atomicity or rollback.
// Payments already Submitted are excluded by the fetch, so a repeat call
// with no new verifications transitions nothing.
func (s *PaymentService) SubmitVerifiedToSwift(ctx context.Context, actorID uint) ([]*models.Payment, error) {
	verified, err := s.paymentRepo.GetAllByStatus(ctx, domain.StatusVerified.String())
	if err != nil {
		return nil, err
	}

	submitted := make([]*models.Payment, 0, len(verified))
	for _, payment := range verified {
		if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, domain.StatusSubmitted.String()); err != nil {
			log.Printf("⚠️ Failed to submit payment %d to SWIFT: %v", payment.ID, err)
			continue
		}
		payment.Status = domain.StatusSubmitted.String()
		submitted = append(submitted, payment)
	}

	log.Printf("✅ Submitted %d payment(s) to SWIFT (by employee %d)", len(submitted), actorID)
	return submitted, nil
}

// ClearAll bulk-deletes every payment. Administrative escape hatch, outside
// the lifecycle contract.
func (s *PaymentService) ClearAll(ctx context.Context, actorID uint) (int64, error) {
	deleted, err := s.paymentRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	log.Printf("⚠️ All payments cleared (%d record(s), by employee %d)", deleted, actorID)
	return deleted, nil
}
