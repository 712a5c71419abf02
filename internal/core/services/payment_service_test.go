package services

import (
	"context"
	"errors"
	"testing"

	"swiftpay/internal/adapters/persistence/models"
	"swiftpay/internal/core/domain"
	"swiftpay/internal/pkg/validator"
)

func newTestPaymentService() (*PaymentService, *fakePaymentRepo, *fakeCounterRepo) {
	paymentRepo := newFakePaymentRepo()
	counterRepo := newFakeCounterRepo()
	return NewPaymentService(paymentRepo, counterRepo), paymentRepo, counterRepo
}

func validPaymentInput() *CreatePaymentInput {
	return &CreatePaymentInput{
		Amount:             "100.50",
		Currency:           "USD",
		Provider:           "SWIFT",
		PayeeName:          "John Smith",
		PayeeAccountNumber: "987654321",
		SwiftCode:          "ABCDUS33X",
	}
}

func TestCreatePayment(t *testing.T) {
	svc, _, _ := newTestPaymentService()
	ctx := context.Background()

	payment, err := svc.Create(ctx, 7, validPaymentInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if payment.Status != "Pending" {
		t.Fatalf("new payment status = %s, want Pending", payment.Status)
	}
	if payment.CustomerID != 7 {
		t.Fatalf("owner = %d, want 7", payment.CustomerID)
	}
	if payment.Reference == "" {
		t.Fatal("payment reference not set")
	}
}

func TestCreatePaymentValidation(t *testing.T) {
	svc, _, _ := newTestPaymentService()
	ctx := context.Background()

	tests := []struct {
		field  string
		mutate func(*CreatePaymentInput)
	}{
		{validator.FieldAmount, func(in *CreatePaymentInput) { in.Amount = "0" }},
		{validator.FieldAmount, func(in *CreatePaymentInput) { in.Amount = "-5" }},
		{validator.FieldCurrency, func(in *CreatePaymentInput) { in.Currency = "" }},
		{validator.FieldProvider, func(in *CreatePaymentInput) { in.Provider = " " }},
		{validator.FieldPayeeName, func(in *CreatePaymentInput) { in.PayeeName = "John5" }},
		{validator.FieldPayeeAccountNumber, func(in *CreatePaymentInput) { in.PayeeAccountNumber = "12345678" }},
		{validator.FieldSwiftCode, func(in *CreatePaymentInput) { in.SwiftCode = "AB" }},
	}

	for _, tc := range tests {
		input := validPaymentInput()
		tc.mutate(input)

		_, err := svc.Create(ctx, 1, input)
		var verr *validator.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected *ValidationError, got %v", tc.field, err)
		}
		if verr.Field != tc.field {
			t.Fatalf("rejected field = %s, want %s", verr.Field, tc.field)
		}
	}
}

func TestListDefaultsToPending(t *testing.T) {
	svc, _, _ := newTestPaymentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, validPaymentInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Default filter returns the Pending queue.
	payments, total, err := svc.List(ctx, &ListInput{Limit: 20})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(payments) != 1 || payments[0].ID != created.ID {
		t.Fatalf("default list did not return the pending payment: total=%d", total)
	}

	// Explicit Submitted filter excludes it.
	payments, _, err = svc.List(ctx, &ListInput{Status: "Submitted", Limit: 20})
	if err != nil {
		t.Fatalf("List(Submitted): %v", err)
	}
	if len(payments) != 0 {
		t.Fatalf("Submitted filter returned %d payments", len(payments))
	}

	// "all" opts out of the default filter.
	payments, _, err = svc.List(ctx, &ListInput{Status: ListAll, Limit: 20})
	if err != nil {
		t.Fatalf("List(all): %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("all filter returned %d payments", len(payments))
	}

	// Unknown filter is rejected.
	if _, _, err := svc.List(ctx, &ListInput{Status: "Cancelled", Limit: 20}); !errors.Is(err, domain.ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestListByCustomerScopesToOwner(t *testing.T) {
	svc, _, _ := newTestPaymentService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, 1, validPaymentInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, 2, validPaymentInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	payments, total, err := svc.ListByCustomer(ctx, 1, 0, 20)
	if err != nil {
		t.Fatalf("ListByCustomer: %v", err)
	}
	if total != 1 || len(payments) != 1 || payments[0].CustomerID != 1 {
		t.Fatalf("customer scope leaked: total=%d", total)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	svc, _, _ := newTestPaymentService()
	ctx := context.Background()

	payment, err := svc.Create(ctx, 1, validPaymentInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Pending -> Verified succeeds.
	updated, err := svc.UpdateStatus(ctx, payment.ID, "Verified", 10)
	if err != nil {
		t.Fatalf("UpdateStatus(Verified): %v", err)
	}
	if updated.Status != "Verified" {
		t.Fatalf("status = %s, want Verified", updated.Status)
	}

	// Verified -> Pending is illegal.
	if _, err := svc.UpdateStatus(ctx, payment.ID, "Pending", 10); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	// Verified -> Submitted succeeds; Submitted is terminal.
	if _, err := svc.UpdateStatus(ctx, payment.ID, "Submitted", 10); err != nil {
		t.Fatalf("UpdateStatus(Submitted): %v", err)
	}
	for _, target := range []string{"Pending", "Verified", "Rejected"} {
		if _, err := svc.UpdateStatus(ctx, payment.ID, target, 10); !errors.Is(err, domain.ErrInvalidTransition) {
			t.Fatalf("Submitted -> %s: expected ErrInvalidTransition, got %v", target, err)
		}
	}
}

func TestUpdateStatusErrors(t *testing.T) {
	svc, _, _ := newTestPaymentService()
	ctx := context.Background()

	if _, err := svc.UpdateStatus(ctx, 999, "Verified", 10); !errors.Is(err, domain.ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}

	payment, err := svc.Create(ctx, 1, validPaymentInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, payment.ID, "Approved", 10); !errors.Is(err, domain.ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestVerifiedCounterIsCumulative(t *testing.T) {
	svc, _, counterRepo := newTestPaymentService()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		payment, err := svc.Create(ctx, 1, validPaymentInput())
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if _, err := svc.UpdateStatus(ctx, payment.ID, "Verified", 10); err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
	}

	if got := counterRepo.counters[models.CounterVerifiedTotal]; got != 2 {
		t.Fatalf("verified counter = %d, want 2", got)
	}

	// Moving payments on to Submitted must not decrement the running total.
	if _, err := svc.SubmitVerifiedToSwift(ctx, 10); err != nil {
		t.Fatalf("SubmitVerifiedToSwift: %v", err)
	}
	if got := counterRepo.counters[models.CounterVerifiedTotal]; got != 2 {
		t.Fatalf("verified counter after submit = %d, want 2", got)
	}
}

func TestSubmitVerifiedToSwiftIdempotent(t *testing.T) {
	svc, _, _ := newTestPaymentService()
	ctx := context.Background()

	var verified []*models.Payment
	for i := 0; i < 3; i++ {
		payment, err := svc.Create(ctx, 1, validPaymentInput())
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if i < 2 {
			if _, err := svc.UpdateStatus(ctx, payment.ID, "Verified", 10); err != nil {
				t.Fatalf("UpdateStatus: %v", err)
			}
			verified = append(verified, payment)
		}
	}

	submitted, err := svc.SubmitVerifiedToSwift(ctx, 10)
	if err != nil {
		t.Fatalf("SubmitVerifiedToSwift: %v", err)
	}
	if len(submitted) != len(verified) {
		t.Fatalf("submitted %d payments, want %d", len(submitted), len(verified))
	}
	for _, p := range submitted {
		if p.Status != "Submitted" {
			t.Fatalf("payment %d status = %s, want Submitted", p.ID, p.Status)
		}
	}

	// A second sweep with no new verifications transitions nothing.
	again, err := svc.SubmitVerifiedToSwift(ctx, 10)
	if err != nil {
		t.Fatalf("second SubmitVerifiedToSwift: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("second sweep transitioned %d payments, want 0", len(again))
	}

	// The pending payment was left alone.
	pending, _, err := svc.List(ctx, &ListInput{Limit: 20})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending queue has %d payments, want 1", len(pending))
	}
}

func TestClearAll(t *testing.T) {
	svc, _, _ := newTestPaymentService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(ctx, 1, validPaymentInput()); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	deleted, err := svc.ClearAll(ctx, 10)
	if err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("deleted = %d, want 3", deleted)
	}

	payments, _, err := svc.List(ctx, &ListInput{Status: ListAll, Limit: 20})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(payments) != 0 {
		t.Fatalf("%d payments remain after clear", len(payments))
	}
}

// TestCustomerPaymentLifecycle walks the full portal flow: register, login,
// create a payment, verify it, sweep it to SWIFT, then confirm the sweep is
// a no-op when repeated.
func TestCustomerPaymentLifecycle(t *testing.T) {
	authSvc := newTestAuthService()
	paySvc, _, _ := newTestPaymentService()
	ctx := context.Background()

	if _, err := authSvc.RegisterCustomer(ctx, &RegisterCustomerInput{
		FullName:      "Jane Doe",
		IDNumber:      "8001015009087",
		AccountNumber: "123456789",
		Email:         "jane@example.com",
		Password:      "Str0ng!Pass",
	}); err != nil {
		t.Fatalf("RegisterCustomer: %v", err)
	}

	login, err := authSvc.LoginCustomer(ctx, "jane@example.com", "123456789", "Str0ng!Pass")
	if err != nil {
		t.Fatalf("LoginCustomer: %v", err)
	}

	payment, err := paySvc.Create(ctx, login.Account.ID, &CreatePaymentInput{
		Amount:             "100.50",
		Currency:           "USD",
		Provider:           "SWIFT",
		PayeeName:          "John Smith",
		PayeeAccountNumber: "987654321",
		SwiftCode:          "ABCDUS33X",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if payment.Status != "Pending" {
		t.Fatalf("status = %s, want Pending", payment.Status)
	}

	if _, err := paySvc.UpdateStatus(ctx, payment.ID, "Verified", 1); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	submitted, err := paySvc.SubmitVerifiedToSwift(ctx, 1)
	if err != nil {
		t.Fatalf("SubmitVerifiedToSwift: %v", err)
	}
	if len(submitted) != 1 || submitted[0].ID != payment.ID {
		t.Fatalf("sweep did not submit the verified payment")
	}

	again, err := paySvc.SubmitVerifiedToSwift(ctx, 1)
	if err != nil {
		t.Fatalf("repeat SubmitVerifiedToSwift: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("repeat sweep transitioned %d payments", len(again))
	}
}
