package services

import (
	"context"

	"swiftpay/internal/adapters/persistence/models"
	"swiftpay/internal/adapters/persistence/repositories"
	"swiftpay/internal/core/domain"

	"gorm.io/gorm"
)

// DashboardService aggregates payment statistics for the employee dashboard.
// Payment and counter figures go through the repositories; the customer count
// and the recent-payments strip are plain aggregates with no repository home.
type DashboardService struct {
	db          *gorm.DB
	paymentRepo repositories.PaymentRepository
	counterRepo repositories.CounterRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB, paymentRepo repositories.PaymentRepository, counterRepo repositories.CounterRepository) *DashboardService {
	return &DashboardService{
		db:          db,
		paymentRepo: paymentRepo,
		counterRepo: counterRepo,
	}
}

// DashboardData represents the employee dashboard payload.
// VerifiedTotal is the cumulative running total: the durable counter plus
// nothing else, since the counter is bumped on every entry into Verified and
// never decremented when payments move on to Submitted.
type DashboardData struct {
	TotalPayments     int64 `json:"total_payments"`
	PendingPayments   int64 `json:"pending_payments"`
	VerifiedPayments  int64 `json:"verified_payments"`
	RejectedPayments  int64 `json:"rejected_payments"`
	SubmittedPayments int64 `json:"submitted_payments"`
	VerifiedTotal     int64 `json:"verified_total"`

	TotalCustomers int64 `json:"total_customers"`

	RecentPayments []*models.PaymentResponse `json:"recent_payments"`
}

// GetDashboard builds the employee dashboard
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}

	statuses := map[domain.PaymentStatus]*int64{
		domain.StatusPending:   &data.PendingPayments,
		domain.StatusVerified:  &data.VerifiedPayments,
		domain.StatusRejected:  &data.RejectedPayments,
		domain.StatusSubmitted: &data.SubmittedPayments,
	}
	for status, dest := range statuses {
		count, err := s.paymentRepo.CountByStatus(ctx, status.String())
		if err != nil {
			return nil, err
		}
		*dest = count
	}
	data.TotalPayments = data.PendingPayments + data.VerifiedPayments +
		data.RejectedPayments + data.SubmittedPayments

	verifiedTotal, err := s.counterRepo.Get(ctx, models.CounterVerifiedTotal)
	if err != nil {
		return nil, err
	}
	data.VerifiedTotal = verifiedTotal

	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Customer{}).Count(&data.TotalCustomers).Error; err != nil {
		return nil, err
	}

	var recent []*models.Payment
	if err := db.Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		return nil, err
	}
	data.RecentPayments = make([]*models.PaymentResponse, 0, len(recent))
	for _, p := range recent {
		data.RecentPayments = append(data.RecentPayments, p.ToResponse())
	}

	return data, nil
}
