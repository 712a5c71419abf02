package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// ReportCronService logs a daily operations summary at 08:30 so the first
// employee shift starts with the queue sizes in the server log.
type ReportCronService struct {
	dashboardService *DashboardService
	cron             *cron.Cron
}

// NewReportCronService creates a new report cron service
func NewReportCronService(dashboardService *DashboardService) *ReportCronService {
	return &ReportCronService{
		dashboardService: dashboardService,
		cron:             cron.New(),
	}
}

// Start schedules the daily report job
func (s *ReportCronService) Start() {
	s.cron.AddFunc("30 8 * * *", s.logDailySummary)
	s.cron.Start()
	log.Println("✅ Daily report cron started (08:30)")
}

// Stop stops the cron scheduler
func (s *ReportCronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Daily report cron stopped")
}

func (s *ReportCronService) logDailySummary() {
	data, err := s.dashboardService.GetDashboard(context.Background())
	if err != nil {
		log.Printf("❌ Daily report failed: %v", err)
		return
	}

	log.Printf("📊 Daily payment summary: total=%d pending=%d verified=%d rejected=%d submitted=%d verified_total=%d",
		data.TotalPayments,
		data.PendingPayments,
		data.VerifiedPayments,
		data.RejectedPayments,
		data.SubmittedPayments,
		data.VerifiedTotal,
	)
}
