package application

import (
	"github.com/sunspire/solar-crm/internal/repository"
)

// DashboardStats is the admin summary block. Maps hold zero entries rather
// than erroring when a table is empty.
type DashboardStats struct {
	Installations map[string]int64          `json:"installations"`
	Technicians   map[string]int64          `json:"technicians"`
	Quotations    map[string]int64          `json:"quotations"`
	Complaints    map[string]int64          `json:"complaints"`
	Tickets       map[string]int64          `json:"tickets"`
	MonthlyTrend  []repository.MonthlyCount `json:"monthly_installations"`
}

type DashboardService struct {
	Repos *repository.Repos
}

func NewDashboardService(repos *repository.Repos) *DashboardService {
	return &DashboardService{
		Repos: repos,
	}
}

// Stats is a pure read: no mutation, resilient to empty tables.
func (s *DashboardService) Stats() (DashboardStats, error) {
	stats := DashboardStats{}

	var err error
	if stats.Installations, err = s.Repos.Installation.CountByStatus(); err != nil {
		return stats, err
	}
	if stats.Technicians, err = s.Repos.Technician.CountByStatus(); err != nil {
		return stats, err
	}
	if stats.Quotations, err = s.Repos.Quotation.CountByStatus(); err != nil {
		return stats, err
	}
	if stats.Complaints, err = s.Repos.Complaint.CountByStatus(); err != nil {
		return stats, err
	}
	if stats.Tickets, err = s.Repos.Ticket.CountByStatus(); err != nil {
		return stats, err
	}
	if stats.MonthlyTrend, err = s.Repos.Installation.MonthlyCounts(6); err != nil {
		return stats, err
	}
	if stats.MonthlyTrend == nil {
		stats.MonthlyTrend = []repository.MonthlyCount{}
	}
	return stats, nil
}
