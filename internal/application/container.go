package application

import (
	"github.com/sunspire/solar-crm/internal/repository"
)

type Services struct {
	User         *UserService
	Technician   *TechnicianService
	Catalog      *CatalogService
	Quotation    *QuotationService
	Installation *InstallationService
	Complaint    *ComplaintService
	Ticket       *TicketService
	Dashboard    *DashboardService
	Audit        *AuditService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		User:         NewUserService(repos),
		Technician:   NewTechnicianService(repos),
		Catalog:      NewCatalogService(repos),
		Quotation:    NewQuotationService(repos),
		Installation: NewInstallationService(repos),
		Complaint:    NewComplaintService(repos),
		Ticket:       NewTicketService(repos),
		Dashboard:    NewDashboardService(repos),
		Audit:        NewAuditService(repos),
	}
}
