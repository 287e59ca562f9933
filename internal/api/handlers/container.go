package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sunspire/solar-crm/internal/application"
)

type Handlers struct {
	User         *UserHandler
	Technician   *TechnicianHandler
	Service      *ServiceHandler
	Quotation    *QuotationHandler
	Installation *InstallationHandler
	Complaint    *ComplaintHandler
	Ticket       *TicketHandler
	Dashboard    *DashboardHandler
	Calculator   *CalculatorHandler
	Upload       *UploadHandler
	Audit        *AuditHandler
	WS           *WSHandler
	Router       *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	h := &Handlers{
		User:         NewUserHandler(svc.User),
		Technician:   NewTechnicianHandler(svc.Technician),
		Service:      NewServiceHandler(svc.Catalog),
		Quotation:    NewQuotationHandler(svc.Quotation),
		Installation: NewInstallationHandler(svc.Installation),
		Complaint:    NewComplaintHandler(svc.Complaint),
		Ticket:       NewTicketHandler(svc.Ticket),
		Dashboard:    NewDashboardHandler(svc.Dashboard),
		Calculator:   NewCalculatorHandler(),
		Upload:       NewUploadHandler(),
		Audit:        NewAuditHandler(svc.Audit),
		WS:           NewWSHandler(svc.Dashboard),
		Router:       router,
	}
	return h
}
