package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sunspire/solar-crm/docs"
	"github.com/sunspire/solar-crm/internal/api/handlers"
	"github.com/sunspire/solar-crm/internal/api/middleware"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/internal/config/db"
	"github.com/sunspire/solar-crm/internal/cron"
	"github.com/sunspire/solar-crm/internal/repository"
)

func RegisterRoutes(r *gin.Engine) {
	// init
	repos := repository.NewRepositories(db.DB)
	services := application.New(repos)
	h := handlers.New(services, r)
	authMiddleware := middleware.NewAuth(repos)

	// Start background tasks
	cron.StartCleanupTask(services.Audit)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/dashboard", middleware.JWTAuthMiddleware(), authMiddleware.Admin(), h.WS.StreamDashboard)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.User.Register)
		auth.POST("/login", h.User.Login)
		auth.POST("/logout", h.User.Logout)
		auth.GET("/user", middleware.JWTAuthMiddleware(), h.User.Me)
	}

	// Public sizing calculator and service catalog browsing.
	api.POST("/calculator", h.Calculator.Calculate)
	api.GET("/services", h.Service.GetServices)
	api.GET("/services/:id", h.Service.GetServiceByID)

	protected := api.Group("/")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		users := protected.Group("/users")
		{
			users.GET("", authMiddleware.Admin(), h.User.GetUsers)
			users.POST("", authMiddleware.Admin(), h.User.CreateUser)
			users.GET("/:id", authMiddleware.UserOrAdmin(), h.User.GetUserByID)
			users.PUT("/:id", authMiddleware.UserOrAdmin(), h.User.UpdateUser)
			users.DELETE("/:id", authMiddleware.Admin(), h.User.DeleteUser)
		}

		technicians := protected.Group("/technicians")
		{
			technicians.GET("", h.Technician.GetTechnicians)
			technicians.GET("/:id", h.Technician.GetTechnicianByID)
			technicians.POST("", authMiddleware.Admin(), h.Technician.CreateTechnician)
			technicians.PUT("/:id", authMiddleware.Admin(), h.Technician.UpdateTechnician)
			technicians.DELETE("/:id", authMiddleware.Admin(), h.Technician.DeleteTechnician)
		}

		services := protected.Group("/services")
		{
			services.POST("", authMiddleware.Admin(), h.Service.CreateService)
			services.PUT("/:id", authMiddleware.Admin(), h.Service.UpdateService)
			services.DELETE("/:id", authMiddleware.Admin(), h.Service.DeleteService)
		}

		quotations := protected.Group("/quotations")
		{
			quotations.GET("", h.Quotation.GetQuotations)
			quotations.GET("/:id", authMiddleware.OwnerOrAdmin(quotationOwner(repos)), h.Quotation.GetQuotationByID)
			quotations.POST("", h.Quotation.CreateQuotation)
			quotations.PUT("/:id", authMiddleware.OwnerOrAdmin(quotationOwner(repos)), h.Quotation.UpdateQuotation)
			quotations.PUT("/:id/status", authMiddleware.Admin(), h.Quotation.SetQuotationStatus)
			quotations.DELETE("/:id", authMiddleware.Admin(), h.Quotation.DeleteQuotation)
		}

		installations := protected.Group("/installations")
		{
			installations.GET("", h.Installation.GetInstallations)
			installations.GET("/:id", authMiddleware.OwnerOrStaff(installationOwner(repos)), h.Installation.GetInstallationByID)
			installations.POST("", authMiddleware.Admin(), h.Installation.CreateInstallation)
			installations.POST("/from-quotation", authMiddleware.Admin(), h.Installation.ConvertFromQuotation)
			installations.PUT("/:id", authMiddleware.OwnerOrStaff(installationOwner(repos)), h.Installation.UpdateInstallation)
			installations.PUT("/:id/assign-technician", authMiddleware.Admin(), h.Installation.AssignTechnician)
			installations.DELETE("/:id", authMiddleware.Admin(), h.Installation.DeleteInstallation)
		}

		complaints := protected.Group("/complaints")
		{
			complaints.GET("", h.Complaint.GetComplaints)
			complaints.GET("/:id", authMiddleware.OwnerOrStaff(complaintOwner(repos)), h.Complaint.GetComplaintByID)
			complaints.POST("", h.Complaint.CreateComplaint)
			complaints.PUT("/:id", authMiddleware.OwnerOrStaff(complaintOwner(repos)), h.Complaint.UpdateComplaint)
			complaints.PUT("/:id/assign-technician", authMiddleware.Admin(), h.Complaint.AssignTechnician)
			complaints.DELETE("/:id", authMiddleware.Admin(), h.Complaint.DeleteComplaint)
		}

		tickets := protected.Group("/tickets")
		{
			tickets.GET("", h.Ticket.GetTickets)
			tickets.GET("/:id", authMiddleware.OwnerOrStaff(ticketOwner(repos)), h.Ticket.GetTicketByID)
			tickets.POST("", h.Ticket.CreateTicket)
			tickets.PUT("/:id", authMiddleware.OwnerOrStaff(ticketOwner(repos)), h.Ticket.UpdateTicket)
			tickets.PUT("/:id/assign-technician", authMiddleware.Admin(), h.Ticket.AssignTechnician)
			tickets.DELETE("/:id", authMiddleware.Admin(), h.Ticket.DeleteTicket)
		}

		protected.GET("/dashboard/stats", authMiddleware.Admin(), h.Dashboard.GetStats)
		protected.POST("/uploads", h.Upload.Upload)
		protected.GET("/audit/logs", authMiddleware.Admin(), h.Audit.GetAuditLogs)
	}
}

// Owner lookups feed the OwnerOrStaff gate. An entity with no customer
// resolves to owner 0, which no customer id matches.

func quotationOwner(repos *repository.Repos) middleware.OwnerLookup {
	return func(id uint) (uint, error) {
		q, err := repos.Quotation.GetQuotationByID(id)
		if err != nil {
			return 0, err
		}
		if q.CustomerID == nil {
			return 0, nil
		}
		return *q.CustomerID, nil
	}
}

func installationOwner(repos *repository.Repos) middleware.OwnerLookup {
	return func(id uint) (uint, error) {
		inst, err := repos.Installation.GetInstallationByID(id)
		if err != nil {
			return 0, err
		}
		return inst.CustomerID, nil
	}
}

func complaintOwner(repos *repository.Repos) middleware.OwnerLookup {
	return func(id uint) (uint, error) {
		cmp, err := repos.Complaint.GetComplaintByID(id)
		if err != nil {
			return 0, err
		}
		return cmp.CustomerID, nil
	}
}

func ticketOwner(repos *repository.Repos) middleware.OwnerLookup {
	return func(id uint) (uint, error) {
		t, err := repos.Ticket.GetTicketByID(id)
		if err != nil {
			return 0, err
		}
		return t.CustomerID, nil
	}
}
