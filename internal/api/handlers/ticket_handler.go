package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/internal/domain/ticket"
	"github.com/sunspire/solar-crm/pkg/response"
)

type TicketHandler struct {
	svc *application.TicketService
}

func NewTicketHandler(svc *application.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// GetTickets godoc
// @Summary List support tickets visible to the caller
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Success 200 {array} ticket.Ticket
// @Router /api/tickets [get]
func (h *TicketHandler) GetTickets(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	tickets, err := h.svc.ListTickets(actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// GetTicketByID godoc
// @Summary Get a support ticket by id
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} ticket.Ticket
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /api/tickets/{id} [get]
func (h *TicketHandler) GetTicketByID(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	t, err := h.svc.FindTicketByID(actor, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// CreateTicket godoc
// @Summary Open a support ticket
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body ticket.CreateTicketInput true "Ticket"
// @Success 201 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /api/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input ticket.CreateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	t, err := h.svc.CreateTicket(actor, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateTicket godoc
// @Summary Update a support ticket
// @Description Moving a ticket to resolved stamps resolved_at once.
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.UpdateTicketInput true "Fields to update"
// @Success 200 {object} ticket.Ticket
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /api/tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input ticket.UpdateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	t, err := h.svc.UpdateTicket(actor, id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// AssignTechnician godoc
// @Summary Assign a technician to a support ticket
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body handlers.assignInput true "Technician to assign"
// @Success 200 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse "Technician not assignable"
// @Failure 404 {object} response.ErrorResponse "Ticket or technician not found"
// @Router /api/tickets/{id}/assign-technician [put]
func (h *TicketHandler) AssignTechnician(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input assignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	t, err := h.svc.AssignTechnician(actor, id, input.TechnicianID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTicket godoc
// @Summary Delete a support ticket
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} response.MessageResponse "Ticket deleted"
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /api/tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.RemoveTicket(actor, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Ticket deleted"})
}
