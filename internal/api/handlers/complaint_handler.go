package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/internal/domain/complaint"
	"github.com/sunspire/solar-crm/pkg/response"
)

type ComplaintHandler struct {
	svc *application.ComplaintService
}

func NewComplaintHandler(svc *application.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{svc: svc}
}

// GetComplaints godoc
// @Summary List complaints visible to the caller
// @Tags complaints
// @Security BearerAuth
// @Produce json
// @Success 200 {array} complaint.Complaint
// @Router /api/complaints [get]
func (h *ComplaintHandler) GetComplaints(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	complaints, err := h.svc.ListComplaints(actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// GetComplaintByID godoc
// @Summary Get a complaint by id
// @Tags complaints
// @Security BearerAuth
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} complaint.Complaint
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Complaint not found"
// @Router /api/complaints/{id} [get]
func (h *ComplaintHandler) GetComplaintByID(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	cmp, err := h.svc.FindComplaintByID(actor, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}

// CreateComplaint godoc
// @Summary File a complaint
// @Tags complaints
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body complaint.CreateComplaintInput true "Complaint"
// @Success 201 {object} complaint.Complaint
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /api/complaints [post]
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input complaint.CreateComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	cmp, err := h.svc.CreateComplaint(actor, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cmp)
}

// UpdateComplaint godoc
// @Summary Update a complaint
// @Description Moving a complaint to resolved stamps resolved_at once.
// @Tags complaints
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Complaint ID"
// @Param input body complaint.UpdateComplaintInput true "Fields to update"
// @Success 200 {object} complaint.Complaint
// @Failure 404 {object} response.ErrorResponse "Complaint not found"
// @Router /api/complaints/{id} [put]
func (h *ComplaintHandler) UpdateComplaint(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input complaint.UpdateComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	cmp, err := h.svc.UpdateComplaint(actor, id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}

// AssignTechnician godoc
// @Summary Assign a technician to a complaint
// @Tags complaints
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Complaint ID"
// @Param input body handlers.assignInput true "Technician to assign"
// @Success 200 {object} complaint.Complaint
// @Failure 400 {object} response.ErrorResponse "Technician not assignable"
// @Failure 404 {object} response.ErrorResponse "Complaint or technician not found"
// @Router /api/complaints/{id}/assign-technician [put]
func (h *ComplaintHandler) AssignTechnician(c *gin.Context) {
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

	cmp, err := h.svc.AssignTechnician(actor, id, input.TechnicianID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}

// DeleteComplaint godoc
// @Summary Delete a complaint
// @Tags complaints
// @Security BearerAuth
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} response.MessageResponse "Complaint deleted"
// @Failure 404 {object} response.ErrorResponse "Complaint not found"
// @Router /api/complaints/{id} [delete]
func (h *ComplaintHandler) DeleteComplaint(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.RemoveComplaint(actor, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Complaint deleted"})
}
