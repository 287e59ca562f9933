package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/internal/domain/quotation"
	"github.com/sunspire/solar-crm/pkg/response"
)

type QuotationHandler struct {
	svc *application.QuotationService
}

func NewQuotationHandler(svc *application.QuotationService) *QuotationHandler {
	return &QuotationHandler{svc: svc}
}

// GetQuotations godoc
// @Summary List quotations visible to the caller
// @Description Admins and technicians see all quotations, customers only their own.
// @Tags quotations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} quotation.Quotation
// @Router /api/quotations [get]
func (h *QuotationHandler) GetQuotations(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	quotations, err := h.svc.ListQuotations(actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotations)
}

// GetQuotationByID godoc
// @Summary Get a quotation by id
// @Tags quotations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Quotation ID"
// @Success 200 {object} quotation.Quotation
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Quotation not found"
// @Router /api/quotations/{id} [get]
func (h *QuotationHandler) GetQuotationByID(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	q, err := h.svc.FindQuotationByID(actor, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// CreateQuotation godoc
// @Summary Create a quotation request
// @Tags quotations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body quotation.CreateQuotationInput true "Quotation request"
// @Success 201 {object} quotation.Quotation
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /api/quotations [post]
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input quotation.CreateQuotationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	q, err := h.svc.CreateQuotation(actor, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, q)
}

// UpdateQuotation godoc
// @Summary Update a quotation
// @Description Updating a converted quotation propagates shared fields to its installation.
// @Tags quotations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Quotation ID"
// @Param input body quotation.UpdateQuotationInput true "Fields to update"
// @Success 200 {object} quotation.Quotation
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Quotation not found"
// @Router /api/quotations/{id} [put]
func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input quotation.UpdateQuotationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	q, err := h.svc.UpdateQuotation(actor, id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// SetQuotationStatus godoc
// @Summary Approve or reject a pending quotation
// @Tags quotations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Quotation ID"
// @Param input body quotation.StatusInput true "New status"
// @Success 200 {object} quotation.Quotation
// @Failure 400 {object} response.ErrorResponse "Quotation already decided"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Quotation not found"
// @Router /api/quotations/{id}/status [put]
func (h *QuotationHandler) SetQuotationStatus(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input quotation.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	q, err := h.svc.SetStatus(actor, id, input.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// DeleteQuotation godoc
// @Summary Delete a quotation
// @Tags quotations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Quotation ID"
// @Success 200 {object} response.MessageResponse "Quotation deleted"
// @Failure 404 {object} response.ErrorResponse "Quotation not found"
// @Router /api/quotations/{id} [delete]
func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.RemoveQuotation(actor, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Quotation deleted"})
}
