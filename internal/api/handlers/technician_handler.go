package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/internal/domain/technician"
	"github.com/sunspire/solar-crm/pkg/response"
)

type TechnicianHandler struct {
	svc *application.TechnicianService
}

func NewTechnicianHandler(svc *application.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{svc: svc}
}

// GetTechnicians godoc
// @Summary List all technicians
// @Tags technicians
// @Security BearerAuth
// @Produce json
// @Success 200 {array} technician.Technician
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/technicians [get]
func (h *TechnicianHandler) GetTechnicians(c *gin.Context) {
	techs, err := h.svc.ListTechnicians()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, techs)
}

// GetTechnicianByID godoc
// @Summary Get a technician by id
// @Tags technicians
// @Security BearerAuth
// @Produce json
// @Param id path int true "Technician ID"
// @Success 200 {object} technician.Technician
// @Failure 404 {object} response.ErrorResponse "Technician not found"
// @Router /api/technicians/{id} [get]
func (h *TechnicianHandler) GetTechnicianByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	tech, err := h.svc.FindTechnicianByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tech)
}

// CreateTechnician godoc
// @Summary Create a technician
// @Tags technicians
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body technician.CreateTechnicianInput true "Technician info"
// @Success 201 {object} technician.Technician
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /api/technicians [post]
func (h *TechnicianHandler) CreateTechnician(c *gin.Context) {
	var input technician.CreateTechnicianInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	tech, err := h.svc.CreateTechnician(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tech)
}

// UpdateTechnician godoc
// @Summary Update a technician
// @Tags technicians
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Technician ID"
// @Param input body technician.UpdateTechnicianInput true "Fields to update"
// @Success 200 {object} technician.Technician
// @Failure 404 {object} response.ErrorResponse "Technician not found"
// @Router /api/technicians/{id} [put]
func (h *TechnicianHandler) UpdateTechnician(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input technician.UpdateTechnicianInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	tech, err := h.svc.UpdateTechnician(id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tech)
}

// DeleteTechnician godoc
// @Summary Delete a technician
// @Tags technicians
// @Security BearerAuth
// @Produce json
// @Param id path int true "Technician ID"
// @Success 200 {object} response.MessageResponse "Technician deleted"
// @Failure 404 {object} response.ErrorResponse "Technician not found"
// @Router /api/technicians/{id} [delete]
func (h *TechnicianHandler) DeleteTechnician(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.RemoveTechnician(id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Technician deleted"})
}
