package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/internal/domain/installation"
	"github.com/sunspire/solar-crm/pkg/response"
)

type InstallationHandler struct {
	svc *application.InstallationService
}

func NewInstallationHandler(svc *application.InstallationService) *InstallationHandler {
	return &InstallationHandler{svc: svc}
}

// GetInstallations godoc
// @Summary List installations visible to the caller
// @Tags installations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} installation.Installation
// @Router /api/installations [get]
func (h *InstallationHandler) GetInstallations(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	installations, err := h.svc.ListInstallations(actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, installations)
}

// GetInstallationByID godoc
// @Summary Get an installation by id
// @Tags installations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Installation ID"
// @Success 200 {object} installation.Installation
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Installation not found"
// @Router /api/installations/{id} [get]
func (h *InstallationHandler) GetInstallationByID(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	inst, err := h.svc.FindInstallationByID(actor, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inst)
}

// CreateInstallation godoc
// @Summary Create an installation directly
// @Tags installations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body installation.CreateInstallationInput true "Installation info"
// @Success 201 {object} installation.Installation
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Router /api/installations [post]
func (h *InstallationHandler) CreateInstallation(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input installation.CreateInstallationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	inst, err := h.svc.CreateInstallation(actor, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inst)
}

// ConvertFromQuotation godoc
// @Summary Convert a quotation into an installation
// @Description Creates the installation and marks the quotation converted in one transaction. A quotation converts at most once.
// @Tags installations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body installation.ConvertInput true "Quotation to convert"
// @Success 201 {object} installation.Installation
// @Failure 400 {object} response.ErrorResponse "Quotation already converted or not convertible"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Quotation not found"
// @Router /api/installations/from-quotation [post]
func (h *InstallationHandler) ConvertFromQuotation(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input installation.ConvertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	inst, err := h.svc.ConvertFromQuotation(actor, input.QuotationID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inst)
}

// AssignTechnician godoc
// @Summary Assign a technician to an installation
// @Description Only active technicians are assignable. A pending installation moves to in_progress.
// @Tags installations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Installation ID"
// @Param input body installation.AssignTechnicianInput true "Technician to assign"
// @Success 200 {object} installation.Installation
// @Failure 400 {object} response.ErrorResponse "Technician not assignable"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Installation or technician not found"
// @Router /api/installations/{id}/assign-technician [put]
func (h *InstallationHandler) AssignTechnician(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input installation.AssignTechnicianInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	inst, err := h.svc.AssignTechnician(actor, id, input.TechnicianID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inst)
}

// UpdateInstallation godoc
// @Summary Update an installation
// @Tags installations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Installation ID"
// @Param input body installation.UpdateInstallationInput true "Fields to update"
// @Success 200 {object} installation.Installation
// @Failure 404 {object} response.ErrorResponse "Installation not found"
// @Router /api/installations/{id} [put]
func (h *InstallationHandler) UpdateInstallation(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input installation.UpdateInstallationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	inst, err := h.svc.UpdateInstallation(actor, id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inst)
}

// DeleteInstallation godoc
// @Summary Delete an installation
// @Tags installations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Installation ID"
// @Success 200 {object} response.MessageResponse "Installation deleted"
// @Failure 404 {object} response.ErrorResponse "Installation not found"
// @Router /api/installations/{id} [delete]
func (h *InstallationHandler) DeleteInstallation(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.RemoveInstallation(actor, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Installation deleted"})
}
