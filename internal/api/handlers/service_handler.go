package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/internal/domain/catalog"
	"github.com/sunspire/solar-crm/pkg/response"
)

type ServiceHandler struct {
	svc *application.CatalogService
}

func NewServiceHandler(svc *application.CatalogService) *ServiceHandler {
	return &ServiceHandler{svc: svc}
}

// GetServices godoc
// @Summary List catalog services
// @Description Active services only unless include_inactive=true.
// @Tags services
// @Produce json
// @Param include_inactive query bool false "Include deactivated services"
// @Success 200 {array} catalog.Service
// @Router /api/services [get]
func (h *ServiceHandler) GetServices(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	services, err := h.svc.ListServices(includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceByID godoc
// @Summary Get a service by id
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} catalog.Service
// @Failure 404 {object} response.ErrorResponse "Service not found"
// @Router /api/services/{id} [get]
func (h *ServiceHandler) GetServiceByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	svc, err := h.svc.FindServiceByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// CreateService godoc
// @Summary Create a catalog service
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body catalog.CreateServiceInput true "Service info"
// @Success 201 {object} catalog.Service
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /api/services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var input catalog.CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	svc, err := h.svc.CreateService(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateService godoc
// @Summary Update a catalog service
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param input body catalog.UpdateServiceInput true "Fields to update"
// @Success 200 {object} catalog.Service
// @Failure 404 {object} response.ErrorResponse "Service not found"
// @Router /api/services/{id} [put]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input catalog.UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	svc, err := h.svc.UpdateService(id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteService godoc
// @Summary Deactivate a catalog service
// @Description Soft delete, the row is kept with is_active=false.
// @Tags services
// @Security BearerAuth
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} response.MessageResponse "Service deactivated"
// @Failure 404 {object} response.ErrorResponse "Service not found"
// @Router /api/services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.RemoveService(id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Service deactivated"})
}
