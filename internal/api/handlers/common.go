package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sunspire/solar-crm/internal/api/middleware"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/pkg/response"
)

// assignInput is the shared body for assigning a technician to a
// complaint or support ticket.
type assignInput struct {
	TechnicianID uint `json:"technician_id" binding:"required"`
}

// currentActor builds the acting identity from the request's claims.
func currentActor(c *gin.Context) (application.Actor, error) {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		return application.Actor{}, err
	}
	id := middleware.ResolveUserID(claims)
	if id == 0 {
		return application.Actor{}, errors.New("token carries no identity")
	}
	return application.Actor{ID: id, Role: claims.Role}, nil
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// writeServiceError maps application sentinel errors onto the HTTP
// taxonomy. Business-rule conflicts deliberately surface as 400 with a
// descriptive message rather than 409, matching the frontend contract.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrForbidden):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrTechnicianNotFound),
		errors.Is(err, application.ErrServiceNotFound),
		errors.Is(err, application.ErrQuotationNotFound),
		errors.Is(err, application.ErrInstallationNotFound),
		errors.Is(err, application.ErrComplaintNotFound),
		errors.Is(err, application.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrAlreadyConverted),
		errors.Is(err, application.ErrNotConvertible),
		errors.Is(err, application.ErrQuotationDecided),
		errors.Is(err, application.ErrTechnicianUnavailable):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrEmailTaken):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
	}
}
