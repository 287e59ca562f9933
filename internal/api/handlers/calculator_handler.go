package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/pkg/response"
)

type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// Calculate godoc
// @Summary Solar system sizing estimate
// @Description Recommends system capacity, panel count, cost, savings and payback from monthly consumption or bill.
// @Tags calculator
// @Accept json
// @Produce json
// @Param input body application.CalculatorInput true "Monthly units or monthly bill"
// @Success 200 {object} application.CalculatorResult
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /api/calculator [post]
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	var input application.CalculatorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	result, err := application.CalculateSystem(input)
	if err != nil {
		if errors.Is(err, application.ErrCalculatorInput) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
