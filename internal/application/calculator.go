package application

import (
	"errors"
	"math"
)

// Sizing constants for the public calculator. Fixed assumptions, not tunable
// per request: average peak sun hours, panel wattage, installed cost per kW
// and the grid tariff used when only a bill amount is supplied.
const (
	peakSunHours   = 4.0
	panelWatts     = 540.0
	costPerKW      = 55000.0
	defaultTariff  = 8.0
	daysPerMonth   = 30.0
	co2TonsPerKWyr = 1.3
)

var ErrCalculatorInput = errors.New("monthly_units or monthly_bill is required")

type CalculatorInput struct {
	MonthlyUnits float64 `json:"monthly_units" binding:"omitempty,gt=0"`
	MonthlyBill  float64 `json:"monthly_bill" binding:"omitempty,gt=0"`
}

type CalculatorResult struct {
	RecommendedCapacityKW float64 `json:"recommended_capacity_kw"`
	PanelCount            int     `json:"panel_count"`
	EstimatedCost         float64 `json:"estimated_cost"`
	MonthlySavings        float64 `json:"monthly_savings"`
	PaybackYears          float64 `json:"payback_years"`
	AnnualCO2OffsetTons   float64 `json:"annual_co2_offset_tons"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateSystem sizes a rooftop system from monthly consumption. Pure
// arithmetic, no persistence.
func CalculateSystem(input CalculatorInput) (CalculatorResult, error) {
	units := input.MonthlyUnits
	if units == 0 {
		if input.MonthlyBill == 0 {
			return CalculatorResult{}, ErrCalculatorInput
		}
		units = input.MonthlyBill / defaultTariff
	}

	dailyUnits := units / daysPerMonth
	capacityKW := dailyUnits / peakSunHours
	panels := int(math.Ceil(capacityKW * 1000 / panelWatts))
	cost := capacityKW * costPerKW
	savings := units * defaultTariff

	payback := 0.0
	if savings > 0 {
		payback = cost / (savings * 12)
	}

	return CalculatorResult{
		RecommendedCapacityKW: round2(capacityKW),
		PanelCount:            panels,
		EstimatedCost:         round2(cost),
		MonthlySavings:        round2(savings),
		PaybackYears:          round2(payback),
		AnnualCO2OffsetTons:   round2(capacityKW * co2TonsPerKWyr),
	}, nil
}
