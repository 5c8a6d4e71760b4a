package shopping

import (
	"math"

	"fitcoach/internal/ingredient"
)

// EstimateCost converts a purchase quantity into an estimated price.
// Prices are stored per unit type (kg, liter or piece) while demand is
// aggregated in grams or milliliters, so gram/kg and ml/liter pairs
// divide by 1000 and piece-priced items pay per whole piece. A missing
// price yields 0. The result is rounded to currency granularity.
func EstimateCost(displayAmount, pricePerUnit float64, unit Unit, unitType ingredient.UnitType) float64 {
	if pricePerUnit <= 0 {
		return 0
	}

	var cost float64
	switch {
	case unit == UnitGram && unitType == ingredient.UnitTypeKg:
		cost = displayAmount / 1000 * pricePerUnit
	case unit == UnitMilliliter && unitType == ingredient.UnitTypeLiter:
		cost = displayAmount / 1000 * pricePerUnit
	case unitType == ingredient.UnitTypePiece:
		cost = math.Ceil(displayAmount) * pricePerUnit
	default:
		cost = displayAmount * pricePerUnit
	}

	return math.Round(cost*100) / 100
}
