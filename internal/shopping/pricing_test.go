package shopping

import (
	"testing"

	"fitcoach/internal/ingredient"
)

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		pricePerUnit float64
		unit         Unit
		unitType     ingredient.UnitType
		want         float64
	}{
		{"GramsPricedPerKg", 500, 3.00, UnitGram, ingredient.UnitTypeKg, 1.50},
		{"MillilitersPricedPerLiter", 750, 2.00, UnitMilliliter, ingredient.UnitTypeLiter, 1.50},
		{"PiecesRoundUpToWholePiece", 2.3, 0.50, UnitGram, ingredient.UnitTypePiece, 1.50},
		{"ZeroPrice", 500, 0, UnitGram, ingredient.UnitTypeKg, 0},
		{"NoConversionFallback", 2, 1.25, UnitGram, ingredient.UnitTypeLiter, 2.50},
		{"RoundedToCents", 333, 1.00, UnitGram, ingredient.UnitTypeKg, 0.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCost(tt.amount, tt.pricePerUnit, tt.unit, tt.unitType)
			if got != tt.want {
				t.Errorf("Expected cost %v, got %v", tt.want, got)
			}
			if got < 0 {
				t.Errorf("Cost must never be negative, got %v", got)
			}
		})
	}
}

func TestEstimateCostMonotonic(t *testing.T) {
	// Cost must not decrease as the purchase amount grows, price held fixed.
	prev := 0.0
	for amount := 100.0; amount <= 3000; amount += 100 {
		cost := EstimateCost(amount, 4.50, UnitGram, ingredient.UnitTypeKg)
		if cost < prev {
			t.Fatalf("Cost decreased from %v to %v at amount %v", prev, cost, amount)
		}
		prev = cost
	}
}
