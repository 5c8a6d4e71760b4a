package shopping

import (
	"math"

	"fitcoach/internal/ingredient"
)

// Per-name overrides for groceries sold per piece rather than by
// weight, keyed by ingredient display name. The amount is rounded up to
// the next multiple of the step: eggs come in boxes of 6, loose produce
// is bought per piece. Product data, not derived from anything.
var unitOverrides = map[string]float64{
	"Eieren":  6,
	"Avocado": 1,
	"Banaan":  1,
	"Appel":   1,
}

// categoryBands lists the package sizes (grams) a category is typically
// sold in, ascending. The smallest band at or above the demand wins.
var categoryBands = map[ingredient.Category][]float64{
	ingredient.CategoryProtein:    {200, 400, 500, 750, 1000},
	ingredient.CategoryVegetables: {250, 500, 750},
	ingredient.CategoryCarbs:      {500, 1000},
}

// defaultBands covers fats, dairy, fruit, other and unknown categories.
var defaultBands = []float64{100, 250, 500, 750, 1000}

// overflowSteps gives the rounding step used once demand exceeds a
// category's largest band.
var overflowSteps = map[ingredient.Category]float64{
	ingredient.CategoryProtein:    500,
	ingredient.CategoryVegetables: 500,
	ingredient.CategoryCarbs:      1000,
}

const defaultOverflowStep = 500

// PurchaseAmount converts an aggregated demand into a realistic
// purchase quantity. The result is always at least the demand, and a
// zero demand still yields the smallest package rather than 0.
func PurchaseAmount(agg *AggregatedIngredient) float64 {
	if step, ok := unitOverrides[agg.Name]; ok {
		return roundUpToStep(agg.TotalAmount, step)
	}

	bands, ok := categoryBands[agg.Category]
	if !ok {
		bands = defaultBands
	}
	for _, ceiling := range bands {
		if agg.TotalAmount <= ceiling {
			return ceiling
		}
	}

	step, ok := overflowSteps[agg.Category]
	if !ok {
		step = defaultOverflowStep
	}
	return roundUpToStep(agg.TotalAmount, step)
}

// roundUpToStep rounds amount up to the next multiple of step, never
// returning 0.
func roundUpToStep(amount, step float64) float64 {
	n := math.Ceil(amount / step)
	if n < 1 {
		n = 1
	}
	return n * step
}
