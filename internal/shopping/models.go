package shopping

import (
	"time"

	"fitcoach/internal/ingredient"
)

// Unit is the measurement unit ingredient amounts are aggregated in.
type Unit string

const (
	UnitGram       Unit = "gram"
	UnitMilliliter Unit = "ml"
)

// Instance records a single contribution to an aggregated ingredient,
// kept for traceability back to the plan.
type Instance struct {
	Day      string  `json:"day"`
	Slot     string  `json:"slot"`
	MealName string  `json:"meal_name"`
	Amount   float64 `json:"amount"`
}

// AggregatedIngredient is the total demand for one ingredient across
// the whole week. TotalAmount always equals the sum of the instance
// amounts; accumulation is the only mutation path.
type AggregatedIngredient struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Category     ingredient.Category `json:"category"`
	TotalAmount  float64             `json:"total_amount"`
	Unit         Unit                `json:"unit"`
	Instances    []Instance          `json:"instances"`
	PricePerUnit float64             `json:"price_per_unit"`
	UnitType     ingredient.UnitType `json:"unit_type"`
}

// ShoppingListItem is an aggregated ingredient with its purchase
// quantity and estimated cost. DisplayAmount is never below
// TotalAmount.
type ShoppingListItem struct {
	AggregatedIngredient
	DisplayAmount float64 `json:"display_amount"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// ShoppingList is the final output of the generation pipeline. ID,
// UserID and WeekStart are assigned when the list is persisted; the
// engine itself produces only the items and totals.
type ShoppingList struct {
	ID             string             `json:"id,omitempty"`
	UserID         string             `json:"user_id,omitempty"`
	WeekStart      string             `json:"week_start,omitempty"`
	Items          []ShoppingListItem `json:"items"`
	TotalCost      float64            `json:"total_cost"`
	ItemCount      int                `json:"item_count"`
	SkippedLookups int                `json:"skipped_lookups,omitempty"`
	GeneratedAt    time.Time          `json:"generated_at"`
}
