package shopping

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"fitcoach/internal/ingredient"
	"fitcoach/internal/plan"
)

// categoryRank fixes the order categories appear in on the final list.
// Unknown categories sort last.
var categoryRank = map[ingredient.Category]int{
	ingredient.CategoryProtein:    0,
	ingredient.CategoryCarbs:      1,
	ingredient.CategoryVegetables: 2,
	ingredient.CategoryFats:       3,
	ingredient.CategoryDairy:      4,
	ingredient.CategoryFruit:      5,
	ingredient.CategoryOther:      6,
}

// Generator runs the full shopping list pipeline: aggregate the week's
// demand, round each ingredient up to a purchase quantity, estimate its
// cost and assemble the sorted, totaled list.
type Generator struct {
	aggregator *Aggregator
}

// NewGenerator creates a new Generator over the given collaborator
// lookups.
func NewGenerator(meals MealSource, ingredients IngredientSource) *Generator {
	return &Generator{aggregator: NewAggregator(meals, ingredients)}
}

// Generate computes the shopping list for a week plan. Generation is
// best-effort: unresolvable meals and ingredients are skipped, so a
// plan with zero resolvable meals yields an empty list rather than an
// error. Every call builds fresh structures.
func (g *Generator) Generate(ctx context.Context, wp plan.WeekPlan) *ShoppingList {
	aggregated, skipped := g.aggregator.Aggregate(ctx, wp)

	items := make([]ShoppingListItem, 0, len(aggregated))
	var totalCost float64
	for _, entry := range aggregated {
		displayAmount := PurchaseAmount(entry)
		cost := EstimateCost(displayAmount, entry.PricePerUnit, entry.Unit, entry.UnitType)
		items = append(items, ShoppingListItem{
			AggregatedIngredient: *entry,
			DisplayAmount:        displayAmount,
			EstimatedCost:        cost,
		})
		totalCost += cost
	}

	sort.Slice(items, func(i, j int) bool {
		ri, rj := rankOf(items[i].Category), rankOf(items[j].Category)
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})

	return &ShoppingList{
		Items:          items,
		TotalCost:      math.Round(totalCost*100) / 100,
		ItemCount:      len(items),
		SkippedLookups: skipped,
		GeneratedAt:    time.Now().UTC(),
	}
}

func rankOf(c ingredient.Category) int {
	if r, ok := categoryRank[c]; ok {
		return r
	}
	return len(categoryRank)
}
