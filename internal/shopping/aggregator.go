package shopping

import (
	"context"
	"log"

	"fitcoach/internal/ingredient"
	"fitcoach/internal/meal"
	"fitcoach/internal/plan"
)

// MealSource provides read-only access to meal records. A (nil, nil)
// result means the meal does not exist.
type MealSource interface {
	GetByID(ctx context.Context, id string) (*meal.Meal, error)
}

// IngredientSource provides read-only access to ingredient records. A
// (nil, nil) result means the ingredient does not exist.
type IngredientSource interface {
	GetByID(ctx context.Context, id string) (*ingredient.Ingredient, error)
}

// Aggregator walks a week plan and accumulates the required amount per
// distinct ingredient, recording which day/slot/meal contributed what.
type Aggregator struct {
	meals       MealSource
	ingredients IngredientSource
}

// NewAggregator creates a new Aggregator.
func NewAggregator(meals MealSource, ingredients IngredientSource) *Aggregator {
	return &Aggregator{
		meals:       meals,
		ingredients: ingredients,
	}
}

// resolveMealRef resolves a meal reference to its full record. It
// returns nil when the reference carries no identifier, when the meal
// does not exist, or when the lookup fails; a single bad reference must
// never abort the whole run.
func (a *Aggregator) resolveMealRef(ctx context.Context, ref plan.MealRef) *meal.Meal {
	id, ok := ref.MealID()
	if !ok {
		return nil
	}

	m, err := a.meals.GetByID(ctx, id)
	if err != nil {
		log.Printf("Warning: failed to fetch meal %q: %v", id, err)
		return nil
	}
	return m
}

// Aggregate builds the per-ingredient demand map for a week plan. Days
// and slots are visited in their fixed order so the instance lists come
// out identical on every run. The second return value counts lookups
// that were skipped because a meal or ingredient could not be resolved.
func (a *Aggregator) Aggregate(ctx context.Context, wp plan.WeekPlan) (map[string]*AggregatedIngredient, int) {
	aggregated := make(map[string]*AggregatedIngredient)
	skipped := 0

	for _, day := range plan.Days {
		slots, ok := wp[day]
		if !ok {
			continue // Nothing planned for this day
		}

		for _, slot := range plan.Slots {
			for _, ref := range slots.SlotRefs(slot) {
				m := a.resolveMealRef(ctx, ref)
				if m == nil {
					if _, hasID := ref.MealID(); hasID {
						log.Printf("Warning: meal reference %q on %s/%s did not resolve, skipping", ref.String(), day, slot)
						skipped++
					}
					continue
				}

				for _, use := range m.Ingredients {
					rec, err := a.ingredients.GetByID(ctx, use.IngredientID)
					if err != nil {
						log.Printf("Warning: failed to fetch ingredient %q in meal %q: %v", use.IngredientID, m.Name, err)
						skipped++
						continue
					}
					if rec == nil {
						log.Printf("Warning: ingredient %q in meal %q not found, skipping", use.IngredientID, m.Name)
						skipped++
						continue
					}

					entry, ok := aggregated[rec.ID]
					if !ok {
						unitType := ingredient.ParseUnitType(string(rec.UnitType))
						unit := UnitGram
						if unitType == ingredient.UnitTypeLiter {
							unit = UnitMilliliter
						}
						entry = &AggregatedIngredient{
							ID:           rec.ID,
							Name:         rec.Name,
							Category:     ingredient.ParseCategory(string(rec.Category)),
							Unit:         unit,
							PricePerUnit: rec.PricePerUnit,
							UnitType:     unitType,
						}
						aggregated[rec.ID] = entry
					}

					entry.TotalAmount += use.AmountGram
					entry.Instances = append(entry.Instances, Instance{
						Day:      day,
						Slot:     slot,
						MealName: m.Name,
						Amount:   use.AmountGram,
					})
				}
			}
		}
	}

	return aggregated, skipped
}
