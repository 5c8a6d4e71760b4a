package shopping

import (
	"strings"
	"testing"
	"time"

	"fitcoach/internal/ingredient"
)

func TestFormatText(t *testing.T) {
	list := &ShoppingList{
		Items: []ShoppingListItem{
			{
				AggregatedIngredient: AggregatedIngredient{
					Name: "Kipfilet", Category: ingredient.CategoryProtein,
					Unit: UnitGram, UnitType: ingredient.UnitTypeKg,
				},
				DisplayAmount: 500,
				EstimatedCost: 4.50,
			},
			{
				AggregatedIngredient: AggregatedIngredient{
					Name: "Eieren", Category: ingredient.CategoryProtein,
					Unit: UnitGram, UnitType: ingredient.UnitTypePiece,
				},
				DisplayAmount: 12,
				EstimatedCost: 4.20,
			},
			{
				AggregatedIngredient: AggregatedIngredient{
					Name: "Melk", Category: ingredient.CategoryDairy,
					Unit: UnitMilliliter, UnitType: ingredient.UnitTypeLiter,
				},
				DisplayAmount: 1000,
				EstimatedCost: 0,
			},
		},
		TotalCost:   8.70,
		ItemCount:   3,
		GeneratedAt: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	}

	text := FormatText(list)

	if !strings.Contains(text, "=== SHOPPING LIST (2026-01-05) ===") {
		t.Errorf("Expected header with generation date, got:\n%s", text)
	}
	if !strings.Contains(text, "- Kipfilet: 500 g (~€4.50)") {
		t.Errorf("Expected weight item line with cost, got:\n%s", text)
	}
	if !strings.Contains(text, "- Eieren: 12 pcs (~€4.20)") {
		t.Errorf("Expected piece item line, got:\n%s", text)
	}
	if !strings.Contains(text, "- Melk: 1000 ml\n") {
		t.Errorf("Expected milliliter item line without cost, got:\n%s", text)
	}
	if !strings.Contains(text, "Total: €8.70 (3 items)") {
		t.Errorf("Expected total line, got:\n%s", text)
	}

	// One heading per category, in list order.
	proteinIdx := strings.Index(text, "Protein:")
	dairyIdx := strings.Index(text, "Dairy:")
	if proteinIdx == -1 || dairyIdx == -1 || proteinIdx > dairyIdx {
		t.Errorf("Expected Protein heading before Dairy heading, got:\n%s", text)
	}
	if strings.Count(text, "Protein:") != 1 {
		t.Errorf("Expected a single Protein heading, got:\n%s", text)
	}
}
