package shopping

import (
	"fmt"
	"math"
	"strings"

	"fitcoach/internal/ingredient"
)

// categoryLabels maps categories to the headings used in the text
// export.
var categoryLabels = map[ingredient.Category]string{
	ingredient.CategoryProtein:    "Protein",
	ingredient.CategoryCarbs:      "Carbs",
	ingredient.CategoryVegetables: "Vegetables",
	ingredient.CategoryFats:       "Fats",
	ingredient.CategoryDairy:      "Dairy",
	ingredient.CategoryFruit:      "Fruit",
	ingredient.CategoryOther:      "Other",
}

// FormatText renders a shopping list as shareable plain text, grouped
// by category. Items are already sorted by category and name, so a
// single pass emits a heading whenever the category changes.
func FormatText(list *ShoppingList) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== SHOPPING LIST (%s) ===\n", list.GeneratedAt.Format("2006-01-02"))

	var current ingredient.Category
	headerWritten := false
	for _, item := range list.Items {
		if !headerWritten || item.Category != current {
			current = item.Category
			headerWritten = true
			fmt.Fprintf(&b, "\n%s:\n", labelFor(current))
		}

		fmt.Fprintf(&b, "- %s: %s", item.Name, formatAmount(item))
		if item.EstimatedCost > 0 {
			fmt.Fprintf(&b, " (~\u20ac%.2f)", item.EstimatedCost)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nTotal: \u20ac%.2f (%d items)\n", list.TotalCost, list.ItemCount)
	return b.String()
}

func labelFor(c ingredient.Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "Other"
}

func formatAmount(item ShoppingListItem) string {
	if item.UnitType == ingredient.UnitTypePiece {
		return fmt.Sprintf("%.0f pcs", math.Ceil(item.DisplayAmount))
	}
	if item.Unit == UnitMilliliter {
		return fmt.Sprintf("%.0f ml", item.DisplayAmount)
	}
	return fmt.Sprintf("%.0f g", item.DisplayAmount)
}
