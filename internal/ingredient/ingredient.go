package ingredient

// Category groups ingredients by the supermarket section they are
// typically found in. The category drives purchase rounding and the
// ordering of the final shopping list.
type Category string

const (
	CategoryProtein    Category = "protein"
	CategoryCarbs      Category = "carbs"
	CategoryVegetables Category = "vegetables"
	CategoryFats       Category = "fats"
	CategoryDairy      Category = "dairy"
	CategoryFruit      Category = "fruit"
	CategoryOther      Category = "other"
)

// UnitType is the unit an ingredient is priced per.
type UnitType string

const (
	UnitTypeKg    UnitType = "kg"
	UnitTypeLiter UnitType = "liter"
	UnitTypePiece UnitType = "piece"
)

// Ingredient is a purchasable grocery item referenced by meals.
type Ingredient struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	PricePerUnit float64  `json:"price_per_unit"`
	UnitType     UnitType `json:"unit_type"`
}

// ParseCategory maps a raw category string to a known Category.
// Unknown or empty values fall back to CategoryOther.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryProtein, CategoryCarbs, CategoryVegetables, CategoryFats, CategoryDairy, CategoryFruit, CategoryOther:
		return Category(s)
	}
	return CategoryOther
}

// ParseUnitType maps a raw unit type string to a known UnitType.
// Unknown or empty values fall back to UnitTypeKg.
func ParseUnitType(s string) UnitType {
	switch UnitType(s) {
	case UnitTypeKg, UnitTypeLiter, UnitTypePiece:
		return UnitType(s)
	}
	return UnitTypeKg
}
