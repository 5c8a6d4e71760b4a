package meal

// IngredientUse is a single ingredient line within a meal, carrying the
// amount required and the macros it contributes.
type IngredientUse struct {
	IngredientID string  `json:"ingredient_id"`
	AmountGram   float64 `json:"amount_gram"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Fiber        float64 `json:"fiber"`
}

// Meal is a coach-curated meal with its ingredient composition.
type Meal struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Ingredients []IngredientUse `json:"ingredients_list"`
}
