package acceptance_tests

import (
	"context"
	"encoding/json"
	"math"
	"path/filepath"
	"testing"

	"fitcoach/internal/app"
	"fitcoach/internal/config"
	"fitcoach/internal/database"
	"fitcoach/internal/ingredient"
	"fitcoach/internal/meal"
	"fitcoach/internal/metrics"
	"fitcoach/internal/plan"
	"fitcoach/internal/shopping"
	"fitcoach/internal/storage"
)

// newTestApp wires a full application stack against a temporary
// database and export directory.
func newTestApp(t *testing.T) *app.App {
	t.Helper()

	dataDir := t.TempDir()
	cfg := &config.Config{
		DatabasePath:      filepath.Join(dataDir, "test.db"),
		Port:              "8080",
		ExportStoragePath: filepath.Join(dataDir, "exports"),
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	mealRepo := meal.NewRepository(db.SQL)
	ingredientRepo := ingredient.NewRepository(db.SQL)
	planRepo := plan.NewRepository(db.SQL)
	listRepo := shopping.NewRepository(db.SQL)
	generator := shopping.NewGenerator(mealRepo, ingredientRepo)
	metricsStore := metrics.NewStore(db.SQL)

	exportStore, err := storage.NewExportStore(cfg.ExportStoragePath)
	if err != nil {
		t.Fatalf("Failed to initialize export store: %v", err)
	}

	return app.NewApp(cfg, db, mealRepo, ingredientRepo, planRepo, listRepo, generator, metricsStore, exportStore)
}

func seedCatalog(t *testing.T, ctx context.Context, a *app.App) {
	t.Helper()

	ingredients := []ingredient.Ingredient{
		{ID: "chicken", Name: "Kipfilet", Category: ingredient.CategoryProtein, PricePerUnit: 9.00, UnitType: ingredient.UnitTypeKg},
		{ID: "rice", Name: "Rijst", Category: ingredient.CategoryCarbs, PricePerUnit: 2.00, UnitType: ingredient.UnitTypeKg},
		{ID: "eggs", Name: "Eieren", Category: ingredient.CategoryProtein, PricePerUnit: 0.35, UnitType: ingredient.UnitTypePiece},
		{ID: "broccoli", Name: "Broccoli", Category: ingredient.CategoryVegetables, PricePerUnit: 3.50, UnitType: ingredient.UnitTypeKg},
	}
	meals := []meal.Meal{
		{
			ID:   "eggbowl",
			Name: "Eierbowl",
			Ingredients: []meal.IngredientUse{
				{IngredientID: "eggs", AmountGram: 2},
			},
		},
		{
			ID:   "chicken-rice",
			Name: "Kip met Rijst",
			Ingredients: []meal.IngredientUse{
				{IngredientID: "chicken", AmountGram: 180},
				{IngredientID: "rice", AmountGram: 150},
				{IngredientID: "broccoli", AmountGram: 250},
			},
		},
	}

	for _, ing := range ingredients {
		if err := a.SaveIngredient(ctx, ing); err != nil {
			t.Fatalf("Failed to seed ingredient %s: %v", ing.ID, err)
		}
	}
	for _, m := range meals {
		if err := a.SaveMeal(ctx, m); err != nil {
			t.Fatalf("Failed to seed meal %s: %v", m.ID, err)
		}
	}
}

func TestShoppingListGenerationWorkflow(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)
	seedCatalog(t, ctx, a)

	// The plan mixes both meal reference forms, a variant suffix and a
	// reference to a meal that does not exist in the catalog.
	planJSON := `{
		"monday":    {"breakfast": "eggbowl", "lunch": "chicken-rice_large"},
		"tuesday":   {"breakfast": {"meal_id": "eggbowl"}},
		"wednesday": {"breakfast": "eggbowl"},
		"thursday":  {"breakfast": "eggbowl"},
		"saturday":  {"snacks": ["missing-meal"]}
	}`
	var wp plan.WeekPlan
	if err := json.Unmarshal([]byte(planJSON), &wp); err != nil {
		t.Fatalf("Failed to parse week plan: %v", err)
	}

	userID := "client-42"
	weekStart := "2026-01-05"

	if err := a.SavePlan(ctx, userID, weekStart, wp); err != nil {
		t.Fatalf("Failed to save week plan: %v", err)
	}

	list, err := a.GenerateForWeek(ctx, userID, weekStart)
	if err != nil {
		t.Fatalf("Failed to generate shopping list: %v", err)
	}

	t.Run("ItemsAndOrder", func(t *testing.T) {
		if list.ItemCount != 4 || len(list.Items) != 4 {
			t.Fatalf("Expected 4 items, got %d", len(list.Items))
		}

		// Category order with alphabetical names inside a category.
		expectedNames := []string{"Eieren", "Kipfilet", "Rijst", "Broccoli"}
		for i, name := range expectedNames {
			if list.Items[i].Name != name {
				t.Errorf("Expected item %d to be '%s', got '%s'", i, name, list.Items[i].Name)
			}
		}
	})

	t.Run("PurchaseAmounts", func(t *testing.T) {
		byName := map[string]shopping.ShoppingListItem{}
		for _, item := range list.Items {
			byName[item.Name] = item
		}

		// 4 breakfasts of 2 eggs round up to two cartons of 6.
		if eggs := byName["Eieren"]; eggs.TotalAmount != 8 || eggs.DisplayAmount != 12 {
			t.Errorf("Expected eggs 8 -> 12, got %v -> %v", eggs.TotalAmount, eggs.DisplayAmount)
		}
		// 180g of chicken rounds up to the 200g protein band.
		if chicken := byName["Kipfilet"]; chicken.TotalAmount != 180 || chicken.DisplayAmount != 200 {
			t.Errorf("Expected chicken 180 -> 200, got %v -> %v", chicken.TotalAmount, chicken.DisplayAmount)
		}
		if rice := byName["Rijst"]; rice.DisplayAmount != 500 {
			t.Errorf("Expected rice display amount 500, got %v", rice.DisplayAmount)
		}
		if broccoli := byName["Broccoli"]; broccoli.DisplayAmount != 250 {
			t.Errorf("Expected broccoli display amount 250, got %v", broccoli.DisplayAmount)
		}
	})

	t.Run("Costs", func(t *testing.T) {
		// chicken 200g at 9.00/kg = 1.80, rice 500g at 2.00/kg = 1.00,
		// eggs 12 pcs at 0.35 = 4.20, broccoli 250g at 3.50/kg = 0.88.
		expectedTotal := 1.80 + 1.00 + 4.20 + 0.88
		if math.Abs(list.TotalCost-expectedTotal) > 0.001 {
			t.Errorf("Expected total cost %.2f, got %.2f", expectedTotal, list.TotalCost)
		}
	})

	t.Run("SkippedLookups", func(t *testing.T) {
		if list.SkippedLookups != 1 {
			t.Errorf("Expected 1 skipped lookup for the missing meal, got %d", list.SkippedLookups)
		}
	})

	t.Run("ListPersisted", func(t *testing.T) {
		stored, err := a.GetList(ctx, userID, weekStart)
		if err != nil {
			t.Fatalf("Failed to load stored list: %v", err)
		}
		if stored == nil {
			t.Fatal("Expected stored shopping list, got nil")
		}
		if stored.ID == "" {
			t.Error("Expected stored list to have an ID assigned")
		}
		if stored.ID != list.ID {
			t.Errorf("Expected stored list ID '%s', got '%s'", list.ID, stored.ID)
		}
		if stored.ItemCount != 4 || math.Abs(stored.TotalCost-list.TotalCost) > 0.001 {
			t.Errorf("Stored list differs from generated list: %+v", stored)
		}
	})

	t.Run("ExportDocuments", func(t *testing.T) {
		text, err := a.ExportText(ctx, userID, weekStart)
		if err != nil {
			t.Fatalf("Failed to render text export: %v", err)
		}
		if text == "" {
			t.Fatal("Expected non-empty text export")
		}
	})

	t.Run("MetricsRecorded", func(t *testing.T) {
		usage, err := a.DailyUsage(7)
		if err != nil {
			t.Fatalf("Failed to load daily usage: %v", err)
		}
		if len(usage) != 1 || usage[0].Runs != 1 {
			t.Errorf("Expected a single generation run in usage, got %+v", usage)
		}
	})

	t.Run("Regeneration", func(t *testing.T) {
		again, err := a.GenerateForWeek(ctx, userID, weekStart)
		if err != nil {
			t.Fatalf("Failed to regenerate shopping list: %v", err)
		}
		if again.ItemCount != list.ItemCount || math.Abs(again.TotalCost-list.TotalCost) > 0.001 {
			t.Errorf("Regeneration produced a different list: %+v", again)
		}

		stored, err := a.GetList(ctx, userID, weekStart)
		if err != nil {
			t.Fatalf("Failed to load stored list: %v", err)
		}
		if stored == nil || stored.ItemCount != list.ItemCount {
			t.Error("Expected regenerated list to replace the stored one")
		}
	})
}

func TestGenerateWithoutStoredPlan(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)

	if _, err := a.GenerateForWeek(ctx, "client-42", "2026-01-05"); err == nil {
		t.Fatal("Expected an error when no plan is stored, got nil")
	}
}
