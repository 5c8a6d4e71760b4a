package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"fitcoach/internal/config"
	"fitcoach/internal/database"
	"fitcoach/internal/ingredient"
	"fitcoach/internal/meal"
	"fitcoach/internal/metrics"
	"fitcoach/internal/plan"
	"fitcoach/internal/shopping"
	"fitcoach/internal/storage"
)

// App holds the application's dependencies and orchestrates the
// shopping list workflow shared by the CLI and the HTTP server.
type App struct {
	cfg            *config.Config
	db             *database.DB
	mealRepo       *meal.Repository
	ingredientRepo *ingredient.Repository
	planRepo       *plan.Repository
	listRepo       *shopping.Repository
	generator      *shopping.Generator
	metricsStore   *metrics.Store
	exportStore    *storage.ExportStore
}

// NewApp creates and initializes a new App instance.
func NewApp(
	cfg *config.Config,
	db *database.DB,
	mealRepo *meal.Repository,
	ingredientRepo *ingredient.Repository,
	planRepo *plan.Repository,
	listRepo *shopping.Repository,
	generator *shopping.Generator,
	metricsStore *metrics.Store,
	exportStore *storage.ExportStore,
) *App {
	return &App{
		cfg:            cfg,
		db:             db,
		mealRepo:       mealRepo,
		ingredientRepo: ingredientRepo,
		planRepo:       planRepo,
		listRepo:       listRepo,
		generator:      generator,
		metricsStore:   metricsStore,
		exportStore:    exportStore,
	}
}

// SaveIngredient stores a single catalog ingredient.
func (a *App) SaveIngredient(ctx context.Context, ing ingredient.Ingredient) error {
	return a.ingredientRepo.Save(ctx, ing)
}

// SaveMeal stores a single catalog meal.
func (a *App) SaveMeal(ctx context.Context, m meal.Meal) error {
	return a.mealRepo.Save(ctx, m)
}

// SavePlan stores the week plan for a user and week start date.
func (a *App) SavePlan(ctx context.Context, userID, weekStart string, wp plan.WeekPlan) error {
	return a.planRepo.Save(ctx, userID, weekStart, wp)
}

// GetPlan retrieves the stored week plan. Returns (nil, nil) when no
// plan is stored.
func (a *App) GetPlan(ctx context.Context, userID, weekStart string) (plan.WeekPlan, error) {
	return a.planRepo.GetByUserAndWeek(ctx, userID, weekStart)
}

// GenerateForWeek loads the stored plan for the user's week, runs the
// generation pipeline, persists the result and writes export documents.
func (a *App) GenerateForWeek(ctx context.Context, userID, weekStart string) (*shopping.ShoppingList, error) {
	wp, err := a.planRepo.GetByUserAndWeek(ctx, userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load week plan: %w", err)
	}
	if wp == nil {
		return nil, fmt.Errorf("no meal plan stored for user %s and week %s", userID, weekStart)
	}

	start := time.Now()
	list := a.generator.Generate(ctx, wp)
	list.UserID = userID
	list.WeekStart = weekStart

	if _, err := a.listRepo.Save(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to save shopping list: %w", err)
	}

	if err := a.metricsStore.Record(metrics.GenerationMetric{
		UserID:         userID,
		ItemCount:      list.ItemCount,
		TotalCost:      list.TotalCost,
		SkippedLookups: list.SkippedLookups,
		LatencyMS:      time.Since(start).Milliseconds(),
	}); err != nil {
		log.Printf("Warning: failed to record generation metrics: %v", err)
	}

	if err := a.exportStore.SaveJSON(userID, weekStart, list); err != nil {
		log.Printf("Warning: failed to export shopping list JSON: %v", err)
	}
	if err := a.exportStore.SaveText(userID, weekStart, shopping.FormatText(list)); err != nil {
		log.Printf("Warning: failed to export shopping list text: %v", err)
	}

	return list, nil
}

// GenerateFromPlan runs the generation pipeline on an ad hoc plan
// without persisting anything.
func (a *App) GenerateFromPlan(ctx context.Context, wp plan.WeekPlan) *shopping.ShoppingList {
	return a.generator.Generate(ctx, wp)
}

// GetList retrieves the stored shopping list for a user and week.
// Returns (nil, nil) when no list has been generated yet.
func (a *App) GetList(ctx context.Context, userID, weekStart string) (*shopping.ShoppingList, error) {
	return a.listRepo.GetByUserAndWeek(ctx, userID, weekStart)
}

// ExportText returns the shareable text rendering of the stored list.
func (a *App) ExportText(ctx context.Context, userID, weekStart string) (string, error) {
	list, err := a.listRepo.GetByUserAndWeek(ctx, userID, weekStart)
	if err != nil {
		return "", fmt.Errorf("failed to load shopping list: %w", err)
	}
	if list == nil {
		return "", fmt.Errorf("no shopping list generated for user %s and week %s", userID, weekStart)
	}
	return shopping.FormatText(list), nil
}

// Catalog is the import file format for ingredients and meals.
type Catalog struct {
	Ingredients []ingredient.Ingredient `json:"ingredients"`
	Meals       []meal.Meal             `json:"meals"`
}

// ImportCatalog loads ingredients and meals from a JSON file into the
// database. Individual bad records are skipped so one broken entry does
// not block the rest of the import.
func (a *App) ImportCatalog(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	imported := 0
	for _, ing := range cat.Ingredients {
		if err := a.ingredientRepo.Save(ctx, ing); err != nil {
			log.Printf("Warning: failed to save ingredient %q: %v", ing.ID, err)
			continue
		}
		imported++
	}
	for _, m := range cat.Meals {
		if err := a.mealRepo.Save(ctx, m); err != nil {
			log.Printf("Warning: failed to save meal %q: %v", m.ID, err)
			continue
		}
		imported++
	}

	fmt.Printf("Imported %d of %d catalog records.\n", imported, len(cat.Ingredients)+len(cat.Meals))
	return nil
}

// DailyUsage returns generation usage totals for the last N days.
func (a *App) DailyUsage(days int) ([]metrics.DailyUsage, error) {
	return a.metricsStore.GetDailyUsage(days)
}

// Health returns a runtime health snapshot including the size of the
// data directory.
func (a *App) Health() metrics.SysHealth {
	return metrics.GetSysHealth(filepath.Dir(a.cfg.DatabasePath))
}
