package ingredient

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository is a database-backed repository for ingredients.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// Save inserts or updates an ingredient in the database.
func (r *Repository) Save(ctx context.Context, ing Ingredient) error {
	if ing.ID == "" {
		return fmt.Errorf("ingredient has no ID")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ingredients (id, name, category, price_per_unit, unit_type, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			price_per_unit = excluded.price_per_unit,
			unit_type = excluded.unit_type,
			updated_at = excluded.updated_at`,
		ing.ID, ing.Name, string(ParseCategory(string(ing.Category))), ing.PricePerUnit,
		string(ParseUnitType(string(ing.UnitType))), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save ingredient %s: %w", ing.ID, err)
	}
	return nil
}

// GetByID retrieves an ingredient by its ID. Returns (nil, nil) when the
// ingredient does not exist.
func (r *Repository) GetByID(ctx context.Context, id string) (*Ingredient, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, category, price_per_unit, unit_type FROM ingredients WHERE id = ?`, id)

	var ing Ingredient
	var category, unitType string
	if err := row.Scan(&ing.ID, &ing.Name, &category, &ing.PricePerUnit, &unitType); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Ingredient not found
		}
		return nil, fmt.Errorf("failed to get ingredient by ID: %w", err)
	}

	ing.Category = ParseCategory(category)
	ing.UnitType = ParseUnitType(unitType)
	return &ing, nil
}

// List retrieves all ingredients ordered by name.
func (r *Repository) List(ctx context.Context) ([]Ingredient, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, category, price_per_unit, unit_type FROM ingredients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []Ingredient
	for rows.Next() {
		var ing Ingredient
		var category, unitType string
		if err := rows.Scan(&ing.ID, &ing.Name, &category, &ing.PricePerUnit, &unitType); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient row: %w", err)
		}
		ing.Category = ParseCategory(category)
		ing.UnitType = ParseUnitType(unitType)
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

// Count returns the number of ingredients in the database.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ingredients`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count ingredients: %w", err)
	}
	return count, nil
}
