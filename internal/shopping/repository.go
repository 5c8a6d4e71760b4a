package shopping

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository handles persistence of generated shopping lists. A user
// keeps at most one list per week; regenerating replaces it.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new shopping list repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// Save stores a generated shopping list, assigning it an ID if it does
// not have one yet.
func (r *Repository) Save(ctx context.Context, list *ShoppingList) (string, error) {
	if list.ID == "" {
		list.ID = uuid.NewString()
	}

	itemsJSON, err := json.Marshal(list.Items)
	if err != nil {
		return "", fmt.Errorf("failed to marshal shopping list items: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO shopping_lists (id, user_id, week_start, items, total_cost, item_count, skipped_lookups, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, week_start) DO UPDATE SET
			id = excluded.id,
			items = excluded.items,
			total_cost = excluded.total_cost,
			item_count = excluded.item_count,
			skipped_lookups = excluded.skipped_lookups,
			generated_at = excluded.generated_at`,
		list.ID, list.UserID, list.WeekStart, string(itemsJSON),
		list.TotalCost, list.ItemCount, list.SkippedLookups, list.GeneratedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert shopping list: %w", err)
	}

	return list.ID, nil
}

// GetByUserAndWeek retrieves a shopping list by user ID and week start
// date. Returns (nil, nil) when no list has been generated yet.
func (r *Repository) GetByUserAndWeek(ctx context.Context, userID, weekStart string) (*ShoppingList, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, week_start, items, total_cost, item_count, skipped_lookups, generated_at
		FROM shopping_lists WHERE user_id = ? AND week_start = ?`,
		userID, weekStart,
	)

	var list ShoppingList
	var itemsJSON string
	var generatedAt time.Time
	err := row.Scan(&list.ID, &list.UserID, &list.WeekStart, &itemsJSON,
		&list.TotalCost, &list.ItemCount, &list.SkippedLookups, &generatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No shopping list found
		}
		return nil, fmt.Errorf("failed to get shopping list by user and week: %w", err)
	}

	if err := json.Unmarshal([]byte(itemsJSON), &list.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shopping list items: %w", err)
	}
	list.GeneratedAt = generatedAt.UTC()

	return &list, nil
}

// DeleteByUserAndWeek deletes the shopping list for a user and week.
func (r *Repository) DeleteByUserAndWeek(ctx context.Context, userID, weekStart string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM shopping_lists WHERE user_id = ? AND week_start = ?`, userID, weekStart)
	return err
}
