package plan

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Repository is a database-backed repository for week plans. A user has
// at most one plan per week start date.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// Save inserts or replaces the week plan for a user and week start date
// (the Monday of the week, formatted YYYY-MM-DD).
func (r *Repository) Save(ctx context.Context, userID, weekStart string, wp WeekPlan) error {
	planJSON, err := json.Marshal(wp)
	if err != nil {
		return fmt.Errorf("failed to marshal week plan: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO meal_plans (user_id, week_start, plan_data, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, week_start) DO UPDATE SET
			plan_data = excluded.plan_data,
			created_at = excluded.created_at`,
		userID, weekStart, string(planJSON), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save week plan for user %s: %w", userID, err)
	}
	return nil
}

// GetByUserAndWeek retrieves the week plan for a user and week start
// date. Returns (nil, nil) when no plan is stored.
func (r *Repository) GetByUserAndWeek(ctx context.Context, userID, weekStart string) (WeekPlan, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT plan_data FROM meal_plans WHERE user_id = ? AND week_start = ?`,
		userID, weekStart,
	).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No plan stored
		}
		return nil, fmt.Errorf("failed to get week plan for user %s: %w", userID, err)
	}

	var wp WeekPlan
	if err := json.Unmarshal([]byte(data), &wp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal week plan JSON: %w", err)
	}
	return wp, nil
}

// DeleteByUserAndWeek removes the stored plan for a user and week.
func (r *Repository) DeleteByUserAndWeek(ctx context.Context, userID, weekStart string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM meal_plans WHERE user_id = ? AND week_start = ?`, userID, weekStart)
	return err
}
