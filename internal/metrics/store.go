package metrics

import (
	"context"
	"database/sql"
	"time"
)

// GenerationMetric records metadata for a single shopping list
// generation run.
type GenerationMetric struct {
	UserID         string
	ItemCount      int
	TotalCost      float64
	SkippedLookups int
	LatencyMS      int64
	Timestamp      time.Time
}

// Store handles persistence of metrics to SQLite.
type Store struct {
	db *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record saves a metric to the database.
func (s *Store) Record(m GenerationMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	_, err := s.db.ExecContext(context.Background(), `
		INSERT INTO generation_metrics (user_id, item_count, total_cost, skipped_lookups, latency_ms, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.UserID, m.ItemCount, m.TotalCost, m.SkippedLookups, m.LatencyMS, ts,
	)
	return err
}

// DailyUsage represents generation totals for a single day.
type DailyUsage struct {
	Date         string
	Runs         int
	TotalItems   int
	AvgLatencyMS float64
}

// GetDailyUsage retrieves usage for the last N days.
func (s *Store) GetDailyUsage(days int) ([]DailyUsage, error) {
	since := time.Now().AddDate(0, 0, -days)
	rows, err := s.db.QueryContext(context.Background(), `
		SELECT date(timestamp) AS day, COUNT(*), SUM(item_count), AVG(latency_ms)
		FROM generation_metrics
		WHERE timestamp >= ?
		GROUP BY day
		ORDER BY day DESC`,
		since,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []DailyUsage
	for rows.Next() {
		var u DailyUsage
		var day sql.NullString
		var items sql.NullInt64
		var latency sql.NullFloat64
		if err := rows.Scan(&day, &u.Runs, &items, &latency); err != nil {
			return nil, err
		}

		if day.Valid {
			u.Date = day.String
		} else {
			u.Date = "Unknown"
		}
		if items.Valid {
			u.TotalItems = int(items.Int64)
		}
		if latency.Valid {
			u.AvgLatencyMS = latency.Float64
		}

		results = append(results, u)
	}
	return results, rows.Err()
}

// Cleanup removes records older than the specified number of days and
// returns how many were deleted.
func (s *Store) Cleanup(olderThanDays int) (int64, error) {
	threshold := time.Now().AddDate(0, 0, -olderThanDays)
	result, err := s.db.ExecContext(context.Background(),
		`DELETE FROM generation_metrics WHERE timestamp < ?`, threshold)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
