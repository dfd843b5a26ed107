package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/autotradeslanka/partscat/internal/model"
)

// appendActivity records one audit-log entry inside the caller's
// transaction. Every product create/update/delete appends exactly one.
// The log is append-only and unbounded; readers take the newest N.
func appendActivity(ctx context.Context, tx *sql.Tx, activityType, productName string, ts time.Time) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO activities (id, type, product_name, created_at) VALUES (?, ?, ?, ?)`,
		newID(), activityType, productName, ts,
	)
	if err != nil {
		return fmt.Errorf("appending activity: %w", err)
	}
	return nil
}

// ListActivities returns audit-log entries, newest first. A limit of 0
// returns the full log.
func ListActivities(ctx context.Context, db *sql.DB, limit int) ([]model.Activity, error) {
	query := `SELECT id, type, product_name, created_at FROM activities ORDER BY seq DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []model.Activity
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.Type, &a.ProductName, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
