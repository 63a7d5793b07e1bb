package main

import (
	"fintrack/pkg/budgetcalc"
)

// sumExpenseCents totals a user's spending for one category inside a
// half-open window. No matching rows is a zero total, not an error; store
// failures propagate to the caller untouched.
func sumExpenseCents(userID uint, category string, win budgetcalc.Window) (int64, error) {
	var cents int64
	err := db.Table("expenses").
		Select("COALESCE(SUM(amount_cents), 0)").
		Where("user_id = ? AND category = ? AND date >= ? AND date < ?", userID, category, win.Start, win.End).
		Scan(&cents).Error
	if err != nil {
		return 0, err
	}
	return cents, nil
}

type categoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

// categorySummary groups a user's records in the named table by category.
func categorySummary(table string, userID uint) ([]categoryTotal, error) {
	rows, err := db.Table(table).
		Select("category, COALESCE(SUM(amount_cents), 0) AS cents, COUNT(*) AS n").
		Where("user_id = ?", userID).
		Group("category").
		Order("cents DESC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []categoryTotal{}
	for rows.Next() {
		var category string
		var cents, n int64
		if err := rows.Scan(&category, &cents, &n); err != nil {
			return nil, err
		}
		out = append(out, categoryTotal{Category: category, Total: amountFromCents(cents), Count: n})
	}
	return out, rows.Err()
}

type bucketTotal struct {
	Period string  `json:"period"`
	Total  float64 `json:"total"`
	Count  int64   `json:"count"`
}

// bucketSummary groups a user's records by a to_char date format, e.g.
// YYYY-MM for monthly buckets. Postgres-only, same as the rest of the
// store layer.
func bucketSummary(table, format string, userID uint) ([]bucketTotal, error) {
	rows, err := db.Table(table).
		Select("to_char(date, ?) AS bucket, COALESCE(SUM(amount_cents), 0) AS cents, COUNT(*) AS n", format).
		Where("user_id = ?", userID).
		Group("bucket").
		Order("bucket").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []bucketTotal{}
	for rows.Next() {
		var bucket string
		var cents, n int64
		if err := rows.Scan(&bucket, &cents, &n); err != nil {
			return nil, err
		}
		out = append(out, bucketTotal{Period: bucket, Total: amountFromCents(cents), Count: n})
	}
	return out, rows.Err()
}

// windowSummary returns the overall total plus the per-category breakdown
// for a user's records inside a half-open window.
func windowSummary(table string, userID uint, win budgetcalc.Window) (float64, []categoryTotal, error) {
	rows, err := db.Table(table).
		Select("category, COALESCE(SUM(amount_cents), 0) AS cents, COUNT(*) AS n").
		Where("user_id = ? AND date >= ? AND date < ?", userID, win.Start, win.End).
		Group("category").
		Order("cents DESC").
		Rows()
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()
	var totalCents int64
	byCategory := []categoryTotal{}
	for rows.Next() {
		var category string
		var cents, n int64
		if err := rows.Scan(&category, &cents, &n); err != nil {
			return 0, nil, err
		}
		totalCents += cents
		byCategory = append(byCategory, categoryTotal{Category: category, Total: amountFromCents(cents), Count: n})
	}
	return amountFromCents(totalCents), byCategory, rows.Err()
}
