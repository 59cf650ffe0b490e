package core

// format.go renders observation values for display. Trend and search
// views show 4 decimal places, ranking and aggregate views show 2.
// NULL values from the store carry pgtype's Valid=false flag and render
// as "N/A" rather than failing the view.

import (
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// NotAvailable is shown where the stored value is NULL.
const NotAvailable = "N/A"

// FormatValue renders a nullable life-expectancy value to 4 decimals.
func FormatValue(v pgtype.Float8) string {
	if !v.Valid {
		return NotAvailable
	}
	return strconv.FormatFloat(v.Float64, 'f', 4, 64)
}

// FormatValue2 renders a life-expectancy value to 2 decimals.
func FormatValue2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatValue4 renders a non-null life-expectancy value to 4 decimals.
func FormatValue4(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
