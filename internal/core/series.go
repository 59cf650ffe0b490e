package core

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// SeriesPoint is one (year, value) pair in a comparison series.
type SeriesPoint struct {
	Year  int
	Value float64
}

// Series is the ordered observation history of one entity, used by the
// multi-country comparison view.
type Series struct {
	Name   string
	Points []SeriesPoint
}

// seriesRow is a flat scanned row before grouping into series.
type seriesRow struct {
	Entity string
	Year   int
	Value  pgtype.Float8
}

// ParseCountryList splits a comma-separated country list, trimming
// whitespace and dropping blank entries. Duplicates are tolerated.
func ParseCountryList(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}

// buildSeries groups flat rows (already ordered by entity then year)
// into one series per entity. Rows with NULL values are dropped from
// the series rather than failing the whole result.
func buildSeries(rows []seriesRow) []Series {
	var series []Series
	for _, r := range rows {
		if !r.Value.Valid {
			continue
		}
		if len(series) == 0 || series[len(series)-1].Name != r.Entity {
			series = append(series, Series{Name: r.Entity})
		}
		last := &series[len(series)-1]
		last.Points = append(last.Points, SeriesPoint{Year: r.Year, Value: r.Value.Float64})
	}
	return series
}

// ComparisonSeries returns one ordered series per requested country.
// names must contain at least one non-blank entry. Countries with no
// observations simply produce no series; an all-empty result is a soft
// outcome the caller renders as an empty collection.
func (s *Service) ComparisonSeries(ctx context.Context, names []string) ([]Series, error) {
	if len(names) == 0 {
		return nil, &ValidationError{Field: "countries", Message: "at least one country is required"}
	}

	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	dbRows, err := s.pool.Query(ctx, `
		SELECT entity, year, life_expectancy
		FROM observations
		WHERE entity = ANY($1)
		ORDER BY entity ASC, year ASC`,
		names)
	if err != nil {
		return nil, storeErr("comparison series", err)
	}
	defer dbRows.Close()

	var rows []seriesRow
	for dbRows.Next() {
		var r seriesRow
		if err := dbRows.Scan(&r.Entity, &r.Year, &r.Value); err != nil {
			return nil, storeErr("scan series row", err)
		}
		rows = append(rows, r)
	}
	if err := dbRows.Err(); err != nil {
		return nil, storeErr("comparison series", err)
	}
	return buildSeries(rows), nil
}
