package core

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// TrendPoint is one observation in a single-country trend, year
// ascending. Value keeps the store's NULL flag so the view can render
// N/A instead of dropping the year.
type TrendPoint struct {
	Year  int
	Value pgtype.Float8
}

// CountryNames returns every country name in the reference table,
// sorted ascending, for the country <option> list.
func (s *Service) CountryNames(ctx context.Context) ([]string, error) {
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, `SELECT name FROM countries ORDER BY name ASC`)
	if err != nil {
		return nil, storeErr("list countries", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storeErr("scan country", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list countries", err)
	}
	return names, nil
}

// Years returns every year with at least one observation, newest
// first, for the year <option> list.
func (s *Service) Years(ctx context.Context) ([]int, error) {
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, `SELECT DISTINCT year FROM observations ORDER BY year DESC`)
	if err != nil {
		return nil, storeErr("list years", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, storeErr("scan year", err)
		}
		years = append(years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list years", err)
	}
	return years, nil
}

// CountryTrend returns all observations for one country, year
// ascending. An empty result is a soft "no data" outcome, not an
// error.
func (s *Service) CountryTrend(ctx context.Context, country string) ([]TrendPoint, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, &ValidationError{Field: "country", Message: "country is required"}
	}

	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT year, life_expectancy FROM observations WHERE entity = $1 ORDER BY year ASC`,
		country)
	if err != nil {
		return nil, storeErr("country trend", err)
	}
	defer rows.Close()

	var points []TrendPoint
	for rows.Next() {
		var p TrendPoint
		if err := rows.Scan(&p.Year, &p.Value); err != nil {
			return nil, storeErr("scan trend point", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("country trend", err)
	}
	return points, nil
}
