package core

import (
	"context"
	"strings"
)

// RankedEntry is one row of the regional ranking view. Rank is the
// 1-based output position.
type RankedEntry struct {
	Rank   int
	Entity string
	Value  float64
}

// SubregionMax is the maximum observed value within one subregion.
type SubregionMax struct {
	Subregion string
	Value     float64
}

// RegionRanking returns the countries of a region ranked by life
// expectancy in the given year, value descending. Ties break on entity
// name ascending so repeated queries produce the same order. Rows with
// a NULL value are excluded; they cannot be ranked.
func (s *Service) RegionRanking(ctx context.Context, regionCode string, year int) ([]RankedEntry, error) {
	regionCode = strings.TrimSpace(regionCode)
	if regionCode == "" {
		return nil, &ValidationError{Field: "region_code", Message: "region code is required"}
	}

	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
		SELECT o.entity, o.life_expectancy
		FROM observations o
		JOIN countries c ON c.name = o.entity
		WHERE c.region_code = $1 AND o.year = $2 AND o.life_expectancy IS NOT NULL
		ORDER BY o.life_expectancy DESC, o.entity ASC`,
		regionCode, year)
	if err != nil {
		return nil, storeErr("region ranking", err)
	}
	defer rows.Close()

	var entries []RankedEntry
	for rows.Next() {
		e := RankedEntry{Rank: len(entries) + 1}
		if err := rows.Scan(&e.Entity, &e.Value); err != nil {
			return nil, storeErr("scan ranking row", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("region ranking", err)
	}
	return entries, nil
}

// SubregionMaxima returns the highest life expectancy per subregion of
// a region in the given year, sorted by that maximum descending with
// subregion name ascending as tie-break.
func (s *Service) SubregionMaxima(ctx context.Context, regionCode string, year int) ([]SubregionMax, error) {
	regionCode = strings.TrimSpace(regionCode)
	if regionCode == "" {
		return nil, &ValidationError{Field: "region_code", Message: "region code is required"}
	}

	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
		SELECT sr.name, MAX(o.life_expectancy) AS max_le
		FROM observations o
		JOIN countries c ON c.name = o.entity
		JOIN subregions sr ON sr.code = c.subregion_code
		WHERE c.region_code = $1 AND o.year = $2 AND o.life_expectancy IS NOT NULL
		GROUP BY sr.name
		ORDER BY max_le DESC, sr.name ASC`,
		regionCode, year)
	if err != nil {
		return nil, storeErr("subregion maxima", err)
	}
	defer rows.Close()

	var maxima []SubregionMax
	for rows.Next() {
		var m SubregionMax
		if err := rows.Scan(&m.Subregion, &m.Value); err != nil {
			return nil, storeErr("scan subregion max", err)
		}
		maxima = append(maxima, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("subregion maxima", err)
	}
	return maxima, nil
}
