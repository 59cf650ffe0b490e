package core

import (
	"context"
	"strings"
)

// SearchHit is one row of the keyword search view: the latest
// observation of a matching entity. Rank is the 1-based output
// position.
type SearchHit struct {
	Rank   int
	Entity string
	Year   int
	Value  float64
}

// KeywordSearch finds, for every entity whose name contains the
// keyword, its most recent observation, and ranks the results by value
// descending (entity ascending on ties).
//
// Each entity may have a different latest year, so this is a group-max
// subquery joined back on (entity, year), not a flat filter. Matching
// is ILIKE: the original store's collation compared case-insensitively
// and the behavior is preserved here.
func (s *Service) KeywordSearch(ctx context.Context, keyword string) ([]SearchHit, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, &ValidationError{Field: "keyword", Message: "keyword is required"}
	}

	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
		SELECT o.entity, o.year, o.life_expectancy
		FROM observations o
		JOIN (
			SELECT entity, MAX(year) AS latest_year
			FROM observations
			WHERE entity ILIKE '%' || $1 || '%'
			GROUP BY entity
		) latest ON latest.entity = o.entity AND latest.latest_year = o.year
		WHERE o.life_expectancy IS NOT NULL
		ORDER BY o.life_expectancy DESC, o.entity ASC`,
		keyword)
	if err != nil {
		return nil, storeErr("keyword search", err)
	}
	defer rows.Close()

	var hits []SearchHit
	for rows.Next() {
		h := SearchHit{Rank: len(hits) + 1}
		if err := rows.Scan(&h.Entity, &h.Year, &h.Value); err != nil {
			return nil, storeErr("scan search hit", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("keyword search", err)
	}
	return hits, nil
}
