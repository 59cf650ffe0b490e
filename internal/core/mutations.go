package core

// mutations.go implements the validated write operations. All inputs
// are checked before any statement is issued, so a validation failure
// never touches the store.
//
// AddObservation is the one multi-step write: resolve the country's
// ISO code, then insert. Both statements run inside a single
// transaction so the country cannot disappear, and a concurrent
// duplicate cannot slip in, between lookup and insert.

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
)

// AddObservation inserts a new (country, year, value) observation.
//
// Returns ErrCountryUnknown when the country has no reference row
// (a normal negative outcome), a *ConflictError when an observation
// for (country, year) already exists, or a *StoreError on failure.
func (s *Service) AddObservation(ctx context.Context, country string, year int, value float64) error {
	country = strings.TrimSpace(country)
	if country == "" {
		return &ValidationError{Field: "country", Message: "country is required"}
	}

	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return storeErr("begin add observation", err)
	}
	defer tx.Rollback(ctx)

	var code string
	err = tx.QueryRow(ctx, `SELECT iso3_code FROM countries WHERE name = $1`, country).Scan(&code)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrCountryUnknown
	}
	if err != nil {
		return storeErr("resolve country code", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO observations (entity, code, year, life_expectancy) VALUES ($1, $2, $3, $4)`,
		country, code, year, value)
	if err != nil {
		if IsUniqueViolation(err) {
			return &ConflictError{
				Message: "An observation for " + country + " in that year already exists",
				Action:  "Use the update operation to change its value",
			}
		}
		return storeErr("insert observation", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return storeErr("commit add observation", err)
	}
	return nil
}

// UpdateObservation sets the value of an existing (country, year)
// observation and returns the number of rows changed. Zero means no
// such record existed; the caller reports that as a warning, not a
// failure.
func (s *Service) UpdateObservation(ctx context.Context, country string, year int, value float64) (int64, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return 0, &ValidationError{Field: "country", Message: "country is required"}
	}

	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	tag, err := s.pool.Exec(ctx,
		`UPDATE observations SET life_expectancy = $3 WHERE entity = $1 AND year = $2`,
		country, year, value)
	if err != nil {
		return 0, storeErr("update observation", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteRange removes a country's observations for years in
// [startYear, endYear] and returns the number of rows removed.
// startYear > endYear is a validation failure and deletes nothing.
func (s *Service) DeleteRange(ctx context.Context, country string, startYear, endYear int) (int64, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return 0, &ValidationError{Field: "country", Message: "country is required"}
	}
	if startYear > endYear {
		return 0, &ValidationError{Field: "start_year", Message: "start year must not be after end year"}
	}

	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	tag, err := s.pool.Exec(ctx,
		`DELETE FROM observations WHERE entity = $1 AND year BETWEEN $2 AND $3`,
		country, startYear, endYear)
	if err != nil {
		return 0, storeErr("delete range", err)
	}
	return tag.RowsAffected(), nil
}
