package web

// handlers_edit.go serves the mutation endpoints. Outcomes map to a
// status span: success, warning for no-op writes (unknown country,
// zero affected rows), 400 for validation failures and duplicate
// inserts, 500 for store failures.

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jkeller/lifetable/internal/core"
	"github.com/jkeller/lifetable/internal/web/fragments"
)

// handleAddObservation inserts a new observation for a country/year.
func (s *Server) handleAddObservation(w http.ResponseWriter, r *http.Request) {
	country, err := formValue(r, "country")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	year, err := intFormValue(r, "year_to_add")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	value, err := floatFormValue(r, "life_expectancy")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	err = s.service.AddObservation(r.Context(), country, year, value)
	if errors.Is(err, core.ErrCountryUnknown) {
		renderFragment(w, r, fragments.Status(fragments.StatusWarning,
			"Country not found: "+country+". Check the spelling against the country list."))
		return
	}
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	renderFragment(w, r, fragments.Status(fragments.StatusSuccess,
		fmt.Sprintf("Added %d observation for %s.", year, country)))
}

// handleUpdateObservation updates the value of an existing
// observation. Zero affected rows is a warning, not a failure.
func (s *Server) handleUpdateObservation(w http.ResponseWriter, r *http.Request) {
	country, err := formValue(r, "country")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	year, err := intFormValue(r, "year")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	value, err := floatFormValue(r, "life_expectancy")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	affected, err := s.service.UpdateObservation(r.Context(), country, year, value)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if affected == 0 {
		renderFragment(w, r, fragments.Status(fragments.StatusWarning,
			fmt.Sprintf("No record found for %s in %d; nothing was updated.", country, year)))
		return
	}

	renderFragment(w, r, fragments.Status(fragments.StatusSuccess,
		fmt.Sprintf("Updated %d observation for %s.", year, country)))
}

// handleDeleteRange deletes a country's observations over a year
// range and reports the affected row count.
func (s *Server) handleDeleteRange(w http.ResponseWriter, r *http.Request) {
	country, err := formValue(r, "country")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	startYear, err := intFormValue(r, "start_year")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	endYear, err := intFormValue(r, "end_year")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	affected, err := s.service.DeleteRange(r.Context(), country, startYear, endYear)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if affected == 0 {
		renderFragment(w, r, fragments.Status(fragments.StatusWarning,
			fmt.Sprintf("No records found for %s between %d and %d.", country, startYear, endYear)))
		return
	}

	renderFragment(w, r, fragments.Status(fragments.StatusSuccess,
		fmt.Sprintf("Deleted %d observation(s) for %s.", affected, country)))
}
