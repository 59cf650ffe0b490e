package web

// handlers_search.go serves the form-population fragments and the four
// read views. A query that succeeds but matches nothing returns 200
// with an informational fragment; only store failures are errors.

import (
	"net/http"

	"github.com/jkeller/lifetable/internal/web/fragments"
)

// handleCountryOptions returns the <option> list of all countries.
func (s *Server) handleCountryOptions(w http.ResponseWriter, r *http.Request) {
	names, err := s.service.CountryNames(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	renderFragment(w, r, fragments.OptionList(names))
}

// handleYearOptions returns the <option> list of observed years,
// newest first.
func (s *Server) handleYearOptions(w http.ResponseWriter, r *http.Request) {
	years, err := s.service.Years(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	renderFragment(w, r, fragments.YearOptions(years))
}

// handleCountryTrend returns one country's observations as a table,
// year ascending.
func (s *Server) handleCountryTrend(w http.ResponseWriter, r *http.Request) {
	country, err := queryParam(r, "country")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	points, err := s.service.CountryTrend(r.Context(), country)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if len(points) == 0 {
		renderFragment(w, r, fragments.Info("No observation data found for "+country+"."))
		return
	}
	renderFragment(w, r, fragments.TrendTable(country, points))
}

// handleSubregionRank returns the ranked countries of a region for a
// year.
func (s *Server) handleSubregionRank(w http.ResponseWriter, r *http.Request) {
	regionCode, err := queryParam(r, "region_code")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	year, err := intQueryParam(r, "year")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	entries, err := s.service.RegionRanking(r.Context(), regionCode, year)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if len(entries) == 0 {
		renderFragment(w, r, fragments.Info("No observations found for that region and year."))
		return
	}
	renderFragment(w, r, fragments.RankTable(entries))
}

// handleRegionMax returns the per-subregion maxima of a region for a
// year.
func (s *Server) handleRegionMax(w http.ResponseWriter, r *http.Request) {
	regionCode, err := queryParam(r, "region_code")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	year, err := intQueryParam(r, "year")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	maxima, err := s.service.SubregionMaxima(r.Context(), regionCode, year)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if len(maxima) == 0 {
		renderFragment(w, r, fragments.Info("No observations found for that region and year."))
		return
	}
	renderFragment(w, r, fragments.MaxTable(maxima))
}

// handleKeywordSearch returns the latest observation of every entity
// whose name contains the keyword.
func (s *Server) handleKeywordSearch(w http.ResponseWriter, r *http.Request) {
	keyword, err := queryParam(r, "keyword")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	hits, err := s.service.KeywordSearch(r.Context(), keyword)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if len(hits) == 0 {
		renderFragment(w, r, fragments.Info("No countries match \""+keyword+"\"."))
		return
	}
	renderFragment(w, r, fragments.SearchTable(hits))
}
