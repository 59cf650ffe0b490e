package web

import (
	"net/http"

	"github.com/jkeller/lifetable/internal/core"
)

// trendJSON is the wire shape of one comparison series:
// {"name": ..., "data": [[year, value], ...]}.
type trendJSON struct {
	Name string       `json:"name"`
	Data [][2]float64 `json:"data"`
}

// handleMultiTrend returns one series per requested country as JSON.
// An empty result over valid input is 200 with an empty array, the
// same soft convention the HTML views use.
func (s *Server) handleMultiTrend(w http.ResponseWriter, r *http.Request) {
	names := core.ParseCountryList(r.URL.Query().Get("countries"))

	series, err := s.service.ComparisonSeries(r.Context(), names)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	out := make([]trendJSON, 0, len(series))
	for _, sr := range series {
		t := trendJSON{Name: sr.Name, Data: make([][2]float64, 0, len(sr.Points))}
		for _, p := range sr.Points {
			t.Data = append(t.Data, [2]float64{float64(p.Year), p.Value})
		}
		out = append(out, t)
	}
	writeJSON(w, r, out)
}
