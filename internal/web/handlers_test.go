package web

// These tests exercise the request-validation paths, which never reach
// the store: the services are built with no pool, so any accidental
// store access would panic the test.

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jkeller/lifetable/internal/auth"
	"github.com/jkeller/lifetable/internal/config"
	"github.com/jkeller/lifetable/internal/core"
)

func testServer() *Server {
	cfg := &config.Config{}
	cfg.Server.RequestTimeout = time.Minute
	cfg.Rate.Enabled = false
	cfg.Security.EnableCSP = true
	return NewServer(core.NewService(nil, 0), auth.NewService(nil, 0), cfg)
}

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	testServer().Router().ServeHTTP(rec, req)
	return rec
}

func postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	testServer().Router().ServeHTTP(rec, req)
	return rec
}

func TestCountryTrend_MissingCountry(t *testing.T) {
	rec := get(t, "/api/search/country_trend")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "country") {
		t.Errorf("body should name the missing field: %s", rec.Body.String())
	}
}

func TestSubregionRank_MissingParams(t *testing.T) {
	if rec := get(t, "/api/search/subregion_rank"); rec.Code != http.StatusBadRequest {
		t.Errorf("missing region_code: status = %d, want 400", rec.Code)
	}
	if rec := get(t, "/api/search/subregion_rank?region_code=150"); rec.Code != http.StatusBadRequest {
		t.Errorf("missing year: status = %d, want 400", rec.Code)
	}
	if rec := get(t, "/api/search/subregion_rank?region_code=150&year=abc"); rec.Code != http.StatusBadRequest {
		t.Errorf("non-integer year: status = %d, want 400", rec.Code)
	}
}

func TestKeywordSearch_MissingKeyword(t *testing.T) {
	if rec := get(t, "/api/search/keyword"); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestMultiTrend_MissingCountries(t *testing.T) {
	rec := get(t, "/api/custom/multi_trend")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("Content-Type = %q, want JSON", ct)
	}
}

func TestMultiTrend_BlankListRejected(t *testing.T) {
	// A list of separators parses to nothing and is missing input.
	if rec := get(t, "/api/custom/multi_trend?countries=%2C+%2C"); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAddObservation_MissingFields(t *testing.T) {
	rec := postForm(t, "/api/edit/add_next_year", url.Values{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	rec = postForm(t, "/api/edit/add_next_year", url.Values{
		"country":         {"Japan"},
		"year_to_add":     {"not-a-year"},
		"life_expectancy": {"81.5"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-integer year: status = %d, want 400", rec.Code)
	}

	rec = postForm(t, "/api/edit/add_next_year", url.Values{
		"country":         {"Japan"},
		"year_to_add":     {"2025"},
		"life_expectancy": {"eighty"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric value: status = %d, want 400", rec.Code)
	}
}

func TestDeleteRange_InvertedRange(t *testing.T) {
	rec := postForm(t, "/api/edit/delete_range", url.Values{
		"country":    {"Japan"},
		"start_year": {"2020"},
		"end_year":   {"2010"},
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "start year") {
		t.Errorf("body should explain the range rule: %s", rec.Body.String())
	}
}

func TestRegister_MissingFields(t *testing.T) {
	rec := postForm(t, "/api/register", url.Values{"email": {"a@example.com"}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	rec := postForm(t, "/api/login", url.Values{"email": {"a@example.com"}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDashboard(t *testing.T) {
	rec := get(t, "/dashboard")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Dashboard") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestSecurityHeaders(t *testing.T) {
	rec := get(t, "/dashboard")

	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing X-Content-Type-Options header")
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("missing Content-Security-Policy header")
	}
}
