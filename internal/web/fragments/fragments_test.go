package fragments

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jkeller/lifetable/internal/core"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func TestOptionList(t *testing.T) {
	out := render(t, OptionList([]string{"Chile", "Japan"}))

	if !strings.Contains(out, `<option value="Chile">Chile</option>`) {
		t.Errorf("missing Chile option: %s", out)
	}
	if !strings.Contains(out, `<option value="Japan">Japan</option>`) {
		t.Errorf("missing Japan option: %s", out)
	}
}

func TestOptionList_EscapesNames(t *testing.T) {
	out := render(t, OptionList([]string{`<script>alert(1)</script>`}))

	if strings.Contains(out, "<script>") {
		t.Errorf("country name was not escaped: %s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected escaped markup, got: %s", out)
	}
}

func TestYearOptions_PreservesOrder(t *testing.T) {
	out := render(t, YearOptions([]int{2021, 2020, 2019}))

	first := strings.Index(out, "2021")
	last := strings.Index(out, "2019")
	if first == -1 || last == -1 || first > last {
		t.Errorf("years not in given order: %s", out)
	}
}

func TestTrendTable(t *testing.T) {
	points := []core.TrendPoint{
		{Year: 2019, Value: pgtype.Float8{Float64: 81.5, Valid: true}},
		{Year: 2020, Value: pgtype.Float8{Valid: false}},
	}

	out := render(t, TrendTable("Japan", points))

	if !strings.Contains(out, "<td>81.5000</td>") {
		t.Errorf("expected 4-decimal value: %s", out)
	}
	if !strings.Contains(out, "<td>N/A</td>") {
		t.Errorf("expected N/A for null value: %s", out)
	}
	if !strings.Contains(out, "<caption>Japan</caption>") {
		t.Errorf("missing caption: %s", out)
	}
}

func TestTrendTable_EscapesCountry(t *testing.T) {
	out := render(t, TrendTable(`<img src=x onerror=alert(1)>`, nil))

	if strings.Contains(out, "<img") {
		t.Errorf("country name was not escaped: %s", out)
	}
}

func TestRankTable(t *testing.T) {
	entries := []core.RankedEntry{
		{Rank: 1, Entity: "Japan", Value: 84.62},
		{Rank: 2, Entity: "Korea", Value: 83.4},
	}

	out := render(t, RankTable(entries))

	if !strings.Contains(out, "<td>1</td><td>Japan</td><td>84.62</td>") {
		t.Errorf("unexpected first row: %s", out)
	}
	if !strings.Contains(out, "<td>83.40</td>") {
		t.Errorf("expected 2-decimal formatting: %s", out)
	}
}

func TestSearchTable(t *testing.T) {
	hits := []core.SearchHit{
		{Rank: 1, Entity: "Japan", Year: 2021, Value: 84.6},
	}

	out := render(t, SearchTable(hits))

	if !strings.Contains(out, "<td>2021</td>") {
		t.Errorf("missing year column: %s", out)
	}
	if !strings.Contains(out, "<td>84.6000</td>") {
		t.Errorf("expected 4-decimal formatting: %s", out)
	}
}

func TestStatus(t *testing.T) {
	out := render(t, Status(StatusWarning, "No record found."))

	if !strings.Contains(out, `class="status status-warning"`) {
		t.Errorf("missing warning class: %s", out)
	}
	if !strings.Contains(out, "No record found.") {
		t.Errorf("missing message: %s", out)
	}
}

func TestInfo_Escapes(t *testing.T) {
	out := render(t, Info(`no data for "<b>x</b>"`))

	if strings.Contains(out, "<b>") {
		t.Errorf("message was not escaped: %s", out)
	}
}

func TestErrorAlert(t *testing.T) {
	out := render(t, ErrorAlert("Something failed", "Try again", "DB002"))

	if !strings.Contains(out, `role="alert"`) {
		t.Errorf("missing alert role: %s", out)
	}
	if !strings.Contains(out, "(DB002)") {
		t.Errorf("missing support code: %s", out)
	}
}

func TestSignupSuccess(t *testing.T) {
	out := render(t, SignupSuccess("a@example.com"))

	if !strings.Contains(out, "a@example.com") {
		t.Errorf("missing email: %s", out)
	}
	if !strings.Contains(out, "page-login") {
		t.Errorf("missing pane-toggle script: %s", out)
	}
}
