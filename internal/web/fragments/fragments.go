// Package fragments renders the HTML fragments the browser UI swaps
// into the page. Every component implements templ.Component and every
// dynamic string passes through templ.EscapeString, so stored data
// (a hostile country name, say) cannot inject markup into a response.
package fragments

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/jkeller/lifetable/internal/core"
)

// StatusKind selects the styling of a Status fragment.
type StatusKind string

const (
	StatusSuccess StatusKind = "success"
	StatusWarning StatusKind = "warning"
	StatusError   StatusKind = "error"
)

// component adapts a string-building function into a templ.Component.
func component(build func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		build(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// OptionList renders an <option> element per value, value and label
// identical.
func OptionList(values []string) templ.Component {
	return component(func(b *strings.Builder) {
		for _, v := range values {
			esc := templ.EscapeString(v)
			b.WriteString(`<option value="` + esc + `">` + esc + `</option>`)
		}
	})
}

// YearOptions renders an <option> element per year, preserving the
// order given by the caller.
func YearOptions(years []int) templ.Component {
	return component(func(b *strings.Builder) {
		for _, y := range years {
			s := strconv.Itoa(y)
			b.WriteString(`<option value="` + s + `">` + s + `</option>`)
		}
	})
}

// Info renders an informational paragraph for soft "no data" outcomes.
func Info(message string) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<p class="info">` + templ.EscapeString(message) + `</p>`)
	})
}

// Status renders the status span returned by the edit endpoints.
func Status(kind StatusKind, message string) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<span class="status status-` + string(kind) + `">`)
		b.WriteString(templ.EscapeString(message))
		b.WriteString(`</span>`)
	})
}

// ErrorAlert renders an error fragment with the support code and the
// suggested next step.
func ErrorAlert(message, action, code string) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<div class="alert alert-error" role="alert">`)
		b.WriteString(`<strong>` + templ.EscapeString(message) + `</strong>`)
		if action != "" {
			b.WriteString(` <span class="alert-action">` + templ.EscapeString(action) + `</span>`)
		}
		if code != "" {
			b.WriteString(` <span class="alert-code">(` + templ.EscapeString(code) + `)</span>`)
		}
		b.WriteString(`</div>`)
	})
}

// TrendTable renders the single-country trend view. NULL values show
// as N/A.
func TrendTable(country string, points []core.TrendPoint) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<table class="result-table"><caption>` + templ.EscapeString(country) + `</caption>`)
		b.WriteString(`<thead><tr><th>Year</th><th>Life Expectancy</th></tr></thead><tbody>`)
		for _, p := range points {
			b.WriteString(`<tr><td>` + strconv.Itoa(p.Year) + `</td><td>`)
			b.WriteString(templ.EscapeString(core.FormatValue(p.Value)))
			b.WriteString(`</td></tr>`)
		}
		b.WriteString(`</tbody></table>`)
	})
}

// RankTable renders the regional ranking view.
func RankTable(entries []core.RankedEntry) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<table class="result-table">`)
		b.WriteString(`<thead><tr><th>Rank</th><th>Country</th><th>Life Expectancy</th></tr></thead><tbody>`)
		for _, e := range entries {
			b.WriteString(`<tr><td>` + strconv.Itoa(e.Rank) + `</td><td>`)
			b.WriteString(templ.EscapeString(e.Entity))
			b.WriteString(`</td><td>` + core.FormatValue2(e.Value) + `</td></tr>`)
		}
		b.WriteString(`</tbody></table>`)
	})
}

// MaxTable renders the per-subregion maximum view.
func MaxTable(maxima []core.SubregionMax) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<table class="result-table">`)
		b.WriteString(`<thead><tr><th>Subregion</th><th>Max Life Expectancy</th></tr></thead><tbody>`)
		for _, m := range maxima {
			b.WriteString(`<tr><td>` + templ.EscapeString(m.Subregion) + `</td><td>`)
			b.WriteString(core.FormatValue2(m.Value))
			b.WriteString(`</td></tr>`)
		}
		b.WriteString(`</tbody></table>`)
	})
}

// SearchTable renders the keyword search view: one row per matching
// entity at its latest observed year.
func SearchTable(hits []core.SearchHit) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<table class="result-table">`)
		b.WriteString(`<thead><tr><th>Rank</th><th>Country</th><th>Year</th><th>Life Expectancy</th></tr></thead><tbody>`)
		for _, h := range hits {
			b.WriteString(`<tr><td>` + strconv.Itoa(h.Rank) + `</td><td>`)
			b.WriteString(templ.EscapeString(h.Entity))
			b.WriteString(`</td><td>` + strconv.Itoa(h.Year) + `</td><td>`)
			b.WriteString(core.FormatValue4(h.Value))
			b.WriteString(`</td></tr>`)
		}
		b.WriteString(`</tbody></table>`)
	})
}

// SignupSuccess renders the post-registration fragment: a confirmation
// banner plus the script that swaps the signup pane for the login pane.
func SignupSuccess(email string) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<div remove-me="10s" class="status status-success">`)
		b.WriteString(`Account created successfully for ` + templ.EscapeString(email) + `! Please log in.`)
		b.WriteString(`</div>`)
		b.WriteString(`<script>` +
			`document.getElementById('page-signup').classList.add('hidden');` +
			`document.getElementById('page-login').classList.remove('hidden');` +
			`</script>`)
	})
}

// Dashboard renders the minimal logged-in landing fragment.
func Dashboard() templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<h1 class="text-center">Welcome to the Dashboard!</h1>`)
		b.WriteString(`<p class="text-center">You are logged in.</p>`)
	})
}
