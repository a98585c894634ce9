// Package filter narrows a fetched set of listings by a free-text search
// term and an inclusive price range. It is pure and synchronous: the listing
// screen re-runs it on every input change instead of refetching, so the
// functions here define the observable search behavior of the whole client.
package filter

import (
	"math"
	"strconv"
	"strings"

	"github.com/autohub/autohub-cli/internal/client/models"
)

// Bounds carries the raw min/max texts exactly as entered in the filter
// panel. An empty string imposes no constraint. No reconciliation is done
// when min > max: every record with a parseable price then fails the range.
type Bounds struct {
	Min string
	Max string
}

// Apply returns the sub-slice of cars satisfying both the search predicate
// and the price predicate, preserving the original order.
func Apply(cars []models.Car, term string, b Bounds) []models.Car {
	min, hasMin := parseBound(b.Min)
	max, hasMax := parseBound(b.Max)

	out := make([]models.Car, 0, len(cars))
	for _, c := range cars {
		if matchesSearch(c, term) && matchesPrice(c, min, hasMin, max, hasMax) {
			out = append(out, c)
		}
	}
	return out
}

// matchesSearch reports whether the lowercased name, or the year rendered as
// a decimal string, contains the lowercased term. An empty term matches
// everything.
func matchesSearch(c models.Car, term string) bool {
	t := strings.ToLower(term)
	if strings.Contains(strings.ToLower(c.Name), t) {
		return true
	}
	year := ""
	if c.Year != 0 {
		year = strconv.Itoa(c.Year)
	}
	return strings.Contains(year, t)
}

// matchesPrice applies the configured bounds to the record's price. A price
// that does not parse as a number passes unconditionally (fail-open): the
// filter cannot evaluate its governing condition, so it lets the record
// through rather than hiding a listing over dirty data.
func matchesPrice(c models.Car, min float64, hasMin bool, max float64, hasMax bool) bool {
	price := toNumber(string(c.Price))
	if math.IsNaN(price) {
		return true
	}
	switch {
	case hasMin && hasMax:
		return price >= min && price <= max
	case hasMin:
		return price >= min
	case hasMax:
		return price <= max
	}
	return true
}

// parseBound converts a raw bound text into a numeric bound. The empty
// string means "no bound". Otherwise every character except digits and dots
// is stripped before conversion, so "$25,000" reads as 25000. A stripped
// text that still fails to parse yields NaN, which no price satisfies.
func parseBound(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	return toNumber(sb.String()), true
}

// toNumber converts text to a float the way the listing data demands:
// blank text counts as zero, anything unparseable becomes NaN.
func toNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
