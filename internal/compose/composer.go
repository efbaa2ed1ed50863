// Package compose builds a single descriptive string from structured
// company fields, giving downstream classifiers richer text to work with.
package compose

import (
	"fmt"
	"strings"
)

// Fields holds the optional descriptive attributes of a company. Blank
// values are treated as absent.
type Fields struct {
	Domain      string
	YearFounded string
	Industry    string
	Locality    string
	Country     string
	LinkedInURL string
}

// clause order is fixed; it matches the column order of the tabular input.
var clauseOrder = []struct {
	label string
	get   func(Fields) string
}{
	{"Domain", func(f Fields) string { return f.Domain }},
	{"Founded", func(f Fields) string { return f.YearFounded }},
	{"Industry", func(f Fields) string { return f.Industry }},
	{"Locality", func(f Fields) string { return f.Locality }},
	{"Country", func(f Fields) string { return f.Country }},
	{"LinkedIn URL", func(f Fields) string { return f.LinkedInURL }},
}

// Description renders each present, non-blank field as a labeled clause,
// joined with ". " and terminated with a period. All fields absent yields
// the empty string.
func Description(f Fields) string {
	var clauses []string
	for _, c := range clauseOrder {
		v := strings.TrimSpace(c.get(f))
		if v == "" {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("%s: %s", c.label, v))
	}

	if len(clauses) == 0 {
		return ""
	}
	return strings.Join(clauses, ". ") + "."
}
