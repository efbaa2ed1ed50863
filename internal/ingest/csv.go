// Package ingest turns tabular company data into batch records.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/industrylens/industrylens/internal/common"
	"github.com/industrylens/industrylens/internal/compose"
	"github.com/industrylens/industrylens/internal/model"
)

// Column names recognized in the input header. "name" is required; the rest
// are optional and feed the derived description.
const (
	colName        = "name"
	colDomain      = "domain"
	colYearFounded = "year founded"
	colIndustry    = "industry"
	colLocality    = "locality"
	colCountry     = "country"
	colLinkedInURL = "linkedin url"
)

var descriptiveColumns = []string{
	colDomain, colYearFounded, colIndustry, colLocality, colCountry, colLinkedInURL,
}

// ReadRecords parses CSV company data. A missing "name" column rejects the
// whole input; no partial record set is returned.
func ReadRecords(r io.Reader) ([]model.CompanyRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, common.ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}

	if _, ok := columns[colName]; !ok {
		return nil, common.ErrMissingNameColumn
	}

	hasDescriptive := false
	for _, col := range descriptiveColumns {
		if _, present := columns[col]; present {
			hasDescriptive = true
			break
		}
	}
	if !hasDescriptive {
		slog.Warn("no descriptive columns found; classification may be less accurate",
			"expected_any_of", strings.Join(descriptiveColumns, ", "))
	}

	_, hasIndustry := columns[colIndustry]

	var records []model.CompanyRecord
	for {
		row, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", readErr)
		}

		cell := func(col string) string {
			idx, present := columns[col]
			if !present || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		description := compose.Description(compose.Fields{
			Domain:      cell(colDomain),
			YearFounded: cell(colYearFounded),
			Industry:    cell(colIndustry),
			Locality:    cell(colLocality),
			Country:     cell(colCountry),
			LinkedInURL: cell(colLinkedInURL),
		})

		original := model.SentinelNoIndustry
		if hasIndustry {
			if v := cell(colIndustry); v != "" {
				original = v
			}
		}

		records = append(records, model.CompanyRecord{
			CompanyName:      cell(colName),
			Description:      description,
			OriginalIndustry: original,
		})
	}

	if len(records) == 0 {
		return nil, common.ErrEmptyInput
	}

	return records, nil
}

// ReadFile reads records from a CSV file on disk.
func ReadFile(path string) ([]model.CompanyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return records, nil
}
