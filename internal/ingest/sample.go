package ingest

import (
	"bytes"
	_ "embed"

	"github.com/industrylens/industrylens/internal/model"
)

//go:embed sample_companies.csv
var sampleData []byte

// SampleRecords returns the built-in sample dataset.
func SampleRecords() ([]model.CompanyRecord, error) {
	return ReadRecords(bytes.NewReader(sampleData))
}
