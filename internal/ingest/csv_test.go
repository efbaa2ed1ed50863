package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/industrylens/industrylens/internal/common"
	"github.com/industrylens/industrylens/internal/model"
)

func TestReadRecords(t *testing.T) {
	csvData := `name,domain,year founded,industry,locality,country,linkedin url
ibm,ibm.com,1911,information technology and services,"new york, new york, united states",united states,linkedin.com/company/ibm
blank industries,acme.com,,,,,
`

	records, err := ReadRecords(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "ibm", records[0].CompanyName)
	assert.Equal(t,
		"Domain: ibm.com. Founded: 1911. Industry: information technology and services. Locality: new york, new york, united states. Country: united states. LinkedIn URL: linkedin.com/company/ibm.",
		records[0].Description)
	assert.Equal(t, "information technology and services", records[0].OriginalIndustry)

	// Blank industry cell falls back to the N/A sentinel.
	assert.Equal(t, "blank industries", records[1].CompanyName)
	assert.Equal(t, "Domain: acme.com.", records[1].Description)
	assert.Equal(t, model.SentinelNoIndustry, records[1].OriginalIndustry)
}

func TestReadRecordsMissingNameColumn(t *testing.T) {
	csvData := `domain,industry
acme.com,retail
`

	records, err := ReadRecords(strings.NewReader(csvData))
	require.ErrorIs(t, err, common.ErrMissingNameColumn)
	assert.Empty(t, records)
}

func TestReadRecordsNoIndustryColumn(t *testing.T) {
	csvData := `name,domain
acme,acme.com
`

	records, err := ReadRecords(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, model.SentinelNoIndustry, records[0].OriginalIndustry)
}

func TestReadRecordsHeaderCaseInsensitive(t *testing.T) {
	csvData := `Name,Domain,Industry
acme,acme.com,retail
`

	records, err := ReadRecords(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "acme", records[0].CompanyName)
	assert.Equal(t, "retail", records[0].OriginalIndustry)
}

func TestReadRecordsNoDescriptiveColumns(t *testing.T) {
	csvData := `name
acme
`

	records, err := ReadRecords(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Description)
	assert.Equal(t, model.SentinelNoIndustry, records[0].OriginalIndustry)
}

func TestReadRecordsEmptyInput(t *testing.T) {
	t.Run("empty reader", func(t *testing.T) {
		_, err := ReadRecords(strings.NewReader(""))
		require.ErrorIs(t, err, common.ErrEmptyInput)
	})

	t.Run("header only", func(t *testing.T) {
		_, err := ReadRecords(strings.NewReader("name,domain\n"))
		require.ErrorIs(t, err, common.ErrEmptyInput)
	})
}

func TestSampleRecords(t *testing.T) {
	records, err := SampleRecords()
	require.NoError(t, err)
	require.NotEmpty(t, records)

	for _, rec := range records {
		assert.NotEmpty(t, rec.CompanyName)
		assert.NotEmpty(t, rec.Description)
		// Every sample row carries a label so accuracy is computable.
		assert.NotEqual(t, model.SentinelNoIndustry, rec.OriginalIndustry)
	}
}
