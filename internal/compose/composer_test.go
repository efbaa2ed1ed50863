package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescription(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		want   string
	}{
		{
			name:   "no fields",
			fields: Fields{},
			want:   "",
		},
		{
			name:   "domain only",
			fields: Fields{Domain: "acme.com"},
			want:   "Domain: acme.com.",
		},
		{
			name: "all fields in fixed order",
			fields: Fields{
				Domain:      "ibm.com",
				YearFounded: "1911",
				Industry:    "information technology and services",
				Locality:    "new york, new york, united states",
				Country:     "united states",
				LinkedInURL: "linkedin.com/company/ibm",
			},
			want: "Domain: ibm.com. Founded: 1911. Industry: information technology and services. Locality: new york, new york, united states. Country: united states. LinkedIn URL: linkedin.com/company/ibm.",
		},
		{
			name: "blank fields omitted",
			fields: Fields{
				Domain:   "   ",
				Industry: "retail",
				Country:  "united states",
			},
			want: "Industry: retail. Country: united states.",
		},
		{
			name:   "values trimmed",
			fields: Fields{Domain: "  acme.com  "},
			want:   "Domain: acme.com.",
		},
		{
			name:   "whitespace everywhere yields empty",
			fields: Fields{Domain: " ", Country: "\t"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Description(tt.fields))
		})
	}
}
