package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"courierbilling/models"
)

func TestFindBestMatchingKey(t *testing.T) {
	tests := []struct {
		name   string
		rates  models.QuotationRates
		region string
		label  string
		want   string
	}{
		{
			name:   "exact match",
			rates:  models.QuotationRates{"MUMBAI": {"100 gm": "45"}},
			region: "MUMBAI",
			label:  "100 gm",
			want:   "45",
		},
		{
			name:   "space insensitive",
			rates:  models.QuotationRates{"MUMBAI": {"100gm": "45"}},
			region: "MUMBAI",
			label:  "100 gm",
			want:   "45",
		},
		{
			name:   "gm and g equivalent",
			rates:  models.QuotationRates{"MUMBAI": {"100 g": "55"}},
			region: "MUMBAI",
			label:  "100 gm",
			want:   "55",
		},
		{
			name:   "case folded",
			rates:  models.QuotationRates{"MUMBAI": {"100 GM": "60"}},
			region: "MUMBAI",
			label:  "100 gm",
			want:   "60",
		},
		{
			name:   "bare number containment",
			rates:  models.QuotationRates{"MUMBAI": {"Add_1000 gms extra": "12"}},
			region: "MUMBAI",
			label:  "1000 gm",
			want:   "12",
		},
		{
			name:   "no variant matches",
			rates:  models.QuotationRates{"MUMBAI": {"250 gm": "70"}},
			region: "MUMBAI",
			label:  "100 gm",
			want:   "",
		},
		{
			name:   "unknown region",
			rates:  models.QuotationRates{"MUMBAI": {"100 gm": "45"}},
			region: "DELHI",
			label:  "100 gm",
			want:   "",
		},
		{
			name:   "empty rates",
			rates:  models.QuotationRates{},
			region: "MUMBAI",
			label:  "100 gm",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindBestMatchingKey(tt.rates, tt.region, tt.label))
		})
	}
}

func TestFindBestMatchingKeyPrefersExactOverFuzzy(t *testing.T) {
	rates := models.QuotationRates{"MUMBAI": {
		"100 gm": "45",
		"100gm":  "99",
	}}
	assert.Equal(t, "45", FindBestMatchingKey(rates, "MUMBAI", "100 gm"))
}
