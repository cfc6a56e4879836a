package adyen_soap_recurring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectVariant(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"4111111111111111", VariantVisa},
		{"4444333322221111", VariantVisa},
		{"5555444433331111", VariantMastercard},
		{"5101180000000007", VariantMastercard},
		{"2221000000000009", VariantMastercard},
		{"2720990000000007", VariantMastercard},
		{"370000000000002", VariantAmex},
		{"340000000000009", VariantAmex},
		{"6011000000000004", VariantDiscover},
		{"6445644564456445", VariantDiscover},
		{"6500000000000002", VariantDiscover},
		{"6221260000000000", VariantDiscover},
		{"2721000000000000", ""},
		{"3566111111111113", ""},
		{"5", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectVariant(tt.number))
		})
	}
}
