package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"sentinel", "Not Found", true},
		{"sentinel lowercase", "not found", true},
		{"sentinel padded upper", "  NOT FOUND  ", true},
		{"real value", "https://nike.com", false},
		{"value containing sentinel", "Not Found Yet", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Absent(tt.input))
		})
	}
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "", Display("Not Found"))
	assert.Equal(t, "", Display("  "))
	assert.Equal(t, "Nike", Display(" Nike "))
}

func TestFlexStringUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"string", `"1998"`, "1998"},
		{"number", `1998`, "1998"},
		{"float number", `1998.0`, "1998"},
		{"list joined", `["Shoes","Apparel"]`, "Shoes, Apparel"},
		{"list with blanks", `["Shoes"," ",""]`, "Shoes"},
		{"object collapses to empty", `{"x":1}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexString
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &f))
			assert.Equal(t, tt.expected, f.String())
		})
	}
}

func TestBrandDecodeTolerance(t *testing.T) {
	raw := `{
		"brand_name": "Vintage Co",
		"founded_year": 1948,
		"product_category": ["Furniture", "Lighting"],
		"social_media": {"tiktok": "https://tiktok.com/@vintage"},
		"unknown_field": {"ignored": true}
	}`

	var b Brand
	require.NoError(t, json.Unmarshal([]byte(raw), &b))
	assert.Equal(t, "Vintage Co", b.BrandName)
	assert.Equal(t, "1948", b.FoundedYear.String())
	assert.Equal(t, "Furniture, Lighting", b.ProductCategory.String())
	assert.Equal(t, "https://tiktok.com/@vintage", b.SocialMedia.TikTok)
}
