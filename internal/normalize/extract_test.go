package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandlens-cli/internal/agent"
)

func respFrom(t *testing.T, body string) *agent.AgentResponse {
	t.Helper()
	return agent.ParseAgentResponse([]byte(body))
}

func TestExtractBrandsCanonicalPassThrough(t *testing.T) {
	resp := respFrom(t, `{
		"success": true,
		"response": {
			"result": {
				"brands": [{
					"brand_name": "Nike",
					"website_url": "https://nike.com",
					"confidence": "Verified",
					"product_category": ["Sportswear", "Footwear"],
					"social_media": {"instagram": "https://instagram.com/nike"},
					"contact_info": {"email": "press@nike.com"},
					"status": "Complete"
				}]
			}
		}
	}`)

	brands := ExtractBrands(resp)
	require.Len(t, brands, 1)
	b := brands[0]
	assert.Equal(t, "Nike", b.BrandName)
	assert.Equal(t, "https://nike.com", b.WebsiteURL)
	assert.Equal(t, "Sportswear, Footwear", b.ProductCategory.String())
	assert.Equal(t, "https://instagram.com/nike", b.SocialMedia.Instagram)
	assert.Equal(t, "press@nike.com", b.ContactInfo.Email)
	assert.Equal(t, StatusComplete, b.Status)
}

func TestExtractBrandsAlternateSchema(t *testing.T) {
	resp := respFrom(t, `{
		"success": true,
		"response": {
			"result": {
				"brands": [{
					"brand_name": "Adidas",
					"selected_official_website": "https://adidas.com",
					"confidence": "Verified",
					"website_details": {
						"social_media": {"instagram": "https://instagram.com/adidas"},
						"contact_info": {"email": "info@adidas.com"},
						"about_summary": "Sportswear maker"
					}
				}]
			}
		}
	}`)

	brands := ExtractBrands(resp)
	require.Len(t, brands, 1)
	b := brands[0]
	assert.Equal(t, "Adidas", b.BrandName)
	assert.Equal(t, "https://adidas.com", b.WebsiteURL)
	assert.Equal(t, "https://instagram.com/adidas", b.SocialMedia.Instagram)
	assert.Equal(t, "info@adidas.com", b.ContactInfo.Email)
	assert.Equal(t, "Sportswear maker", b.AboutSummary)
	assert.Equal(t, StatusComplete, b.Status)
}

func TestExtractBrandsStringifiedEnvelope(t *testing.T) {
	resp := respFrom(t, `{
		"success": true,
		"response": {"result": "{\"brands\":[{\"brand_name\":\"Tesla\"}]}"}
	}`)

	brands := ExtractBrands(resp)
	require.Len(t, brands, 1)
	assert.Equal(t, "Tesla", brands[0].BrandName)
}

func TestExtractBrandsFencedRawResponse(t *testing.T) {
	resp := respFrom(t, `{
		"success": true,
		"response": {"result": "The research is attached below."},
		"raw_response": "`+"```json\\n{\\\"brands\\\":[{\\\"brand_name\\\":\\\"Spotify\\\"}]}\\n```"+`"
	}`)

	brands := ExtractBrands(resp)
	require.Len(t, brands, 1)
	assert.Equal(t, "Spotify", brands[0].BrandName)
}

func TestExtractBrandsResultsKey(t *testing.T) {
	resp := respFrom(t, `{
		"success": true,
		"response": {"result": {"results": [{"brand_name": "Puma"}]}}
	}`)

	brands := ExtractBrands(resp)
	require.Len(t, brands, 1)
	assert.Equal(t, "Puma", brands[0].BrandName)
}

func TestExtractBrandsDirectList(t *testing.T) {
	resp := respFrom(t, `{
		"success": true,
		"response": {"result": [{"brand_name": "Apple"}, {"brand_name": "Sony"}]}
	}`)

	brands := ExtractBrands(resp)
	require.Len(t, brands, 2)
	assert.Equal(t, "Apple", brands[0].BrandName)
	assert.Equal(t, "Sony", brands[1].BrandName)
}

func TestExtractBrandsTextContainer(t *testing.T) {
	resp := respFrom(t, `{
		"success": true,
		"response": {"text": "{\"brands\":[{\"brand_name\":\"Fila\"}]}"}
	}`)

	brands := ExtractBrands(resp)
	require.Len(t, brands, 1)
	assert.Equal(t, "Fila", brands[0].BrandName)
}

func TestExtractBrandsNestedDataContainer(t *testing.T) {
	resp := respFrom(t, `{
		"success": true,
		"response": {"result": {"data": {"brands": [{"brand_name": "Levis"}]}}}
	}`)

	brands := ExtractBrands(resp)
	require.Len(t, brands, 1)
	assert.Equal(t, "Levis", brands[0].BrandName)
}

func TestExtractBrandsRejectsArbitraryArrays(t *testing.T) {
	resp := respFrom(t, `{
		"success": true,
		"response": {"result": ["just", "strings"], "data": [1, 2, 3]}
	}`)

	assert.Empty(t, ExtractBrands(resp))
}

func TestExtractBrandsExhaustion(t *testing.T) {
	resp := respFrom(t, `{
		"success": true,
		"response": {"message": "I could not find any brand data."}
	}`)

	brands := ExtractBrands(resp)
	assert.NotNil(t, brands)
	assert.Empty(t, brands)

	meta := ExtractMeta(resp)
	assert.Equal(t, ResponseMeta{}, meta)
}

func TestExtractBrandsNilResponse(t *testing.T) {
	assert.Empty(t, ExtractBrands(nil))
}

func TestExtractionErrorNamesShape(t *testing.T) {
	resp := respFrom(t, `{"success": true, "response": {"message": "nothing"}}`)
	err := NewExtractionError(resp)
	assert.Contains(t, err.Error(), "no brand records found")
	assert.Contains(t, err.Error(), "object with keys")
	assert.Contains(t, err.Error(), "response")
}

func TestFindBrandsDepthGuard(t *testing.T) {
	// Six nested result wrappers put the list past the depth bound.
	inner := map[string]any{"brands": []any{map[string]any{"brand_name": "Deep"}}}
	v := any(inner)
	for i := 0; i < 6; i++ {
		v = map[string]any{"result": v}
	}

	assert.Nil(t, findBrands(v, 0))
}
