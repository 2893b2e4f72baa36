package normalize

import (
	"strconv"
	"strings"
)

// Alternate-schema marker keys. Records from the agent's "verified site" flow
// nest descriptive fields under website_details and carry the chosen URL in
// selected_official_website, with a Turkey-specific fallback.
const (
	keyWebsiteDetails  = "website_details"
	keySelectedWebsite = "selected_official_website"
	keyTurkeyWebsite   = "official_website_turkey"
)

// isVerifiedRecord reports whether a record uses the alternate verified-site
// schema rather than the canonical brand shape.
func isVerifiedRecord(rec map[string]any) bool {
	if _, ok := rec[keyWebsiteDetails].(map[string]any); ok {
		return true
	}
	_, ok := rec[keySelectedWebsite]
	return ok
}

// mapVerifiedRecord converts one alternate-schema record into a canonical
// Brand. Total over any object: missing or mistyped fields default to "".
func mapVerifiedRecord(rec map[string]any) Brand {
	details, _ := rec[keyWebsiteDetails].(map[string]any)

	website := firstString(rec, details, keySelectedWebsite)
	if website == "" {
		website = firstString(rec, details, keyTurkeyWebsite)
	}

	confidence := firstString(rec, details, "confidence")
	status := StatusPartial
	if strings.EqualFold(strings.TrimSpace(confidence), "verified") {
		status = StatusComplete
	}

	b := Brand{
		BrandName:         stringField(rec, "brand_name"),
		WebsiteURL:        website,
		WebsiteScope:      firstString(rec, details, "website_scope"),
		Confidence:        confidence,
		VerificationNotes: firstString(rec, details, "verification_notes"),
		LogoURL:           firstString(rec, details, "logo_url"),
		FoundedYear:       FlexString(scalarString(rec, details, "founded_year")),
		AboutSummary:      firstString(rec, details, "about_summary"),
		AboutPageLink:     firstString(rec, details, "about_page_link"),
		ProductCategory:   FlexString(categoryField(rec, details)),
		Status:            status,
	}

	if social := subObject(rec, details, "social_media"); social != nil {
		b.SocialMedia = SocialMedia{
			Twitter:   stringField(social, "twitter"),
			LinkedIn:  stringField(social, "linkedin"),
			Instagram: stringField(social, "instagram"),
			Facebook:  stringField(social, "facebook"),
			YouTube:   stringField(social, "youtube"),
			TikTok:    stringField(social, "tiktok"),
			Pinterest: stringField(social, "pinterest"),
		}
	}
	if contact := subObject(rec, details, "contact_info"); contact != nil {
		b.ContactInfo = ContactInfo{
			Email:     stringField(contact, "email"),
			Phone:     stringField(contact, "phone"),
			HQAddress: stringField(contact, "hq_address"),
		}
	}

	return b
}

// categoryField joins a list-valued product category with ", "; scalar values
// come through as-is.
func categoryField(rec, details map[string]any) string {
	raw, ok := lookup(rec, details, "product_category")
	if !ok {
		return ""
	}
	switch v := raw.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// lookup checks the record first and its website_details sub-object second.
func lookup(rec, details map[string]any, key string) (any, bool) {
	if rec != nil {
		if v, ok := rec[key]; ok {
			return v, true
		}
	}
	if details != nil {
		if v, ok := details[key]; ok {
			return v, true
		}
	}
	return nil, false
}

func firstString(rec, details map[string]any, key string) string {
	if v, ok := lookup(rec, details, key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// scalarString is firstString with tolerance for numeric values; the agent
// sometimes reports founded_year as a bare number.
func scalarString(rec, details map[string]any, key string) string {
	v, ok := lookup(rec, details, key)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func subObject(rec, details map[string]any, key string) map[string]any {
	if v, ok := lookup(rec, details, key); ok {
		if m, ok := v.(map[string]any); ok {
			return m
		}
	}
	return nil
}
