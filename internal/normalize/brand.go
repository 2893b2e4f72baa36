package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Status values derived for a Brand record.
const (
	StatusComplete = "Complete"
	StatusPartial  = "Partial"
)

// NotFound is the sentinel the agent uses for fields it could not verify.
// Consumers treat it the same as an empty string.
const NotFound = "Not Found"

// Brand is the canonical normalized record recovered from an agent response.
// Every field may be blank or carry the "Not Found" sentinel; use Absent to
// test either form.
type Brand struct {
	BrandName         string      `json:"brand_name"`
	WebsiteURL        string      `json:"website_url,omitempty"`
	WebsiteScope      string      `json:"website_scope,omitempty"`
	Confidence        string      `json:"confidence,omitempty"`
	VerificationNotes string      `json:"verification_notes,omitempty"`
	LogoURL           string      `json:"logo_url,omitempty"`
	FoundedYear       FlexString  `json:"founded_year,omitempty"`
	AboutSummary      string      `json:"about_summary,omitempty"`
	AboutPageLink     string      `json:"about_page_link,omitempty"`
	ProductCategory   FlexString  `json:"product_category,omitempty"`
	SocialMedia       SocialMedia `json:"social_media,omitempty"`
	ContactInfo       ContactInfo `json:"contact_info,omitempty"`
	Status            string      `json:"status,omitempty"`
}

// SocialMedia holds the fixed set of per-channel profile URLs.
type SocialMedia struct {
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Pinterest string `json:"pinterest,omitempty"`
}

// ContactInfo holds contact fields, each independently absent-able.
type ContactInfo struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	HQAddress string `json:"hq_address,omitempty"`
}

// ResponseMeta carries the aggregate counts reported alongside the brand list.
type ResponseMeta struct {
	Total    int `json:"total"`
	Complete int `json:"complete"`
	Partial  int `json:"partial"`
}

// FlexString decodes a field the agent reports inconsistently: plain string,
// bare number (founded_year), or list of strings (product_category, joined
// with ", ").
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(strconv.FormatFloat(n, 'f', -1, 64))
		return nil
	}
	var list []any
	if err := json.Unmarshal(data, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				parts = append(parts, s)
			}
		}
		*f = FlexString(strings.Join(parts, ", "))
		return nil
	}
	*f = ""
	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func (f FlexString) String() string { return string(f) }

// Absent reports whether a field value means "no data": blank, whitespace, or
// the "Not Found" sentinel in any casing.
func Absent(s string) bool {
	t := strings.TrimSpace(s)
	return t == "" || strings.EqualFold(t, NotFound)
}

// Display returns the field value with absent forms collapsed to "".
func Display(s string) string {
	if Absent(s) {
		return ""
	}
	return strings.TrimSpace(s)
}
