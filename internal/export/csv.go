// Package export writes brand results to CSV and JSON.
package export

import (
	"fmt"
	"io"
	"strings"

	"brandlens-cli/internal/normalize"
)

// CSVHeader is the fixed, human-readable column set of the export format.
var CSVHeader = []string{
	"Brand Name", "Category", "Website", "Website Scope", "Confidence",
	"Verification Notes", "Logo URL", "Founded Year", "About Summary",
	"About Page", "Twitter", "LinkedIn", "Instagram", "Facebook", "YouTube",
	"TikTok", "Pinterest", "Email", "Phone", "HQ Address", "Status",
}

// WriteCSV renders the brand list as CSV. Every field is double-quote-wrapped
// with internal quotes doubled, which encoding/csv cannot be made to do for
// unquoted-safe values, so rows are written directly. Absent fields ("" or
// "Not Found") render as empty strings.
func WriteCSV(w io.Writer, brands []normalize.Brand) error {
	if err := writeRow(w, CSVHeader); err != nil {
		return err
	}
	for _, b := range brands {
		if err := writeRow(w, csvRow(b)); err != nil {
			return err
		}
	}
	return nil
}

func csvRow(b normalize.Brand) []string {
	fields := []string{
		b.BrandName,
		b.ProductCategory.String(),
		b.WebsiteURL,
		b.WebsiteScope,
		b.Confidence,
		b.VerificationNotes,
		b.LogoURL,
		b.FoundedYear.String(),
		b.AboutSummary,
		b.AboutPageLink,
		b.SocialMedia.Twitter,
		b.SocialMedia.LinkedIn,
		b.SocialMedia.Instagram,
		b.SocialMedia.Facebook,
		b.SocialMedia.YouTube,
		b.SocialMedia.TikTok,
		b.SocialMedia.Pinterest,
		b.ContactInfo.Email,
		b.ContactInfo.Phone,
		b.ContactInfo.HQAddress,
		b.Status,
	}
	for i, f := range fields {
		fields[i] = normalize.Display(f)
	}
	return fields
}

func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := fmt.Fprintln(w, strings.Join(quoted, ","))
	return err
}
