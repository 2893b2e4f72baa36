// Package input turns pasted text, arguments, and CSV/TXT files into a clean
// brand-name list.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// headerTokens are column-header-looking values dropped from pasted or CSV
// input, matched case-insensitively.
var headerTokens = map[string]struct{}{
	"brand":        {},
	"name":         {},
	"brand_name":   {},
	"brand name":   {},
	"company":      {},
	"company name": {},
}

// ParseBrandNames splits free-form text on newlines and commas, trims each
// token, strips surrounding quote characters, and drops blanks and header
// tokens.
func ParseBrandNames(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})

	names := make([]string, 0, len(fields))
	for _, field := range fields {
		name := strings.TrimSpace(field)
		name = strings.Trim(name, `"'`)
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, isHeader := headerTokens[strings.ToLower(name)]; isHeader {
			continue
		}
		names = append(names, name)
	}
	return names
}

// ReadBrandFile loads brand names from a .csv or .txt file. Any other
// extension is an input error, reported before the network is touched.
func ReadBrandFile(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
	default:
		return nil, fmt.Errorf("unsupported file type %q: expected .csv or .txt", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading brand file: %w", err)
	}

	names := ParseBrandNames(string(data))
	if len(names) == 0 {
		return nil, fmt.Errorf("no brand names found in %s", path)
	}
	return names, nil
}
