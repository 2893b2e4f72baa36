// Package render draws brand results as a terminal table and provides the
// pure sort/filter reducers behind the table view.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"brandlens-cli/internal/normalize"
)

// SortKey selects the column used to order the table.
type SortKey string

const (
	SortByName       SortKey = "name"
	SortByStatus     SortKey = "status"
	SortByCategory   SortKey = "category"
	SortByConfidence SortKey = "confidence"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	completeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	partialStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// Sort returns a copy of brands ordered by the given key, ascending by
// default. Unknown keys fall back to name ordering. The input is never
// mutated; results views hold their list immutable.
func Sort(brands []normalize.Brand, key SortKey, desc bool) []normalize.Brand {
	out := make([]normalize.Brand, len(brands))
	copy(out, brands)

	less := func(a, b normalize.Brand) bool {
		return compareFold(a.BrandName, b.BrandName)
	}
	switch key {
	case SortByStatus:
		less = func(a, b normalize.Brand) bool {
			if a.Status != b.Status {
				return compareFold(a.Status, b.Status)
			}
			return compareFold(a.BrandName, b.BrandName)
		}
	case SortByCategory:
		less = func(a, b normalize.Brand) bool {
			ac, bc := a.ProductCategory.String(), b.ProductCategory.String()
			if ac != bc {
				return compareFold(ac, bc)
			}
			return compareFold(a.BrandName, b.BrandName)
		}
	case SortByConfidence:
		less = func(a, b normalize.Brand) bool {
			if a.Confidence != b.Confidence {
				return compareFold(a.Confidence, b.Confidence)
			}
			return compareFold(a.BrandName, b.BrandName)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func compareFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// Filter keeps brands whose name, category, website, or summary contains the
// query, case-insensitively. A blank query keeps everything.
func Filter(brands []normalize.Brand, query string) []normalize.Brand {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return brands
	}
	out := make([]normalize.Brand, 0, len(brands))
	for _, b := range brands {
		haystack := strings.ToLower(strings.Join([]string{
			b.BrandName,
			b.ProductCategory.String(),
			b.WebsiteURL,
			b.AboutSummary,
		}, "\n"))
		if strings.Contains(haystack, query) {
			out = append(out, b)
		}
	}
	return out
}

var tableColumns = []struct {
	title string
	width int
	value func(normalize.Brand) string
}{
	{"Brand", 22, func(b normalize.Brand) string { return b.BrandName }},
	{"Category", 20, func(b normalize.Brand) string { return b.ProductCategory.String() }},
	{"Website", 34, func(b normalize.Brand) string { return b.WebsiteURL }},
	{"Scope", 8, func(b normalize.Brand) string { return b.WebsiteScope }},
	{"Confidence", 18, func(b normalize.Brand) string { return b.Confidence }},
	{"Status", 8, func(b normalize.Brand) string { return b.Status }},
}

// Table writes the brand list as a styled terminal table. Absent values ("" or
// "Not Found") render as a dimmed dash.
func Table(w io.Writer, brands []normalize.Brand) {
	titles := make([]string, len(tableColumns))
	for i, col := range tableColumns {
		titles[i] = pad(col.title, col.width)
	}
	fmt.Fprintln(w, headerStyle.Render(strings.Join(titles, "  ")))

	for _, b := range brands {
		cells := make([]string, len(tableColumns))
		for i, col := range tableColumns {
			cells[i] = renderCell(col.value(b), col.width)
		}
		fmt.Fprintln(w, strings.Join(cells, "  "))
	}
}

func renderCell(value string, width int) string {
	display := normalize.Display(value)
	if display == "" {
		return dimStyle.Render(pad("-", width))
	}
	cell := pad(display, width)
	switch display {
	case normalize.StatusComplete:
		return completeStyle.Render(cell)
	case normalize.StatusPartial:
		return partialStyle.Render(cell)
	}
	return cell
}

func pad(s string, width int) string {
	if len(s) > width {
		if width > 3 {
			return s[:width-3] + "..."
		}
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// MetaLine formats the aggregate counts for the summary line under the table.
func MetaLine(meta normalize.ResponseMeta) string {
	return fmt.Sprintf("%d brands (%d complete, %d partial)", meta.Total, meta.Complete, meta.Partial)
}
