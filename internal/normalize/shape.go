package normalize

import (
	"fmt"
	"sort"
	"strings"

	"brandlens-cli/internal/agent"
)

// ExtractionError reports that the agent call succeeded but no brand records
// were recoverable anywhere in the response. The observed shape is included so
// the failure is diagnosable rather than a silent empty table.
type ExtractionError struct {
	Shape string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("no brand records found in agent response (%s)", e.Shape)
}

// NewExtractionError captures the shape of the response that defeated
// extraction.
func NewExtractionError(resp *agent.AgentResponse) *ExtractionError {
	return &ExtractionError{Shape: DescribeShape(envelopeValue(resp))}
}

// DescribeShape renders a one-line structural summary of a decoded JSON value
// (type plus top-level keys) for error messages.
func DescribeShape(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return fmt.Sprintf("string (%d bytes)", len(t))
	case []any:
		return fmt.Sprintf("array of %d", len(t))
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Sprintf("object with keys [%s]", strings.Join(keys, " "))
	default:
		return fmt.Sprintf("%T", v)
	}
}
