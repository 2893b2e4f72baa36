package normalize

import (
	"encoding/json"
	"regexp"
	"strings"
)

// maxResolveDepth bounds recursive unwrapping of nested stringified JSON.
const maxResolveDepth = 5

// fencedBlock matches the first markdown code fence, with an optional json tag.
var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// Resolve coerces a value that may be a JSON-encoded string (possibly wrapped
// in a markdown fence or surrounded by prose) into its parsed form. Non-string
// values pass through unchanged. Double- and triple-encoded payloads are
// unwrapped recursively up to maxResolveDepth; past that, or when no strategy
// parses, the original string comes back as-is. Never fails.
func Resolve(v any) any {
	return resolveValue(v, 0)
}

func resolveValue(v any, depth int) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if depth > maxResolveDepth {
		return s
	}

	trimmed := strings.TrimSpace(s)

	if parsed, err := parseJSON(trimmed); err == nil {
		return resolveValue(parsed, depth+1)
	}

	if m := fencedBlock.FindStringSubmatch(trimmed); m != nil {
		if parsed, err := parseJSON(strings.TrimSpace(m[1])); err == nil {
			return resolveValue(parsed, depth+1)
		}
	}

	if i := strings.IndexAny(trimmed, "{["); i >= 0 {
		if parsed, err := parseJSON(trimmed[i:]); err == nil {
			return resolveValue(parsed, depth+1)
		}
	}

	return s
}

func parseJSON(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}
