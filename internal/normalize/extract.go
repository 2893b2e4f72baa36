package normalize

import (
	"encoding/json"

	"brandlens-cli/internal/agent"
)

// maxExtractDepth bounds recursion through nested container keys.
const maxExtractDepth = 4

// Container keys holding brand lists directly, checked in order.
var brandListKeys = []string{"brands", "results"}

// Fallback keys that may wrap the payload another level down, checked in
// order. Reordering these changes which data wins on ambiguous responses.
var fallbackKeys = []string{"result", "response", "data"}

// ExtractBrands recovers the canonical brand list from an agent response,
// trying candidate root locations in strict priority order and stopping at the
// first non-empty result:
//
//  1. the resolved response.result value
//  2. the response object itself
//  3. the entire envelope
//  4. the resolved raw_response string, when present
//  5. the resolved response.result taken directly as a canonical list
//
// Exhaustion yields an empty list, not an error; callers report that condition
// with the observed shape (see ExtractionError).
func ExtractBrands(resp *agent.AgentResponse) []Brand {
	if resp == nil {
		return []Brand{}
	}

	responseVal := decodeRaw(resp.Response)
	resolvedResult := Resolve(resultOf(responseVal))

	if brands := findBrands(resolvedResult, 0); len(brands) > 0 {
		return brands
	}
	if brands := findBrands(responseVal, 0); len(brands) > 0 {
		return brands
	}
	if brands := findBrands(envelopeValue(resp), 0); len(brands) > 0 {
		return brands
	}
	if resp.RawResponse != "" {
		if brands := findBrands(Resolve(resp.RawResponse), 0); len(brands) > 0 {
			return brands
		}
	}
	if list, ok := resolvedResult.([]any); ok {
		if first := headObject(list); first != nil {
			if _, ok := first["brand_name"]; ok {
				if brands := decodeBrands(list); len(brands) > 0 {
					return brands
				}
			}
		}
	}

	return []Brand{}
}

// findBrands searches an arbitrarily shaped value for a list of brand records.
// A bare list qualifies only when its first element is an object carrying
// brand_name; arbitrary arrays stay unrecognized. Returns nil when nothing
// matches. Never fails.
func findBrands(v any, depth int) []Brand {
	if depth > maxExtractDepth {
		return nil
	}

	switch t := v.(type) {
	case []any:
		if first := headObject(t); first != nil {
			if _, ok := first["brand_name"]; ok {
				return decodeBrands(t)
			}
		}
		return nil

	case map[string]any:
		for _, key := range brandListKeys {
			raw, ok := t[key]
			if !ok {
				continue
			}
			list, ok := Resolve(raw).([]any)
			if !ok {
				continue
			}
			first := headObject(list)
			if first == nil {
				continue
			}
			if _, ok := first["brand_name"]; ok {
				return decodeBrands(list)
			}
			if isVerifiedRecord(first) {
				return mapVerifiedList(list)
			}
		}

		if s, ok := t["text"].(string); ok {
			if parsed := Resolve(s); !isString(parsed) {
				if brands := findBrands(parsed, depth+1); brands != nil {
					return brands
				}
			}
		}
		for _, key := range fallbackKeys {
			raw, ok := t[key]
			if !ok {
				continue
			}
			if brands := findBrands(Resolve(raw), depth+1); brands != nil {
				return brands
			}
		}
	}

	return nil
}

// decodeBrands converts a decoded JSON list already in canonical shape into
// Brand records via a JSON round trip, tolerating partial and mistyped fields.
func decodeBrands(list []any) []Brand {
	raw, err := json.Marshal(list)
	if err != nil {
		return nil
	}
	var brands []Brand
	if err := json.Unmarshal(raw, &brands); err != nil {
		return nil
	}
	return brands
}

func mapVerifiedList(list []any) []Brand {
	brands := make([]Brand, 0, len(list))
	for _, item := range list {
		if rec, ok := item.(map[string]any); ok {
			brands = append(brands, mapVerifiedRecord(rec))
		}
	}
	return brands
}

// resultOf pulls the result field out of a decoded response object.
func resultOf(responseVal any) any {
	if m, ok := responseVal.(map[string]any); ok {
		return m["result"]
	}
	return nil
}

// envelopeValue returns the whole agent response as a decoded value. The raw
// body is preferred; envelopes constructed by hand in tests are rebuilt from
// their typed fields.
func envelopeValue(resp *agent.AgentResponse) any {
	if len(resp.Body) > 0 {
		return decodeRaw(resp.Body)
	}
	m := map[string]any{"success": resp.Success}
	if len(resp.Response) > 0 {
		m["response"] = decodeRaw(resp.Response)
	}
	if resp.RawResponse != "" {
		m["raw_response"] = resp.RawResponse
	}
	return m
}

func decodeRaw(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

// headObject returns the first element of a non-empty list when it is an
// object, else nil.
func headObject(list []any) map[string]any {
	if len(list) == 0 {
		return nil
	}
	m, _ := list[0].(map[string]any)
	return m
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}
