package normalize

import "brandlens-cli/internal/agent"

// ExtractMeta recovers the aggregate counts reported alongside the brand list.
// The same candidate locations as ExtractBrands are probed in order; the first
// object yielding a numeric total_brands wins, with complete_count and
// partial_count each defaulting to 0 independently. Total exhaustion yields
// the zero value.
func ExtractMeta(resp *agent.AgentResponse) ResponseMeta {
	if resp == nil {
		return ResponseMeta{}
	}

	responseVal := decodeRaw(resp.Response)
	candidates := []any{
		Resolve(resultOf(responseVal)),
		responseVal,
		envelopeValue(resp),
	}
	if resp.RawResponse != "" {
		candidates = append(candidates, Resolve(resp.RawResponse))
	}

	for _, candidate := range candidates {
		obj, ok := candidate.(map[string]any)
		if !ok {
			continue
		}
		if meta, ok := metaFrom(obj); ok {
			return meta
		}
	}
	return ResponseMeta{}
}

func metaFrom(obj map[string]any) (ResponseMeta, bool) {
	if s, ok := obj["text"].(string); ok {
		if inner, ok := Resolve(s).(map[string]any); ok {
			if meta, ok := metaCounts(inner); ok {
				return meta, true
			}
		}
	}
	if meta, ok := metaCounts(obj); ok {
		return meta, true
	}
	if raw, ok := obj["result"]; ok {
		if inner, ok := Resolve(raw).(map[string]any); ok {
			if meta, ok := metaCounts(inner); ok {
				return meta, true
			}
		}
	}
	return ResponseMeta{}, false
}

func metaCounts(obj map[string]any) (ResponseMeta, bool) {
	total, ok := intValue(obj["total_brands"])
	if !ok {
		return ResponseMeta{}, false
	}
	meta := ResponseMeta{Total: total}
	if n, ok := intValue(obj["complete_count"]); ok {
		meta.Complete = n
	}
	if n, ok := intValue(obj["partial_count"]); ok {
		meta.Partial = n
	}
	return meta, true
}

func intValue(v any) (int, bool) {
	n, ok := v.(float64)
	if !ok || n < 0 {
		return 0, false
	}
	return int(n), true
}
