package export

import (
	"encoding/json"
	"io"

	"brandlens-cli/internal/normalize"
)

// Results is the JSON export document: the brand list, its aggregate counts,
// and any artifact links the agent reported.
type Results struct {
	Brands    []normalize.Brand      `json:"brands"`
	Meta      normalize.ResponseMeta `json:"meta"`
	Artifacts []string               `json:"artifacts,omitempty"`
}

// WriteJSON renders the results document with indentation, matching the
// console JSON output.
func WriteJSON(w io.Writer, results Results) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
