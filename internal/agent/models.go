package agent

import "encoding/json"

// AgentResponse is the envelope returned by the research agent. The agent is
// free-form about where it puts the payload: response.result may be an object,
// a list, or a stringified (even markdown-fenced) JSON blob, and sometimes the
// only usable data lives in raw_response. The envelope is therefore decoded
// leniently and the undecoded body is kept for shape probing downstream.
type AgentResponse struct {
	Success       bool            `json:"success"`
	Response      json.RawMessage `json:"response,omitempty"`
	RawResponse   string          `json:"raw_response,omitempty"`
	ModuleOutputs *ModuleOutputs  `json:"module_outputs,omitempty"`
	Error         string          `json:"error,omitempty"`

	// Body is the full response body as received.
	Body json.RawMessage `json:"-"`
}

// ResponseBody is the typed view of the nested response object, used for
// error reporting only; extraction works on the raw JSON.
type ResponseBody struct {
	Result  json.RawMessage `json:"result,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ModuleOutputs carries side artifacts produced by the agent run.
type ModuleOutputs struct {
	ArtifactFiles []ArtifactFile `json:"artifact_files,omitempty"`
}

// ArtifactFile is a downloadable file referenced by the agent.
type ArtifactFile struct {
	FileURL    string `json:"file_url"`
	Name       string `json:"name,omitempty"`
	FormatType string `json:"format_type,omitempty"`
}

// UploadResult is the transport's answer to a file upload.
type UploadResult struct {
	Success  bool     `json:"success"`
	AssetIDs []string `json:"asset_ids"`
}

// ParseAgentResponse decodes a raw agent body into the envelope. It never
// fails: an undecodable body yields an envelope whose Body still carries the
// original bytes so the normalization engine can probe it.
func ParseAgentResponse(body []byte) *AgentResponse {
	resp := &AgentResponse{}
	_ = json.Unmarshal(body, resp)
	resp.Body = append(json.RawMessage(nil), body...)
	return resp
}

// Message digs the agent's own message text out of the response object, for
// surfacing agent-reported failures.
func (r *AgentResponse) Message() string {
	if len(r.Response) == 0 {
		return ""
	}
	var body ResponseBody
	if err := json.Unmarshal(r.Response, &body); err != nil {
		return ""
	}
	return body.Message
}
