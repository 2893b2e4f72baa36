package agent

import "fmt"

// APICallError represents a failed call to the research agent, either a
// transport error or an agent-reported failure.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("agent call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("agent call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// UploadError represents a failed file upload to the agent platform.
type UploadError struct {
	Message string
	Cause   error
}

func (e *UploadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upload error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("upload error: %s", e.Message)
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}
