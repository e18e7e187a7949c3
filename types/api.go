package types

import "time"

// Envelope is the uniform response shape returned by every tool operation,
// for both successes and failures
type Envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Tool      string      `json:"tool,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewSuccess wraps a tool result payload in a success envelope
// with a server-assigned timestamp
func NewSuccess(tool string, data interface{}, message string) Envelope {
	return Envelope{
		Success:   true,
		Data:      data,
		Tool:      tool,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// NewFailure wraps an error in a failure envelope
// with a server-assigned timestamp.
// The error text is a short human-readable description,
// never an internal stack trace
func NewFailure(tool string, err error) Envelope {
	return Envelope{
		Success:   false,
		Error:     err.Error(),
		Tool:      tool,
		Timestamp: time.Now().UTC(),
	}
}

// ToolInfo describes a single registered tool in tool listings
type ToolInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema interface{} `json:"input_schema"`
}

// ToolListing is the response shape for the tool discovery endpoint
type ToolListing struct {
	Tools   []ToolInfo `json:"tools"`
	Count   int        `json:"count"`
	Server  string     `json:"server"`
	Version string     `json:"version"`
}
