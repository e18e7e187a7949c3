package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

// Tool is a single agent-callable nutrition operation.
// Input arrives as raw JSON so each tool can decode and validate
// its own typed parameters; Run returns the result payload plus a
// short human-readable message for the response envelope
type Tool interface {
	Name() string
	Description() string
	InputSchema() *jsonschema.Schema
	Run(ctx context.Context, input json.RawMessage) (data interface{}, message string, err error)
}
