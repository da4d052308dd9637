// Package llm defines the JSON-completion adapter.
package llm

import (
	"context"
	"encoding/json"
)

// Adapter is the AdapterError.Adapter value for LLM failures.
const Adapter = "llm"

// Completer sends one system+user prompt and returns the model's JSON object.
type Completer interface {
	CompleteJSON(ctx context.Context, system, user string) (json.RawMessage, error)
}
