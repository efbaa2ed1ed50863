// Package llm implements the industry classifier backed by an external
// generative-text service.
//
// The service is an opaque collaborator: it receives a few-shot prompt and
// returns free text, which the adapter normalizes against the closed set of
// allowed industry labels. Calls are single-attempt and timeout-bounded;
// there are no hidden retries.
package llm

import (
	"context"
)

// Client is the interface to a generative-text provider. Implementations
// send the prompt with deterministic sampling (temperature 0) and return the
// raw response text.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
