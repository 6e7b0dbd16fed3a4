// Package provider defines the contract for text generation backends.
// Each concrete provider lives in its own subpackage; the generation service
// receives a fixed set of them at construction and never builds its own.
package provider

import "context"

// Provider produces a single text completion for a prompt.
type Provider interface {
	// Name identifies the provider in candidate metadata and logs.
	Name() string
	// Complete sends the prompt and returns the raw model output.
	Complete(ctx context.Context, prompt string) (string, error)
}
