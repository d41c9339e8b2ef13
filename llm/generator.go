package llm

import "context"

// Generator produces one text completion for a prompt. Implementations make a
// single blocking call with no retries; errors propagate to the caller.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Sampling parameters applied to every inference call.
const (
	Temperature     float32 = 0.3
	TopP            float32 = 0.6
	CandidateCount  int32   = 1
	MaxOutputTokens int32   = 4096
)
