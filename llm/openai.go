package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerator is the alternative inference backend, selected with
// LLM_BACKEND=openai. One non-streaming chat completion per call, with the
// same sampling parameters as the Vertex backend.
type OpenAIGenerator struct {
	api   *openai.Client
	model string
}

func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	return &OpenAIGenerator{api: openai.NewClient(apiKey), model: model}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: Temperature,
		TopP:        TopP,
		N:           int(CandidateCount),
		MaxTokens:   int(MaxOutputTokens),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
