package llm

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

// VertexGenerator calls a Gemini model on Vertex AI.
type VertexGenerator struct {
	model  *genai.GenerativeModel
	client *genai.Client
}

// NewVertexGenerator builds the genai client once at startup and configures
// the model with the fixed sampling parameters.
func NewVertexGenerator(ctx context.Context, projectID, region, modelName string) (*VertexGenerator, error) {
	if projectID == "" || region == "" {
		return nil, fmt.Errorf("NewVertexGenerator: projectID and region cannot be empty")
	}
	client, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:     genai.Ptr[float32](Temperature),
		TopP:            genai.Ptr[float32](TopP),
		CandidateCount:  genai.Ptr[int32](CandidateCount),
		MaxOutputTokens: genai.Ptr[int32](MaxOutputTokens),
	}

	return &VertexGenerator{model: model, client: client}, nil
}

func (g *VertexGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return responseText(resp), nil
}

func (g *VertexGenerator) Close() error {
	return g.client.Close()
}

// responseText assembles the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}
