package llm

import "context"

type Config struct {
	ChatModel      string  `yaml:"chatModel"`
	EmbeddingModel string  `yaml:"embeddingModel"`
	Temperature    float32 `yaml:"temperature"`
	Dimensions     int     `yaml:"dimensions"`
}

// Provider covers the two hosted model APIs the pipeline depends on:
// embeddings for indexing and retrieval, chat completion for answers.
type Provider interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	Complete(ctx context.Context, prompt string) (string, error)
}
