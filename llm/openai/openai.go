package openai

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"

	"github.com/flarexio/ragblade/llm"
)

const embedBatchLimit = 2048

const (
	DefaultChatModel      = openai.GPT3Dot5Turbo
	DefaultEmbeddingModel = "text-embedding-3-small"
)

func New(cfg llm.Config) *OpenAIProvider {
	if cfg.ChatModel == "" {
		cfg.ChatModel = DefaultChatModel
	}

	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = DefaultEmbeddingModel
	}

	c := openai.NewClient(os.Getenv("OPENAI_API_KEY"))
	return &OpenAIProvider{
		client: c,
		cfg:    cfg,
	}
}

type OpenAIProvider struct {
	client *openai.Client
	cfg    llm.Config
}

func (p *OpenAIProvider) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	req := &openai.EmbeddingRequestStrings{
		Input:          []string{text},
		Model:          openai.EmbeddingModel(p.cfg.EmbeddingModel),
		EncodingFormat: "float",
		Dimensions:     p.cfg.Dimensions,
	}

	res, err := p.client.CreateEmbeddings(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(res.Data) == 0 {
		return nil, errors.New("no embedding returned")
	}

	return res.Data[0].Embedding, nil
}

func (p *OpenAIProvider) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) > embedBatchLimit {
		return nil, fmt.Errorf("length of texts exceeds limit: accepts '%d', received '%d'", embedBatchLimit, len(texts))
	}

	req := &openai.EmbeddingRequestStrings{
		Input:          texts,
		Model:          openai.EmbeddingModel(p.cfg.EmbeddingModel),
		EncodingFormat: "float",
		Dimensions:     p.cfg.Dimensions,
	}

	res, err := p.client.CreateEmbeddings(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(res.Data) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: requested '%d', received '%d'", len(texts), len(res.Data))
	}

	embeddings := make([][]float32, len(res.Data))
	for i, e := range res.Data {
		embeddings[i] = e.Embedding
	}

	return embeddings, nil
}

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       p.cfg.ChatModel,
		Temperature: p.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	res, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}

	if len(res.Choices) == 0 {
		return "", errors.New("no completion returned")
	}

	return res.Choices[0].Message.Content, nil
}
