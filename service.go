package ragblade

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/flarexio/ragblade/corpus"
	"github.com/flarexio/ragblade/llm"
	"github.com/flarexio/ragblade/vector"
)

// Service defines the core logic of RAGBlade.
type Service interface {

	// Close gracefully shuts down the service.
	Close() error

	// IngestCorpus chunks the configured corpus, embeds every chunk
	// and writes the documents to the vector index.
	IngestCorpus(ctx context.Context) (*IndexStats, error)

	// Chat answers a question from the indexed corpus, building the
	// index first if it does not exist yet.
	Chat(ctx context.Context, question string) (string, error)

	// SearchChunks returns the top-k chunks most similar to the query.
	SearchChunks(ctx context.Context, query string, k ...int) ([]vector.Document, error)
}

type ServiceMiddleware func(Service) Service

func NewService(cfg Config, provider llm.Provider, vectordb vector.VectorDB) (Service, error) {
	log := zap.L().With(
		zap.String("service", "ragblade"),
	)

	if vectordb == nil {
		return nil, ErrVectorDBNotSet
	}

	cfg.applyDefaults()

	return &service{
		cfg:      cfg,
		provider: provider,
		vectordb: vectordb,
		log:      log,
	}, nil
}

type service struct {
	cfg      Config
	provider llm.Provider
	vectordb vector.VectorDB
	log      *zap.Logger

	// Lazily-built pipeline. Transitions once, from nil to loaded,
	// and is never invalidated.
	once singleflight.Group
	mu   sync.RWMutex
	pipe *pipeline
}

type pipeline struct {
	collection vector.Collection
	topK       int
}

func (svc *service) Close() error {
	return nil
}

// loadPipeline returns the loaded pipeline, building it on first use.
// Concurrent first requests share a single load via singleflight, so
// the index is never rebuilt redundantly.
func (svc *service) loadPipeline(ctx context.Context) (*pipeline, error) {
	svc.mu.RLock()
	p := svc.pipe
	svc.mu.RUnlock()

	if p != nil {
		return p, nil
	}

	v, err, _ := svc.once.Do("pipeline", func() (any, error) {
		svc.mu.RLock()
		p := svc.pipe
		svc.mu.RUnlock()

		if p != nil {
			return p, nil
		}

		log := svc.log.With(
			zap.String("action", "load_pipeline"),
		)

		collection, err := svc.collection()
		if err != nil {
			return nil, err
		}

		if collection.Count() == 0 {
			log.Warn("index not found, generating from corpus",
				zap.String("corpus", svc.cfg.Corpus.Path),
			)

			if _, err := svc.ingest(ctx, collection); err != nil {
				return nil, err
			}
		}

		p = &pipeline{
			collection: collection,
			topK:       svc.cfg.Retriever.TopK,
		}

		svc.mu.Lock()
		svc.pipe = p
		svc.mu.Unlock()

		log.Info("pipeline loaded", zap.Int("documents", collection.Count()))

		return p, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*pipeline), nil
}

func (svc *service) collection() (vector.Collection, error) {
	svc.mu.RLock()
	p := svc.pipe
	svc.mu.RUnlock()

	if p != nil {
		return p.collection, nil
	}

	embed := vector.EmbeddingFunc(svc.provider.EmbedQuery)
	return svc.vectordb.Collection(svc.cfg.Vector.Collection, embed)
}

func (svc *service) ingest(ctx context.Context, collection vector.Collection) (*IndexStats, error) {
	chunks, err := corpus.Load(svc.cfg.Corpus)
	if err != nil {
		return nil, err
	}

	if len(chunks) == 0 {
		return nil, ErrNoDocumentsFound
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	embeddings, err := svc.provider.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}

	docs := make([]vector.Document, len(chunks))
	for i, chunk := range chunks {
		doc := ChunkToDocument(chunk, svc.cfg.Corpus.Path)
		doc.Embedding = embeddings[i]
		docs[i] = doc
	}

	if err := collection.AddDocuments(ctx, docs); err != nil {
		return nil, err
	}

	return &IndexStats{
		Chunks: len(docs),
		Path:   svc.cfg.Vector.Path,
	}, nil
}

func (svc *service) IngestCorpus(ctx context.Context) (*IndexStats, error) {
	collection, err := svc.collection()
	if err != nil {
		return nil, err
	}

	return svc.ingest(ctx, collection)
}

func (svc *service) Chat(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	p, err := svc.loadPipeline(ctx)
	if err != nil {
		return "", err
	}

	docs, err := p.collection.Query(ctx, question, p.topK)
	if err != nil {
		return "", err
	}

	if len(docs) == 0 {
		return "", ErrNoDocumentsFound
	}

	prompt := BuildPrompt(FormatContext(docs), question)

	answer, err := svc.provider.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	return AnswerPrefix + answer, nil
}

func (svc *service) SearchChunks(ctx context.Context, query string, k ...int) ([]vector.Document, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuestion
	}

	p, err := svc.loadPipeline(ctx)
	if err != nil {
		return nil, err
	}

	n := p.topK
	if len(k) > 0 && k[0] > 0 {
		n = k[0]
	}

	docs, err := p.collection.Query(ctx, query, n)
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, ErrNoDocumentsFound
	}

	return docs, nil
}
