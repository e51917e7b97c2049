package ragblade

import (
	"context"

	"go.uber.org/zap"

	"github.com/flarexio/ragblade/vector"
)

func LoggingMiddleware(log *zap.Logger) ServiceMiddleware {
	log = log.With(
		zap.String("service", "ragblade"),
	)

	return func(next Service) Service {
		log.Info("service initialized")

		return &loggingMiddleware{
			log:  log,
			next: next,
		}
	}
}

type loggingMiddleware struct {
	log  *zap.Logger
	next Service
}

func (mw *loggingMiddleware) Close() error {
	log := mw.log.With(
		zap.String("action", "close"),
	)

	err := mw.next.Close()
	if err != nil {
		log.Error(err.Error())
		return err
	}

	log.Info("service closed")
	return nil
}

func (mw *loggingMiddleware) IngestCorpus(ctx context.Context) (*IndexStats, error) {
	log := mw.log.With(
		zap.String("action", "ingest_corpus"),
	)

	stats, err := mw.next.IngestCorpus(ctx)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}

	log.Info("corpus ingested",
		zap.Int("chunks", stats.Chunks),
		zap.String("path", stats.Path),
	)

	return stats, nil
}

func (mw *loggingMiddleware) Chat(ctx context.Context, question string) (string, error) {
	log := mw.log.With(
		zap.String("action", "chat"),
		zap.String("question", question),
	)

	answer, err := mw.next.Chat(ctx, question)
	if err != nil {
		log.Error(err.Error())
		return "", err
	}

	log.Info("question answered")
	return answer, nil
}

func (mw *loggingMiddleware) SearchChunks(ctx context.Context, query string, k ...int) ([]vector.Document, error) {
	var n int
	if len(k) > 0 {
		n = k[0]
	}

	log := mw.log.With(
		zap.String("action", "search_chunks"),
		zap.String("query", query),
	)

	if n > 0 {
		log = log.With(
			zap.Int("k", n),
		)
	}

	docs, err := mw.next.SearchChunks(ctx, query, k...)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}

	log.Info("chunks searched", zap.Int("count", len(docs)))
	return docs, nil
}
