package ragblade

import (
	"context"
	"errors"

	"github.com/flarexio/ragblade/vector"
)

// ProxyMiddleware implements Service over a set of remote endpoints,
// for clients talking to a ragblade instance elsewhere.
func ProxyMiddleware(endpoints *EndpointSet) ServiceMiddleware {
	return func(next Service) Service {
		return &proxyMiddleware{
			endpoints: endpoints,
		}
	}
}

type proxyMiddleware struct {
	endpoints *EndpointSet
}

func (mw *proxyMiddleware) Close() error {
	return errors.New("method not implemented")
}

func (mw *proxyMiddleware) IngestCorpus(ctx context.Context) (*IndexStats, error) {
	resp, err := mw.endpoints.IngestCorpus(ctx, nil)
	if err != nil {
		return nil, err
	}

	stats, ok := resp.(*IndexStats)
	if !ok {
		return nil, errors.New("invalid response type")
	}

	return stats, nil
}

func (mw *proxyMiddleware) Chat(ctx context.Context, question string) (string, error) {
	req := ChatRequest{
		Question: question,
	}

	resp, err := mw.endpoints.Chat(ctx, req)
	if err != nil {
		return "", err
	}

	r, ok := resp.(ChatResponse)
	if !ok {
		return "", errors.New("invalid response type")
	}

	return r.Answer, nil
}

func (mw *proxyMiddleware) SearchChunks(ctx context.Context, query string, k ...int) ([]vector.Document, error) {
	n := 0
	if len(k) > 0 {
		n = k[0]
	}

	req := SearchChunksRequest{
		Query: query,
		K:     n,
	}

	resp, err := mw.endpoints.SearchChunks(ctx, req)
	if err != nil {
		return nil, err
	}

	docs, ok := resp.([]vector.Document)
	if !ok {
		return nil, errors.New("invalid response type")
	}

	return docs, nil
}
