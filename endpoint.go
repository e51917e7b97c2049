package ragblade

import (
	"context"
	"errors"

	"github.com/go-kit/kit/endpoint"
)

type EndpointSet struct {
	IngestCorpus endpoint.Endpoint
	Chat         endpoint.Endpoint
	SearchChunks endpoint.Endpoint
}

func IngestCorpusEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		return svc.IngestCorpus(ctx)
	}
}

type ChatRequest struct {
	Question string `json:"question"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}

func ChatEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req, ok := request.(ChatRequest)
		if !ok {
			return nil, errors.New("invalid request type")
		}

		answer, err := svc.Chat(ctx, req.Question)
		if err != nil {
			return nil, err
		}

		return ChatResponse{Answer: answer}, nil
	}
}

type SearchChunksRequest struct {
	Query string `form:"q" json:"q"`
	K     int    `form:"k" json:"k,omitempty"`
}

func SearchChunksEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req, ok := request.(SearchChunksRequest)
		if !ok {
			return nil, errors.New("invalid request type")
		}

		return svc.SearchChunks(ctx, req.Query, req.K)
	}
}
