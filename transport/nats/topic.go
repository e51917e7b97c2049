package nats

import (
	"github.com/nats-io/nats.go/micro"

	"github.com/flarexio/ragblade"
)

func AddEndpoints(group micro.Group, endpoints ragblade.EndpointSet) {
	group.AddEndpoint("ingest_corpus", IngestCorpusHandler(endpoints.IngestCorpus))
	group.AddEndpoint("chat", ChatHandler(endpoints.Chat))
	group.AddEndpoint("search_chunks", SearchChunksHandler(endpoints.SearchChunks))
}
