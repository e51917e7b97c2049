package http

import (
	"github.com/gin-gonic/gin"

	"github.com/flarexio/ragblade"
)

func AddRouters(r *gin.Engine, endpoints ragblade.EndpointSet) {
	r.GET("/", IndexHandler())
	r.GET("/healthz", HealthHandler())
	r.POST("/chat", ChatHandler(endpoints.Chat))

	// RESTful API routes
	api := r.Group("/api")
	{
		api.POST("/ingest", IngestCorpusHandler(endpoints.IngestCorpus))
		api.GET("/search", SearchChunksHandler(endpoints.SearchChunks))
	}
}
