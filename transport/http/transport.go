package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/kit/endpoint"

	"github.com/flarexio/ragblade"
)

func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func IndexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
	}
}

// ChatHandler answers POST /chat. Failures inside the pipeline return
// HTTP 500 with an error payload; a request the client can fix
// returns 400. The status code is part of the contract.
func ChatHandler(endpoint endpoint.Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ragblade.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Error(err)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		resp, err := endpoint(ctx, req)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ragblade.ErrEmptyQuestion) {
				status = http.StatusBadRequest
			}

			c.JSON(status, gin.H{"error": err.Error()})
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

func IngestCorpusHandler(endpoint endpoint.Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		resp, err := endpoint(ctx, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

func SearchChunksHandler(endpoint endpoint.Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ragblade.SearchChunksRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Error(err)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		resp, err := endpoint(ctx, req)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ragblade.ErrEmptyQuestion) {
				status = http.StatusBadRequest
			}

			c.JSON(status, gin.H{"error": err.Error()})
			c.Error(err)
			c.Abort()
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
