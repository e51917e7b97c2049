package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/flarexio/ragblade"
	"github.com/flarexio/ragblade/vector"
)

type mockService struct {
	err error
}

func (m *mockService) Close() error {
	return nil
}

func (m *mockService) IngestCorpus(ctx context.Context) (*ragblade.IndexStats, error) {
	if m.err != nil {
		return nil, m.err
	}

	return &ragblade.IndexStats{Chunks: 3, Path: "index"}, nil
}

func (m *mockService) Chat(ctx context.Context, question string) (string, error) {
	if m.err != nil {
		return "", m.err
	}

	if strings.TrimSpace(question) == "" {
		return "", ragblade.ErrEmptyQuestion
	}

	return ragblade.AnswerPrefix + "the answer is 42", nil
}

func (m *mockService) SearchChunks(ctx context.Context, query string, k ...int) ([]vector.Document, error) {
	if m.err != nil {
		return nil, m.err
	}

	return []vector.Document{
		{ID: "chunk_1", Content: "the answer is 42"},
	}, nil
}

func newRouter(svc ragblade.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	AddRouters(r, ragblade.EndpointSet{
		IngestCorpus: ragblade.IngestCorpusEndpoint(svc),
		Chat:         ragblade.ChatEndpoint(svc),
		SearchChunks: ragblade.SearchChunksEndpoint(svc),
	})

	return r
}

func TestChatHandler(t *testing.T) {
	assert := assert.New(t)

	r := newRouter(&mockService{})

	body := strings.NewReader(`{"question": "What is the answer?"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(http.StatusOK, w.Code)

	var resp struct {
		Answer string `json:"answer"`
	}

	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Equal(ragblade.AnswerPrefix+"the answer is 42", resp.Answer)
}

func TestChatHandlerEmptyQuestion(t *testing.T) {
	assert := assert.New(t)

	r := newRouter(&mockService{})

	body := strings.NewReader(`{"question": ""}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(http.StatusBadRequest, w.Code)
	assert.Contains(w.Body.String(), "error")
}

func TestChatHandlerMalformedBody(t *testing.T) {
	assert := assert.New(t)

	r := newRouter(&mockService{})

	body := strings.NewReader(`{"question": `)
	req := httptest.NewRequest(http.MethodPost, "/chat", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(http.StatusBadRequest, w.Code)
}

func TestChatHandlerServiceError(t *testing.T) {
	assert := assert.New(t)

	svc := &mockService{
		err: errors.New("upstream failure"),
	}

	r := newRouter(svc)

	body := strings.NewReader(`{"question": "What is the answer?"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(http.StatusInternalServerError, w.Code)

	var resp struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.NotEmpty(resp.Error)
}

func TestHealthHandler(t *testing.T) {
	assert := assert.New(t)

	r := newRouter(&mockService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(http.StatusOK, w.Code)
	assert.JSONEq(`{"status": "ok"}`, w.Body.String())
}

func TestIndexHandler(t *testing.T) {
	assert := assert.New(t)

	r := newRouter(&mockService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(http.StatusOK, w.Code)
	assert.Contains(w.Header().Get("Content-Type"), "text/html")
	assert.Contains(w.Body.String(), "askQuestion")
}

func TestSearchChunksHandler(t *testing.T) {
	assert := assert.New(t)

	r := newRouter(&mockService{})

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=answer&k=1", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(http.StatusOK, w.Code)

	var docs []vector.Document
	if err := json.Unmarshal(w.Body.Bytes(), &docs); err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Len(docs, 1)
	assert.Equal("the answer is 42", docs[0].Content)
}

func TestIngestCorpusHandler(t *testing.T) {
	assert := assert.New(t)

	r := newRouter(&mockService{})

	req := httptest.NewRequest(http.MethodPost, "/api/ingest", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(http.StatusOK, w.Code)

	var stats ragblade.IndexStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Equal(3, stats.Chunks)
}
