package ragblade

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/flarexio/ragblade/corpus"
	"github.com/flarexio/ragblade/vector"
)

func TestConfigYAMLUnmarshal(t *testing.T) {
	assert := assert.New(t)

	input := `corpus:
  path: ./data.txt
  chunkSize: 1000
  chunkOverlap: 0
vector:
  persistent: true
  path: ./index
  collection: corpus
llm:
  chatModel: gpt-3.5-turbo
  embeddingModel: text-embedding-3-small
  temperature: 0
retriever:
  topK: 4`

	var cfg Config
	if err := yaml.Unmarshal([]byte(input), &cfg); err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Equal("./data.txt", cfg.Corpus.Path)
	assert.Equal(1000, cfg.Corpus.ChunkSize)
	assert.Equal(0, cfg.Corpus.ChunkOverlap)
	assert.True(cfg.Vector.Persistent)
	assert.Equal("corpus", cfg.Vector.Collection)
	assert.Equal("gpt-3.5-turbo", cfg.LLM.ChatModel)
	assert.Equal(float32(0), cfg.LLM.Temperature)
	assert.Equal(4, cfg.Retriever.TopK)
}

func TestConfigDefaults(t *testing.T) {
	assert := assert.New(t)

	var cfg Config
	cfg.applyDefaults()

	assert.Equal(DefaultTopK, cfg.Retriever.TopK)
}

func TestChunkToDocument(t *testing.T) {
	assert := assert.New(t)

	chunk := corpus.Chunk{
		Position: 2,
		Text:     "The instructor is Jane Doe.",
	}

	doc := ChunkToDocument(chunk, "data.txt")

	assert.True(strings.HasPrefix(doc.ID, "chunk_"))
	assert.Equal(chunk.Text, doc.Content)
	assert.Equal("data.txt", doc.Metadata["source"])
	assert.Equal("2", doc.Metadata["position"])

	// Same chunk, same ID; different position, different ID.
	again := ChunkToDocument(chunk, "data.txt")
	assert.Equal(doc.ID, again.ID)

	moved := ChunkToDocument(corpus.Chunk{Position: 3, Text: chunk.Text}, "data.txt")
	assert.NotEqual(doc.ID, moved.ID)
}

func TestBuildPrompt(t *testing.T) {
	assert := assert.New(t)

	prompt := BuildPrompt("some context", "some question?")

	assert.Contains(prompt, "Context: some context")
	assert.Contains(prompt, "Question: some question?")
	assert.True(strings.HasSuffix(prompt, AnswerPrefix))
}

func TestFormatContext(t *testing.T) {
	assert := assert.New(t)

	docs := []vector.Document{
		{ID: "chunk_1", Content: "first passage"},
		{ID: "chunk_2", Content: "second passage"},
	}

	assert.Equal("first passage\n\nsecond passage", FormatContext(docs))
}
