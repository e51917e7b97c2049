package ragblade

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/flarexio/ragblade/corpus"
	"github.com/flarexio/ragblade/llm"
	"github.com/flarexio/ragblade/vector"
)

var (
	ErrEmptyQuestion    = errors.New("question is empty")
	ErrNoDocumentsFound = errors.New("no documents found")
	ErrVectorDBNotSet   = errors.New("vector database not set")
)

const DefaultTopK = 4

type Config struct {
	Corpus    corpus.Config   `yaml:"corpus"`
	Vector    vector.Config   `yaml:"vector"`
	LLM       llm.Config      `yaml:"llm"`
	Retriever RetrieverConfig `yaml:"retriever"`
}

type RetrieverConfig struct {
	TopK int `yaml:"topK"`
}

func (cfg *Config) applyDefaults() {
	if cfg.Retriever.TopK <= 0 {
		cfg.Retriever.TopK = DefaultTopK
	}
}

type IndexStats struct {
	Chunks int    `json:"chunks"`
	Path   string `json:"path,omitempty"`
}

const promptTemplate = `Use the following pieces of context to answer the question.
If you don't know the answer, just say that you don't know, don't try to make up an answer.

Context: %s

Question: %s

Helpful Answer: `

const AnswerPrefix = "Helpful Answer: "

func BuildPrompt(context, question string) string {
	return fmt.Sprintf(promptTemplate, context, question)
}

// FormatContext joins the retrieved chunk texts with a blank line,
// forming the context section of the prompt.
func FormatContext(docs []vector.Document) string {
	contents := make([]string, len(docs))
	for i, doc := range docs {
		contents[i] = doc.Content
	}

	return strings.Join(contents, "\n\n")
}

func ChunkToDocument(chunk corpus.Chunk, source string) vector.Document {
	return vector.Document{
		ID:      chunkDocumentID(chunk, source),
		Content: chunk.Text,
		Metadata: map[string]string{
			"source":   source,
			"position": strconv.Itoa(chunk.Position),
		},
	}
}

func chunkDocumentID(chunk corpus.Chunk, source string) string {
	data := fmt.Sprintf("%s|%d|%s", source, chunk.Position, chunk.Text)

	hash := sha256.Sum256([]byte(data))
	return "chunk_" + hex.EncodeToString(hash[:12])
}
