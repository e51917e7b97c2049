package corpus

import (
	"errors"
	"fmt"
	"os"

	"github.com/tmc/langchaingo/textsplitter"
)

var ErrNotFound = errors.New("corpus file not found")

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 0
)

type Config struct {
	Path         string `yaml:"path"`
	ChunkSize    int    `yaml:"chunkSize"`
	ChunkOverlap int    `yaml:"chunkOverlap"`
}

// Chunk is the unit of retrieval: a bounded slice of the corpus with
// its position in split order.
type Chunk struct {
	Position int
	Text     string
}

// Load reads the whole corpus file and splits it into chunks. The
// ingestion binary and the on-demand rebuild path both go through
// here, so the two can never disagree on chunking parameters.
func Load(cfg Config) ([]Chunk, error) {
	bs, err := os.ReadFile(cfg.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, cfg.Path)
		}

		return nil, err
	}

	return Split(string(bs), cfg)
}

func Split(text string, cfg Config) ([]Chunk, error) {
	size := cfg.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}

	overlap := cfg.ChunkOverlap
	if overlap < 0 {
		overlap = DefaultChunkOverlap
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(size),
		textsplitter.WithChunkOverlap(overlap),
	)

	parts, err := splitter.SplitText(text)
	if err != nil {
		return nil, err
	}

	chunks := make([]Chunk, len(parts))
	for i, part := range parts {
		chunks[i] = Chunk{
			Position: i,
			Text:     part,
		}
	}

	return chunks, nil
}
