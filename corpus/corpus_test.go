package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitChunkCount(t *testing.T) {
	assert := assert.New(t)

	// Separator-free text splits purely by size: ceil(N / chunkSize).
	text := strings.Repeat("a", 2500)

	cfg := Config{
		ChunkSize:    1000,
		ChunkOverlap: 0,
	}

	chunks, err := Split(text, cfg)
	if err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Len(chunks, 3)
	assert.Len(chunks[0].Text, 1000)
	assert.Len(chunks[1].Text, 1000)
	assert.Len(chunks[2].Text, 500)

	for i, chunk := range chunks {
		assert.Equal(i, chunk.Position)
		assert.Contains(text, chunk.Text)
	}
}

func TestSplitChunksAreSubstrings(t *testing.T) {
	assert := assert.New(t)

	text := `The course runs from January to March.

The instructor is Jane Doe, who has taught search systems for ten years.

Lectures take place every Tuesday morning in building 42.`

	cfg := Config{
		ChunkSize:    80,
		ChunkOverlap: 0,
	}

	chunks, err := Split(text, cfg)
	if err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.NotEmpty(chunks)

	for _, chunk := range chunks {
		assert.NotEmpty(chunk.Text)
		assert.LessOrEqual(len(chunk.Text), cfg.ChunkSize)
		assert.Contains(text, chunk.Text)
	}
}

func TestSplitDefaults(t *testing.T) {
	assert := assert.New(t)

	text := strings.Repeat("b", DefaultChunkSize+1)

	chunks, err := Split(text, Config{})
	if err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Len(chunks, 2)
	assert.Len(chunks[0].Text, DefaultChunkSize)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello corpus"), 0644))

	cfg := Config{
		Path:      path,
		ChunkSize: 100,
	}

	chunks, err := Load(cfg)
	if err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Len(chunks, 1)
	assert.Equal("hello corpus", chunks[0].Text)
}

func TestLoadMissingFile(t *testing.T) {
	assert := assert.New(t)

	cfg := Config{
		Path: filepath.Join(t.TempDir(), "missing.txt"),
	}

	_, err := Load(cfg)
	assert.True(errors.Is(err, ErrNotFound))
}
