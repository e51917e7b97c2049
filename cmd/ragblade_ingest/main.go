package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/flarexio/ragblade"
	"github.com/flarexio/ragblade/llm/openai"
	"github.com/flarexio/ragblade/persistence/chromem"
)

func main() {
	cmd := &cli.Command{
		Name:  "ragblade_ingest",
		Usage: "Build the RAGBlade vector index from the corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "Path to the RAGBlade service",
			},
			&cli.StringFlag{
				Name:  "corpus",
				Usage: "Corpus file. Overrides the configured path",
			},
		},
		Action: run,
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err.Error())
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		path = filepath.Join(homeDir, ".flarex", "ragblade")
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)

	if os.Getenv("OPENAI_API_KEY") == "" {
		return errors.New("OPENAI_API_KEY environment variable not set")
	}

	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}

	if corpusPath := cmd.String("corpus"); corpusPath != "" {
		cfg.Corpus.Path = corpusPath
	}

	provider := openai.New(cfg.LLM)

	vectordb, err := chromem.NewChromemVectorDB(cfg.Vector)
	if err != nil {
		return err
	}

	svc, err := ragblade.NewService(cfg, provider, vectordb)
	if err != nil {
		return err
	}
	defer svc.Close()

	svc = ragblade.LoggingMiddleware(log)(svc)

	stats, err := svc.IngestCorpus(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("index saved: %d chunks -> %s\n", stats.Chunks, stats.Path)
	return nil
}

func loadConfig(path string) (ragblade.Config, error) {
	var cfg ragblade.Config

	f, err := os.Open(filepath.Join(path, "config.yaml"))
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, err
	}

	if cfg.Corpus.Path == "" {
		cfg.Corpus.Path = filepath.Join(path, "data.txt")
	}

	if cfg.Vector.Path == "" {
		cfg.Vector.Path = filepath.Join(path, "index")
	}

	return cfg, nil
}
