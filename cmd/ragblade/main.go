package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/micro"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/flarexio/ragblade"
	"github.com/flarexio/ragblade/llm/openai"
	"github.com/flarexio/ragblade/persistence/chromem"

	httpT "github.com/flarexio/ragblade/transport/http"
	natsT "github.com/flarexio/ragblade/transport/nats"
)

func main() {
	cmd := &cli.Command{
		Name:  "ragblade",
		Usage: "RAGBlade question-answering service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "Path to the RAGBlade service",
			},
			&cli.StringFlag{
				Name:  "http-addr",
				Usage: "HTTP server address",
				Value: ":8080",
			},
			&cli.StringFlag{
				Name:    "nats",
				Usage:   "NATS server URL. Empty disables the NATS transport",
				Sources: cli.EnvVars("NATS_URL"),
			},
			&cli.StringFlag{
				Name:    "nats-creds",
				Usage:   "NATS user credentials file",
				Sources: cli.EnvVars("NATS_CREDS"),
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
		log.Warn("OPENAI_API_KEY environment variable not set, chat functionality will fail")
	}

	cfg, err := loadConfig(path)
	if err != nil {
		return err
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

	endpoints := ragblade.EndpointSet{
		IngestCorpus: ragblade.IngestCorpusEndpoint(svc),
		Chat:         ragblade.ChatEndpoint(svc),
		SearchChunks: ragblade.SearchChunksEndpoint(svc),
	}

	// Add NATS Transport
	natsURL := cmd.String("nats")
	if natsURL != "" {
		opts := []nats.Option{
			nats.Name("RAGBlade Server"),
		}

		if creds := cmd.String("nats-creds"); creds != "" {
			opts = append(opts, nats.UserCredentials(creds))
		}

		nc, err := nats.Connect(natsURL, opts...)
		if err != nil {
			return err
		}
		defer nc.Drain()

		srv, err := micro.AddService(nc, micro.Config{
			Name:    "ragblade",
			Version: "1.0.0",
		})

		if err != nil {
			return err
		}
		defer srv.Stop()

		root := srv.AddGroup("ragblade")
		natsT.AddEndpoints(root, endpoints)
	}

	r := gin.Default()
	httpT.AddRouters(r, endpoints)

	httpAddr := cmd.String("http-addr")
	go r.Run(httpAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sign := <-quit

	log.Info("graceful shutdown", zap.String("signal", sign.String()))
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
