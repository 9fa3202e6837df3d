package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/medsum/medsum/internal/cache"
	"github.com/medsum/medsum/internal/config"
	"github.com/medsum/medsum/internal/engine"
	"github.com/medsum/medsum/internal/logger"
	"github.com/medsum/medsum/internal/server"
)

var serveEnvFiles []string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the summarization server",
	Long: `Serves POST /summarize and GET /health over HTTP.

Configuration comes from the environment, seeded from .env when present.
Long notes are split into overlapping chunks that are summarized concurrently
and then condensed into one summary.

Examples:
  medsum serve                           # Listen on :8000
  ADDR=:9000 medsum serve                # Listen elsewhere
  OPENAI_BASE_URL=http://localhost:11434/v1 medsum serve
  medsum serve --env-file prod.env       # Read a different env file`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringSliceVar(&serveEnvFiles, "env-file", nil, "Env files to load (default .env)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger.InitConsole(cmd.ErrOrStderr())
	log := logger.WithComponent("serve")

	scfg, err := config.LoadServer(serveEnvFiles...)
	if err != nil {
		return fmt.Errorf("error loading server config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, closeBackend, err := buildBackend(ctx, scfg)
	if err != nil {
		return err
	}
	defer closeBackend()

	info := backend.Info()
	log.Info("starting server", "addr", scfg.Addr, "model", info.Name, "device", info.Device)

	srv := server.New(backend, server.Options{
		Addr:         scfg.Addr,
		MaxBodyBytes: scfg.MaxBodyBytes,
	})
	return srv.ListenAndServe(ctx)
}

// newBackend loads the server environment and builds an engine from it.
// Used by --local, which summarizes without a server.
func newBackend(ctx context.Context) (*engine.Engine, func(), error) {
	scfg, err := config.LoadServer()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading server config: %w", err)
	}
	return buildBackend(ctx, scfg)
}

// buildBackend wires the model and cache described by scfg into an engine.
// The returned func releases the cache.
func buildBackend(ctx context.Context, scfg *config.Server) (*engine.Engine, func(), error) {
	c, err := newCache(ctx, scfg)
	if err != nil {
		return nil, nil, err
	}

	model := engine.NewOpenAIModel(engine.OpenAIConfig{
		APIKey:  scfg.OpenAIAPIKey,
		BaseURL: scfg.OpenAIBaseURL,
		Model:   scfg.ModelName,
	})
	eng := engine.New(model, engine.Options{
		MaxInputChars: scfg.MaxInputChars,
		ChunkOverlap:  scfg.ChunkOverlap,
		Concurrency:   scfg.Concurrency,
		Cache:         c,
		CacheTTL:      scfg.CacheTTL,
	})

	closeCache := func() {
		if err := c.Close(); err != nil {
			logger.Warn("error closing cache: %v", err)
		}
	}
	return eng, closeCache, nil
}

// newCache picks the summary cache: Valkey when an address is configured,
// otherwise an in-process LRU, or none when CACHE_SIZE is 0.
func newCache(ctx context.Context, scfg *config.Server) (cache.Cache, error) {
	switch {
	case scfg.ValkeyAddress != "":
		v, err := cache.NewValkey(ctx, cache.ValkeyOptions{
			Address:  scfg.ValkeyAddress,
			Password: scfg.ValkeyPassword,
			TLS:      scfg.ValkeyTLS,
		})
		if err != nil {
			return nil, fmt.Errorf("error connecting to cache: %w", err)
		}
		return v, nil
	case scfg.CacheSize > 0:
		return cache.NewMemory(scfg.CacheSize), nil
	default:
		return cache.Nop{}, nil
	}
}
