package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/subosito/gotenv"

	"github.com/medsum/medsum/internal/errors"
	"github.com/medsum/medsum/internal/logger"
)

// DefaultEnvFile is read by LoadServer when it exists.
const DefaultEnvFile = ".env"

// Server configures `medsum serve`. Values come from the environment,
// optionally seeded from a .env file.
type Server struct {
	Addr string `env:"ADDR" envDefault:":8000"`

	ModelName     string `env:"MODEL_NAME"      envDefault:"gpt-4o-mini"`
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	MaxInputChars int `env:"MAX_INPUT_CHARS" envDefault:"4000"`
	ChunkOverlap  int `env:"CHUNK_OVERLAP"   envDefault:"200"`
	Concurrency   int `env:"CONCURRENCY"     envDefault:"4"`

	// CacheSize 0 disables the in-process cache.
	CacheSize int           `env:"CACHE_SIZE" envDefault:"256"`
	CacheTTL  time.Duration `env:"CACHE_TTL"  envDefault:"1h"`

	// ValkeyAddress, when set, replaces the in-process cache with a shared one.
	ValkeyAddress  string `env:"VALKEY_ADDRESS"`
	ValkeyPassword string `env:"VALKEY_PASSWORD"`
	ValkeyTLS      bool   `env:"VALKEY_TLS"`

	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}

// LoadServer loads envFiles (DefaultEnvFile when none are given) into the
// process environment without overriding variables already set, then parses
// and validates the server config. Missing env files are skipped.
func LoadServer(envFiles ...string) (*Server, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			logger.Debug("env file %s not loaded: %v", f, err)
			continue
		}
		if err := gotenv.Load(f); err != nil {
			return nil, errors.ConfigLoadFailed(f, err)
		}
	}
	return ParseServer(nil)
}

// ParseServer parses the server config from environ, or from the process
// environment when environ is nil.
func ParseServer(environ map[string]string) (*Server, error) {
	var cfg Server
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, errors.E(errors.Op("config.ParseServer"), errors.KindConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that limits are usable together.
func (s *Server) Validate() error {
	switch {
	case s.Addr == "":
		return errors.ConfigInvalid("ADDR must not be empty")
	case s.ModelName == "":
		return errors.ConfigInvalid("MODEL_NAME must not be empty")
	case s.MaxInputChars <= 0:
		return errors.ConfigInvalid(fmt.Sprintf("MAX_INPUT_CHARS must be positive, got %d", s.MaxInputChars))
	case s.ChunkOverlap < 0:
		return errors.ConfigInvalid(fmt.Sprintf("CHUNK_OVERLAP must not be negative, got %d", s.ChunkOverlap))
	case s.ChunkOverlap >= s.MaxInputChars:
		return errors.ConfigInvalid(fmt.Sprintf("CHUNK_OVERLAP (%d) must be smaller than MAX_INPUT_CHARS (%d)", s.ChunkOverlap, s.MaxInputChars))
	case s.Concurrency <= 0:
		return errors.ConfigInvalid(fmt.Sprintf("CONCURRENCY must be positive, got %d", s.Concurrency))
	case s.CacheSize < 0:
		return errors.ConfigInvalid(fmt.Sprintf("CACHE_SIZE must not be negative, got %d", s.CacheSize))
	case s.CacheTTL < 0:
		return errors.ConfigInvalid(fmt.Sprintf("CACHE_TTL must not be negative, got %s", s.CacheTTL))
	case s.MaxBodyBytes <= 0:
		return errors.ConfigInvalid(fmt.Sprintf("MAX_BODY_BYTES must be positive, got %d", s.MaxBodyBytes))
	}
	return nil
}
